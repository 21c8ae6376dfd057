// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSafeIffNoOmega pins down invariant 8.
func TestSafeIffNoOmega(t *testing.T) {
	bounded := mustLinearCycle(t, []string{"p1", "p2", "p3"}, "p1", 1)
	tree, err := BuildTree(bounded)
	require.NoError(t, err)
	props := deriveProperties(bounded, tree)
	assert.Equal(t, !tree.HasOmega(), props.Safe)

	unbounded := New("unbounded")
	require.NoError(t, unbounded.AddPlace("p1", 1))
	require.NoError(t, unbounded.AddPlace("p2", 0))
	require.NoError(t, unbounded.AddTransition("t", Controllable))
	require.NoError(t, unbounded.SetArcPT("p1", "t", 1))
	require.NoError(t, unbounded.SetArcTP("t", "p1", 1))
	require.NoError(t, unbounded.SetArcTP("t", "p2", 1))
	tree2, err := BuildTree(unbounded)
	require.NoError(t, err)
	props2 := deriveProperties(unbounded, tree2)
	assert.Equal(t, !tree2.HasOmega(), props2.Safe)
	assert.False(t, props2.Safe)
}

// TestCoherentIffSingleComponent pins down invariant 9.
func TestCoherentIffSingleComponent(t *testing.T) {
	n := New("n")
	require.NoError(t, n.AddPlace("p1", 0))
	require.NoError(t, n.AddPlace("p2", 0))
	require.NoError(t, n.AddTransition("t1", Controllable))
	require.NoError(t, n.Link("p1", "t1", "p2"))
	assert.Equal(t, n.Connected(), deriveProperties(n, mustEmptyTree(t, n)).Coherent)
}

func mustEmptyTree(t *testing.T, n *Net) *Tree {
	t.Helper()
	tree, err := BuildTree(n)
	require.NoError(t, err)
	return tree
}
