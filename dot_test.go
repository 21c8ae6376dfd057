// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDOTBasicShape(t *testing.T) {
	n := New("demo")
	require.NoError(t, n.AddPlace("p1", 2))
	require.NoError(t, n.AddPlace("p2", 0))
	require.NoError(t, n.AddTransition("t1", Uncontrollable))
	require.NoError(t, n.Link("p1", "t1", "p2"))

	var b strings.Builder
	require.NoError(t, n.WriteDOT(&b))
	out := b.String()

	assert.Contains(t, out, "digraph PetriNet { rankdir=LR")
	assert.Contains(t, out, "*2")
	assert.Contains(t, out, "coral")
	assert.Contains(t, out, "->")
}

func TestWriteDOTMacroCluster(t *testing.T) {
	n := New("demo")
	require.NoError(t, n.AddTransition("real1", Controllable))
	require.NoError(t, n.AddTransition("m1", Macro))
	require.NoError(t, n.SetMacroMask("m1", []string{"real1"}))

	var b strings.Builder
	require.NoError(t, n.WriteDOT(&b))
	out := b.String()
	assert.Contains(t, out, "cluster_macro_0")
	assert.Contains(t, out, "style=dotted")
}

func TestWriteDOTSlashSplitName(t *testing.T) {
	n := New("demo")
	require.NoError(t, n.AddPlace("p/1", 0))
	var b strings.Builder
	require.NoError(t, n.WriteDOT(&b))
	assert.Contains(t, b.String(), "p\\n1")
}
