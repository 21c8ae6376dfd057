// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSelfLoop(t *testing.T) *Net {
	t.Helper()
	n := New("self-loop")
	require.NoError(t, n.AddPlace("p1", 1))
	require.NoError(t, n.AddTransition("t", Controllable))
	require.NoError(t, n.Link("p1", "t", "p1"))
	return n
}

func TestPotentiallyReadyOmega(t *testing.T) {
	n := New("n")
	require.NoError(t, n.AddPlace("p1", 0))
	require.NoError(t, n.AddTransition("t1", Controllable))
	require.NoError(t, n.SetArcPT("p1", "t1", 5))

	m := Marking{"p1": Omg}
	assert.Equal(t, []string{"t1"}, PotentiallyReady(n, m))
}

func TestPotentiallyFirePreservesOmega(t *testing.T) {
	n := New("n")
	require.NoError(t, n.AddPlace("p1", 0))
	require.NoError(t, n.AddPlace("p2", 0))
	require.NoError(t, n.AddTransition("t1", Controllable))
	require.NoError(t, n.Link("p1", "t1", "p2"))

	m := Marking{"p1": Omg, "p2": Fin(0)}
	out, err := PotentiallyFire(n, m, "t1")
	require.NoError(t, err)
	assert.True(t, out.Get("p1").IsOmega())
	assert.True(t, out.Get("p2").Equal(Fin(1)))
}

func TestPotentiallyFireRejectsNonReady(t *testing.T) {
	n := New("n")
	require.NoError(t, n.AddPlace("p1", 0))
	require.NoError(t, n.AddTransition("t1", Controllable))
	require.NoError(t, n.SetArcPT("p1", "t1", 1))

	_, err := PotentiallyFire(n, Marking{"p1": Fin(0)}, "t1")
	assert.Error(t, err)
}

func TestPotentiallyFireEmptyNameNoneReady(t *testing.T) {
	n := New("n")
	require.NoError(t, n.AddPlace("p1", 0))
	require.NoError(t, n.AddTransition("t1", Controllable))
	require.NoError(t, n.SetArcPT("p1", "t1", 1))

	m := Marking{"p1": Fin(0)}
	out, err := PotentiallyFire(n, m, "")
	require.NoError(t, err)
	assert.True(t, out.Equal(m))
}

func TestSelfLoopPotentiallyFiresToItself(t *testing.T) {
	n := buildSelfLoop(t)
	m := n.InitialMarking()
	out, err := PotentiallyFire(n, m, "t")
	require.NoError(t, err)
	assert.True(t, out.Equal(m))
}

// TestMacroNeverPotentiallyReady pins down the Design Note that a
// macro transition, having no arcs by construction, is never
// potentially ready even against an empty marking.
func TestMacroNeverPotentiallyReady(t *testing.T) {
	n := New("n")
	require.NoError(t, n.AddTransition("m1", Macro))

	assert.Empty(t, PotentiallyReady(n, Marking{}))
	assert.Empty(t, n.Enabled())

	_, err := PotentiallyFire(n, Marking{}, "m1")
	assert.Error(t, err)
}
