// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"io"

	"github.com/sadevans/analysis-of-petri-nets/internal/dot"
)

// WriteDOT renders n to the Graphviz DOT graph-description text
// format, delegating the actual
// text construction to the internal/dot subpackage the way PNML
// export once delegated to an internal/pnml subpackage. This is an
// external collaborator to the coverability analyzer: nothing it
// produces feeds back into a Report.
func (n *Net) WriteDOT(w io.Writer) error {
	g := dot.Graph{Name: n.Name}

	for _, p := range n.PlaceNames() {
		g.Places = append(g.Places, dot.Place{Name: p, Tokens: n.Tokens(p)})
	}
	for _, t := range n.TransitionNames() {
		typ, _ := n.TransitionTypeOf(t)
		g.Transitions = append(g.Transitions, dot.Transition{
			Name:         t,
			Controllable: typ == Controllable,
			IsMacro:      typ == Macro,
			MacroMembers: n.MacroMask(t),
		})
		for _, p := range n.InputPlaces(t) {
			g.Arcs = append(g.Arcs, dot.Arc{From: p, To: t, Multiplicity: n.GetArcPT(p, t), FromPlace: true})
		}
		for _, p := range n.OutputPlaces(t) {
			g.Arcs = append(g.Arcs, dot.Arc{From: t, To: p, Multiplicity: n.GetArcTP(t, p), FromPlace: false})
		}
	}

	return dot.Write(w, g)
}
