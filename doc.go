// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package nets implements a Petri-net model and a Karp-Miller-style
coverability analyzer over it.

A net is a bipartite graph of places and transitions connected by
weighted arcs. Places hold non-negative integer token counts; a
transition is enabled when it has at least one input place and every
one of its input places carries at least as many tokens as the
corresponding arc multiplicity, and firing
it consumes tokens from input places and produces tokens in output
places.

The analyzer builds a finite coverability tree by exploring successor
markings from a net's initial marking, substituting the sentinel value
ω ("unbounded") on any place that keeps growing without limit along a
tree path. From the finished tree it derives four structural
properties:

	alive      no branch of the search dead-ends and every transition
	           fired somewhere along it
	safe       no place was found unbounded
	reachable  the initial marking recurs somewhere other than the root
	coherent   the underlying undirected place/transition graph is
	           connected

Basic usage

	net := nets.New("example")
	net.AddPlace("p1", 1)
	net.AddPlace("p2", 0)
	net.AddTransition("t1", nets.Controllable)
	net.SetArcPT("p1", "t1", 1)
	net.SetArcTP("t1", "p2", 1)

	a := nets.NewAnalyzer()
	report, err := a.Run(net)
	if err != nil {
		// handle construction/precondition errors
	}
	_ = report.Alive

The package does not include a command-line driver. Rendering a net
to DOT text for visualisation lives in this module's internal/dot
package and is reached through Net.WriteDOT.
*/
package nets
