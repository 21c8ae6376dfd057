// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import "sort"

// Connected reports whether the net, viewed as an undirected graph
// over places ∪ transitions with an edge for every pre- or post-arc
// (ignoring multiplicity and direction), is a single component. The
// .net format permits a place and a transition to share a name, so the
// vertex set is the union of the two name sets, deduplicated, not
// their sum (matching the original's union_set(states, events)). The
// traversal starts from the lexicographically first name across the
// combined vertex set. An empty net is vacuously connected: there are
// no vertices to miss.
func (n *Net) Connected() bool {
	vertices := make(map[string]bool, n.PlaceCount()+n.TransitionCount())
	for _, p := range n.PlaceNames() {
		vertices[p] = true
	}
	for _, t := range n.TransitionNames() {
		vertices[t] = true
	}
	total := len(vertices)
	if total == 0 {
		return true
	}

	start := n.firstVertex()
	visited := make(map[string]bool, total)
	queue := []string{start}
	visited[start] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		var neighbors []string
		if isPlaceVertex(n, v) {
			neighbors = append(n.InputTransitions(v), n.OutputTransitions(v)...)
		} else {
			neighbors = append(n.InputPlaces(v), n.OutputPlaces(v)...)
		}
		for _, w := range neighbors {
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	return len(visited) == total
}

// firstVertex returns the lexicographically first name across places
// and transitions.
func (n *Net) firstVertex() string {
	names := make([]string, 0, n.PlaceCount()+n.TransitionCount())
	names = append(names, n.PlaceNames()...)
	names = append(names, n.TransitionNames()...)
	sort.Strings(names)
	return names[0]
}

func isPlaceVertex(n *Net, name string) bool {
	return n.HasPlace(name)
}
