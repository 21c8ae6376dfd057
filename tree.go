// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import "sort"

// Node is one vertex of a coverability tree: a marking together with
// the id of its parent (-1 for the root). Nodes are stored in an
// arena keyed by ascending integer id rather than linked by a
// non-owning parent pointer, so ancestor walks during ω-acceleration
// are simple id lookups and the whole tree is freed at once at the
// end of an analysis run.
type Node struct {
	ID       int
	Marking  Marking
	ParentID int
}

// Tree is the finite coverability tree built by BuildTree: the result
// of a Karp-Miller-style bounded search over a net's potential firings,
// with ω-acceleration applied against every strictly-covering ancestor
// on a node's path to the root (the stricter of the two variants
// discussed for this kind of search, chosen here over consulting only
// the nearest strictly-covering ancestor).
type Tree struct {
	nodes      map[int]*Node
	nextID     int
	closed     map[MarkingHandle]bool
	doneEvents map[string]bool
	term       int
	doublStart int
	rootMark   Marking
}

func newTree(root Marking) *Tree {
	t := &Tree{
		nodes:      make(map[int]*Node),
		closed:     make(map[MarkingHandle]bool),
		doneEvents: make(map[string]bool),
		rootMark:   root,
	}
	t.nodes[0] = &Node{ID: 0, Marking: root, ParentID: -1}
	t.nextID = 1
	return t
}

func (t *Tree) insert(parentID int, m Marking) *Node {
	id := t.nextID
	t.nextID++
	node := &Node{ID: id, Marking: m, ParentID: parentID}
	t.nodes[id] = node
	return node
}

// ancestorAccelerate applies ω-acceleration to succ by folding over
// every ancestor of succ, from the node parentID itself up to and
// including the root: for each
// ancestor marking A that succ strictly covers, every place where succ
// exceeds A is set to ω. Folding over all ancestors (rather than
// stopping at the first strictly-covering one) is strictly safer
// against missing an acceleration that a later, more distant ancestor
// would have triggered.
func (t *Tree) ancestorAccelerate(parentID int, succ Marking) Marking {
	omegaPlaces := make(map[string]bool)
	for id := parentID; id != -1; id = t.nodes[id].ParentID {
		a := t.nodes[id].Marking
		if !succ.StrictlyCovers(a) {
			continue
		}
		for _, p := range succ.Places() {
			if succ.Get(p).StrictlyGreater(a.Get(p)) {
				omegaPlaces[p] = true
			}
		}
	}
	if len(omegaPlaces) == 0 {
		return succ
	}
	ps := make([]string, 0, len(omegaPlaces))
	for p := range omegaPlaces {
		ps = append(ps, p)
	}
	return succ.WithOmegaOn(ps)
}

// BuildTree runs the coverability search over net's current marking
// and returns the finished tree. The net is read only; BuildTree does
// not fire any concrete transition and leaves the net's own token
// counts untouched.
func BuildTree(n *Net) (*Tree, error) {
	root := n.InitialMarking()
	t := newTree(root)
	rootHandle := root.Intern()

	queue := []int{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		node := t.nodes[id]
		t.closed[node.Marking.Intern()] = true

		ready := PotentiallyReady(n, node.Marking)
		if len(ready) == 0 {
			t.term++
			continue
		}
		for _, tr := range ready {
			succ, err := PotentiallyFire(n, node.Marking, tr)
			if err != nil {
				return nil, err
			}
			t.doneEvents[tr] = true
			succ = t.ancestorAccelerate(id, succ)

			h := succ.Intern()
			if !t.closed[h] && !succ.Equal(node.Marking) {
				child := t.insert(id, succ)
				queue = append(queue, child.ID)
				continue
			}
			if h == rootHandle {
				t.doublStart++
			}
		}
	}
	return t, nil
}

// NodeCount returns the number of nodes in the tree.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

// Node returns the node with the given id, or nil if none exists.
func (t *Tree) Node(id int) *Node {
	return t.nodes[id]
}

// ClosedMarkings returns every marking that was expanded, as their
// canonical handles.
func (t *Tree) ClosedMarkings() map[MarkingHandle]bool {
	return t.closed
}

// DoneEvents returns, sorted ascending, the transitions that were
// potentially ready at some expansion during the search.
func (t *Tree) DoneEvents() []string {
	out := make([]string, 0, len(t.doneEvents))
	for e := range t.doneEvents {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// TerminalCount returns the number of expansions that found no
// potentially-ready transition.
func (t *Tree) TerminalCount() int {
	return t.term
}

// ReachedRootCount returns the number of successor markings computed
// during the search that turned out to equal the root's marking.
func (t *Tree) ReachedRootCount() int {
	return t.doublStart
}

// HasOmega reports whether any closed marking in the tree carries ω on
// some place.
func (t *Tree) HasOmega() bool {
	for id := range t.nodes {
		for _, v := range t.nodes[id].Marking {
			if v.IsOmega() {
				return true
			}
		}
	}
	return false
}
