// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import "github.com/google/uuid"

// Report is the result of one Analyzer.Run: the four structural
// properties derived from the net's coverability tree, tagged with a
// run id so a caller driving many analyses (over a batch of nets, for
// instance) can correlate a Report back to the call that produced it
// without the analyzer itself doing any logging.
type Report struct {
	ID uuid.UUID
	Properties
}

// Analyzer runs the coverability search (C5), the connectivity check
// (C7) and the property derivation (C6) over a net and returns the
// resulting Report. Each Run builds a fresh tree, so the same Analyzer
// can be reused across unrelated nets; the only state kept between
// calls is the tree of the last successful Run (see LastTree).
type Analyzer struct {
	lastTree *Tree
}

// NewAnalyzer returns a ready-to-use Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Run builds the coverability tree of n's current marking, derives the
// four properties, and returns a Report. The net is read only: Run
// never fires a concrete transition and leaves n's token counts
// untouched. Run returns an error only if building the tree fails,
// which happens only when the net itself is internally inconsistent
// (a potentially-ready transition that potential firing then rejects,
// which cannot happen through the public Net API).
func (a *Analyzer) Run(n *Net) (Report, error) {
	tree, err := BuildTree(n)
	if err != nil {
		return Report{}, err
	}
	props := deriveProperties(n, tree)
	a.lastTree = tree
	return Report{ID: uuid.New(), Properties: props}, nil
}

// LastTree returns the coverability tree built by the most recent
// successful call to Run, or nil if no Run has succeeded yet. A Run
// that returns an error leaves the previous tree in place. This is exposed for callers that want the raw
// bookkeeping (done events, terminal and reached-root counts) behind a
// Report, not just its derived Booleans.
func (a *Analyzer) LastTree() *Tree {
	return a.lastTree
}
