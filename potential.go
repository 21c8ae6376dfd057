// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import "sort"

// PotentiallyReady returns, sorted ascending, the names of every
// transition t with at least one pre-arc such that for every pre-arc
// (p, t, w), M(p) is ω or M(p) >= w. A transition with no pre-arcs is
// never potentially ready: the analyser treats macro transitions as
// having zero arcs and therefore as never potentially ready, matching
// the original's getPotReadyEvents, which initializes is_ready false
// and leaves it false when getEventInputs(e) is empty. Unlike
// Net.Enabled, PotentiallyReady operates on an arbitrary (possibly
// ω-valued) marking rather than the net's live token counts, and is a
// pure function: it neither reads nor mutates the net's state.
func PotentiallyReady(n *Net, m Marking) []string {
	var out []string
	for name, t := range n.transitions {
		if len(t.pre) == 0 {
			continue
		}
		ready := true
		for p, w := range t.pre {
			if !m.Get(p).GreaterOrEqual(w) {
				ready = false
				break
			}
		}
		if ready {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// PotentiallyFire computes the successor of m under firing t. For
// every place p appearing on any arc of t: if M(p) is ω, the
// successor keeps it ω; otherwise the successor is M(p) - in(p,t) +
// out(t,p). Places untouched by t are copied unchanged.
//
// If t is non-empty and not potentially ready in m, PotentiallyFire
// fails with KindInvalidArgument. If t is empty, the
// lexicographically first potentially-ready transition fires; if none
// is potentially ready, m is returned unchanged.
func PotentiallyFire(n *Net, m Marking, t string) (Marking, error) {
	if t == "" {
		ready := PotentiallyReady(n, m)
		if len(ready) == 0 {
			return m, nil
		}
		t = ready[0]
	}
	tr, ok := n.transitions[t]
	if !ok {
		return nil, invalidArgument("nets: no such transition %q", t)
	}
	if len(tr.pre) == 0 {
		return nil, invalidArgument("nets: transition %q is not potentially ready", t)
	}
	for p, w := range tr.pre {
		if !m.Get(p).GreaterOrEqual(w) {
			return nil, invalidArgument("nets: transition %q is not potentially ready", t)
		}
	}

	out := m.Clone()
	touched := make(map[string]bool, len(tr.pre)+len(tr.post))
	for p := range tr.pre {
		touched[p] = true
	}
	for p := range tr.post {
		touched[p] = true
	}
	for p := range touched {
		cur := m.Get(p)
		if cur.IsOmega() {
			out[p] = Omg
			continue
		}
		out[p] = cur.Sub(tr.pre[p]).Add(tr.post[p])
	}
	return out, nil
}
