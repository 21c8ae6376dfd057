// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import "sort"

// TransitionType is a decorative tag on a transition: preserved by the
// model but never consulted by the coverability analyzer.
type TransitionType int

const (
	Controllable TransitionType = iota
	Uncontrollable
	Expected
	Macro
)

func (t TransitionType) String() string {
	switch t {
	case Controllable:
		return "controllable"
	case Uncontrollable:
		return "uncontrollable"
	case Expected:
		return "expected"
	case Macro:
		return "macro"
	default:
		return "unknown"
	}
}

type placeNode struct {
	tokens uint64
	// pre holds arcs place->transition (this place feeds t with
	// multiplicity pre[t]).
	pre map[string]uint64
	// post holds arcs transition->place (t produces into this place
	// with multiplicity post[t]).
	post map[string]uint64
}

type transitionNode struct {
	typ  TransitionType
	mask []string
	// pre holds arcs place->transition (p feeds this transition).
	pre map[string]uint64
	// post holds arcs transition->place (this transition produces into p).
	post map[string]uint64
}

// Net is a bipartite graph of uniquely-named places and transitions
// joined by weighted arcs, plus the token counts that form its current
// (concrete) marking. AddPlace, SetPlace, AddTransition and
// SetTransition validate names per ValidName; arc and macro operations
// require existing endpoints. Operations that can fail report *Error
// with Kind KindInvalidArgument, KindPreconditionViolation or
// KindInvariantViolation. RemovePlace and RemoveTransition are no-ops
// on unknown names, and the decorative setters SetPlaceHint and
// SetTransitionBehavior store any name without checking it.
// Read-only queries never fail: an absent name yields a zero count or
// an empty set.
type Net struct {
	Name        string
	places      map[string]*placeNode
	transitions map[string]*transitionNode
	placeHints  map[string]string
	transBehav  map[string]string
}

// New creates an empty net named name.
func New(name string) *Net {
	return &Net{
		Name:        name,
		places:      make(map[string]*placeNode),
		transitions: make(map[string]*transitionNode),
		placeHints:  make(map[string]string),
		transBehav:  make(map[string]string),
	}
}

func newPlaceNode(tokens uint64) *placeNode {
	return &placeNode{tokens: tokens, pre: make(map[string]uint64), post: make(map[string]uint64)}
}

func newTransitionNode(typ TransitionType) *transitionNode {
	return &transitionNode{typ: typ, pre: make(map[string]uint64), post: make(map[string]uint64)}
}

// AddPlace creates a new place with the given initial token count.
// Fails if the name is ill-formed or a place by that name already
// exists.
func (n *Net) AddPlace(name string, tokens uint64) error {
	if err := checkName(name); err != nil {
		return err
	}
	if _, ok := n.places[name]; ok {
		return invalidArgument("nets: place %q already exists", name)
	}
	n.places[name] = newPlaceNode(tokens)
	return nil
}

// SetPlace creates or replaces the place's token count, leaving any
// arcs already attached to it untouched.
func (n *Net) SetPlace(name string, tokens uint64) error {
	if err := checkName(name); err != nil {
		return err
	}
	if p, ok := n.places[name]; ok {
		p.tokens = tokens
		return nil
	}
	n.places[name] = newPlaceNode(tokens)
	return nil
}

// AddTransition creates a new transition of the given type. Fails if
// the name is ill-formed or a transition by that name already exists.
func (n *Net) AddTransition(name string, typ TransitionType) error {
	if err := checkName(name); err != nil {
		return err
	}
	if _, ok := n.transitions[name]; ok {
		return invalidArgument("nets: transition %q already exists", name)
	}
	n.transitions[name] = newTransitionNode(typ)
	return nil
}

// SetTransition creates or replaces the transition's type, leaving any
// arcs already attached to it untouched.
func (n *Net) SetTransition(name string, typ TransitionType) error {
	if err := checkName(name); err != nil {
		return err
	}
	if t, ok := n.transitions[name]; ok {
		t.typ = typ
		return nil
	}
	n.transitions[name] = newTransitionNode(typ)
	return nil
}

// RemovePlace deletes a place and prunes every arc that mentions it.
// No-op if the place does not exist.
func (n *Net) RemovePlace(name string) {
	p, ok := n.places[name]
	if !ok {
		return
	}
	for t := range p.pre {
		delete(n.transitions[t].pre, name)
	}
	for t := range p.post {
		delete(n.transitions[t].post, name)
	}
	delete(n.places, name)
	delete(n.placeHints, name)
}

// RemoveTransition deletes a transition and prunes every arc that
// mentions it. No-op if the transition does not exist.
func (n *Net) RemoveTransition(name string) {
	t, ok := n.transitions[name]
	if !ok {
		return
	}
	for p := range t.pre {
		delete(n.places[p].pre, name)
	}
	for p := range t.post {
		delete(n.places[p].post, name)
	}
	delete(n.transitions, name)
	delete(n.transBehav, name)
}

// SetArcPT sets the multiplicity of the pre-arc from place to
// transition. A multiplicity of 0 removes the arc. Both endpoints must
// already exist.
func (n *Net) SetArcPT(place, transition string, mult uint64) error {
	p, ok := n.places[place]
	if !ok {
		return invalidArgument("nets: no such place %q", place)
	}
	t, ok := n.transitions[transition]
	if !ok {
		return invalidArgument("nets: no such transition %q", transition)
	}
	if mult == 0 {
		delete(p.pre, transition)
		delete(t.pre, place)
		return nil
	}
	p.pre[transition] = mult
	t.pre[place] = mult
	return nil
}

// GetArcPT returns the multiplicity of the pre-arc from place to
// transition, or 0 if none exists (read-only query, never fails).
func (n *Net) GetArcPT(place, transition string) uint64 {
	p, ok := n.places[place]
	if !ok {
		return 0
	}
	return p.pre[transition]
}

// SetArcTP sets the multiplicity of the post-arc from transition to
// place. A multiplicity of 0 removes the arc. Both endpoints must
// already exist.
func (n *Net) SetArcTP(transition, place string, mult uint64) error {
	t, ok := n.transitions[transition]
	if !ok {
		return invalidArgument("nets: no such transition %q", transition)
	}
	p, ok := n.places[place]
	if !ok {
		return invalidArgument("nets: no such place %q", place)
	}
	if mult == 0 {
		delete(t.post, place)
		delete(p.post, transition)
		return nil
	}
	t.post[place] = mult
	p.post[transition] = mult
	return nil
}

// GetArcTP returns the multiplicity of the post-arc from transition to
// place, or 0 if none exists.
func (n *Net) GetArcTP(transition, place string) uint64 {
	t, ok := n.transitions[transition]
	if !ok {
		return 0
	}
	return t.post[place]
}

// Link is a shortcut that connects p1 and p2 through an existing
// transition t: a pre-arc from p1 to t and a post-arc from t to p2,
// each with multiplicity 1.
func (n *Net) Link(p1, t, p2 string) error {
	if err := n.SetArcPT(p1, t, 1); err != nil {
		return err
	}
	return n.SetArcTP(t, p2, 1)
}

func (n *Net) HasPlace(name string) bool {
	_, ok := n.places[name]
	return ok
}

func (n *Net) HasTransition(name string) bool {
	_, ok := n.transitions[name]
	return ok
}

func (n *Net) PlaceCount() int      { return len(n.places) }
func (n *Net) TransitionCount() int { return len(n.transitions) }

// PlaceNames returns every place name, sorted ascending.
func (n *Net) PlaceNames() []string {
	out := make([]string, 0, len(n.places))
	for p := range n.places {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// TransitionNames returns every transition name, sorted ascending.
func (n *Net) TransitionNames() []string {
	out := make([]string, 0, len(n.transitions))
	for t := range n.transitions {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Tokens returns the current token count of place p, or 0 if absent.
func (n *Net) Tokens(p string) uint64 {
	if pl, ok := n.places[p]; ok {
		return pl.tokens
	}
	return 0
}

// TransitionTypeOf returns the type of transition t and whether t
// exists.
func (n *Net) TransitionTypeOf(t string) (TransitionType, bool) {
	tr, ok := n.transitions[t]
	if !ok {
		return 0, false
	}
	return tr.typ, true
}

// InputPlaces returns the places with a pre-arc into t, sorted.
func (n *Net) InputPlaces(t string) []string {
	tr, ok := n.transitions[t]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(tr.pre))
	for p := range tr.pre {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// OutputPlaces returns the places with a post-arc from t, sorted.
func (n *Net) OutputPlaces(t string) []string {
	tr, ok := n.transitions[t]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(tr.post))
	for p := range tr.post {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// InputTransitions returns the transitions that p feeds via a pre-arc,
// sorted.
func (n *Net) InputTransitions(p string) []string {
	pl, ok := n.places[p]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(pl.pre))
	for t := range pl.pre {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// OutputTransitions returns the transitions that produce into p via a
// post-arc, sorted.
func (n *Net) OutputTransitions(p string) []string {
	pl, ok := n.places[p]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(pl.post))
	for t := range pl.post {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// SetMacroMask assigns the masked-event list of a macro transition.
// Fails with KindPreconditionViolation if t is not a macro transition,
// and with KindInvariantViolation if any masked name does not name an
// existing transition.
func (n *Net) SetMacroMask(t string, masked []string) error {
	tr, ok := n.transitions[t]
	if !ok {
		return invalidArgument("nets: no such transition %q", t)
	}
	if tr.typ != Macro {
		return preconditionViolation("nets: %q is not a macro transition", t)
	}
	for _, m := range masked {
		if !n.HasTransition(m) {
			return invariantViolation("nets: macro %q references unknown transition %q", t, m)
		}
	}
	tr.mask = append([]string(nil), masked...)
	return nil
}

// MacroMask returns the masked-event list of t, or nil if t has none
// or does not exist.
func (n *Net) MacroMask(t string) []string {
	tr, ok := n.transitions[t]
	if !ok {
		return nil
	}
	return tr.mask
}

// ValidateMacro checks the model-level rule that a macro transition
// has no arcs and that every masked name still exists. The analyzer
// does not depend on this check.
func (n *Net) ValidateMacro(t string) error {
	tr, ok := n.transitions[t]
	if !ok {
		return invalidArgument("nets: no such transition %q", t)
	}
	if tr.typ != Macro {
		return preconditionViolation("nets: %q is not a macro transition", t)
	}
	if len(tr.pre) != 0 || len(tr.post) != 0 {
		return invariantViolation("nets: macro %q has arcs", t)
	}
	for _, m := range tr.mask {
		if !n.HasTransition(m) {
			return invariantViolation("nets: macro %q references unknown transition %q", t, m)
		}
	}
	return nil
}

// SetPlaceHint stores a decorative display hint for a place. Inert to
// the analyzer.
func (n *Net) SetPlaceHint(p, hint string) {
	n.placeHints[p] = hint
}

// PlaceHint returns the decorative hint for p, if any.
func (n *Net) PlaceHint(p string) (string, bool) {
	h, ok := n.placeHints[p]
	return h, ok
}

// SetTransitionBehavior stores a decorative behavior attribute for a
// transition. Inert to the analyzer.
func (n *Net) SetTransitionBehavior(t, behavior string) {
	n.transBehav[t] = behavior
}

// TransitionBehavior returns the decorative behavior attribute for t,
// if any.
func (n *Net) TransitionBehavior(t string) (string, bool) {
	b, ok := n.transBehav[t]
	return b, ok
}

// isReady reports whether t is concretely enabled: t has at least one
// pre-arc, and every pre-arc multiplicity does not exceed the current
// token count of its source place. A transition with no pre-arcs
// (every macro transition, having no arcs by construction, and any
// pure source transition) is never ready, matching the original
// analyser's getPotReadyEvents, which leaves is_ready false when the
// transition has no inputs.
func (n *Net) isReady(t *transitionNode) bool {
	if len(t.pre) == 0 {
		return false
	}
	for p, w := range t.pre {
		if n.places[p].tokens < w {
			return false
		}
	}
	return true
}

// Enabled returns the names of every concretely ready transition,
// sorted ascending.
func (n *Net) Enabled() []string {
	var out []string
	for name, t := range n.transitions {
		if n.isReady(t) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Fire advances the net by firing a transition. If name is empty, the
// lexicographically first ready transition fires. Firing a named
// transition that is not ready fails with KindInvalidArgument, as does
// calling Fire on an empty net with no ready transition when name is
// empty.
func (n *Net) Fire(name string) error {
	if name == "" {
		ready := n.Enabled()
		if len(ready) == 0 {
			return invalidArgument("nets: no transition is ready to fire")
		}
		name = ready[0]
	}
	t, ok := n.transitions[name]
	if !ok {
		return invalidArgument("nets: no such transition %q", name)
	}
	if !n.isReady(t) {
		return invalidArgument("nets: transition %q is not ready", name)
	}
	for p, w := range t.pre {
		n.places[p].tokens -= w
	}
	for p, w := range t.post {
		n.places[p].tokens += w
	}
	return nil
}

// InitialMarking returns a Marking snapshot of the net's current token
// counts, total over every place name.
func (n *Net) InitialMarking() Marking {
	m := NewMarking()
	for p, pl := range n.places {
		m[p] = Fin(pl.tokens)
	}
	return m
}
