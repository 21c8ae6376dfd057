// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

// Properties holds the four Booleans derived from a finished
// coverability tree and a connectivity check on the underlying net.
//
// The names match the vocabulary used throughout this package but are
// deliberately narrower than their textbook counterparts: Alive, for
// instance, means "no dead end was found and every transition fired
// somewhere in the search", not full CTL-style liveness.
type Properties struct {
	Alive     bool
	Coherent  bool
	Safe      bool
	Reachable bool
}

// deriveProperties computes Properties from a finished tree and the
// net it was built from.
func deriveProperties(n *Net, t *Tree) Properties {
	return Properties{
		Alive:     t.TerminalCount() == 0 && allTransitionsDone(n, t),
		Coherent:  n.Connected(),
		Safe:      !t.HasOmega(),
		Reachable: t.ReachedRootCount() > 0,
	}
}

func allTransitionsDone(n *Net, t *Tree) bool {
	done := t.doneEvents
	for _, name := range n.TransitionNames() {
		if !done[name] {
			return false
		}
	}
	return true
}
