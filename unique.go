// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import "unique"

// MarkingHandle is a canonical, comparable identity for a Marking.
// Two markings with the same domain that are Equal intern to the same
// Handle; a place absent from one marking but holding Finite(0) in the
// other gives distinct handles, even though Equal treats the two as
// equal. The coverability builder uses Handle as the key type for its
// closed set instead of hashing or deep-comparing Marking values on
// every membership test.
//
// This is the same trick used to canonicalize a net's token vector
// into a comparable handle for set membership, adapted here to a
// named-place, ω-aware Marking instead of an index-ordered,
// signed-multiplicity one.
type MarkingHandle = unique.Handle[string]

// Intern returns the canonical handle for m.
func (m Marking) Intern() MarkingHandle {
	return unique.Make(string(m.encode()))
}
