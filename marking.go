// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import "sort"

// Marking is a total mapping from every place name of a net to a
// Token value. Two markings are compared by value equality (pointwise)
// and by covering: M covers M' iff for every place p, M(p) >= M'(p),
// with ω greater than every finite value.
type Marking map[string]Token

// NewMarking builds an empty Marking.
func NewMarking() Marking {
	return make(Marking)
}

// Clone returns a copy of m (Token is a value type, so a shallow map
// copy suffices).
func (m Marking) Clone() Marking {
	out := make(Marking, len(m))
	for p, v := range m {
		out[p] = v
	}
	return out
}

// Get returns the token value for place p, or the zero Finite(0) if p
// is not in the marking's domain.
func (m Marking) Get(p string) Token {
	if v, ok := m[p]; ok {
		return v
	}
	return Fin(0)
}

// Set assigns the token value of place p.
func (m Marking) Set(p string, v Token) {
	m[p] = v
}

// Places returns the marking's domain, sorted ascending. encode relies
// on this order for its canonical form.
func (m Marking) Places() []string {
	out := make([]string, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether m and other agree on every place of their
// combined domain (a place absent from one side reads as Finite(0),
// matching Get).
func (m Marking) Equal(other Marking) bool {
	for p, v := range m {
		if !v.Equal(other.Get(p)) {
			return false
		}
	}
	for p, v := range other {
		if !v.Equal(m.Get(p)) {
			return false
		}
	}
	return true
}

// Covers reports whether m covers other: pointwise m(p) >= other(p)
// over the combined domain.
func (m Marking) Covers(other Marking) bool {
	for p, v := range other {
		if !m.Get(p).Covers(v) {
			return false
		}
	}
	return true
}

// StrictlyCovers reports whether m covers other and the two are not
// equal.
func (m Marking) StrictlyCovers(other Marking) bool {
	return m.Covers(other) && !m.Equal(other)
}

// WithOmegaOn returns a marking identical to m except that every place
// in ps is set to ω.
func (m Marking) WithOmegaOn(ps []string) Marking {
	out := m.Clone()
	for _, p := range ps {
		out[p] = Omg
	}
	return out
}

// encode produces a canonical byte encoding of m: place names visited
// in ascending order, each followed by its token kind/value. This is
// the basis for Intern in unique.go.
func (m Marking) encode() []byte {
	places := m.Places()
	buf := make([]byte, 0, len(places)*12)
	for _, p := range places {
		v := m[p]
		buf = append(buf, []byte(p)...)
		buf = append(buf, 0)
		if v.Kind == Omega {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
			n := v.Value
			for i := 0; i < 8; i++ {
				buf = append(buf, byte(n>>(56-8*i)))
			}
		}
		buf = append(buf, 0xff)
	}
	return buf
}
