// Package clone implements the seed-and-grow clone detection pipeline:
// seeding candidate locations by their leading k tokens, growing survivors
// into line- or block-shaped regions, extending them token by token, and
// suppressing groups fully shadowed by a larger one.
package clone

import "github.com/dspinellis/mpcd/internal/tokenstore"

// Location identifies a token position: a file id and a token offset
// within that file. It is deliberately compact (two uint32s) since a run
// keeps many thousands of these live in the seen map and clone groups.
type Location struct {
	File   tokenstore.FileID
	Offset uint32
}

// Less implements the corrected lexicographic order for locations: by
// file id, then by offset. The reference implementation's operator< used
// `file < f2.file || offset < f2.offset`, which is not a strict weak
// order (it can rank a < b and b < a simultaneously across files); this
// edition uses the fixed form instead, per the ordering note in the
// shadow-suppressor design.
func (l Location) Less(o Location) bool {
	if l.File != o.File {
		return l.File < o.File
	}
	return l.Offset < o.Offset
}

// Clone is a located, sized occurrence of a clone group's content.
type Clone struct {
	Location
	End uint32
}

// Size reports the clone's length in tokens.
func (c Clone) Size() uint32 { return c.End - c.Location.Offset }

// IsShadowedBy reports whether c is fully contained within shadow.
func (c Clone) IsShadowedBy(shadow Clone) bool {
	return shadow.File == c.File && shadow.Offset <= c.Offset && shadow.End >= c.End
}

// Group is a set of two or more clones sharing the same content.
type Group []Clone

// TokenLen reports the token span of the group's first member, matching
// the reference's convention that a group's token count is counted once
// (all members share the same length by construction).
func (g Group) TokenLen() uint32 {
	if len(g) == 0 {
		return 0
	}
	return g[0].Size()
}
