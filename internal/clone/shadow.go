package clone

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// clonePtr indexes one member of one group, so the sweep below can mark
// individual clones as shadowed without copying Group slices around.
type clonePtr struct {
	group int
	index int
}

// SuppressShadowed marks every clone fully contained in an
// immediately-preceding clone from the same file (per the corrected
// lexicographic order, see Location.Less) and drops every group whose
// members are all shadowed. It returns the surviving groups in their
// original relative order.
//
// The shadowed set is tracked in a roaring bitmap keyed by a dense index
// over all clones across all groups, rather than a bool slice, so the
// bookkeeping generalizes cleanly to corpora with very large clone
// counts without a per-clone allocation.
func SuppressShadowed(groups []Group) []Group {
	var ptrs []clonePtr
	for gi, g := range groups {
		for ci := range g {
			ptrs = append(ptrs, clonePtr{group: gi, index: ci})
		}
	}

	sort.Slice(ptrs, func(i, j int) bool {
		a := groups[ptrs[i].group][ptrs[i].index]
		b := groups[ptrs[j].group][ptrs[j].index]
		return a.Less(b.Location)
	})

	shadowed := roaring.New()
	var candidateClone Clone
	haveCandidate := false
	lastFile := ^uint32(0)

	for idx, p := range ptrs {
		c := groups[p.group][p.index]
		if uint32(c.File) != lastFile {
			haveCandidate = false
			lastFile = uint32(c.File)
		}
		if haveCandidate && candidateClone.Offset <= c.Offset && candidateClone.End >= c.End {
			shadowed.Add(uint32(idx))
		}
		candidateClone = c
		haveCandidate = true
	}

	shadowedByGroup := make([]map[int]bool, len(groups))
	for idx, p := range ptrs {
		if !shadowed.Contains(uint32(idx)) {
			continue
		}
		if shadowedByGroup[p.group] == nil {
			shadowedByGroup[p.group] = make(map[int]bool)
		}
		shadowedByGroup[p.group][p.index] = true
	}

	var survivors []Group
	for gi, g := range groups {
		if len(shadowedByGroup[gi]) < len(g) {
			survivors = append(survivors, g)
		}
	}
	return survivors
}
