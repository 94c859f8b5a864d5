package clone

import "github.com/dspinellis/mpcd/internal/tokenstore"

// BuildBlockRegions grows each surviving seed into a brace-balanced
// region: for offset -1 then 0, it looks for a '{' near the seed, walks
// forward maintaining brace depth until it closes, and if the resulting
// region extends past the seed, requires every member to carry the same
// extension tokens (optionally preceded by the same offset tokens, when
// offset is -1). The first offset that locates a balanced region wins;
// whether that region ultimately keeps two or more members is decided
// independently and does not cause a fallback to the next offset.
func BuildBlockRegions(corpus *tokenstore.Corpus, seen *SeenMap, k int) []Group {
	var groups []Group
	seen.Each(func(leader Location, locations []Location) {
		for _, offset := range []int{-1, 0} {
			group, ok := tryBlockRegion(corpus, leader, locations, k, offset)
			if !ok {
				continue
			}
			if len(group) >= 2 {
				groups = append(groups, group)
			}
			break
		}
	})
	return groups
}

// tryBlockRegion attempts one offset value for a single seed entry. ok
// reports whether a valid brace-balanced region was located at all
// (independent of the final member count); group holds whatever members
// survived validation when ok is true.
func tryBlockRegion(corpus *tokenstore.Corpus, leader Location, locations []Location, k, offset int) (Group, bool) {
	start := int64(leader.Offset) + int64(offset)
	if start < 0 {
		return nil, false
	}
	windowEnd := leader.Offset + uint32(k)

	openPos, found := findFirstBrace(corpus, leader.File, uint32(start), windowEnd)
	if !found {
		return nil, false
	}

	blockEnd, closed := scanBalanced(corpus, leader.File, openPos)
	if !closed {
		return nil, false
	}

	if blockEnd-openPos < uint32(k) {
		return nil, false
	}

	seedEnd := leader.Offset + uint32(k)
	if openPos >= leader.Offset && blockEnd <= seedEnd {
		var group Group
		for _, loc := range locations {
			group = append(group, Clone{Location: loc, End: loc.Offset + (blockEnd - openPos)})
		}
		return group, true
	}

	blockExtension := blockEnd - seedEnd
	leaderExtBegin := seedEnd

	var group Group
	for _, loc := range locations {
		if offset != 0 {
			prefixLen := uint32(-offset)
			memberPrefixStart := int64(loc.Offset) - int64(prefixLen)
			if memberPrefixStart < 0 {
				continue
			}
			leaderPrefixStart := leader.Offset - prefixLen
			if !corpus.TokensEqual(loc.File, uint32(memberPrefixStart), leader.File, leaderPrefixStart, prefixLen) {
				continue
			}
		}

		memberExtBegin := loc.Offset + uint32(k)
		if corpus.RemainingTokens(loc.File, memberExtBegin) < blockExtension {
			continue
		}
		if !corpus.TokensEqual(loc.File, memberExtBegin, leader.File, leaderExtBegin, blockExtension) {
			continue
		}
		group = append(group, Clone{Location: loc, End: memberExtBegin + blockExtension})
	}
	return group, true
}

// findFirstBrace scans [from, through] inclusive for the first OpenBrace
// token.
func findFirstBrace(corpus *tokenstore.Corpus, file tokenstore.FileID, from, through uint32) (uint32, bool) {
	for o := from; o <= through; o++ {
		if corpus.Token(file, o) == tokenstore.OpenBrace {
			return o, true
		}
	}
	return 0, false
}

// scanBalanced walks forward from an opening brace at openPos, tracking
// depth, and returns the offset one past the matching closing brace.
func scanBalanced(corpus *tokenstore.Corpus, file tokenstore.FileID, openPos uint32) (uint32, bool) {
	depth := 0
	end := corpus.FileEnd(file)
	for o := openPos; o < end; o++ {
		switch corpus.Token(file, o) {
		case tokenstore.OpenBrace:
			depth++
		case tokenstore.CloseBrace:
			depth--
			if depth == 0 {
				return o + 1, true
			}
		}
	}
	return 0, false
}
