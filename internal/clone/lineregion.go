package clone

import "github.com/dspinellis/mpcd/internal/tokenstore"

// BuildLineRegions grows each surviving seed into a line-shaped clone
// group: every member's region runs from its seed start to the end of
// the line the k-th token (relative to the seed) falls on, provided every
// member's extension past the k-gram is byte-for-byte identical to the
// leader's. Members whose extension disagrees, in length or content, are
// dropped; a group that falls below two members is discarded entirely.
func BuildLineRegions(corpus *tokenstore.Corpus, seen *SeenMap, k int) []Group {
	var groups []Group
	seen.Each(func(leader Location, locations []Location) {
		leaderExtBegin := leader.Offset + uint32(k)
		leaderExtEnd := corpus.LineEndOf(leader.File, leader.Offset+uint32(k)-1)
		var leaderExtLen uint32
		if leaderExtEnd > leaderExtBegin {
			leaderExtLen = leaderExtEnd - leaderExtBegin
		}

		var group Group
		for _, loc := range locations {
			memberExtBegin := loc.Offset + uint32(k)
			memberExtEnd := corpus.LineEndOf(loc.File, loc.Offset+uint32(k)-1)
			var memberExtLen uint32
			if memberExtEnd > memberExtBegin {
				memberExtLen = memberExtEnd - memberExtBegin
			}
			if memberExtLen != leaderExtLen {
				continue
			}
			if !corpus.TokensEqual(loc.File, memberExtBegin, leader.File, leaderExtBegin, leaderExtLen) {
				continue
			}
			group = append(group, Clone{Location: loc, End: memberExtBegin + memberExtLen})
		}
		if len(group) >= 2 {
			groups = append(groups, group)
		}
	})
	return groups
}
