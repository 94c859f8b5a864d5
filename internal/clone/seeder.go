package clone

import "github.com/dspinellis/mpcd/internal/tokenstore"

// Seed populates a seen map with every line-start location in corpus that
// carries at least k tokens, skipping empty lines. This is the seeding
// pass: it does not yet decide which sites are clones, only which sites
// are candidates worth comparing.
func Seed(corpus *tokenstore.Corpus, k int) *SeenMap {
	m := NewSeenMap(corpus, k)
	for fileIdx := 0; fileIdx < corpus.NumFiles(); fileIdx++ {
		fileID := tokenstore.FileID(fileIdx)
		for line := 0; line < corpus.NumLines(fileID); line++ {
			if corpus.LineIsEmpty(fileID, line) {
				continue
			}
			begin := corpus.LineBegin(fileID, line)
			if corpus.RemainingTokens(fileID, begin) < uint32(k) {
				continue
			}
			m.Insert(Location{File: fileID, Offset: begin})
		}
	}
	return m
}
