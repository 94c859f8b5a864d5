package clone

import "github.com/dspinellis/mpcd/internal/tokenstore"

// ExtendGroups grows every group's members one token at a time so long as
// the leader has tokens left in its file and all members still agree on
// the next token (a member past its own file's end reads token 0), then
// trims every member back to the start of the line it ends on; an end at
// the file's end stays there.
func ExtendGroups(corpus *tokenstore.Corpus, groups []Group) {
	for _, g := range groups {
		extendOne(corpus, g)
		trimToLineStart(corpus, g)
	}
}

func extendOne(corpus *tokenstore.Corpus, g Group) {
	if len(g) == 0 {
		return
	}
	leader := &g[0]
	for {
		// The leader's own file bounds the loop: once the leader has
		// consumed every token of its file, "agreement" against the
		// synthetic 0 returned past EOF would otherwise hold forever.
		if leader.End >= corpus.FileEnd(leader.File) {
			return
		}
		next := corpus.Token(leader.File, leader.End)
		agree := true
		for i := 1; i < len(g); i++ {
			m := &g[i]
			if corpus.Token(m.File, m.End) != next {
				agree = false
				break
			}
		}
		if !agree {
			return
		}
		for i := range g {
			g[i].End++
		}
	}
}

func trimToLineStart(corpus *tokenstore.Corpus, g Group) {
	for i := range g {
		g[i].End = corpus.PrecedingEOLOffset(g[i].File, g[i].End)
	}
}
