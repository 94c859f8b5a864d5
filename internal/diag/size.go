// Package diag implements the -S per-entity byte-size diagnostics and the
// -v verbose progress reporting the CLI exposes around the core pipeline.
package diag

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/dspinellis/mpcd/internal/clone"
	"github.com/dspinellis/mpcd/internal/tokenstore"
)

// SizeReport captures the byte footprint of each major structure the
// pipeline holds in memory, plus a content fingerprint of the corpus —
// useful for spotting corpora that hash identically across runs (e.g.
// while diffing detector output against a previous run) without storing
// the tokens themselves. Fingerprinting is not used anywhere in the
// comparator: hash order does not match lexicographic order, and only
// the latter is correct for the seen map.
type SizeReport struct {
	Files          int
	TotalTokens    int
	TokenBytes     int64
	LineOffsets    int
	LineOffsetsSz  int64
	Groups         int
	Clones         int
	CloneBytes     int64
	CorpusChecksum uint64
}

const (
	tokenSize       = 4 // tokenstore.Token
	lineOffsetSize  = 4 // uint32
	cloneStructSize = 12
)

// Measure walks a corpus and its detected groups and reports their
// in-memory footprint.
func Measure(corpus *tokenstore.Corpus, groups []clone.Group) SizeReport {
	r := SizeReport{Files: corpus.NumFiles(), Groups: len(groups)}

	h := xxhash.New()
	for i := 0; i < corpus.NumFiles(); i++ {
		id := tokenstore.FileID(i)
		n := corpus.FileTokenCount(id)
		r.TotalTokens += n
		r.TokenBytes += int64(n) * tokenSize

		lines := corpus.NumLines(id)
		r.LineOffsets += lines
		r.LineOffsetsSz += int64(lines) * lineOffsetSize

		fmt.Fprintf(h, "%s:%d;", corpus.FileName(id), n)
		for o := uint32(0); o < uint32(n); o++ {
			fmt.Fprintf(h, "%d,", corpus.Token(id, o))
		}
	}
	r.CorpusChecksum = h.Sum64()

	for _, g := range groups {
		r.Clones += len(g)
		r.CloneBytes += int64(len(g)) * cloneStructSize
	}
	return r
}

// WriteText prints a human-readable size report.
func (r SizeReport) WriteText(w io.Writer) {
	fmt.Fprintf(w, "files\t%d\n", r.Files)
	fmt.Fprintf(w, "tokens\t%d\t%d bytes\n", r.TotalTokens, r.TokenBytes)
	fmt.Fprintf(w, "line offsets\t%d\t%d bytes\n", r.LineOffsets, r.LineOffsetsSz)
	fmt.Fprintf(w, "groups\t%d\n", r.Groups)
	fmt.Fprintf(w, "clones\t%d\t%d bytes\n", r.Clones, r.CloneBytes)
	fmt.Fprintf(w, "corpus checksum\t%016x\n", r.CorpusChecksum)
}
