// Package tokenstore holds the tokenized corpus mpcd operates on: one flat
// token array per file plus a line-offset index, and the offset/line
// primitives the clone-detection pipeline builds on.
package tokenstore

import "fmt"

// Token is a single lexical unit as produced by the upstream tokenizer.
// The values 123 and 125 are reserved sentinels for '{' and '}'; every
// other value is opaque to this package.
type Token int32

const (
	OpenBrace  Token = 123
	CloseBrace Token = 125
)

// File holds one source file's token stream and its line boundaries.
// lineOffsets[i] is the token-array index of the first token on line i
// (0-based); a line with no tokens has lineOffsets[i] == lineOffsets[i+1].
type File struct {
	Name        string
	tokens      []Token
	lineOffsets []uint32
}

func (f *File) addLine() {
	f.lineOffsets = append(f.lineOffsets, uint32(len(f.tokens)))
}

func (f *File) addToken(t Token) {
	f.tokens = append(f.tokens, t)
}

// compact drops any spare capacity left over from incremental growth,
// mirroring FileData::shrink_to_fit in the reference implementation.
func (f *File) compact() {
	tokens := make([]Token, len(f.tokens))
	copy(tokens, f.tokens)
	f.tokens = tokens

	offsets := make([]uint32, len(f.lineOffsets))
	copy(offsets, f.lineOffsets)
	f.lineOffsets = offsets
}

// NumLines reports how many lines were recorded for the file.
func (f *File) NumLines() int { return len(f.lineOffsets) }

// TokenCount reports the file's total token count.
func (f *File) TokenCount() int { return len(f.tokens) }

// Corpus is the frozen collection of files a run operates over. File ids
// are dense, zero-based indices into Files, assigned in ingestion order.
type Corpus struct {
	Files []*File
}

// FileID identifies a file within a Corpus by its ingestion index.
type FileID uint32

// NumFiles reports how many files were ingested.
func (c *Corpus) NumFiles() int { return len(c.Files) }

func (c *Corpus) file(id FileID) *File {
	return c.Files[id]
}

// FileName returns the name a file was declared with.
func (c *Corpus) FileName(id FileID) string {
	return c.file(id).Name
}

// FileEnd returns the offset one past the last token of a file — the
// value used as an exclusive upper bound and as the "0 past EOF" sentinel
// during line extension.
func (c *Corpus) FileEnd(id FileID) uint32 {
	return uint32(len(c.file(id).tokens))
}

// Token returns the token at (file, offset). Offsets at or past FileEnd
// return the zero Token, matching the "0 past EOF counts as a token"
// convention used by the line extender.
func (c *Corpus) Token(id FileID, offset uint32) Token {
	f := c.file(id)
	if offset >= uint32(len(f.tokens)) {
		return 0
	}
	return f.tokens[offset]
}

// RemainingTokens reports how many tokens remain in file id from offset
// (inclusive) to the end of the file.
func (c *Corpus) RemainingTokens(id FileID, offset uint32) uint32 {
	end := c.FileEnd(id)
	if offset >= end {
		return 0
	}
	return end - offset
}

// LineOf returns the 0-based line number containing offset, via binary
// search over the file's line-offset index. offset == FileEnd resolves to
// the file's last line.
func (c *Corpus) LineOf(id FileID, offset uint32) int {
	f := c.file(id)
	offsets := f.lineOffsets
	lo, hi := 0, len(offsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if offsets[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LineBegin returns the offset of the first token on the given line.
func (c *Corpus) LineBegin(id FileID, line int) uint32 {
	return c.file(id).lineOffsets[line]
}

// LineEndOf returns the offset one past the last token of the line
// containing offset — the file's end if offset lies on the final line.
func (c *Corpus) LineEndOf(id FileID, offset uint32) uint32 {
	f := c.file(id)
	line := c.LineOf(id, offset)
	if line+1 < len(f.lineOffsets) {
		return f.lineOffsets[line+1]
	}
	return uint32(len(f.tokens))
}

// LineIsEmpty reports whether a line carries no tokens.
func (c *Corpus) LineIsEmpty(id FileID, line int) bool {
	f := c.file(id)
	begin := f.lineOffsets[line]
	var end uint32
	if line+1 < len(f.lineOffsets) {
		end = f.lineOffsets[line+1]
	} else {
		end = uint32(len(f.tokens))
	}
	return begin == end
}

// PrecedingEOLOffset snaps offset down to the start of the line it falls
// on; an offset at or past the file's end returns the file's end. Used by
// the line extender to trim a clone back to a line boundary.
func (c *Corpus) PrecedingEOLOffset(id FileID, offset uint32) uint32 {
	f := c.file(id)
	if offset >= uint32(len(f.tokens)) {
		return uint32(len(f.tokens))
	}
	line := c.LineOf(id, offset)
	return f.lineOffsets[line]
}

// NumLines reports how many lines were recorded for a file.
func (c *Corpus) NumLines(id FileID) int {
	return c.file(id).NumLines()
}

// FileTokenCount reports a file's total token count.
func (c *Corpus) FileTokenCount(id FileID) int {
	return c.file(id).TokenCount()
}

// TokensEqual compares n tokens starting at (idA, offA) and (idB, offB).
func (c *Corpus) TokensEqual(idA FileID, offA uint32, idB FileID, offB uint32, n uint32) bool {
	for i := uint32(0); i < n; i++ {
		if c.Token(idA, offA+i) != c.Token(idB, offB+i) {
			return false
		}
	}
	return true
}

func (c *Corpus) String() string {
	return fmt.Sprintf("Corpus{files=%d}", len(c.Files))
}
