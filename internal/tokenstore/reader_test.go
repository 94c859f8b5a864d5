package tokenstore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dspinellis/mpcd/internal/tokenstore"
)

func TestReadCorpusSingleFile(t *testing.T) {
	input := "Fmain.c\n1 2 3\n\n4 5\n"
	corpus, err := tokenstore.ReadCorpus(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, corpus.NumFiles())

	id := tokenstore.FileID(0)
	require.Equal(t, "main.c", corpus.FileName(id))
	require.Equal(t, 3, corpus.NumLines(id))
	require.True(t, corpus.LineIsEmpty(id, 1))
	require.False(t, corpus.LineIsEmpty(id, 0))
	require.Equal(t, uint32(5), corpus.FileEnd(id))
}

func TestReadCorpusMultipleFiles(t *testing.T) {
	input := "Fa.c\n1 2\nFb.c\n3 4 5\n"
	corpus, err := tokenstore.ReadCorpus(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, corpus.NumFiles())
	require.Equal(t, "a.c", corpus.FileName(0))
	require.Equal(t, "b.c", corpus.FileName(1))
	require.Equal(t, tokenstore.Token(3), corpus.Token(1, 0))
}

func TestReadCorpusRejectsDataBeforeHeader(t *testing.T) {
	_, err := tokenstore.ReadCorpus(strings.NewReader("1 2 3\n"))
	require.Error(t, err)
}

func TestReadCorpusRejectsNonNumericToken(t *testing.T) {
	_, err := tokenstore.ReadCorpus(strings.NewReader("Fa.c\n1 x 3\n"))
	require.Error(t, err)
}

func TestLineOfAndPrecedingEOLOffset(t *testing.T) {
	corpus, err := tokenstore.ReadCorpus(strings.NewReader("Fa.c\n1 2\n3 4 5\n6\n"))
	require.NoError(t, err)

	id := tokenstore.FileID(0)
	require.Equal(t, 0, corpus.LineOf(id, 0))
	require.Equal(t, 0, corpus.LineOf(id, 1))
	require.Equal(t, 1, corpus.LineOf(id, 2))
	require.Equal(t, 2, corpus.LineOf(id, 5))

	require.Equal(t, uint32(0), corpus.PrecedingEOLOffset(id, 1))
	require.Equal(t, uint32(2), corpus.PrecedingEOLOffset(id, 3))
	require.Equal(t, uint32(6), corpus.PrecedingEOLOffset(id, 6))
}

func TestRemainingTokensAndLineEndOf(t *testing.T) {
	corpus, err := tokenstore.ReadCorpus(strings.NewReader("Fa.c\n1 2 3\n4\n"))
	require.NoError(t, err)

	id := tokenstore.FileID(0)
	require.Equal(t, uint32(4), corpus.RemainingTokens(id, 0))
	require.Equal(t, uint32(1), corpus.RemainingTokens(id, 3))
	require.Equal(t, uint32(0), corpus.RemainingTokens(id, 4))
	require.Equal(t, uint32(3), corpus.LineEndOf(id, 0))
	require.Equal(t, uint32(4), corpus.LineEndOf(id, 3))
}
