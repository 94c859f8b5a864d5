package diag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dspinellis/mpcd/internal/clone"
	"github.com/dspinellis/mpcd/internal/diag"
	"github.com/dspinellis/mpcd/internal/tokenstore"
)

func TestMeasure(t *testing.T) {
	corpus, err := tokenstore.ReadCorpus(strings.NewReader("Fa.c\n1 2 3\n4 5\n"))
	require.NoError(t, err)

	groups := []clone.Group{{
		{Location: clone.Location{File: 0, Offset: 0}, End: 3},
		{Location: clone.Location{File: 0, Offset: 3}, End: 5},
	}}

	r := diag.Measure(corpus, groups)
	require.Equal(t, 1, r.Files)
	require.Equal(t, 5, r.TotalTokens)
	require.Equal(t, 1, r.Groups)
	require.Equal(t, 2, r.Clones)
	require.NotZero(t, r.CorpusChecksum)
}

func TestNoopProgress(t *testing.T) {
	var p diag.Progress = diag.NoopProgress{}
	p.Phase("seed", 10)
	p.Step()
	p.Done()
}
