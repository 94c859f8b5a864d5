package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dspinellis/mpcd/internal/clone"
	"github.com/dspinellis/mpcd/internal/report"
	"github.com/dspinellis/mpcd/internal/tokenstore"
)

func TestRenderAndWriteText(t *testing.T) {
	corpus, err := tokenstore.ReadCorpus(strings.NewReader("Fname\n12 42 3\n4 7\n12 42 3\n4 7"))
	require.NoError(t, err)

	groups := []clone.Group{{
		{Location: clone.Location{File: 0, Offset: 0}, End: 5},
		{Location: clone.Location{File: 0, Offset: 5}, End: 10},
	}}
	rendered := report.Render(corpus, groups)
	require.Len(t, rendered, 1)
	require.Equal(t, 5, rendered[0].Tokens)
	require.Equal(t, 1, rendered[0].Members[0].StartLine)
	require.Equal(t, "name", rendered[0].Members[0].FilePath)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, rendered))
	require.Contains(t, buf.String(), "2\t5\n")
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, nil))
	require.Equal(t, "\n", buf.String())
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, nil))
	require.Equal(t, "[]\n", buf.String())
}

func TestWriteJSONShape(t *testing.T) {
	rendered := []report.RenderedGroup{{
		Tokens: 5,
		Members: []report.Member{
			{StartLine: 1, EndLine: 3, FilePath: "name"},
			{StartLine: 3, EndLine: 5, FilePath: "name"},
		},
	}}
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, rendered))
	require.Contains(t, buf.String(), `"tokens": 5`)
	require.Contains(t, buf.String(), `"filepath": "name"`)
}
