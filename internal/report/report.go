// Package report renders clone groups in the two output shapes mpcd
// supports: a tab-separated text report and a JSON array.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dspinellis/mpcd/internal/clone"
	"github.com/dspinellis/mpcd/internal/tokenstore"
)

// Member is one located, renderable clone: 1-based start/end lines plus
// the file it belongs to.
type Member struct {
	StartLine int
	EndLine   int
	FilePath  string
}

// RenderedGroup is a clone group reduced to what the reporter needs:
// its shared token length and its rendered members, in the same order
// the detector produced them.
type RenderedGroup struct {
	Tokens  int
	Members []Member
}

// Render converts detector groups into the reporter's intermediate form,
// computing 1-based line numbers. end_line is derived from the exclusive
// end offset directly, not end offset minus one, so a clone ending
// exactly on a line boundary inside its file reports the line after its
// last token; a clone ending at the file's end reports the file's last
// line.
func Render(corpus *tokenstore.Corpus, groups []clone.Group) []RenderedGroup {
	rendered := make([]RenderedGroup, 0, len(groups))
	for _, g := range groups {
		rg := RenderedGroup{Tokens: int(g.TokenLen())}
		for _, c := range g {
			rg.Members = append(rg.Members, Member{
				StartLine: corpus.LineOf(c.File, c.Offset) + 1,
				EndLine:   corpus.LineOf(c.File, c.End) + 1,
				FilePath:  corpus.FileName(c.File),
			})
		}
		rendered = append(rendered, rg)
	}
	return rendered
}

// WriteText emits the text report: a header line "<count>\t<tokens>" per
// group followed by one "<start>\t<end>\t<file>" line per member, with a
// blank line separating groups.
func WriteText(w io.Writer, groups []RenderedGroup) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	for i, g := range groups {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d\t%d\n", len(g.Members), g.Tokens); err != nil {
			return err
		}
		for _, m := range g.Members {
			if _, err := fmt.Fprintf(w, "%d\t%d\t%s\n", m.StartLine, m.EndLine, m.FilePath); err != nil {
				return err
			}
		}
	}
	return nil
}

type jsonLocation struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	FilePath string `json:"filepath"`
}

type jsonGroup struct {
	Tokens int            `json:"tokens"`
	Groups []jsonLocation `json:"groups"`
}

// WriteJSON emits the JSON report: a top-level array of
// {"tokens": N, "groups": [{"start", "end", "filepath"}, ...]} objects,
// pretty-printed with two-space indentation.
func WriteJSON(w io.Writer, groups []RenderedGroup) error {
	out := make([]jsonGroup, 0, len(groups))
	for _, g := range groups {
		jg := jsonGroup{Tokens: g.Tokens}
		for _, m := range g.Members {
			jg.Groups = append(jg.Groups, jsonLocation{
				Start:    m.StartLine,
				End:      m.EndLine,
				FilePath: m.FilePath,
			})
		}
		out = append(out, jg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
