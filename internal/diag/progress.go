package diag

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress wraps a schollz/progressbar/v3 bar for the -v verbose mode,
// giving each pipeline phase a named counter written to stderr. It is a
// thin adapter so the pipeline code itself never imports progressbar
// directly — callers that want no progress output can use NoopProgress.
type Progress interface {
	Phase(name string, total int)
	Step()
	Done()
}

type barProgress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewBarProgress returns a Progress that renders a live bar to w.
func NewBarProgress(w io.Writer) Progress {
	return &barProgress{w: w}
}

func (p *barProgress) Phase(name string, total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription(name),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *barProgress) Step() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *barProgress) Done() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

// NoopProgress discards all progress events.
type NoopProgress struct{}

func (NoopProgress) Phase(string, int) {}
func (NoopProgress) Step()             {}
func (NoopProgress) Done()             {}
