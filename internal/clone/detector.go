package clone

import "github.com/dspinellis/mpcd/internal/tokenstore"

// Mode selects which region-growing strategy promotes candidate seeds:
// the line-region builder or the block-region builder. Only one runs
// per Detector.Run call.
type Mode int

const (
	// LineMode grows candidates to the end of their seed's last line.
	LineMode Mode = iota
	// BlockMode grows candidates to a brace-balanced region.
	BlockMode
)

// ProgressHook receives coarse phase-boundary notifications from Run, one
// Phase/Step/Done triple per pipeline stage. It exists so a caller (the
// CLI's -v mode) can drive a progress display without this package
// importing anything from internal/diag — internal/diag imports this
// package for Group, so the dependency can only run one way.
type ProgressHook interface {
	Phase(name string, total int)
	Step()
	Done()
}

type noopHook struct{}

func (noopHook) Phase(string, int) {}
func (noopHook) Step()             {}
func (noopHook) Done()             {}

// Detector orchestrates the full pipeline: seed, prune, promote to
// groups, extend, suppress shadows. It also exposes the diagnostic
// counters carried over from the reference implementation's
// introspection surface, used by the -v summary.
type Detector struct {
	corpus   *tokenstore.Corpus
	k        int
	mode     Mode
	progress ProgressHook

	seen   *SeenMap
	groups []Group

	seenSites  int
	seenClones int
}

// NewDetector constructs a detector over corpus with seed length k and
// the given region-growing mode.
func NewDetector(corpus *tokenstore.Corpus, k int, mode Mode) *Detector {
	return &Detector{corpus: corpus, k: k, mode: mode, progress: noopHook{}}
}

// SetProgress installs a hook that receives phase-boundary notifications
// during Run. Pass nil to go back to silent operation.
func (d *Detector) SetProgress(p ProgressHook) {
	if p == nil {
		p = noopHook{}
	}
	d.progress = p
}

// Run executes the full pipeline and returns the final, shadow-suppressed
// clone groups. Diagnostic counters remain valid to query afterward.
func (d *Detector) Run() []Group {
	d.progress.Phase("seed", 1)
	d.seen = Seed(d.corpus, d.k)
	d.seenSites = d.seen.SeenSiteCount()
	d.seenClones = d.seen.SeenCloneCount()
	d.seen.Prune()
	d.progress.Step()
	d.progress.Done()

	d.progress.Phase("build regions", 1)
	var candidates []Group
	switch d.mode {
	case BlockMode:
		candidates = BuildBlockRegions(d.corpus, d.seen, d.k)
	default:
		candidates = BuildLineRegions(d.corpus, d.seen, d.k)
	}
	d.progress.Step()
	d.progress.Done()

	// The seen map's job ends once candidates are promoted; drop the
	// reference so it can be collected before extension runs.
	d.seen = nil

	d.progress.Phase("extend", 1)
	ExtendGroups(d.corpus, candidates)
	d.progress.Step()
	d.progress.Done()

	d.progress.Phase("suppress shadows", 1)
	d.groups = SuppressShadowed(candidates)
	d.progress.Step()
	d.progress.Done()

	return d.groups
}

// SeenSiteCount reports how many seed sites were recorded before pruning.
func (d *Detector) SeenSiteCount() int { return d.seenSites }

// SeenCloneCount reports how many seed sites belonged to a multi-member
// entry before pruning.
func (d *Detector) SeenCloneCount() int { return d.seenClones }

// GroupCount reports the number of surviving clone groups.
func (d *Detector) GroupCount() int { return len(d.groups) }

// CloneCount sums the member counts of every surviving group.
func (d *Detector) CloneCount() int {
	total := 0
	for _, g := range d.groups {
		total += len(g)
	}
	return total
}

// TokenCount sums each surviving group's token span once, matching the
// reference's get_number_of_clone_tokens convention.
func (d *Detector) TokenCount() int {
	total := 0
	for _, g := range d.groups {
		total += int(g.TokenLen())
	}
	return total
}
