// Command mpcd reads a pre-tokenized source corpus on standard input and
// reports duplicated ("cloned") token regions across it.
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/dspinellis/mpcd/internal/clone"
	"github.com/dspinellis/mpcd/internal/diag"
	"github.com/dspinellis/mpcd/internal/report"
	"github.com/dspinellis/mpcd/internal/tokenstore"
)

var theme = report.DefaultTheme

const version = "mpcd 1.0.0"

func usage(fs *flag.FlagSet, stderr io.Writer) {
	fmt.Fprintln(stderr, "usage: mpcd [-jSvV] [-n tokens]")
	fs.PrintDefaults()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mpcd", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		seedLen     int
		jsonOutput  bool
		verbose     bool
		showVersion bool
		showSizes   bool
	)
	fs.IntVarP(&seedLen, "seed-length", "n", 15, "seed length k (minimum clone length)")
	fs.BoolVarP(&jsonOutput, "json", "j", false, "emit JSON instead of text")
	fs.BoolVarP(&verbose, "verbose", "v", false, "verbose progress to standard error")
	fs.BoolVarP(&showVersion, "version", "V", false, "print version and exit")
	fs.BoolVarP(&showSizes, "sizes", "S", false, "print per-entity byte-size diagnostics and exit")

	if err := fs.Parse(args); err != nil {
		usage(fs, stderr)
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}

	if seedLen <= 0 {
		fmt.Fprintf(stderr, "mpcd: -n must be > 0, got %d\n", seedLen)
		usage(fs, stderr)
		return 2
	}

	corpus, err := tokenstore.ReadCorpus(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "mpcd: %v\n", err)
		return 1
	}

	detector := clone.NewDetector(corpus, seedLen, clone.LineMode)
	if verbose {
		detector.SetProgress(diag.NewBarProgress(stderr))
	}
	groups := detector.Run()

	if showSizes {
		diag.Measure(corpus, groups).WriteText(stdout)
		return 0
	}

	if verbose {
		fmt.Fprintf(stderr, "%s %s\n",
			theme.Phase.Render("summary:"),
			theme.Count.Render(fmt.Sprintf(
				"seen sites: %d, seen clones: %d, groups: %d, clones: %d, clone tokens: %d",
				detector.SeenSiteCount(), detector.SeenCloneCount(),
				detector.GroupCount(), detector.CloneCount(), detector.TokenCount())))
	}

	rendered := report.Render(corpus, groups)
	if jsonOutput {
		if err := report.WriteJSON(stdout, rendered); err != nil {
			fmt.Fprintf(stderr, "mpcd: %v\n", err)
			return 1
		}
		return 0
	}
	if err := report.WriteText(stdout, rendered); err != nil {
		fmt.Fprintf(stderr, "mpcd: %v\n", err)
		return 1
	}
	return 0
}
