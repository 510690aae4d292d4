package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vladmu/tire-calculator/internal/engine"
	"github.com/vladmu/tire-calculator/internal/export"
	"github.com/vladmu/tire-calculator/internal/importer"
	"github.com/vladmu/tire-calculator/internal/model"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitNoResult = 3
)

// Run executes the command line argv and returns the process exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := NewFlagSet("tiresize")
	discardUsage(fs)

	opts, err := ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, "tiresize:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return exitUsage
	}

	if opts.Batch != "" {
		return runBatch(ctx, opts, outw, stderr)
	}
	return runSingle(opts, outw, stderr)
}

func runSingle(opts Options, out, stderr io.Writer) int {
	in, err := opts.Input()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "tiresize:", err)
		return exitUsage
	}

	res := engine.CalculateNewSizes(in)

	if opts.JSON {
		if err := writeJSON(out, res); err != nil {
			_, _ = fmt.Fprintln(stderr, "tiresize:", err)
			return exitFailure
		}
	} else {
		printResults(out, res)
	}

	if !res.HasRecommendation() {
		return exitNoResult
	}

	exports := []struct {
		path  string
		write func() error
	}{
		{opts.PDF, func() error { return export.ExportPDF(opts.PDF, res) }},
		{opts.Labels, func() error { return export.ExportLabels(opts.Labels, res) }},
		{opts.XLSX, func() error { return export.ExportExcel(opts.XLSX, []engine.Comparison{engine.Compare(in.Key(), in)}) }},
		{opts.DXF, func() error { return export.ExportDXF(opts.DXF, res) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.write(); err != nil {
			_, _ = fmt.Fprintf(stderr, "tiresize: write %s: %v\n", e.path, err)
			return exitFailure
		}
	}
	return exitOK
}

func runBatch(ctx context.Context, opts Options, out, stderr io.Writer) int {
	result := importer.ImportFile(opts.Batch)
	for _, w := range result.Warnings {
		_, _ = fmt.Fprintln(stderr, "warning:", w)
	}
	for _, e := range result.Errors {
		_, _ = fmt.Fprintln(stderr, "error:", e)
	}
	if len(result.Sizes) == 0 {
		return exitFailure
	}

	comps := make([]engine.Comparison, 0, len(result.Sizes))
	for _, s := range result.Sizes {
		if ctx.Err() != nil {
			return exitFailure
		}
		comps = append(comps, engine.Compare(s.Label, s.Input))
	}

	if opts.JSON {
		if err := writeJSON(out, comps); err != nil {
			_, _ = fmt.Fprintln(stderr, "tiresize:", err)
			return exitFailure
		}
	} else {
		printComparisons(out, comps)
	}

	if opts.PDF != "" {
		if err := export.ExportComparisonPDF(opts.PDF, comps); err != nil {
			_, _ = fmt.Fprintf(stderr, "tiresize: write %s: %v\n", opts.PDF, err)
			return exitFailure
		}
	}
	if opts.XLSX != "" {
		if err := export.ExportExcel(opts.XLSX, comps); err != nil {
			_, _ = fmt.Fprintf(stderr, "tiresize: write %s: %v\n", opts.XLSX, err)
			return exitFailure
		}
	}
	if len(result.Errors) > 0 {
		return exitFailure
	}
	return exitOK
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResults writes a tab-aligned table of the options for one size.
func printResults(out io.Writer, res model.Results) {
	_, _ = fmt.Fprintf(out, "Original: %s  diameter %.1f mm\n\n", res.InitialSizeKey, res.Diameter)
	if !res.HasRecommendation() {
		_, _ = fmt.Fprintln(out, "No size matches all limits within the 2% diameter tolerance.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KIND\tSIZE\tDIAMETER\tDELTA\tDELTA %\t")
	for _, o := range res.Main {
		kind := "main"
		if res.IsBestMain(o) {
			kind = "main*"
		}
		printOption(tw, kind, o)
	}
	if alt := res.BestAlternative; alt != nil {
		printOption(tw, "alternative", *alt)
	}
	_ = tw.Flush()
	if res.BestMain != nil {
		_, _ = fmt.Fprintf(out, "\n* best main option: %s\n", res.BestMain.Size)
	}
}

func printOption(tw io.Writer, kind string, o model.Option) {
	_, _ = fmt.Fprintf(tw, "%s\t%s\t%.1f\t%+.1f\t%+.2f\t\n", kind, o.Size, o.Diameter, o.Delta, o.DeltaPercent)
}

// printComparisons writes one row per compared size. RECOMMENDED is the
// best main option, or the alternative when no main option exists.
func printComparisons(out io.Writer, comps []engine.Comparison) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "LABEL\tORIGINAL\tMAIN\tRECOMMENDED\tDELTA\tALTERNATIVE\t")
	for _, c := range comps {
		best, delta, alt := "-", "-", "-"
		if o, ok := c.Recommended(); ok {
			best = o.Size
			delta = fmt.Sprintf("%+.1f", o.Delta)
		}
		if a := c.Results.BestAlternative; a != nil {
			alt = a.Size
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t\n",
			strings.TrimSpace(c.Label), c.Input.Key(), c.MainCount, best, delta, alt)
	}
	_ = tw.Flush()
}
