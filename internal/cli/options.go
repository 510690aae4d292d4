// Package cli implements the tiresize command line.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/vladmu/tire-calculator/internal/model"
)

// Options holds the parsed command line.
type Options struct {
	Size    string
	Rim     int
	Width   float64
	Profile float64
	Batch   string
	JSON    bool
	PDF     string
	Labels  string
	XLSX    string
	DXF     string
}

var (
	errNoSize       = errors.New("give a size with -size or -r/-w/-v, or a list with -batch")
	errSizeAndBatch = errors.New("-batch cannot be combined with a single size")
	errPartialSize  = errors.New("-r, -w and -v must be given together")
	errBatchExport  = errors.New("-labels and -dxf need a single size")
)

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// ParseArgs registers the flags on fs and parses argv.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	fs.StringVar(&o.Size, "size", "", `original size, e.g. "225/45 R17"`)
	fs.IntVar(&o.Rim, "r", 0, "rim diameter in inches")
	fs.Float64Var(&o.Width, "w", 0, "tire width in mm")
	fs.Float64Var(&o.Profile, "v", 0, "profile in % of width")
	fs.StringVar(&o.Batch, "batch", "", "CSV or Excel file with one size per row")
	fs.BoolVar(&o.JSON, "json", false, "print results as JSON")
	fs.StringVar(&o.PDF, "pdf", "", "write a PDF report to this file")
	fs.StringVar(&o.Labels, "labels", "", "write a QR label sheet to this file")
	fs.StringVar(&o.XLSX, "xlsx", "", "write an Excel workbook to this file")
	fs.StringVar(&o.DXF, "dxf", "", "write a DXF wheel drawing to this file")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\n", fs.Name())
		fmt.Fprintln(out, "Finds replacement tire sizes within 2% of the original diameter.")
		fmt.Fprintln(out)
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, o.check()
}

func (o Options) check() error {
	split := o.Rim != 0 || o.Width != 0 || o.Profile != 0
	if split && (o.Rim == 0 || o.Width == 0 || o.Profile == 0) {
		return errPartialSize
	}
	single := o.Size != "" || split
	switch {
	case o.Batch != "" && single:
		return errSizeAndBatch
	case o.Batch == "" && !single:
		return errNoSize
	case o.Batch != "" && (o.Labels != "" || o.DXF != ""):
		return errBatchExport
	}
	return nil
}

// Input returns the single size named by -size or -r/-w/-v.
func (o Options) Input() (model.Input, error) {
	var in model.Input
	if o.Size != "" {
		parsed, err := model.ParseSizeKey(o.Size)
		if err != nil {
			return in, err
		}
		in = parsed
	} else {
		in = model.Input{Rim: o.Rim, Width: o.Width, Profile: o.Profile}
	}
	return in, in.Validate()
}

// discardUsage silences flag errors printed during parsing.
func discardUsage(fs *flag.FlagSet) { fs.SetOutput(io.Discard) }
