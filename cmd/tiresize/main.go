// Command tiresize prints replacement tire sizes for one size or a list of
// sizes and can write PDF, label, Excel and DXF exports.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vladmu/tire-calculator/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
