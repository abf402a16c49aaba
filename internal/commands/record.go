package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"please/internal/config"
	"please/internal/exitcode"
	"please/internal/output"
	"please/internal/service"
)

func newPrinter(cfg *config.Config, out io.Writer) *output.Printer {
	return output.NewPrinter(out, cfg.TermWidth(), cfg.Quiet)
}

// loadRecord loads the stored record. When there is none yet, or setup was
// never finished, it runs first-time setup instead and reports ok=false with
// the setup exit code; the caller returns that code without doing anything
// else.
func loadRecord(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) (rec service.Record, code int, ok bool) {
	rec, err := svc.Load(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			cfg.Log().Debug("no record, running setup", "location", svc.Location())
			return rec, runSetup(ctx, cfg, svc, out, errOut), false
		}
		var pe *service.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintf(errOut, "error: failed while loading configuration: %v\n", err)
			return rec, exitcode.ConfigError, false
		}
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return rec, exitcode.StoreError, false
	}
	if rec.NeedsSetup() {
		cfg.Log().Debug("setup not finished, running setup", "location", svc.Location())
		return rec, runSetup(ctx, cfg, svc, out, errOut), false
	}
	return rec, exitcode.Success, true
}

// saveRecord persists rec and returns the exit code for the outcome.
func saveRecord(ctx context.Context, cfg *config.Config, svc service.Service, rec service.Record, errOut io.Writer) int {
	if err := svc.Save(ctx, rec); err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}
	cfg.Log().Debug("record saved", "location", svc.Location(), "tasks", len(rec.Tasks))
	return exitcode.Success
}

// rejectFlagWords reports a usage error for words that look like flags.
// Flag parsing stops at the first argument, so a flag typed after the text
// would otherwise end up inside a task or user name.
func rejectFlagWords(args []string, errOut io.Writer) bool {
	for _, arg := range args {
		if strings.HasPrefix(arg, "--") {
			fmt.Fprintf(errOut, "error: flags go before the text: %s\n", arg)
			return false
		}
	}
	return true
}

// parseIndexes wraps ParseIndexes with the usage error output.
func parseIndexes(args []string, n int, errOut io.Writer) ([]int, bool) {
	indexes, err := ParseIndexes(args, n)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, false
	}
	return indexes, true
}
