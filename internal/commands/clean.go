package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"please/internal/config"
	"please/internal/exitcode"
	"please/internal/output"
	"please/internal/service"
	"please/internal/tasklist"
)

func init() {
	Register(&CleanCmd{})
}

// CleanCmd implements the clean command.
type CleanCmd struct{}

func (c *CleanCmd) Name() string      { return "clean" }
func (c *CleanCmd) Aliases() []string { return nil }
func (c *CleanCmd) Synopsis() string  { return "Remove tasks marked as done" }
func (c *CleanCmd) Usage() string     { return "please clean" }
func (c *CleanCmd) NeedsStore() bool  { return true }

func (c *CleanCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CleanCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	rec, code, ok := loadRecord(ctx, cfg, svc, out, errOut)
	if !ok {
		return code
	}

	p := newPrinter(cfg, out)
	tasks, err := tasklist.Clean(rec.Tasks)
	if errors.Is(err, tasklist.ErrNoChange) {
		p.Banner(output.Info, "No Updates Made")
		p.Tasks(tasklist.Render(rec.Tasks, len(rec.Tasks) > 0))
		return exitcode.Success
	}

	removed := len(rec.Tasks) - len(tasks)
	rec.Tasks = tasks
	if code := saveRecord(ctx, cfg, svc, rec, errOut); code != exitcode.Success {
		return code
	}
	cfg.Log().Debug("done tasks removed", "count", removed)

	p.Banner(output.Success, "Updated Task List")
	p.Tasks(tasklist.Render(rec.Tasks, len(rec.Tasks) > 0))
	return exitcode.Success
}
