package commands

import (
	"context"
	"errors"
	"flag"
	"io"

	"please/internal/config"
	"please/internal/exitcode"
	"please/internal/output"
	"please/internal/service"
	"please/internal/tasklist"
)

func init() {
	Register(&UndoCmd{})
}

// UndoCmd implements the undo command.
type UndoCmd struct{}

func (c *UndoCmd) Name() string      { return "undo" }
func (c *UndoCmd) Aliases() []string { return []string{"undone"} }
func (c *UndoCmd) Synopsis() string  { return "Mark a task as undone" }
func (c *UndoCmd) Usage() string     { return "please undo <number>" }
func (c *UndoCmd) NeedsStore() bool  { return true }

func (c *UndoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	idx, ok := parseIndexes(args, 1, errOut)
	if !ok {
		return exitcode.UserError
	}

	rec, code, ok := loadRecord(ctx, cfg, svc, out, errOut)
	if !ok {
		return code
	}

	p := newPrinter(cfg, out)
	tasks, err := tasklist.MarkUndone(rec.Tasks, idx[0])
	switch {
	case errors.Is(err, tasklist.ErrEmptyList):
		p.BannerWrapped(output.Info, "Sorry, There are no tasks to mark as undone")
		return exitcode.Success
	case errors.Is(err, tasklist.ErrIndexOutOfRange):
		p.BannerWrapped(output.Warning, "Are you sure you gave me the correct number to mark as undone?")
		return exitcode.Success
	case errors.Is(err, tasklist.ErrAlreadyPending):
		p.Banner(output.Info, "No Updates Made, Task Still Pending")
		p.Tasks(tasklist.Render(rec.Tasks, false))
		return exitcode.Success
	}

	rec.Tasks = tasks
	if code := saveRecord(ctx, cfg, svc, rec, errOut); code != exitcode.Success {
		return code
	}
	cfg.Log().Debug("task marked undone", "index", idx[0])

	p.Banner(output.Success, "Updated Task List")
	p.Tasks(tasklist.Render(rec.Tasks, false))
	return exitcode.Success
}
