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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"do"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task as done" }
func (c *DoneCmd) Usage() string     { return "please done <number>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	idx, ok := parseIndexes(args, 1, errOut)
	if !ok {
		return exitcode.UserError
	}

	rec, code, ok := loadRecord(ctx, cfg, svc, out, errOut)
	if !ok {
		return code
	}

	p := newPrinter(cfg, out)
	tasks, err := tasklist.MarkDone(rec.Tasks, idx[0])
	switch {
	case errors.Is(err, tasklist.ErrEmptyList):
		p.BannerWrapped(output.Error, "Sorry, There are no tasks to mark as done")
		return exitcode.Success
	case errors.Is(err, tasklist.ErrAllDone):
		p.Banner(output.Success, "All tasks are already completed!")
		return exitcode.Success
	case errors.Is(err, tasklist.ErrIndexOutOfRange):
		p.BannerWrapped(output.Warning, "Are you sure you gave me the correct number to mark as done?")
		return exitcode.Success
	case errors.Is(err, tasklist.ErrAlreadyDone):
		p.Banner(output.Info, "No Updates Made, Task Already Done")
		p.Tasks(tasklist.Render(rec.Tasks, false))
		return exitcode.Success
	}

	rec.Tasks = tasks
	if code := saveRecord(ctx, cfg, svc, rec, errOut); code != exitcode.Success {
		return code
	}
	cfg.Log().Debug("task marked done", "index", idx[0])

	p.Banner(output.Success, "Updated Task List")
	p.Tasks(tasklist.Render(rec.Tasks, false))
	return exitcode.Success
}
