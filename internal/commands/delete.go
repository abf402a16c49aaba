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
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"del", "rm"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) Usage() string     { return "please delete <number>" }
func (c *DeleteCmd) NeedsStore() bool  { return true }

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	idx, ok := parseIndexes(args, 1, errOut)
	if !ok {
		return exitcode.UserError
	}

	rec, code, ok := loadRecord(ctx, cfg, svc, out, errOut)
	if !ok {
		return code
	}

	p := newPrinter(cfg, out)
	tasks, removed, err := tasklist.Delete(rec.Tasks, idx[0])
	switch {
	case errors.Is(err, tasklist.ErrEmptyList):
		p.BannerWrapped(output.Info, "Sorry, There are no tasks left to delete")
		return exitcode.Success
	case errors.Is(err, tasklist.ErrIndexOutOfRange):
		p.BannerWrapped(output.Warning, "Are you sure you gave me the correct number to delete?")
		return exitcode.Success
	}

	rec.Tasks = tasks
	if code := saveRecord(ctx, cfg, svc, rec, errOut); code != exitcode.Success {
		return code
	}
	cfg.Log().Debug("task deleted", "index", idx[0], "name", removed.Name)

	p.Banner(output.Success, fmt.Sprintf("Deleted '%s'", removed.Name))
	// Shown even when the remaining tasks are all done, so the deletion is visible.
	p.Tasks(tasklist.Render(rec.Tasks, true))
	return exitcode.Success
}
