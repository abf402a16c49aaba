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
	Register(&MoveCmd{})
}

// MoveCmd implements the move command. It swaps two tasks.
type MoveCmd struct{}

func (c *MoveCmd) Name() string      { return "move" }
func (c *MoveCmd) Aliases() []string { return []string{"mv"} }
func (c *MoveCmd) Synopsis() string  { return "Change task order" }
func (c *MoveCmd) Usage() string     { return "please move <old> <new>" }
func (c *MoveCmd) NeedsStore() bool  { return true }

func (c *MoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MoveCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	idx, ok := parseIndexes(args, 2, errOut)
	if !ok {
		return exitcode.UserError
	}

	rec, code, ok := loadRecord(ctx, cfg, svc, out, errOut)
	if !ok {
		return code
	}

	p := newPrinter(cfg, out)
	tasks, err := tasklist.Move(rec.Tasks, idx[0], idx[1])
	switch {
	case errors.Is(err, tasklist.ErrEmptyList):
		p.Banner(output.Error, "Sorry, cannot move tasks as the Task list is empty")
		return exitcode.Success
	case errors.Is(err, tasklist.ErrIndexOutOfRange):
		p.Banner(output.Warning, "Please check the entered index values")
		return exitcode.Success
	case errors.Is(err, tasklist.ErrNoChange):
		p.Banner(output.Info, "No Updates Made")
		p.Tasks(tasklist.Render(rec.Tasks, len(rec.Tasks) > 0))
		return exitcode.Success
	}

	rec.Tasks = tasks
	if code := saveRecord(ctx, cfg, svc, rec, errOut); code != exitcode.Success {
		return code
	}
	cfg.Log().Debug("tasks swapped", "old", idx[0], "new", idx[1])

	p.Banner(output.Success, "Updated Task List")
	p.Tasks(tasklist.Render(rec.Tasks, len(rec.Tasks) > 0))
	return exitcode.Success
}
