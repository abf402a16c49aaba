package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"please/internal/config"
	"please/internal/exitcode"
	"please/internal/output"
	"please/internal/service"
	"please/internal/tasklist"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "please add <task...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !rejectFlagWords(args, errOut) {
		return exitcode.UserError
	}

	// Join args to form the task name
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(errOut, "error: task name required")
		return exitcode.UserError
	}

	rec, code, ok := loadRecord(ctx, cfg, svc, out, errOut)
	if !ok {
		return code
	}

	tasks, err := tasklist.Add(rec.Tasks, name)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	rec.Tasks = tasks
	if code := saveRecord(ctx, cfg, svc, rec, errOut); code != exitcode.Success {
		return code
	}
	cfg.Log().Debug("task added", "index", len(tasks), "name", name)

	p := newPrinter(cfg, out)
	p.Banner(output.Success, fmt.Sprintf(`Added "%s" to the list`, name))
	p.Tasks(tasklist.Render(rec.Tasks, false))
	return exitcode.Success
}
