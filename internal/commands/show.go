package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"please/internal/config"
	"please/internal/exitcode"
	"please/internal/quotes"
	"please/internal/service"
	"please/internal/tasklist"
)

func init() {
	Register(&ShowCmd{})
	Register(&ShowTasksCmd{})
}

// ShowCmd greets the user. It runs when no command is given.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return nil }
func (c *ShowCmd) Synopsis() string  { return "Greet, show a quote and the tasks" }
func (c *ShowCmd) Usage() string     { return "please [show]" }
func (c *ShowCmd) NeedsStore() bool  { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	rec, code, ok := loadRecord(ctx, cfg, svc, out, errOut)
	if !ok {
		return code
	}

	p := newPrinter(cfg, out)
	p.Greeting(rec.UserName, cfg.Clock(), rec.Uses24h(), rec.LineDisabled())

	if q, err := quotes.Random(nil); err != nil {
		cfg.Log().Warn("no quote available", "err", err)
	} else {
		p.Quote(q)
	}

	p.Tasks(tasklist.Render(rec.Tasks, false))
	return exitcode.Success
}

// ShowTasksCmd prints the task table, even when nothing is pending.
type ShowTasksCmd struct{}

func (c *ShowTasksCmd) Name() string      { return "showtasks" }
func (c *ShowTasksCmd) Aliases() []string { return []string{"list", "ls"} }
func (c *ShowTasksCmd) Synopsis() string  { return "Show all tasks" }
func (c *ShowTasksCmd) Usage() string     { return "please showtasks" }
func (c *ShowTasksCmd) NeedsStore() bool  { return true }

func (c *ShowTasksCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowTasksCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	rec, code, ok := loadRecord(ctx, cfg, svc, out, errOut)
	if !ok {
		return code
	}

	p := newPrinter(cfg, out)
	p.Tasks(tasklist.Render(rec.Tasks, true))
	if tasklist.AllDone(rec.Tasks) {
		p.Tasks(tasklist.View{AllClear: true})
	}
	return exitcode.Success
}
