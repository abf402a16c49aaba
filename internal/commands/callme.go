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
)

func init() {
	Register(&CallMeCmd{})
}

// CallMeCmd changes the stored user name, keeping the tasks.
type CallMeCmd struct{}

func (c *CallMeCmd) Name() string      { return "callme" }
func (c *CallMeCmd) Aliases() []string { return nil }
func (c *CallMeCmd) Synopsis() string  { return "Change name without resetting data" }
func (c *CallMeCmd) Usage() string     { return "please callme <name...>" }
func (c *CallMeCmd) NeedsStore() bool  { return true }

func (c *CallMeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CallMeCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !rejectFlagWords(args, errOut) {
		return exitcode.UserError
	}

	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: name required")
		return exitcode.UserError
	}

	rec, code, ok := loadRecord(ctx, cfg, svc, out, errOut)
	if !ok {
		return code
	}

	rec.UserName = name
	if code := saveRecord(ctx, cfg, svc, rec, errOut); code != exitcode.Success {
		return code
	}

	newPrinter(cfg, out).Banner(output.Success, "Thanks for letting me know your name!")
	return exitcode.Success
}
