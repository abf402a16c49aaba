package commands

import (
	"bufio"
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
	Register(&SetupCmd{})
}

// SetupCmd implements the setup command.
type SetupCmd struct{}

func (c *SetupCmd) Name() string      { return "setup" }
func (c *SetupCmd) Aliases() []string { return nil }
func (c *SetupCmd) Synopsis() string  { return "Reset all data and run setup" }
func (c *SetupCmd) Usage() string     { return "please setup" }
func (c *SetupCmd) NeedsStore() bool  { return true }

func (c *SetupCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SetupCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runSetup(ctx, cfg, svc, out, errOut)
}

// runSetup asks for the user's name and writes a fresh record with an empty
// task list. Blank answers are asked again until input runs out.
func runSetup(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	p := newPrinter(cfg, out)

	name, err := promptName(p, cfg.Input)
	if err != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	rec := service.Record{
		UserName:         name,
		Tasks:            tasklist.List{},
		InitialSetupDone: true,
	}
	if code := saveRecord(ctx, cfg, svc, rec, errOut); code != exitcode.Success {
		return code
	}

	p.Plain("")
	p.Banner(output.Success, "Thanks for letting me know your name!")
	p.Plain("If you wanna change your name later, please use:")
	p.Plain("please callme <Your Name Goes Here>")
	return exitcode.Success
}

func promptName(p *output.Printer, in io.Reader) (string, error) {
	if in == nil {
		return "", fmt.Errorf("name required: no input available")
	}
	scanner := bufio.NewScanner(in)
	for {
		p.Prompt("Hello! What can I call you?")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("read name: %w", err)
			}
			return "", fmt.Errorf("name required")
		}
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			return name, nil
		}
	}
}
