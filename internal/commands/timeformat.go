package commands

import (
	"context"
	"flag"
	"io"

	"please/internal/config"
	"please/internal/exitcode"
	"please/internal/output"
	"please/internal/service"
)

func init() {
	Register(&TimeFormatCmd{})
}

// TimeFormatCmd toggles the greeting clock between 12h and 24h.
type TimeFormatCmd struct{}

func (c *TimeFormatCmd) Name() string      { return "changetimeformat" }
func (c *TimeFormatCmd) Aliases() []string { return []string{"timeformat"} }
func (c *TimeFormatCmd) Synopsis() string  { return "Toggle time format between 12h and 24h" }
func (c *TimeFormatCmd) Usage() string     { return "please changetimeformat" }
func (c *TimeFormatCmd) NeedsStore() bool  { return true }

func (c *TimeFormatCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TimeFormatCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	rec, code, ok := loadRecord(ctx, cfg, svc, out, errOut)
	if !ok {
		return code
	}

	use24h := !rec.Uses24h()
	rec.TimeFormat24h = &use24h
	if code := saveRecord(ctx, cfg, svc, rec, errOut); code != exitcode.Success {
		return code
	}

	msg := "Changed Time Format from 24h to 12h"
	if use24h {
		msg = "Changed Time Format from 12h to 24h"
	}
	newPrinter(cfg, out).Banner(output.Success, msg)
	return exitcode.Success
}
