package commands

import (
	"context"
	"flag"
	"io"
	"testing"

	"please/internal/config"
	"please/internal/service"
)

type stubCmd struct {
	name    string
	aliases []string
}

func (c *stubCmd) Name() string                   { return c.name }
func (c *stubCmd) Aliases() []string              { return c.aliases }
func (c *stubCmd) Synopsis() string               { return "stub " + c.name }
func (c *stubCmd) Usage() string                  { return "please " + c.name }
func (c *stubCmd) NeedsStore() bool               { return false }
func (c *stubCmd) RegisterFlags(fs *flag.FlagSet) {}
func (c *stubCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return 0
}

func TestRegistry_FindByNameAndAlias(t *testing.T) {
	r := NewRegistry()
	cmd := &stubCmd{name: "delete", aliases: []string{"del", "rm"}}
	if err := r.Register(cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"delete", "del", "rm"} {
		got, ok := r.Find(name)
		if !ok || got != cmd {
			t.Errorf("expected %q to resolve to delete", name)
		}
	}
	if _, ok := r.Find("remove"); ok {
		t.Error("expected unknown name not to resolve")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubCmd{name: "done", aliases: []string{"do"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.Register(&stubCmd{name: "do"}); err == nil {
		t.Error("expected error for name clashing with alias")
	}
	if err := r.Register(&stubCmd{name: "undo", aliases: []string{"done"}}); err == nil {
		t.Error("expected error for alias clashing with name")
	}
	if _, ok := r.Find("undo"); ok {
		t.Error("expected rejected command not to be registered")
	}
}

func TestRegistry_RejectsEmptyName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubCmd{name: "x", aliases: []string{" "}}); err == nil {
		t.Error("expected error for blank alias")
	}
}

func TestRegistry_AllSortedWithoutAliases(t *testing.T) {
	r := NewRegistry()
	for _, c := range []*stubCmd{
		{name: "show"},
		{name: "add"},
		{name: "move", aliases: []string{"mv"}},
	} {
		if err := r.Register(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(all))
	}
	want := []string{"add", "move", "show"}
	for i, cmd := range all {
		if cmd.Name() != want[i] {
			t.Errorf("expected %s at %d, got %s", want[i], i, cmd.Name())
		}
	}
}

func TestDefaultRegistry_HasEveryCommand(t *testing.T) {
	names := []string{
		"show", "showtasks", "list", "ls", "add", "delete", "del", "rm",
		"done", "do", "undo", "undone", "move", "mv", "clean", "callme",
		"setup", "changetimeformat", "timeformat", "help", "version",
	}
	for _, name := range names {
		if _, ok := DefaultRegistry.Find(name); !ok {
			t.Errorf("expected %q to be registered", name)
		}
	}
}
