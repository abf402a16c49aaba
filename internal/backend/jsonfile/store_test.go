package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"please/internal/config"
	"please/internal/service"
	"please/internal/tasklist"
)

func newTestStore(t *testing.T) (*Store, *config.Config) {
	t.Helper()
	cfg := &config.Config{Dir: filepath.Join(t.TempDir(), "please")}
	s, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, cfg
}

func TestNew_CreatesDir(t *testing.T) {
	_, cfg := newTestStore(t)
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		t.Fatalf("config dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", cfg.Dir)
	}
}

func TestLoad_Missing(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Load(context.Background())
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	s, cfg := newTestStore(t)
	if err := os.WriteFile(cfg.RecordPath(), []byte("  \n"), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load(context.Background())
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	s, cfg := newTestStore(t)
	if err := os.WriteFile(cfg.RecordPath(), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load(context.Background())
	var pe *service.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Path != cfg.RecordPath() {
		t.Errorf("expected path %s, got %s", cfg.RecordPath(), pe.Path)
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	s, cfg := newTestStore(t)
	data := `{"user_name": "Ada", "tasks": [{"name": "a", "done": "yes"}], "initial_setup_done": true}`
	if err := os.WriteFile(cfg.RecordPath(), []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load(context.Background())
	var pe *service.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if len(pe.Causes) == 0 {
		t.Fatal("expected schema causes")
	}
	if !strings.Contains(strings.Join(pe.Causes, "\n"), "tasks[0].done") {
		t.Errorf("expected cause to name tasks[0].done, got %v", pe.Causes)
	}
}

func TestLoad_MissingTaskName(t *testing.T) {
	s, cfg := newTestStore(t)
	data := `{"user_name": "Ada", "tasks": [{"done": false}], "initial_setup_done": true}`
	if err := os.WriteFile(cfg.RecordPath(), []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load(context.Background())
	var pe *service.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestLoad_WithOptionalKeys(t *testing.T) {
	s, cfg := newTestStore(t)
	data := `{
  "user_name": "Ada",
  "initial_setup_done": true,
  "tasks": [
    {"name": "buy milk", "done": false},
    {"name": "call mom", "done": true}
  ],
  "time_format_24h": true
}`
	if err := os.WriteFile(cfg.RecordPath(), []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	rec, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.UserName != "Ada" || !rec.InitialSetupDone || !rec.Uses24h() {
		t.Errorf("unexpected record: %+v", rec)
	}
	want := tasklist.List{{Name: "buy milk"}, {Name: "call mom", Done: true}}
	if !reflect.DeepEqual(rec.Tasks, want) {
		t.Errorf("expected %+v, got %+v", want, rec.Tasks)
	}
}

func TestLoad_NullTasks(t *testing.T) {
	s, cfg := newTestStore(t)
	if err := os.WriteFile(cfg.RecordPath(), []byte(`{"user_name": "Ada", "tasks": null}`), 0600); err != nil {
		t.Fatal(err)
	}
	rec, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Tasks == nil {
		t.Error("expected non-nil task list")
	}
	if !rec.NeedsSetup() {
		t.Error("expected record without initial_setup_done to need setup")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	on := true
	rec := service.Record{
		UserName:         "Ada",
		Tasks:            tasklist.List{{Name: "a"}, {Name: "b", Done: true}},
		InitialSetupDone: true,
		TimeFormat24h:    &on,
	}
	if err := s.Save(context.Background(), rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("expected %+v, got %+v", rec, got)
	}
}

func TestSave_Format(t *testing.T) {
	s, cfg := newTestStore(t)
	if err := s.Save(context.Background(), service.Record{UserName: "Ada", InitialSetupDone: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(cfg.RecordPath())
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"user_name\": \"Ada\",\n  \"tasks\": [],\n  \"initial_setup_done\": true\n}\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s, cfg := newTestStore(t)
	for i := 0; i < 3; i++ {
		if err := s.Save(context.Background(), service.Record{UserName: "Ada"}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != config.RecordFile {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only %s, got %v", config.RecordFile, names)
	}
}

func TestSave_FileMode(t *testing.T) {
	s, cfg := newTestStore(t)
	if err := s.Save(context.Background(), service.Record{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(cfg.RecordPath())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != FileMode {
		t.Errorf("expected mode %o, got %o", FileMode, info.Mode().Perm())
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"/":             "",
		"/tasks":        "tasks",
		"/tasks/2/name": "tasks[2].name",
		"#/user_name":   "user_name",
		"/a~1b/c~0d":    "a/b.c~d",
	}
	for in, want := range tests {
		if got := jsonPointerToPath(in); got != want {
			t.Errorf("jsonPointerToPath(%q): expected %q, got %q", in, want, got)
		}
	}
}
