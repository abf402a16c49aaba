package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"please/internal/quotes"
	"please/internal/tasklist"
)

func TestFormatClock(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)

	if got := FormatClock(now, false); got != "05 Mar | 02:07 PM" {
		t.Errorf("expected 12h clock, got %q", got)
	}
	if got := FormatClock(now, true); got != "05 Mar | 14:07" {
		t.Errorf("expected 24h clock, got %q", got)
	}
}

func TestRule(t *testing.T) {
	got := rule("hi", 10)
	if got != "─── hi ───" {
		t.Errorf("unexpected rule %q", got)
	}
	if got := rule("too long for this", 5); got != "too long for this" {
		t.Errorf("expected bare text when too narrow, got %q", got)
	}
}

func TestTasks_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 80, false)

	p.Tasks(tasklist.Render(tasklist.List{{Name: "buy milk"}, {Name: "call mom", Done: true}}, false))

	out := buf.String()
	for _, want := range []string{"Tasks", "Number", "Task", "Status", "buy milk", "call mom", tasklist.DoneGlyph, tasklist.PendingGlyph} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, AllClearMessage) {
		t.Errorf("did not expect all-clear message, got:\n%s", out)
	}
}

func TestTasks_AllClear(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 80, false)

	p.Tasks(tasklist.Render(nil, false))

	out := buf.String()
	if !strings.Contains(out, AllClearMessage) {
		t.Errorf("expected all-clear message, got:\n%s", out)
	}
	if strings.Contains(out, "Number") {
		t.Errorf("did not expect a table, got:\n%s", out)
	}
}

func TestTasks_RowOrder(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 80, false)

	p.Tasks(tasklist.Render(tasklist.List{{Name: "first"}, {Name: "second"}}, false))

	out := buf.String()
	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Errorf("rows out of order:\n%s", out)
	}
}

func TestBanner_Quiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 80, true)

	p.Banner(Success, "Updated Task List")
	p.Banner(Info, "No Updates Made")
	if buf.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got %q", buf.String())
	}

	p.Banner(Warning, "check the index")
	if !strings.Contains(buf.String(), "check the index") {
		t.Errorf("expected warning in quiet mode, got %q", buf.String())
	}
}

func TestBanner_Centered(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 20, false)

	p.Banner(Info, "abcd")

	line := strings.TrimRight(buf.String(), "\n")
	if !strings.HasPrefix(line, "        abcd") {
		t.Errorf("expected centered text, got %q", line)
	}
}

func TestBannerWrapped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 40, false)

	p.BannerWrapped(Warning, "Are you sure you gave me the correct number to delete?")

	out := buf.String()
	if strings.Count(out, "\n") < 2 {
		t.Errorf("expected message wrapped over several lines, got %q", out)
	}
	if !strings.Contains(out, "correct") {
		t.Errorf("expected message text, got %q", out)
	}
}

func TestGreeting(t *testing.T) {
	now := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	NewPrinter(&buf, 60, false).Greeting("Ada", now, false, false)
	out := buf.String()
	if !strings.Contains(out, "Hello Ada! It's 05 Mar | 09:30 AM") {
		t.Errorf("unexpected greeting %q", out)
	}
	if !strings.Contains(out, "─") {
		t.Errorf("expected a rule, got %q", out)
	}

	buf.Reset()
	NewPrinter(&buf, 60, false).Greeting("Ada", now, true, true)
	out = buf.String()
	if !strings.Contains(out, "Hello Ada! It's 05 Mar | 09:30") {
		t.Errorf("unexpected greeting %q", out)
	}
	if strings.Contains(out, "─") {
		t.Errorf("expected no rule, got %q", out)
	}
}

func TestQuote(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, 80, false).Quote(quotes.Quote{Content: "Keep going.", Author: "Someone"})

	out := buf.String()
	if !strings.Contains(out, `"Keep going."`) || !strings.Contains(out, "- Someone") {
		t.Errorf("unexpected quote output %q", out)
	}
}
