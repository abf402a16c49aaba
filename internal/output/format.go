// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"please/internal/quotes"
	"please/internal/tasklist"
)

// AllClearMessage is shown instead of the table when nothing is pending.
const AllClearMessage = "Looking good, no pending tasks 😁"

// Kind selects the banner style of a message.
type Kind int

const (
	Info Kind = iota
	Success
	Warning
	Error
)

const (
	colorTable    = lipgloss.Color("#e85d04")
	colorTitle    = lipgloss.Color("241")
	colorDone     = lipgloss.Color("#A0FF55")
	colorPending  = lipgloss.Color("#FF5555")
	colorAllClear = lipgloss.Color("#61E294")
	colorGreeting = lipgloss.Color("#FFBF00")
	colorQuote    = lipgloss.Color("#63D2FF")
	colorAuthor   = lipgloss.Color("#F03A47")
)

// Printer writes centered, styled output for a terminal of a given width.
type Printer struct {
	w     io.Writer
	width int
	quiet bool
	r     *lipgloss.Renderer
}

// NewPrinter creates a printer writing to w. Colors follow what w supports.
func NewPrinter(w io.Writer, width int, quiet bool) *Printer {
	return &Printer{
		w:     w,
		width: width,
		quiet: quiet,
		r:     lipgloss.NewRenderer(w),
	}
}

func (p *Printer) bannerStyle(kind Kind) lipgloss.Style {
	s := p.r.NewStyle()
	switch kind {
	case Success:
		return s.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	case Warning:
		return s.Foreground(lipgloss.Color("9")).Background(lipgloss.Color("15"))
	case Error:
		return s.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("9"))
	default:
		return s.Foreground(lipgloss.Color("51")).Background(lipgloss.Color("56"))
	}
}

// center prints block centered on the terminal width.
func (p *Printer) center(block string) {
	fmt.Fprintln(p.w, lipgloss.PlaceHorizontal(p.width, lipgloss.Center, block))
}

// Banner prints a one-line status message. Info and success banners are
// dropped in quiet mode.
func (p *Printer) Banner(kind Kind, msg string) {
	if p.quiet && (kind == Info || kind == Success) {
		return
	}
	p.center(p.bannerStyle(kind).Render(msg))
}

// BannerWrapped is like Banner but wraps msg to half the terminal width.
func (p *Printer) BannerWrapped(kind Kind, msg string) {
	if p.quiet && (kind == Info || kind == Success) {
		return
	}
	p.center(p.bannerStyle(kind).Width(p.halfWidth()).Align(lipgloss.Center).Render(msg))
}

func (p *Printer) halfWidth() int {
	if p.width < 2 {
		return 1
	}
	return p.width / 2
}

// Tasks prints the task table, or the all-clear message when v says so.
func (p *Printer) Tasks(v tasklist.View) {
	if v.AllClear {
		p.center(p.r.NewStyle().Foreground(colorAllClear).Render(AllClearMessage))
		return
	}
	p.center(p.TaskTable(v.Rows))
}

// TaskTable renders rows as a table without printing it.
func (p *Printer) TaskTable(rows []tasklist.Row) string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{fmt.Sprintf("%d", row.Index), row.Name, row.Glyph()}
	}

	header := p.r.NewStyle().Foreground(colorTable).Bold(true).Padding(0, 1)
	cell := p.r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.r.NewStyle().Foreground(colorTable).Bold(true)).
		Headers("Number", "Task", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if row < 0 || row >= len(rows) || col == 2 {
				return cell
			}
			if rows[row].Done {
				return cell.Foreground(colorDone)
			}
			return cell.Foreground(colorPending)
		}).
		Rows(cells...)

	title := p.r.NewStyle().Foreground(colorTitle).Italic(true).Render("Tasks")
	rendered := t.String()
	return lipgloss.JoinVertical(lipgloss.Center, title, rendered)
}

// Greeting prints the hello line with the current date and time, inside a
// horizontal rule unless plain is set.
func (p *Printer) Greeting(name string, now time.Time, use24h, plain bool) {
	text := fmt.Sprintf("Hello %s! It's %s", name, FormatClock(now, use24h))
	style := p.r.NewStyle().Foreground(colorGreeting)
	if plain {
		p.center(style.Render(text))
		return
	}
	fmt.Fprintln(p.w, style.Render(rule(text, p.width)))
}

// Quote prints q centered and wrapped to half the terminal width.
func (p *Printer) Quote(q quotes.Quote) {
	wrap := p.r.NewStyle().Width(p.halfWidth()).Align(lipgloss.Center)
	p.center(wrap.Foreground(colorQuote).Render(`"` + q.Content + `"`))
	p.center(wrap.Foreground(colorAuthor).Italic(true).Render("- " + q.Author))
	fmt.Fprintln(p.w)
}

// Plain prints msg centered without styling.
func (p *Printer) Plain(msg string) {
	if p.quiet {
		return
	}
	p.center(msg)
}

// Prompt prints a question and leaves the cursor on the same line.
func (p *Printer) Prompt(question string) {
	fmt.Fprint(p.w, p.r.NewStyle().Foreground(lipgloss.Color("14")).Render(question)+" ")
}

// FormatClock formats now as "02 Jan | 03:04 PM", or "02 Jan | 15:04" when
// use24h is set.
func FormatClock(now time.Time, use24h bool) string {
	if use24h {
		return now.Format("02 Jan | 15:04")
	}
	return now.Format("02 Jan | 03:04 PM")
}

// rule centers text inside a line of box-drawing characters width wide.
func rule(text string, width int) string {
	label := " " + text + " "
	side := (width - lipgloss.Width(label)) / 2
	if side < 1 {
		return text
	}
	right := width - lipgloss.Width(label) - side
	return strings.Repeat("─", side) + label + strings.Repeat("─", right)
}
