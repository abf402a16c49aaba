package tasklist

const (
	// DoneGlyph marks a completed task in the table.
	DoneGlyph = "✅"

	// PendingGlyph marks a pending task in the table.
	PendingGlyph = "❌"
)

// Row is one line of the task table.
type Row struct {
	Index int // 1-based display position
	Name  string
	Done  bool
}

// Glyph returns the status glyph for the row.
func (r Row) Glyph() string {
	if r.Done {
		return DoneGlyph
	}
	return PendingGlyph
}

// View is what the renderer draws: either a table of rows or, when
// AllClear is set, the congratulatory "no pending tasks" message.
type View struct {
	Rows     []Row
	AllClear bool
}

// Render decides how l is displayed. The table is shown when a task is
// pending or force is set; otherwise the view is all-clear. Since an empty
// list counts as all done, an empty list without force renders all-clear.
func Render(l List, force bool) View {
	if AllDone(l) && !force {
		return View{AllClear: true}
	}
	rows := make([]Row, len(l))
	for i, t := range l {
		rows[i] = Row{Index: i + 1, Name: t.Name, Done: t.Done}
	}
	return View{Rows: rows}
}
