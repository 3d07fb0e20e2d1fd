package app

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/hecto/internal/engine/document"
	"github.com/dshills/hecto/internal/input/key"
	"github.com/dshills/hecto/internal/renderer/backend"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestEditor creates an editor on an 80x12 null terminal (10 text rows).
func newTestEditor(t *testing.T, filename string) (*Editor, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(80, 12)
	e := New(b, Options{
		Filename: filename,
		Version:  "0.1.0",
		Now:      func() time.Time { return testEpoch },
	})
	return e, b
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func rows(d *document.Document) []string {
	out := make([]string, d.Len())
	for i := range out {
		out[i] = d.Row(i).String()
	}
	return out
}

// run pushes keys followed by Ctrl-q and runs the editor to completion.
func run(t *testing.T, e *Editor, b *backend.NullBackend, keys ...key.Event) {
	t.Helper()
	b.PushKeys(keys...)
	b.PushKeys(key.Ctrl('q'))
	if err := e.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

// press dispatches keys one at a time without drawing.
func press(t *testing.T, e *Editor, b *backend.NullBackend, keys ...key.Event) {
	t.Helper()
	b.PushKeys(keys...)
	for range keys {
		if err := e.processKeypress(); err != nil {
			t.Fatalf("processKeypress() error = %v", err)
		}
	}
}

func TestScenarioTypeIntoEmpty(t *testing.T) {
	e, b := newTestEditor(t, "")
	run(t, e, b, key.Chars("hi!")...)

	d := e.Document()
	if diff := cmp.Diff([]string{"hi!"}, rows(d)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if got, want := e.Cursor(), (document.Position{X: 3, Y: 0}); got != want {
		t.Errorf("Cursor() = %v, want %v", got, want)
	}
	if !d.IsDirty() {
		t.Error("document should be dirty")
	}
}

func TestScenarioEnterSplitsLines(t *testing.T) {
	e, b := newTestEditor(t, "")
	run(t, e, b, key.Char('a'), key.Enter, key.Char('b'))

	if diff := cmp.Diff([]string{"a", "b"}, rows(e.Document())); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if got, want := e.Cursor(), (document.Position{X: 1, Y: 1}); got != want {
		t.Errorf("Cursor() = %v, want %v", got, want)
	}
}

func TestScenarioBackspaceJoinsLines(t *testing.T) {
	e, b := newTestEditor(t, writeFile(t, "foo\nbar\n"))
	e.SetCursor(document.Position{X: 0, Y: 1})
	run(t, e, b, key.Backspace)

	d := e.Document()
	if diff := cmp.Diff([]string{"foobar"}, rows(d)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if got, want := e.Cursor(), (document.Position{X: 3, Y: 0}); got != want {
		t.Errorf("Cursor() = %v, want %v", got, want)
	}
	if !d.IsDirty() {
		t.Error("document should be dirty")
	}
}

func TestScenarioDeleteAtEndOfLastLine(t *testing.T) {
	e, b := newTestEditor(t, writeFile(t, "abc\n"))
	e.SetCursor(document.Position{X: 3, Y: 0})
	run(t, e, b, key.Delete)

	d := e.Document()
	if diff := cmp.Diff([]string{"abc"}, rows(d)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if d.IsDirty() {
		t.Error("a delete that changes nothing should not set dirty")
	}
}

func TestScenarioSaveAs(t *testing.T) {
	t.Chdir(t.TempDir())

	e, b := newTestEditor(t, "")
	keys := key.Chars("xy")
	keys = append(keys, key.Ctrl('s'))
	keys = append(keys, key.Chars("t.txt")...)
	keys = append(keys, key.Enter)
	run(t, e, b, keys...)

	data, err := os.ReadFile("t.txt")
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if got := string(data); got != "xy\n" {
		t.Errorf("saved content = %q, want %q", got, "xy\n")
	}
	if got := e.Status().Text; got != StatusSaved {
		t.Errorf("status = %q, want %q", got, StatusSaved)
	}
	if e.Document().IsDirty() {
		t.Error("document should be clean after save")
	}
	if got := e.Document().Filename(); got != "t.txt" {
		t.Errorf("Filename() = %q, want %q", got, "t.txt")
	}
	if got := e.Metrics().SaveCount; got != 1 {
		t.Errorf("SaveCount = %d, want 1", got)
	}
}

func TestScenarioGraphemes(t *testing.T) {
	path := writeFile(t, "he\u0301llo\n")

	t.Run("right to end of line", func(t *testing.T) {
		e, b := newTestEditor(t, path)
		if got := e.Document().RowLen(0); got != 5 {
			t.Fatalf("RowLen(0) = %d, want 5", got)
		}
		run(t, e, b, key.Right, key.Right, key.Right, key.Right, key.Right)
		if got, want := e.Cursor(), (document.Position{X: 5, Y: 0}); got != want {
			t.Errorf("Cursor() = %v, want %v", got, want)
		}
	})

	t.Run("backspace removes whole cluster", func(t *testing.T) {
		e, b := newTestEditor(t, path)
		e.SetCursor(document.Position{X: 2, Y: 0})
		run(t, e, b, key.Backspace)
		if diff := cmp.Diff([]string{"hllo"}, rows(e.Document())); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
		if got, want := e.Cursor(), (document.Position{X: 1, Y: 0}); got != want {
			t.Errorf("Cursor() = %v, want %v", got, want)
		}
	})
}

func TestInitialStatus(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		e, _ := newTestEditor(t, "")
		if got, want := e.Status().Text, "HELP: Ctrl-s = save | Ctrl-q = quit"; got != want {
			t.Errorf("status = %q, want %q", got, want)
		}
	})

	t.Run("open failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.txt")
		e, _ := newTestEditor(t, path)
		if got, want := e.Status().Text, StatusOpenFailed+path; got != want {
			t.Errorf("status = %q, want %q", got, want)
		}
		if !e.Document().IsEmpty() || e.Document().HasFilename() {
			t.Error("failed open should leave an empty unnamed document")
		}
	})
}

func TestSavePrompt(t *testing.T) {
	tests := []struct {
		name       string
		keys       []key.Event
		wantStatus string
		wantFile   string
	}{
		{
			name:       "escape cancels",
			keys:       append(key.Chars("a.txt"), key.Escape),
			wantStatus: StatusSaveAborted,
		},
		{
			name:       "empty commit cancels",
			keys:       []key.Event{key.Enter},
			wantStatus: StatusSaveAborted,
		},
		{
			name:       "backspace edits name",
			keys:       []key.Event{key.Char('a'), key.Char('b'), key.Backspace, key.Char('c'), key.Enter},
			wantStatus: StatusSaved,
			wantFile:   "ac",
		},
		{
			name:       "control keys ignored",
			keys:       []key.Event{key.Char('f'), key.Left, key.Tab, key.Ctrl('x'), key.Enter},
			wantStatus: StatusSaved,
			wantFile:   "f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())

			e, b := newTestEditor(t, "")
			keys := []key.Event{key.Char('z'), key.Ctrl('s')}
			run(t, e, b, append(keys, tt.keys...)...)

			if got := e.Status().Text; got != tt.wantStatus {
				t.Errorf("status = %q, want %q", got, tt.wantStatus)
			}
			if tt.wantFile == "" {
				if e.Document().HasFilename() {
					t.Errorf("Filename() = %q, want none", e.Document().Filename())
				}
				if !e.Document().IsDirty() {
					t.Error("aborted save should leave the document dirty")
				}
				return
			}
			if _, err := os.Stat(tt.wantFile); err != nil {
				t.Errorf("expected file %q: %v", tt.wantFile, err)
			}
		})
	}
}

func TestSavePromptShowsInput(t *testing.T) {
	t.Chdir(t.TempDir())

	e, b := newTestEditor(t, "")
	keys := []key.Event{key.Char('z'), key.Ctrl('s')}
	keys = append(keys, key.Chars("t.t")...)
	run(t, e, b, append(keys, key.Enter)...)

	want := map[string]bool{
		`Print("Save as: ")`:    false,
		`Print("Save as: t.t")`: false,
	}
	for _, c := range b.Calls() {
		if _, ok := want[c]; ok {
			want[c] = true
		}
	}
	for call, seen := range want {
		if !seen {
			t.Errorf("expected call %s", call)
		}
	}
}

func TestSaveExistingFile(t *testing.T) {
	path := writeFile(t, "abc\n")
	e, b := newTestEditor(t, path)
	run(t, e, b, key.End, key.Char('d'), key.Ctrl('s'))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "abcd\n" {
		t.Errorf("saved content = %q, want %q", got, "abcd\n")
	}
	if got := e.Status().Text; got != StatusSaved {
		t.Errorf("status = %q, want %q", got, StatusSaved)
	}
}

func TestSaveFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("abc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e, b := newTestEditor(t, path)
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	run(t, e, b, key.Char('x'), key.Ctrl('s'))

	if got := e.Status().Text; got != StatusSaveFailed {
		t.Errorf("status = %q, want %q", got, StatusSaveFailed)
	}
	if !e.Document().IsDirty() {
		t.Error("document should stay dirty after a failed save")
	}
	if got := e.Metrics().FailedSaves; got != 1 {
		t.Errorf("FailedSaves = %d, want 1", got)
	}
}

func TestBackspaceAtOrigin(t *testing.T) {
	e, b := newTestEditor(t, writeFile(t, "abc\n"))
	run(t, e, b, key.Backspace)

	if diff := cmp.Diff([]string{"abc"}, rows(e.Document())); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if e.Document().IsDirty() {
		t.Error("document should not be dirty")
	}
	// initial frame, frame after Backspace, goodbye frame
	if got := b.Flushes(); got != 3 {
		t.Errorf("Flushes() = %d, want 3", got)
	}
}

func TestIgnoredKeys(t *testing.T) {
	e, b := newTestEditor(t, writeFile(t, "abc\n"))
	run(t, e, b, key.Escape, key.F(5), key.Alt('x'), key.Ctrl('x'), key.Special(key.KeyInsert))

	if e.Document().IsDirty() {
		t.Error("ignored keys should not modify the document")
	}
	if got := e.Cursor(); !got.IsOrigin() {
		t.Errorf("Cursor() = %v, want origin", got)
	}
	if got := e.Metrics().KeyCount; got != 6 {
		t.Errorf("KeyCount = %d, want 6", got)
	}
}

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		name string
		from document.Position
		keys []key.Event
		want document.Position
	}{
		{"up at top", document.Position{X: 0, Y: 0}, []key.Event{key.Up}, document.Position{X: 0, Y: 0}},
		{"down to virtual row", document.Position{X: 0, Y: 1}, []key.Event{key.Down}, document.Position{X: 0, Y: 2}},
		{"down past virtual row", document.Position{X: 0, Y: 2}, []key.Event{key.Down}, document.Position{X: 0, Y: 2}},
		{"down clamps column", document.Position{X: 3, Y: 0}, []key.Event{key.Down}, document.Position{X: 2, Y: 1}},
		{"down to virtual row clamps column", document.Position{X: 2, Y: 1}, []key.Event{key.Down}, document.Position{X: 0, Y: 2}},
		{"left wraps to previous row end", document.Position{X: 0, Y: 1}, []key.Event{key.Left}, document.Position{X: 3, Y: 0}},
		{"left at origin", document.Position{X: 0, Y: 0}, []key.Event{key.Left}, document.Position{X: 0, Y: 0}},
		{"left within row", document.Position{X: 2, Y: 0}, []key.Event{key.Left}, document.Position{X: 1, Y: 0}},
		{"right wraps to next row", document.Position{X: 3, Y: 0}, []key.Event{key.Right}, document.Position{X: 0, Y: 1}},
		{"right wraps to virtual row", document.Position{X: 2, Y: 1}, []key.Event{key.Right}, document.Position{X: 0, Y: 2}},
		{"right on virtual row", document.Position{X: 0, Y: 2}, []key.Event{key.Right}, document.Position{X: 0, Y: 2}},
		{"home", document.Position{X: 2, Y: 0}, []key.Event{key.Home}, document.Position{X: 0, Y: 0}},
		{"end", document.Position{X: 0, Y: 0}, []key.Event{key.End}, document.Position{X: 3, Y: 0}},
		{"page down clamps", document.Position{X: 1, Y: 0}, []key.Event{key.PageDown}, document.Position{X: 0, Y: 2}},
		{"page up clamps", document.Position{X: 0, Y: 2}, []key.Event{key.PageUp}, document.Position{X: 0, Y: 0}},
		{"page up keeps column", document.Position{X: 1, Y: 1}, []key.Event{key.PageUp}, document.Position{X: 1, Y: 0}},
	}

	path := writeFile(t, "abc\nde\n")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, b := newTestEditor(t, path)
			e.cursor = tt.from
			press(t, e, b, tt.keys...)
			if got := e.Cursor(); got != tt.want {
				t.Errorf("Cursor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPageMotion(t *testing.T) {
	content := ""
	for range 30 {
		content += "line\n"
	}
	e, b := newTestEditor(t, writeFile(t, content))

	// 10 text rows: a page is 9 rows
	press(t, e, b, key.PageDown)
	if got := e.Cursor().Y; got != 9 {
		t.Errorf("after PageDown y = %d, want 9", got)
	}
	press(t, e, b, key.PageDown, key.PageDown, key.PageDown)
	if got := e.Cursor().Y; got != 30 {
		t.Errorf("after PageDown x4 y = %d, want 30", got)
	}
	if got, want := e.Offset(), (document.Position{X: 0, Y: 21}); got != want {
		t.Errorf("Offset() = %v, want %v", got, want)
	}
	press(t, e, b, key.PageUp)
	if got := e.Cursor().Y; got != 21 {
		t.Errorf("after PageUp y = %d, want 21", got)
	}
}

func TestHorizontalScroll(t *testing.T) {
	long := ""
	for range 100 {
		long += "x"
	}
	e, b := newTestEditor(t, writeFile(t, long+"\n"))

	press(t, e, b, key.End)
	if got, want := e.Offset(), (document.Position{X: 21, Y: 0}); got != want {
		t.Errorf("Offset() = %v, want %v", got, want)
	}

	press(t, e, b, key.Home)
	if got := e.Offset(); !got.IsOrigin() {
		t.Errorf("Offset() = %v, want origin", got)
	}
}

func TestCursorInvariants(t *testing.T) {
	e, b := newTestEditor(t, writeFile(t, "alpha\n\nbeta gamma\ndéjà vu\n\tx\n"))
	keys := []key.Event{
		key.Up, key.Down, key.Left, key.Right, key.Home, key.End,
		key.PageUp, key.PageDown, key.Backspace, key.Delete,
		key.Enter, key.Tab, key.Char('q'), key.Char('é'),
	}
	rng := rand.New(rand.NewPCG(1, 2))

	for i := range 500 {
		ev := keys[rng.IntN(len(keys))]
		press(t, e, b, ev)

		d := e.Document()
		c := e.Cursor()
		if c.Y < 0 || c.Y > d.Len() {
			t.Fatalf("step %d (%v): cursor %v outside rows [0, %d]", i, ev, c, d.Len())
		}
		if c.Y < d.Len() && (c.X < 0 || c.X > d.RowLen(c.Y)) {
			t.Fatalf("step %d (%v): cursor %v past row length %d", i, ev, c, d.RowLen(c.Y))
		}
		if c.Y == d.Len() && c.X != 0 {
			t.Fatalf("step %d (%v): cursor %v on virtual row must be at column 0", i, ev, c)
		}
		if !e.view.Contains(c.X, c.Y) {
			t.Fatalf("step %d (%v): cursor %v not visible at offset %v", i, ev, c, e.Offset())
		}
	}
}

func TestRunTerminalErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("read failure", func(t *testing.T) {
		e, b := newTestEditor(t, "")
		b.FailReads(boom)

		err := e.Run()
		var terr *TerminalError
		if !errors.As(err, &terr) {
			t.Fatalf("Run() error = %v, want *TerminalError", err)
		}
		if terr.Op != "read key" {
			t.Errorf("Op = %q, want %q", terr.Op, "read key")
		}
		if !errors.Is(err, boom) {
			t.Errorf("Run() error should wrap %v", boom)
		}

		calls := b.Calls()
		if diff := cmp.Diff([]string{"ClearScreen", "Flush"}, calls[len(calls)-2:]); diff != "" {
			t.Errorf("final calls mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("flush failure", func(t *testing.T) {
		e, b := newTestEditor(t, "")
		b.FailFlush(boom)

		err := e.Run()
		var terr *TerminalError
		if !errors.As(err, &terr) || terr.Op != "draw" {
			t.Fatalf("Run() error = %v, want draw *TerminalError", err)
		}
	})

	t.Run("failure inside prompt", func(t *testing.T) {
		e, b := newTestEditor(t, "")
		b.PushKeys(key.Char('a'), key.Ctrl('s'), key.Char('f'))

		err := e.Run()
		if !errors.Is(err, backend.ErrNoMoreKeys) {
			t.Fatalf("Run() error = %v, want %v", err, backend.ErrNoMoreKeys)
		}
		if e.Document().HasFilename() {
			t.Error("interrupted prompt should not set a filename")
		}
	})
}

func TestGoodbyeFrame(t *testing.T) {
	e, b := newTestEditor(t, writeFile(t, "abc\n"))
	run(t, e, b)

	if !e.ShouldQuit() {
		t.Error("ShouldQuit() = false after Ctrl-q")
	}
	want := []string{"Goodbye.", "", "", "", "", "", "", "", "", "", "", ""}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}
