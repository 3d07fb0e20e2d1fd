package document

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dshills/hecto/internal/engine/row"
)

// filePerm is used when save creates a new file.
const filePerm = 0o644

// Document is an ordered sequence of rows with an optional filename.
type Document struct {
	rows     []*row.Row
	filename string
	dirty    bool
}

// New creates an empty document with no filename.
func New() *Document {
	return &Document{}
}

// Open reads path as UTF-8 and builds one row per line. Lines are separated
// by '\n'; carriage returns are dropped. An empty file yields no rows.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &FileError{Op: "open", Path: path, Err: ErrInvalidUTF8}
	}

	doc := FromString(string(data))
	doc.filename = path
	return doc, nil
}

// FromString builds a clean, unnamed document from text using the same line
// splitting rules as Open.
func FromString(content string) *Document {
	doc := New()
	if content == "" {
		return doc
	}
	content = strings.TrimSuffix(content, "\n")
	for _, line := range strings.Split(content, "\n") {
		doc.rows = append(doc.rows, row.New(strings.ReplaceAll(line, "\r", "")))
	}
	return doc
}

// Save writes every row followed by '\n' to the document's file and clears
// the dirty flag. Without a filename Save does nothing and returns nil; the
// caller is expected to assign one first.
func (d *Document) Save() error {
	if d.filename == "" {
		return nil
	}
	if err := os.WriteFile(d.filename, d.Content(), filePerm); err != nil {
		return &FileError{Op: "save", Path: d.filename, Err: err}
	}
	d.dirty = false
	return nil
}

// Content returns the bytes Save would write.
func (d *Document) Content() []byte {
	var buf bytes.Buffer
	for _, r := range d.rows {
		buf.Write(r.Bytes())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Insert inserts c at pos. A '\n' splits the row; inserting on the virtual
// line past the end appends a new row.
func (d *Document) Insert(pos Position, c rune) {
	if pos.Y > len(d.rows) {
		return
	}
	d.dirty = true
	if c == '\n' {
		d.insertNewline(pos)
		return
	}
	if pos.Y == len(d.rows) {
		r := row.New("")
		r.Insert(0, c)
		d.rows = append(d.rows, r)
		return
	}
	d.rows[pos.Y].Insert(pos.X, c)
}

// insertNewline splits the row at pos, or appends an empty row when pos is
// on the virtual last line.
func (d *Document) insertNewline(pos Position) {
	if pos.Y >= len(d.rows) {
		d.rows = append(d.rows, row.New(""))
		return
	}
	tail := d.rows[pos.Y].Split(pos.X)
	d.rows = append(d.rows, nil)
	copy(d.rows[pos.Y+2:], d.rows[pos.Y+1:])
	d.rows[pos.Y+1] = tail
}

// Delete removes the grapheme at pos. At the end of a row that has a
// successor the two rows are joined. Deletes that change nothing (past the
// last row, or at the end of the last row) leave the dirty flag alone.
func (d *Document) Delete(pos Position) {
	if pos.Y >= len(d.rows) {
		return
	}
	current := d.rows[pos.Y]
	if pos.X == current.Len() && pos.Y+1 < len(d.rows) {
		current.Append(d.rows[pos.Y+1])
		d.rows = append(d.rows[:pos.Y+1], d.rows[pos.Y+2:]...)
		d.dirty = true
		return
	}
	if current.Delete(pos.X) {
		d.dirty = true
	}
}

// Row returns the row at index, or nil if index is out of range.
func (d *Document) Row(index int) *row.Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

// RowLen returns the grapheme length of the row at index, or 0 when there
// is no such row.
func (d *Document) RowLen(index int) int {
	if r := d.Row(index); r != nil {
		return r.Len()
	}
	return 0
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.rows)
}

// IsEmpty reports whether the document has no rows.
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

// IsDirty reports whether the document has unsaved changes.
func (d *Document) IsDirty() bool {
	return d.dirty
}

// Filename returns the backing file path, empty when unnamed.
func (d *Document) Filename() string {
	return d.filename
}

// HasFilename reports whether a backing file path is set.
func (d *Document) HasFilename() bool {
	return d.filename != ""
}

// SetFilename assigns the path used by Save.
func (d *Document) SetFilename(path string) {
	d.filename = path
}
