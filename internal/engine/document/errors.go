package document

import (
	"errors"
	"fmt"
)

// Document errors.
var (
	// ErrInvalidUTF8 indicates the file content is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")
)

// FileError represents a failed filesystem operation on a document.
type FileError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
