// Package clipboard provides read access to the system clipboard through a
// small capability interface. The reference implementation shells out to the
// platform paste utility (pbpaste on macOS); platforms without an
// implementation report ErrUnsupported instead of being compiled out at the
// call sites.
package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

var (
	// ErrUnsupported is returned on platforms with no reader implementation.
	ErrUnsupported = errors.New("clipboard: reading not supported on this platform")
	// ErrProcessFailed is returned when the paste utility exits non-zero.
	ErrProcessFailed = errors.New("clipboard: paste utility failed")
	// ErrDecodeFailed is returned when clipboard output is not valid UTF-8 text.
	ErrDecodeFailed = errors.New("clipboard: content is not valid text")
)

// Reader fetches the current system clipboard text. Implementations must be
// safe for repeated calls from a single goroutine.
type Reader interface {
	Read() (string, error)
}

// SystemReader reads from the real system clipboard. The zero value is ready
// to use.
type SystemReader struct{}

// NewSystemReader creates a reader backed by the platform clipboard.
func NewSystemReader() *SystemReader {
	return &SystemReader{}
}

// WriteString copies plain text to the system clipboard.
func WriteString(s string) error {
	return atotto.WriteAll(s)
}
