//go:build darwin

package clipboard

import (
	"fmt"
	"os/exec"
	"unicode/utf8"
)

// Read fetches the current clipboard text via pbpaste.
func (r *SystemReader) Read() (string, error) {
	out, err := exec.Command("pbpaste").Output()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProcessFailed, err)
	}
	if !utf8.Valid(out) {
		return "", ErrDecodeFailed
	}
	return string(out), nil
}
