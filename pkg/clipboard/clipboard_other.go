//go:build !darwin

package clipboard

// Read always fails on platforms without a reader implementation. Callers
// should treat ErrUnsupported as "skip", not as fatal.
func (r *SystemReader) Read() (string, error) {
	return "", ErrUnsupported
}
