package history

import "time"

// DefaultContentType tags entries captured as plain text.
const DefaultContentType = "text"

// Entry is one persisted clipboard capture. Entries are immutable after
// creation; the only mutation the store supports is deletion.
type Entry struct {
	ID          int64     `json:"id" yaml:"id"`
	Content     string    `json:"content" yaml:"content"`
	ContentType string    `json:"content_type" yaml:"content_type"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	CharCount   int       `json:"char_count" yaml:"char_count"`

	// Preview is derived from Content on every read, never stored.
	Preview string `json:"preview" yaml:"preview"`
}
