package history

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func mustInsert(t *testing.T, store *Store, content string) int64 {
	t.Helper()

	id, ok, err := store.Insert(content, "")
	if err != nil {
		t.Fatalf("Insert(%q) failed: %v", content, err)
	}
	if !ok {
		t.Fatalf("Insert(%q) was skipped, expected a new entry", content)
	}
	return id
}

func TestInit_Idempotent(t *testing.T) {
	store := newTestStore(t)

	// Open already ran Init; running it again must not fail.
	if err := store.Init(); err != nil {
		t.Fatalf("second Init() failed: %v", err)
	}
}

func TestInsert_ReturnsIncreasingIDs(t *testing.T) {
	store := newTestStore(t)

	first := mustInsert(t, store, "first")
	second := mustInsert(t, store, "second")

	if second <= first {
		t.Errorf("ids not increasing: first=%d second=%d", first, second)
	}

	entries, err := store.Fetch(1)
	if err != nil {
		t.Fatalf("Fetch(1) failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Fetch(1) returned %d entries, want 1", len(entries))
	}
	if entries[0].ID != second || entries[0].Content != "second" {
		t.Errorf("Fetch(1) = {id=%d content=%q}, want the most recent insert", entries[0].ID, entries[0].Content)
	}
}

func TestInsert_Skips(t *testing.T) {
	tests := []struct {
		name    string
		seed    []string
		content string
	}{
		{
			name:    "empty content",
			content: "",
		},
		{
			name:    "whitespace-only content",
			content: "   \n\t  ",
		},
		{
			name:    "consecutive duplicate",
			seed:    []string{"same"},
			content: "same",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			for _, s := range tt.seed {
				mustInsert(t, store, s)
			}

			before, err := store.Count()
			if err != nil {
				t.Fatalf("Count() failed: %v", err)
			}

			id, ok, err := store.Insert(tt.content, "")
			if err != nil {
				t.Fatalf("Insert(%q) returned error: %v", tt.content, err)
			}
			if ok || id != 0 {
				t.Errorf("Insert(%q) = (%d, %v), want skip", tt.content, id, ok)
			}

			after, err := store.Count()
			if err != nil {
				t.Fatalf("Count() failed: %v", err)
			}
			if after != before {
				t.Errorf("row count changed from %d to %d on skipped insert", before, after)
			}
		})
	}
}

func TestInsert_AllowsNonConsecutiveRepeat(t *testing.T) {
	store := newTestStore(t)

	mustInsert(t, store, "x")
	mustInsert(t, store, "y")
	mustInsert(t, store, "x")

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3 (non-consecutive repeats allowed)", count)
	}
}

func TestInsert_DedupIsCaseSensitive(t *testing.T) {
	store := newTestStore(t)

	mustInsert(t, store, "Hello")
	mustInsert(t, store, "hello")

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2 (dedup must compare exact strings)", count)
	}
}

func TestInsert_CharCountAndContentType(t *testing.T) {
	store := newTestStore(t)

	id, ok, err := store.Insert("héllo 世界", "snippet")
	if err != nil || !ok {
		t.Fatalf("Insert() = (%d, %v, %v), want success", id, ok, err)
	}

	entry, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get(%d) failed: %v", id, err)
	}
	if entry == nil {
		t.Fatalf("Get(%d) returned nil", id)
	}
	if entry.CharCount != 8 {
		t.Errorf("CharCount = %d, want 8 (unicode scalar count, not bytes)", entry.CharCount)
	}
	if entry.ContentType != "snippet" {
		t.Errorf("ContentType = %q, want %q", entry.ContentType, "snippet")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want store-assigned timestamp")
	}
}

func TestInsert_DefaultContentType(t *testing.T) {
	store := newTestStore(t)

	id := mustInsert(t, store, "plain")
	entry, err := store.Get(id)
	if err != nil || entry == nil {
		t.Fatalf("Get(%d) = (%v, %v)", id, entry, err)
	}
	if entry.ContentType != DefaultContentType {
		t.Errorf("ContentType = %q, want %q", entry.ContentType, DefaultContentType)
	}
}

func TestFetch_OrderAndLimit(t *testing.T) {
	store := newTestStore(t)

	mustInsert(t, store, "a")
	mustInsert(t, store, "b")
	mustInsert(t, store, "c")

	entries, err := store.Fetch(2)
	if err != nil {
		t.Fatalf("Fetch(2) failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Fetch(2) returned %d entries, want 2", len(entries))
	}
	if entries[0].Content != "c" || entries[1].Content != "b" {
		t.Errorf("Fetch(2) = [%q, %q], want newest first [c, b]", entries[0].Content, entries[1].Content)
	}
}

func TestFetch_ComputesPreview(t *testing.T) {
	store := newTestStore(t)

	mustInsert(t, store, "  line one  \n\n  line two  ")

	entries, err := store.Fetch(1)
	if err != nil {
		t.Fatalf("Fetch(1) failed: %v", err)
	}
	if entries[0].Preview != "line one line two" {
		t.Errorf("Preview = %q, want %q", entries[0].Preview, "line one line two")
	}
	// The stored content is untouched by preview derivation.
	if entries[0].Content != "  line one  \n\n  line two  " {
		t.Errorf("Content was modified: %q", entries[0].Content)
	}
}

func TestSearch(t *testing.T) {
	store := newTestStore(t)

	mustInsert(t, store, "foo bar")
	mustInsert(t, store, "nothing here")
	mustInsert(t, store, "more foo")

	entries, err := store.Search("foo", 10)
	if err != nil {
		t.Fatalf("Search(foo) failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Search(foo) returned %d entries, want 2", len(entries))
	}
	if entries[0].Content != "more foo" || entries[1].Content != "foo bar" {
		t.Errorf("Search(foo) = [%q, %q], want newest first", entries[0].Content, entries[1].Content)
	}
}

func TestSearch_LiteralWildcards(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "percent", query: "100%", want: "progress: 100% done"},
		{name: "underscore", query: "my_var", want: "my_var = 1"},
		{name: "backslash", query: `a\b`, want: `path a\b here`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			mustInsert(t, store, tt.want)
			mustInsert(t, store, "decoy 100x done my-var a-b")

			entries, err := store.Search(tt.query, 10)
			if err != nil {
				t.Fatalf("Search(%q) failed: %v", tt.query, err)
			}
			if len(entries) != 1 {
				t.Fatalf("Search(%q) returned %d entries, want 1 (wildcards must match literally)", tt.query, len(entries))
			}
			if entries[0].Content != tt.want {
				t.Errorf("Search(%q) = %q, want %q", tt.query, entries[0].Content, tt.want)
			}
		})
	}
}

func TestSearch_CaseSensitive(t *testing.T) {
	store := newTestStore(t)

	mustInsert(t, store, "Hello FOO world")
	mustInsert(t, store, "hello foo world")

	entries, err := store.Search("foo", 10)
	if err != nil {
		t.Fatalf("Search(foo) failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Search(foo) returned %d entries, want 1 (must not match FOO)", len(entries))
	}
	if entries[0].Content != "hello foo world" {
		t.Errorf("Search(foo) = %q, want the lowercase match only", entries[0].Content)
	}

	entries, err = store.Search("FOO", 10)
	if err != nil {
		t.Fatalf("Search(FOO) failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Content != "Hello FOO world" {
		t.Errorf("Search(FOO) matched %d entries, want only the uppercase entry", len(entries))
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	id := mustInsert(t, store, "to delete")
	if err := store.Delete(id); err != nil {
		t.Fatalf("Delete(%d) failed: %v", id, err)
	}

	entry, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get(%d) failed: %v", id, err)
	}
	if entry != nil {
		t.Errorf("entry %d still present after Delete", id)
	}
}

func TestDelete_MissingIDIsNoop(t *testing.T) {
	store := newTestStore(t)

	mustInsert(t, store, "keep me")

	if err := store.Delete(9999); err != nil {
		t.Fatalf("Delete(9999) returned error: %v", err)
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1 (delete of missing id must not remove rows)", count)
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)

	mustInsert(t, store, "a")
	mustInsert(t, store, "b")

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d after Clear, want 0", count)
	}
}

func TestTrim(t *testing.T) {
	store := newTestStore(t)

	contents := []string{"one", "two", "three", "four", "five"}
	for _, c := range contents {
		mustInsert(t, store, c)
	}

	removed, err := store.Trim(2)
	if err != nil {
		t.Fatalf("Trim(2) failed: %v", err)
	}
	if removed != 3 {
		t.Errorf("Trim(2) removed %d, want 3", removed)
	}

	entries, err := store.Fetch(10)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Fetch() returned %d entries after Trim(2), want 2", len(entries))
	}
	if entries[0].Content != "five" || entries[1].Content != "four" {
		t.Errorf("Trim kept [%q, %q], want the two most recent [five, four]", entries[0].Content, entries[1].Content)
	}
}

func TestTrim_NoopWhenUnderCap(t *testing.T) {
	store := newTestStore(t)

	mustInsert(t, store, "only")

	removed, err := store.Trim(10)
	if err != nil {
		t.Fatalf("Trim(10) failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("Trim(10) removed %d, want 0", removed)
	}
}

func TestGet_Missing(t *testing.T) {
	store := newTestStore(t)

	entry, err := store.Get(42)
	if err != nil {
		t.Fatalf("Get(42) returned error: %v", err)
	}
	if entry != nil {
		t.Errorf("Get(42) = %+v, want nil for missing entry", entry)
	}
}
