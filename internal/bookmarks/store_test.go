package bookmarks

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jimezsa/jobboard/internal/storage"
	"github.com/rs/zerolog"
)

type failingStorage struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, f.getErr
}

func (f *failingStorage) Set(context.Context, string, string) error {
	f.sets++
	return f.setErr
}

func stored(t *testing.T, st storage.Storage) string {
	t.Helper()
	raw, ok, err := st.Get(context.Background(), StorageKey)
	if err != nil || !ok {
		t.Fatalf("Get(%q) = %q, %v, %v", StorageKey, raw, ok, err)
	}
	return raw
}

func TestOpenMissingKeyIsEmpty(t *testing.T) {
	s := Open(context.Background(), storage.NewMemoryStorage(), zerolog.Nop())
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestOpenMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"{not json", `{"ids":[1]}`, `["a","b"]`, "null", ""} {
		st := storage.NewMemoryStorage()
		_ = st.Set(ctx, StorageKey, raw)
		var logs bytes.Buffer
		s := Open(ctx, st, zerolog.New(&logs))
		if s.Len() != 0 {
			t.Fatalf("Open(%q) Len() = %d, want 0", raw, s.Len())
		}
	}
}

func TestOpenLogsAndSwallowsReadErrors(t *testing.T) {
	var logs bytes.Buffer
	s := Open(context.Background(), &failingStorage{getErr: errors.New("disk gone")}, zerolog.New(&logs))
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if !strings.Contains(logs.String(), "disk gone") {
		t.Fatalf("expected read error to be logged, got %q", logs.String())
	}
}

func TestToggleWritesThrough(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStorage()
	s := Open(ctx, st, zerolog.Nop())

	if !s.Toggle(ctx, 7) {
		t.Fatalf("Toggle(7) = false, want true")
	}
	s.Toggle(ctx, 3)
	if got := stored(t, st); got != "[7,3]" {
		t.Fatalf("stored = %q, want %q", got, "[7,3]")
	}
	if !s.IsBookmarked(3) || s.IsBookmarked(4) {
		t.Fatalf("IsBookmarked mismatch: %v", s.IDs())
	}

	reopened := Open(ctx, st, zerolog.Nop())
	if got := reopened.IDs(); !reflect.DeepEqual(got, []int{7, 3}) {
		t.Fatalf("reopened IDs() = %v, want [7 3]", got)
	}
}

func TestToggleTwiceRestoresStoredEncoding(t *testing.T) {
	ctx := context.Background()
	const seeded = "[9,1]"
	st := storage.NewMemoryStorage()
	_ = st.Set(ctx, StorageKey, seeded)
	s := Open(ctx, st, zerolog.Nop())

	for _, id := range []int{5, 42} {
		if s.IsBookmarked(id) {
			t.Fatalf("IsBookmarked(%d) = true before toggling", id)
		}
		s.Toggle(ctx, id)
		s.Toggle(ctx, id)
		if s.IsBookmarked(id) {
			t.Fatalf("IsBookmarked(%d) = true after double toggle", id)
		}
		if got := stored(t, st); got != seeded {
			t.Fatalf("stored = %q after double toggle of %d, want %q", got, id, seeded)
		}
	}
	if got := s.IDs(); !reflect.DeepEqual(got, []int{9, 1}) {
		t.Fatalf("IDs() = %v, want [9 1]", got)
	}
}

func TestToggleRemovesInPlace(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStorage()
	_ = st.Set(ctx, StorageKey, "[9,1,5]")
	s := Open(ctx, st, zerolog.Nop())

	if s.Toggle(ctx, 1) {
		t.Fatalf("Toggle(1) = true, want false")
	}
	if got := stored(t, st); got != "[9,5]" {
		t.Fatalf("stored = %q, want %q", got, "[9,5]")
	}
	s.Toggle(ctx, 1)
	if got := stored(t, st); got != "[9,5,1]" {
		t.Fatalf("stored = %q, want %q", got, "[9,5,1]")
	}
}

func TestToggleSwallowsWriteErrors(t *testing.T) {
	var logs bytes.Buffer
	st := &failingStorage{setErr: errors.New("quota exceeded")}
	s := Open(context.Background(), st, zerolog.New(&logs))

	if !s.Toggle(context.Background(), 1) {
		t.Fatalf("Toggle() = false, want true")
	}
	if !s.IsBookmarked(1) {
		t.Fatalf("in-memory state lost after failed write")
	}
	if st.sets != 1 {
		t.Fatalf("Set calls = %d, want 1", st.sets)
	}
	if !strings.Contains(logs.String(), "quota exceeded") {
		t.Fatalf("expected write error to be logged, got %q", logs.String())
	}
}

func TestOpenDeduplicates(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStorage()
	_ = st.Set(ctx, StorageKey, "[4, 2, 4]")
	s := Open(ctx, st, zerolog.Nop())
	if got := s.IDs(); !reflect.DeepEqual(got, []int{4, 2}) {
		t.Fatalf("IDs() = %v, want [4 2]", got)
	}
}

func TestEncodeDecode(t *testing.T) {
	if got := Encode(nil); got != "[]" {
		t.Fatalf("Encode(nil) = %q, want []", got)
	}
	got, err := Decode("  ")
	if err != nil || len(got) != 0 {
		t.Fatalf("Decode(blank) = %v, %v", got, err)
	}
	if _, err := Decode("[1,"); err == nil {
		t.Fatalf("Decode() error = nil, want error")
	}
}
