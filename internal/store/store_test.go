package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVGetMissing(t *testing.T) {
	kv := openTestStore(t).KV()

	v, ok, err := kv.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != nil {
		t.Errorf("get missing = (%q, %v), want (nil, false)", v, ok)
	}
}

func TestKVApplyPutAndOverwrite(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	var b Batch
	b.Put("userName", []byte("Ada"))
	b.Put("userAge", []byte("9"))
	if err := kv.Apply(ctx, b); err != nil {
		t.Fatalf("apply: %v", err)
	}

	var b2 Batch
	b2.Put("userName", []byte("Grace"))
	if err := kv.Apply(ctx, b2); err != nil {
		t.Fatalf("apply overwrite: %v", err)
	}

	v, ok, err := kv.Get(ctx, "userName")
	if err != nil || !ok {
		t.Fatalf("get userName: ok=%v err=%v", ok, err)
	}
	if string(v) != "Grace" {
		t.Errorf("userName = %q, want Grace", v)
	}

	v, _, _ = kv.Get(ctx, "userAge")
	if string(v) != "9" {
		t.Errorf("userAge = %q, want 9", v)
	}
}

func TestKVEmptyValueIsPresent(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	var b Batch
	b.Put("userName", nil)
	if err := kv.Apply(ctx, b); err != nil {
		t.Fatalf("apply: %v", err)
	}

	v, ok, err := kv.Get(ctx, "userName")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected empty value to be stored")
	}
	if len(v) != 0 {
		t.Errorf("value = %q, want empty", v)
	}
}

func TestKVDeleteAndKeys(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	var b Batch
	for _, k := range []string{"c", "a", "b", "BinaryGamePhase"} {
		b.Put(k, []byte("x"))
	}
	if err := kv.Apply(ctx, b); err != nil {
		t.Fatalf("apply: %v", err)
	}

	keys, err := kv.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	want := []string{"BinaryGamePhase", "a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	var del Batch
	del.Delete("a", "BinaryGamePhase", "missing")
	if err := kv.Apply(ctx, del); err != nil {
		t.Fatalf("apply delete: %v", err)
	}

	keys, err = kv.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "c" {
		t.Errorf("keys after delete = %v, want [b c]", keys)
	}
}

func TestKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var b Batch
	b.Put("hasLaunchedBefore", []byte("true"))
	if err := s.KV().Apply(ctx, b); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.KV().Get(ctx, "hasLaunchedBefore")
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if string(v) != "true" {
		t.Errorf("value = %q, want true", v)
	}
}

func TestBatchEmpty(t *testing.T) {
	var b Batch
	if !b.Empty() {
		t.Error("zero batch should be empty")
	}
	b.Delete("x")
	if b.Empty() {
		t.Error("batch with delete should not be empty")
	}
}

func TestDefaultDBPathFromEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "p.db")
	t.Setenv("PLAYTRACK_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultDBPathXDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("PLAYTRACK_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	want := filepath.Join(dataHome, "playtrack", "progress.db")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
