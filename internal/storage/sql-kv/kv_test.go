package sql_kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/iamvkosarev/krishisahay-bot/internal/storage"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestKVUpsert(t *testing.T) {
	ctx := context.Background()
	kv := openTestKV(t)

	if err := kv.Set(ctx, "pref_audio_1", []byte("true")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set(ctx, "pref_audio_1", []byte("false")); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}
	got, err := kv.Get(ctx, "pref_audio_1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "false" {
		t.Errorf("expected overwritten value, got %q", got)
	}

	var count int64
	if err := kv.db.Model(&entry{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected a single row, got %d", count)
	}
}

func TestKVMissingAndDelete(t *testing.T) {
	ctx := context.Background()
	kv := openTestKV(t)

	if _, err := kv.Get(ctx, "nope"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
	if err := kv.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := kv.Get(ctx, "k"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestKVPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	kv, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err = kv.Set(ctx, "history_7", []byte(`{"version":1,"entries":[]}`)); err != nil {
		t.Fatal(err)
	}
	if err = kv.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	got, err := reopened.Get(ctx, "history_7")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != `{"version":1,"entries":[]}` {
		t.Errorf("unexpected value %q", got)
	}
}
