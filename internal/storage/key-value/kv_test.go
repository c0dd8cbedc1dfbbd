package key_value

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/iamvkosarev/krishisahay-bot/internal/storage"
	"github.com/redis/go-redis/v9"
)

func newTestKV(t *testing.T) (*KV, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewKV(rdb, "krishisahay:"), mr
}

func TestKVSetGet(t *testing.T) {
	ctx := context.Background()
	kv, mr := newTestKV(t)

	if err := kv.Set(ctx, "history_1", []byte(`{"version":1}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := kv.Get(ctx, "history_1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"version":1}` {
		t.Errorf("unexpected value %q", got)
	}

	stored, err := mr.Get("krishisahay:history_1")
	if err != nil {
		t.Fatalf("expected prefixed key in redis: %v", err)
	}
	if stored != `{"version":1}` {
		t.Errorf("unexpected stored value %q", stored)
	}
}

func TestKVGetMissing(t *testing.T) {
	kv, _ := newTestKV(t)
	if _, err := kv.Get(context.Background(), "missing"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestKVDelete(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestKV(t)
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

func TestHistoryStorageOverRedis(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestKV(t)
	historyStorage := storage.NewHistoryStorage(kv)

	legacy := `[{"title":"How do I grow wheat?","messages":[` +
		`{"type":"user","content":"How do I grow wheat?","timestamp":"2024-11-02T10:00:00.000Z"},` +
		`{"type":"assistant","content":"Sow in November.","timestamp":"2024-11-02T10:00:05.000Z"}],` +
		`"timestamp":"2024-11-02T10:00:05.000Z"}]`
	if err := kv.Set(ctx, "history_42", []byte(legacy)); err != nil {
		t.Fatal(err)
	}

	entries, err := historyStorage.LoadHistory(ctx, "42")
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	if len(entries) != 1 || len(entries[0].Messages) != 2 {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if entries[0].Messages[1].Content != "Sow in November." {
		t.Errorf("unexpected answer %q", entries[0].Messages[1].Content)
	}
}
