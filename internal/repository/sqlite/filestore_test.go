package sqlite_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ecoswap/ecoswap/internal/domain"
)

func TestFileStoreSaveAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	data := []byte{0x89, 'P', 'N', 'G'}
	if err := db.FileStore().Save(ctx, "key-1", "image/png", data); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, contentType, err := db.FileStore().Get(ctx, "key-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("expected %v, got %v", data, got)
	}
	if contentType != "image/png" {
		t.Fatalf("expected image/png, got %s", contentType)
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	db := newTestDB(t)

	if _, _, err := db.FileStore().Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStoreDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.FileStore().Save(ctx, "key-1", "image/jpeg", []byte{1, 2, 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := db.FileStore().Delete(ctx, "key-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, _, err := db.FileStore().Get(ctx, "key-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing key is a no-op.
	if err := db.FileStore().Delete(ctx, "missing"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}
