package blobstore

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestSaveAndOpen(t *testing.T) {
	store := NewInMemoryMediaStore()
	ctx := context.Background()

	meta, err := store.Save(ctx, MediaMetadata{
		UserID:      "user-1",
		Kind:        "hydration",
		ContentType: "video/mp4",
	}, bytes.NewReader([]byte("clip bytes")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.ID == "" {
		t.Error("expected generated id")
	}
	if meta.Size != int64(len("clip bytes")) {
		t.Errorf("size = %d", meta.Size)
	}
	if meta.Hash == "" {
		t.Error("expected content hash")
	}

	rc, got, err := store.Open(ctx, meta.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "clip bytes" {
		t.Errorf("content = %q", data)
	}
	if got.UserID != "user-1" || got.Kind != "hydration" {
		t.Errorf("metadata = %+v", got)
	}
}

func TestSaveRejectsDisallowedContentType(t *testing.T) {
	store := NewInMemoryMediaStore()

	_, err := store.Save(context.Background(), MediaMetadata{
		UserID:      "user-1",
		Kind:        "hydration",
		ContentType: "application/pdf",
	}, bytes.NewReader([]byte("not media")))
	if err != ErrInvalidContentType {
		t.Errorf("err = %v, want ErrInvalidContentType", err)
	}
}

func TestOpenUnknownID(t *testing.T) {
	store := NewInMemoryMediaStore()

	_, _, err := store.Open(context.Background(), "missing")
	if err != ErrMediaNotFound {
		t.Errorf("err = %v, want ErrMediaNotFound", err)
	}
}

func TestListByUserFiltersByKind(t *testing.T) {
	store := NewInMemoryMediaStore()
	ctx := context.Background()

	for _, kind := range []string{"hydration", "hydration", "jaundice"} {
		ct := "video/mp4"
		if kind == "jaundice" {
			ct = "image/jpeg"
		}
		if _, err := store.Save(ctx, MediaMetadata{UserID: "user-1", Kind: kind, ContentType: ct}, bytes.NewReader([]byte("x"))); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	if _, err := store.Save(ctx, MediaMetadata{UserID: "user-2", Kind: "hydration", ContentType: "video/mp4"}, bytes.NewReader([]byte("x"))); err != nil {
		t.Fatalf("save: %v", err)
	}

	all, err := store.ListByUser(ctx, "user-1", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all = %d, want 3", len(all))
	}

	hydration, err := store.ListByUser(ctx, "user-1", "hydration")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(hydration) != 2 {
		t.Errorf("hydration = %d, want 2", len(hydration))
	}
}
