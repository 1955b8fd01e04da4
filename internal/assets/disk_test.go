package assets_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Black-Room-Studios/livevibe-server/internal/assets"
)

func TestDiskStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := assets.NewDiskStore(dir, "http://localhost:3000")
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}

	ref, err := store.Save("photo.jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(ref, "http://localhost:3000/uploads/") {
		t.Fatalf("unexpected reference %q", ref)
	}
	if !strings.HasSuffix(ref, "-photo.jpg") {
		t.Fatalf("stored name should keep the original filename, got %q", ref)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored file, got %v (%v)", entries, err)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil || string(data) != "fake image bytes" {
		t.Fatalf("stored content mismatch: %q (%v)", data, err)
	}

	if err := store.Delete(ref); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Fatalf("file not removed: %v", entries)
	}

	// Deleting again reports the error; callers treat it as best-effort.
	if err := store.Delete(ref); err == nil {
		t.Fatal("expected error deleting an already-removed asset")
	}
}

func TestDiskStoreSaveStripsPath(t *testing.T) {
	dir := t.TempDir()
	store, err := assets.NewDiskStore(dir, "http://localhost:3000")
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}

	ref, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if strings.Contains(ref, "..") {
		t.Fatalf("reference leaks path traversal: %q", ref)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || strings.Contains(entries[0].Name(), "..") {
		t.Fatalf("stored file escapes upload dir: %v", entries)
	}
}

func TestDiskStoreDeleteRejectsBadReference(t *testing.T) {
	store, err := assets.NewDiskStore(t.TempDir(), "http://localhost:3000")
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}
	if err := store.Delete("http://localhost:3000/"); err == nil {
		t.Fatal("expected error for reference without a file name")
	}
}
