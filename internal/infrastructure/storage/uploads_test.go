package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// formFile builds a real multipart request so Save sees the same
// *multipart.FileHeader the handlers hand it.
func formFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}

	files := req.MultipartForm.File["image"]
	if len(files) != 1 {
		t.Fatalf("expected one file part, got %d", len(files))
	}
	return files[0]
}

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	content := []byte("jpeg-bytes")
	stored, err := store.Save(formFile(t, "shoe.JPG", content))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if !strings.HasPrefix(stored, filepath.ToSlash(dir)+"/") {
		t.Fatalf("stored path %q not under %q", stored, dir)
	}
	if !strings.HasSuffix(stored, ".JPG") {
		t.Fatalf("extension not preserved: %q", stored)
	}
	if strings.Contains(stored, "shoe") {
		t.Fatalf("client filename must not be reused: %q", stored)
	}

	got, err := os.ReadFile(filepath.FromSlash(stored))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("stored content differs")
	}
}

func TestDiskStore_Save_UniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	first, err := store.Save(formFile(t, "a.png", []byte("one")))
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	second, err := store.Save(formFile(t, "a.png", []byte("two")))
	if err != nil {
		t.Fatalf("save second: %v", err)
	}
	if first == second {
		t.Fatalf("same filename produced same stored path: %q", first)
	}
}

func TestDiskStore_Save_RejectsEmptyFile(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Save(formFile(t, "empty.png", nil)); err == nil {
		t.Fatalf("expected error for empty upload")
	}
}

func TestNewDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewDiskStore(dir); err != nil {
		t.Fatalf("new store: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("upload dir not created: %v", err)
	}
}
