package gdata

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestNewMediaSourceFromBytes(t *testing.T) {
	ms := NewMediaSourceFromBytes([]byte("abc"), "image/jpeg")
	if ms.ContentLength != 3 {
		t.Errorf("ContentLength = %v, expected 3", ms.ContentLength)
	}
	if ms.ContentType != "image/jpeg" {
		t.Errorf("ContentType = %q", ms.ContentType)
	}
	b, err := io.ReadAll(ms.Data)
	if err != nil {
		t.Fatalf("ReadAll() = %v", err)
	}
	if string(b) != "abc" {
		t.Errorf("Data = %q", b)
	}
}

func TestNewMediaSourceFromPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "photo.jpg")
	if err := os.WriteFile(p, []byte("jpeg bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	ms, err := NewMediaSourceFromPath(p, "")
	if err != nil {
		t.Fatalf("NewMediaSourceFromPath() = %v", err)
	}
	defer ms.Close()

	if ms.ContentLength != int64(len("jpeg bytes")) {
		t.Errorf("ContentLength = %v, expected file size", ms.ContentLength)
	}
	if ms.ContentType != "image/jpeg" {
		t.Errorf("ContentType = %q, expected %q", ms.ContentType, "image/jpeg")
	}
}

func TestNewMediaSourceFromPath_unknownType(t *testing.T) {
	p := filepath.Join(t.TempDir(), "photo")
	if err := os.WriteFile(p, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMediaSourceFromPath(p, ""); err == nil {
		t.Error("expected an error for a file with no extension")
	}
}

func TestFindLink(t *testing.T) {
	links := []Link{
		{Rel: RelSelf, Href: "/self"},
		{Rel: RelEdit, Href: "/edit"},
	}
	if got := FindLink(links, RelEdit); got != "/edit" {
		t.Errorf("FindLink(edit) = %q", got)
	}
	if got := FindLink(links, RelNext); got != "" {
		t.Errorf("FindLink(next) = %q, expected empty", got)
	}
}
