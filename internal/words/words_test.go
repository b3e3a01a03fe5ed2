package words

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_JSONDictionary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "animals.json", `["Horse", "zebra", "OTTER", "not a word!", ""]`)

	p := NewProvider(dir)
	got, err := p.Load("animals")
	if err != nil {
		t.Fatal(err)
	}
	// Lowercased; non-alphabetic and empty entries dropped.
	want := []string{"horse", "zebra", "otter"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// The original storage names carried a .json suffix; both spellings
	// must resolve to the same dictionary.
	again, err := p.Load("animals.json")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(again, want) {
		t.Errorf("suffixed name: got %v", again)
	}
}

func TestLoad_TextDictionary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "short.txt", "cat\nDog\n\nbird\n")

	p := NewProvider(dir)
	got, err := p.Load("short")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"cat", "dog", "bird"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLoad_NotFound(t *testing.T) {
	p := NewProvider(t.TempDir())
	if _, err := p.Load("nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	// A path-escaping name must not reach the filesystem.
	if _, err := p.Load("../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for invalid name, got %v", err)
	}
}

func TestLoad_BadFormat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"words": ["cat"]}`)

	p := NewProvider(dir)
	if _, err := p.Load("broken"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestLoad_EmbeddedDefault(t *testing.T) {
	p := NewProvider("")
	got, err := p.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("embedded default dictionary is empty")
	}
	found := false
	for _, w := range got {
		if w == "crane" {
			found = true
			break
		}
	}
	if !found {
		t.Error("embedded default should contain crane")
	}
}

func TestLoad_CachesResult(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tiny.json", `["one"]`)

	p := NewProvider(dir)
	if _, err := p.Load("tiny"); err != nil {
		t.Fatal(err)
	}

	// Remove the backing file: a second load must be served from cache.
	if err := os.Remove(filepath.Join(dir, "tiny.json")); err != nil {
		t.Fatal(err)
	}
	got, err := p.Load("tiny")
	if err != nil {
		t.Fatalf("cached load failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("got %v", got)
	}

	stats := p.Stats()
	if stats["tiny"] != 1 {
		t.Errorf("expected tiny in stats, got %v", stats)
	}
	if names := p.Names(); !reflect.DeepEqual(names, []string{"tiny"}) {
		t.Errorf("expected [tiny], got %v", names)
	}
}
