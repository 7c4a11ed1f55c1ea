package util

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSortedStringKeys(t *testing.T) {
	got := SortedStringKeys(map[string]int{"tsx": 1, "javascript": 2, "typescript": 3})
	want := []string{"javascript", "tsx", "typescript"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := SortedStringKeys(map[string]bool{}); len(got) != 0 {
		t.Fatalf("expected no keys, got %v", got)
	}
}

func TestEnsureParentDir(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "metrics", "nested", "callscan.prom")

	if err := EnsureParentDir(target); err != nil {
		t.Fatalf("EnsureParentDir failed: %v", err)
	}
	info, err := os.Stat(filepath.Dir(target))
	if err != nil {
		t.Fatalf("expected parent dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected parent to be a directory")
	}

	if err := EnsureParentDir("callscan.prom"); err != nil {
		t.Fatalf("expected bare file name to be a no-op, got %v", err)
	}
}
