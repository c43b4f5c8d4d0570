package dictionary_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/textris/wordtrim/internal/dictionary"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name       string
		words      []string
		wantSorted bool
	}{
		{"sorted", []string{"able", "ably", "cat", "fox", "zoo"}, true},
		{"unsorted", []string{"zoo", "cat", "able", "fox", "ably"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := dictionary.New(tt.words)
			if d.Sorted() != tt.wantSorted {
				t.Errorf("Sorted() = %v, want %v", d.Sorted(), tt.wantSorted)
			}
			for _, w := range tt.words {
				if !d.Contains(w) {
					t.Errorf("Contains(%q) = false", w)
				}
			}
			for _, w := range []string{"", "dog", "Cat", "ab", "zooo"} {
				if d.Contains(w) {
					t.Errorf("Contains(%q) = true", w)
				}
			}
		})
	}
}

func TestNew_TrimsAndSkipsBlanks(t *testing.T) {
	d := dictionary.New([]string{" cat ", "", "   ", "dog\t"})
	if diff := cmp.Diff([]string{"cat", "dog"}, d.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d", d.Len())
	}
}

func TestEmpty(t *testing.T) {
	d := dictionary.New(nil)
	if d.Len() != 0 || d.Contains("cat") {
		t.Errorf("empty dictionary: Len=%d", d.Len())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Twordlist.txt")
	if err := os.WriteFile(path, []byte("abbey\r\nabide\n\nable\nzoo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := dictionary.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Len() != 4 || !d.Sorted() {
		t.Errorf("Len=%d Sorted=%v", d.Len(), d.Sorted())
	}
	if !d.Contains("abide") || d.Contains("abid") {
		t.Error("unexpected lookup result")
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := dictionary.Load(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load() error = %v, want fs.ErrNotExist", err)
	}
}
