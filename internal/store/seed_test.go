package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSeed(t *testing.T) {
	t.Parallel()

	books, err := DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed error: %v", err)
	}
	if len(books) == 0 {
		t.Fatalf("expected embedded seed to contain books")
	}
	for _, b := range books {
		if b.ISBN == "" || b.Title == "" || b.Author == "" {
			t.Fatalf("incomplete seed entry: %+v", b)
		}
	}
}

func TestLoadSeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := `books:
  - isbn: "42"
    title: "Test Driven Bookstore"
    author: "Gopher"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	books, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile error: %v", err)
	}
	if len(books) != 1 || books[0].ISBN != "42" {
		t.Fatalf("unexpected seed: %+v", books)
	}
}

func TestLoadSeedFile_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseSeed_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "books: []", "no books"},
		{"missing isbn", "books:\n  - title: t\n    author: a", "missing isbn"},
		{"missing title", "books:\n  - isbn: \"1\"\n    author: a", "missing title"},
		{"missing author", "books:\n  - isbn: \"1\"\n    title: t", "missing author"},
		{"duplicate isbn", "books:\n  - {isbn: \"1\", title: t, author: a}\n  - {isbn: \"1\", title: u, author: b}", "duplicate isbn"},
		{"not yaml", "{{{", "parse seed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseSeed([]byte(tc.yaml))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
