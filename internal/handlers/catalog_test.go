package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/inkwell-books/apiserver/types"
)

func TestListBooks(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testSecret)
	rec := doJSON(t, router, http.MethodGet, "/", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var books []types.Book
	if err := json.NewDecoder(rec.Body).Decode(&books); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
}

func TestGetByISBN_Handler(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testSecret)
	rec := doJSON(t, router, http.MethodGet, "/isbn/111", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var book types.Book
	if err := json.NewDecoder(rec.Body).Decode(&book); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if book.ISBN != "111" {
		t.Fatalf("isbn %q, want 111", book.ISBN)
	}

	rec = doJSON(t, router, http.MethodGet, "/isbn/999", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown isbn status %d, want 404", rec.Code)
	}
}

func TestGetByAuthor_Handler(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testSecret)
	for _, path := range []string{"/author/Jane%20Austen", "/author/JANE%20AUSTEN"} {
		rec := doJSON(t, router, http.MethodGet, path, nil, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status %d: %s", path, rec.Code, rec.Body.String())
		}
		var books []types.Book
		if err := json.NewDecoder(rec.Body).Decode(&books); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(books) != 1 || books[0].ISBN != "111" {
			t.Fatalf("%s unexpected result: %+v", path, books)
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/author/Nobody", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown author status %d, want 404", rec.Code)
	}
}

func TestGetByTitle_Handler(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testSecret)
	rec := doJSON(t, router, http.MethodGet, "/title/things%20fall%20apart", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/title/No%20Such%20Book", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown title status %d, want 404", rec.Code)
	}
}

func TestGetReviews_NoReviewsIs404(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testSecret)
	rec := doJSON(t, router, http.MethodGet, "/review/111", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404 for book without reviews", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/review/999", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404 for unknown isbn", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testSecret)
	rec := doJSON(t, router, http.MethodGet, "/healthz", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
}
