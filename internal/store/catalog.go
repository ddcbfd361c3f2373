package store

import (
	"context"
	"strings"
	"sync"

	"github.com/inkwell-books/apiserver/types"
)

// CatalogRepository holds the in-memory book catalog.
// The catalog is seeded once at construction; after that only the
// per-book review maps change. A single RWMutex guards all access so
// concurrent requests see consistent records.
type CatalogRepository struct {
	mu    sync.RWMutex
	books map[string]*types.Book
	// order preserves seed insertion order for List.
	order []string
}

// NewCatalogRepository builds a catalog from the given seed entries.
// A duplicate ISBN in the seed returns ErrDuplicate.
func NewCatalogRepository(seed []SeedBook) (*CatalogRepository, error) {
	r := &CatalogRepository{
		books: make(map[string]*types.Book, len(seed)),
		order: make([]string, 0, len(seed)),
	}
	for _, s := range seed {
		if _, exists := r.books[s.ISBN]; exists {
			return nil, ErrDuplicate
		}
		r.books[s.ISBN] = &types.Book{
			ISBN:   s.ISBN,
			Title:  s.Title,
			Author: s.Author,
		}
		r.order = append(r.order, s.ISBN)
	}
	return r, nil
}

// List returns every book in seed order.
func (r *CatalogRepository) List(ctx context.Context) ([]types.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]types.Book, 0, len(r.order))
	for _, isbn := range r.order {
		books = append(books, copyBook(r.books[isbn]))
	}
	return books, nil
}

// GetByISBN returns the book with the given ISBN or ErrNotFound.
func (r *CatalogRepository) GetByISBN(ctx context.Context, isbn string) (types.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[isbn]
	if !ok {
		return types.Book{}, ErrNotFound
	}
	return copyBook(book), nil
}

// FindByAuthor returns all books whose author matches case-insensitively.
// An empty result set is ErrNotFound.
func (r *CatalogRepository) FindByAuthor(ctx context.Context, author string) ([]types.Book, error) {
	return r.find(func(b *types.Book) bool {
		return strings.EqualFold(b.Author, author)
	})
}

// FindByTitle returns all books whose title matches case-insensitively.
// An empty result set is ErrNotFound.
func (r *CatalogRepository) FindByTitle(ctx context.Context, title string) ([]types.Book, error) {
	return r.find(func(b *types.Book) bool {
		return strings.EqualFold(b.Title, title)
	})
}

func (r *CatalogRepository) find(match func(*types.Book) bool) ([]types.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var books []types.Book
	for _, isbn := range r.order {
		if book := r.books[isbn]; match(book) {
			books = append(books, copyBook(book))
		}
	}
	if len(books) == 0 {
		return nil, ErrNotFound
	}
	return books, nil
}

// Reviews returns the review map for the given ISBN. An unknown ISBN
// and a book without any reviews both return ErrNotFound.
func (r *CatalogRepository) Reviews(ctx context.Context, isbn string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[isbn]
	if !ok || len(book.Reviews) == 0 {
		return nil, ErrNotFound
	}
	return copyReviews(book.Reviews), nil
}

// SetReview creates or overwrites the review keyed by username and
// returns the updated review map. Unknown ISBNs return ErrNotFound.
func (r *CatalogRepository) SetReview(ctx context.Context, isbn, username, text string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[isbn]
	if !ok {
		return nil, ErrNotFound
	}
	if book.Reviews == nil {
		book.Reviews = make(map[string]string)
	}
	book.Reviews[username] = text
	return copyReviews(book.Reviews), nil
}

// DeleteReview removes the review keyed by username and returns the
// remaining map. ErrNotFound covers an unknown ISBN, a book with no
// reviews, and a book that has reviews but none by this username.
func (r *CatalogRepository) DeleteReview(ctx context.Context, isbn, username string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[isbn]
	if !ok || book.Reviews == nil {
		return nil, ErrNotFound
	}
	if _, ok := book.Reviews[username]; !ok {
		return nil, ErrNotFound
	}
	delete(book.Reviews, username)
	return copyReviews(book.Reviews), nil
}

func copyBook(b *types.Book) types.Book {
	out := *b
	if b.Reviews != nil {
		out.Reviews = copyReviews(b.Reviews)
	}
	return out
}

func copyReviews(reviews map[string]string) map[string]string {
	out := make(map[string]string, len(reviews))
	for user, text := range reviews {
		out[user] = text
	}
	return out
}
