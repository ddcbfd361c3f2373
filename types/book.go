package types

// Book represents a single title in the bookstore catalog.
// Books are preloaded at process start and identified by ISBN;
// only their review map changes at runtime.
type Book struct {
	// ISBN is the unique identifier of the book and the catalog key.
	// It is immutable after the catalog is seeded.
	ISBN string `json:"isbn"`

	// Title is the human-readable title of the book.
	Title string `json:"title"`

	// Author is the name of the book's author as it appears in the
	// seed data. Author lookups compare case-insensitively against
	// this value.
	Author string `json:"author"`

	// Reviews maps a reviewer's username to their free-text review.
	// Each customer holds at most one review per book; writing again
	// overwrites the previous text. The map is nil until the first
	// review is added.
	Reviews map[string]string `json:"reviews,omitempty"`
}
