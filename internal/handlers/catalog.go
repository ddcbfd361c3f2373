package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/inkwell-books/apiserver/internal/services"
	"github.com/inkwell-books/apiserver/internal/store"
)

// CatalogHandler provides the public, unauthenticated catalog endpoints.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler constructs a handler over the catalog service.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CatalogRouter registers the public lookup routes on the given router.
func CatalogRouter(r chi.Router, catalogService *services.CatalogService) {
	handler := NewCatalogHandler(catalogService)

	r.Get("/", handler.ListBooks)
	r.Get("/isbn/{isbn}", handler.GetByISBN)
	r.Get("/author/{author}", handler.GetByAuthor)
	r.Get("/title/{title}", handler.GetByTitle)
	r.Get("/review/{isbn}", handler.GetReviews)
}

func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalogService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list books")
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *CatalogHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn, err := pathParam(r, "isbn")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	book, err := h.catalogService.GetByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "book not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch book")
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *CatalogHandler) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	author, err := pathParam(r, "author")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	books, err := h.catalogService.FindByAuthor(r.Context(), author)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no books found for author")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch books")
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *CatalogHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title, err := pathParam(r, "title")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	books, err := h.catalogService.FindByTitle(r.Context(), title)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no books found for title")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch books")
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *CatalogHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	isbn, err := pathParam(r, "isbn")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reviews, err := h.catalogService.Reviews(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no reviews found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch reviews")
		return
	}
	writeJSON(w, http.StatusOK, ReviewsResponse{Reviews: reviews})
}

// ReviewsResponse wraps a book's review map.
type ReviewsResponse struct {
	Reviews map[string]string `json:"reviews"`
}

func pathParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		return "", errors.New("missing " + name)
	}
	return value, nil
}
