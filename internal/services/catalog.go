package services

import (
	"context"

	"github.com/inkwell-books/apiserver/types"
)

// CatalogRepository defines read operations against the book catalog.
type CatalogRepository interface {
	List(ctx context.Context) ([]types.Book, error)
	GetByISBN(ctx context.Context, isbn string) (types.Book, error)
	FindByAuthor(ctx context.Context, author string) ([]types.Book, error)
	FindByTitle(ctx context.Context, title string) ([]types.Book, error)
	Reviews(ctx context.Context, isbn string) (map[string]string, error)
}

// CatalogService encapsulates public catalog queries.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(ctx context.Context) ([]types.Book, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) GetByISBN(ctx context.Context, isbn string) (types.Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

func (s *CatalogService) FindByAuthor(ctx context.Context, author string) ([]types.Book, error) {
	return s.repo.FindByAuthor(ctx, author)
}

func (s *CatalogService) FindByTitle(ctx context.Context, title string) ([]types.Book, error) {
	return s.repo.FindByTitle(ctx, title)
}

func (s *CatalogService) Reviews(ctx context.Context, isbn string) (map[string]string, error) {
	return s.repo.Reviews(ctx, isbn)
}
