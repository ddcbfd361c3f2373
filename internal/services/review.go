package services

import "context"

// ReviewRepository defines the mutating review operations on the catalog.
type ReviewRepository interface {
	SetReview(ctx context.Context, isbn, username, text string) (map[string]string, error)
	DeleteReview(ctx context.Context, isbn, username string) (map[string]string, error)
}

// ReviewService encapsulates customer review use-cases. The username is
// always the verified token identity; a customer can only touch their
// own entry in a book's review map.
type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// Upsert creates or replaces the caller's review and returns the
// updated review map. Repeating the same call is a no-op on state.
func (s *ReviewService) Upsert(ctx context.Context, isbn, username, text string) (map[string]string, error) {
	return s.repo.SetReview(ctx, isbn, username, text)
}

// Delete removes the caller's review and returns the remaining map.
func (s *ReviewService) Delete(ctx context.Context, isbn, username string) (map[string]string, error) {
	return s.repo.DeleteReview(ctx, isbn, username)
}
