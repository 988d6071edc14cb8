package review

import "context"

// ListFilter selects reviews. Results are ordered pinned first, newest first.
type ListFilter struct {
	Tool     string
	Page     int
	PageSize int
}

// Summary aggregates the ratings of one tool.
type Summary struct {
	Count   int64
	Average float64
}

type Repository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id uint) (*Review, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Review, int64, error)
	Summary(ctx context.Context, tool string) (*Summary, error)
}
