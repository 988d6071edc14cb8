package mappers

import (
	"officetools/internal/domain/review"
	"officetools/internal/infrastructure/persistence/models"
)

func ReviewToModel(r *review.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:         r.ID(),
		Tool:       r.Tool(),
		Rating:     r.Rating(),
		Comment:    r.Comment(),
		AuthorName: r.AuthorName(),
		Email:      r.Email(),
		Pinned:     r.IsPinned(),
		CreatedAt:  r.CreatedAt(),
	}
}

func ReviewToDomain(m *models.ReviewModel) *review.Review {
	return review.ReconstructReview(m.ID, m.Tool, m.Rating, m.Comment, m.AuthorName, m.Email, m.Pinned, m.CreatedAt.UTC())
}

func ReviewsToDomain(ms []models.ReviewModel) []*review.Review {
	out := make([]*review.Review, len(ms))
	for i := range ms {
		out[i] = ReviewToDomain(&ms[i])
	}
	return out
}
