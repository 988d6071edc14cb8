package dto

import (
	"time"

	"officetools/internal/domain/review"
)

type ReviewDTO struct {
	ID         uint      `json:"id"`
	Tool       string    `json:"tool"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	AuthorName string    `json:"author_name"`
	Pinned     bool      `json:"pinned"`
	CreatedAt  time.Time `json:"created_at"`
}

// AdminReviewDTO adds the reviewer email, which is never shown publicly.
type AdminReviewDTO struct {
	ReviewDTO
	Email string `json:"email,omitempty"`
}

type SummaryDTO struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

func ToReviewDTO(r *review.Review) *ReviewDTO {
	if r == nil {
		return nil
	}
	return &ReviewDTO{
		ID:         r.ID(),
		Tool:       r.Tool(),
		Rating:     r.Rating(),
		Comment:    r.Comment(),
		AuthorName: r.AuthorName(),
		Pinned:     r.IsPinned(),
		CreatedAt:  r.CreatedAt(),
	}
}

func ToReviewDTOList(reviews []*review.Review) []*ReviewDTO {
	out := make([]*ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ToReviewDTO(r))
	}
	return out
}

func ToAdminReviewDTOList(reviews []*review.Review) []*AdminReviewDTO {
	out := make([]*AdminReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, &AdminReviewDTO{ReviewDTO: *ToReviewDTO(r), Email: r.Email()})
	}
	return out
}

func ToSummaryDTO(s *review.Summary) SummaryDTO {
	if s == nil {
		return SummaryDTO{}
	}
	return SummaryDTO{Count: s.Count, Average: s.Average}
}
