package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officetools/internal/domain/review"
	"officetools/internal/shared/errors"
)

func seedReview(t *testing.T, repo *ReviewRepository, tool string, rating int, createdAt time.Time, pinned bool) *review.Review {
	t.Helper()
	rv := review.ReconstructReview(0, tool, rating, "comment", "Author", "", pinned, createdAt)
	require.NoError(t, repo.Create(context.Background(), rv))
	require.NotZero(t, rv.ID())
	return rv
}

func TestReviewRepository_ListOrdersPinnedThenNewest(t *testing.T) {
	repo := NewReviewRepository(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	oldPinned := seedReview(t, repo, "pdf-merge", 3, base, true)
	newest := seedReview(t, repo, "pdf-merge", 5, base.Add(2*time.Hour), false)
	middle := seedReview(t, repo, "pdf-merge", 4, base.Add(time.Hour), false)
	seedReview(t, repo, "ocr", 1, base, false)

	list, total, err := repo.List(ctx, review.ListFilter{Tool: "pdf-merge"})
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, list, 3)
	assert.Equal(t, oldPinned.ID(), list[0].ID())
	assert.Equal(t, newest.ID(), list[1].ID())
	assert.Equal(t, middle.ID(), list[2].ID())
}

func TestReviewRepository_ListPaginatesAcrossTools(t *testing.T) {
	repo := NewReviewRepository(setupTestDB(t))
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedReview(t, repo, "ocr", 4, base.Add(time.Duration(i)*time.Minute), false)
	}

	list, total, err := repo.List(context.Background(), review.ListFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, list, 2)
}

func TestReviewRepository_Summary(t *testing.T) {
	repo := NewReviewRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	seedReview(t, repo, "zakat-calculator", 5, now, false)
	seedReview(t, repo, "zakat-calculator", 4, now, false)
	seedReview(t, repo, "zakat-calculator", 4, now, false)

	sum, err := repo.Summary(ctx, "zakat-calculator")
	require.NoError(t, err)
	assert.Equal(t, int64(3), sum.Count)
	assert.Equal(t, 4.3, sum.Average)

	empty, err := repo.Summary(ctx, "ocr")
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Count)
	assert.Equal(t, 0.0, empty.Average)
}

func TestReviewRepository_PinAndDelete(t *testing.T) {
	repo := NewReviewRepository(setupTestDB(t))
	ctx := context.Background()
	rv := seedReview(t, repo, "ocr", 2, time.Now().UTC(), false)

	rv.Pin()
	require.NoError(t, repo.Update(ctx, rv))

	found, err := repo.GetByID(ctx, rv.ID())
	require.NoError(t, err)
	assert.True(t, found.IsPinned())

	require.NoError(t, repo.Delete(ctx, rv.ID()))

	_, err = repo.GetByID(ctx, rv.ID())
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, rv.ID())))
}
