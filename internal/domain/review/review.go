package review

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"officetools/internal/shared/biztime"
	"officetools/internal/shared/errors"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 500
	MaxAuthorLength  = 100
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Review is a public rating of one tool.
type Review struct {
	id         uint
	tool       string
	rating     int
	comment    string
	authorName string
	email      string
	pinned     bool
	createdAt  time.Time
}

// NewReview validates and normalizes a submission. The comment is expected
// to be free of markup already.
func NewReview(tool string, rating int, comment, authorName, email string) (*Review, error) {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		return nil, errors.NewValidationError("tool is required")
	}

	if rating < MinRating || rating > MaxRating {
		return nil, errors.NewValidationError("invalid rating", fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating))
	}

	comment = strings.TrimSpace(comment)
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return nil, errors.NewValidationError("comment too long", fmt.Sprintf("comment must be at most %d characters", MaxCommentLength))
	}

	name, err := NormalizeAuthorName(authorName)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" {
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			return nil, errors.NewValidationError("invalid email address")
		}
	}

	return &Review{
		tool:       tool,
		rating:     rating,
		comment:    comment,
		authorName: name,
		email:      email,
		createdAt:  biztime.NowUTC(),
	}, nil
}

// NormalizeAuthorName collapses whitespace and title-cases the name.
func NormalizeAuthorName(name string) (string, error) {
	name = whitespaceRun.ReplaceAllString(strings.TrimSpace(name), " ")
	if name == "" {
		return "", errors.NewValidationError("author name is required")
	}
	if utf8.RuneCountInString(name) > MaxAuthorLength {
		return "", errors.NewValidationError("author name too long", fmt.Sprintf("author name must be at most %d characters", MaxAuthorLength))
	}
	return cases.Title(language.Und).String(name), nil
}

// ReconstructReview rebuilds a review from storage without validation.
func ReconstructReview(id uint, tool string, rating int, comment, authorName, email string, pinned bool, createdAt time.Time) *Review {
	return &Review{
		id:         id,
		tool:       tool,
		rating:     rating,
		comment:    comment,
		authorName: authorName,
		email:      email,
		pinned:     pinned,
		createdAt:  createdAt,
	}
}

func (r *Review) Pin() {
	r.pinned = true
}

func (r *Review) Unpin() {
	r.pinned = false
}

func (r *Review) SetID(id uint) {
	r.id = id
}

func (r *Review) ID() uint             { return r.id }
func (r *Review) Tool() string         { return r.tool }
func (r *Review) Rating() int          { return r.rating }
func (r *Review) Comment() string      { return r.comment }
func (r *Review) AuthorName() string   { return r.authorName }
func (r *Review) Email() string        { return r.email }
func (r *Review) IsPinned() bool       { return r.pinned }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
