package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ootdverse/internal/pkg/errs"
)

const (
	MinRatingScore  = 1
	MaxRatingScore  = 5
	MaxReviewLength = 1000
)

// ErrAlreadyRated is returned when a party rates the same order twice.
var ErrAlreadyRated = errors.New("order has already been rated")

// Rating is a score one party leaves for the other after completion.
type Rating struct {
	score   int
	review  string
	ratedAt time.Time
}

// NewRating validates a 1..5 score and a review of at most 1000 characters.
func NewRating(score int, review string, ratedAt time.Time) (Rating, error) {
	review = strings.TrimSpace(review)

	var err error
	if score < MinRatingScore || score > MaxRatingScore {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("rating", score, MinRatingScore, MaxRatingScore))
	}
	if n := utf8.RuneCountInString(review); n > MaxReviewLength {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"review", fmt.Errorf("%d characters exceeds %d", n, MaxReviewLength)))
	}
	if err != nil {
		return Rating{}, err
	}

	return Rating{score: score, review: review, ratedAt: ratedAt}, nil
}

func (r Rating) Score() int         { return r.score }
func (r Rating) Review() string     { return r.review }
func (r Rating) RatedAt() time.Time { return r.ratedAt }
