package movie

import (
	"slices"

	"moviestore/errs"
)

var (
	ErrInvalidID          = errs.Errorf(errs.EINVALID, "movie: id is required")
	ErrInvalidTitle       = errs.Errorf(errs.EINVALID, "movie: title is required")
	ErrInvalidDirector    = errs.Errorf(errs.EINVALID, "movie: director is required")
	ErrInvalidReleaseYear = errs.Errorf(errs.EINVALID, "movie: release year is required")
	ErrInvalidGenre       = errs.Errorf(errs.EINVALID, "movie: genre is required")
	ErrInvalidScale       = errs.Errorf(errs.EINVALID, "movie: invalid rating scale")

	ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "movie: not found")
	ErrDuplicateID   = errs.Errorf(errs.ECONFLICT, "movie: id already exists")
)

// DefaultRatingScale is the five star scale.
var DefaultRatingScale = RatingScale{Min: 1, Max: 5}

type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	ReleaseYear int    `json:"releaseYear"`
	Genre       string `json:"genre"`
	Ratings     []int  `json:"ratings"`
}

// Validate checks that the fields required to create a movie are present.
// Values are not trimmed.
func (m Movie) Validate() error {
	switch {
	case m.ID == "":
		return ErrInvalidID
	case m.Title == "":
		return ErrInvalidTitle
	case m.Director == "":
		return ErrInvalidDirector
	case m.ReleaseYear == 0:
		return ErrInvalidReleaseYear
	case m.Genre == "":
		return ErrInvalidGenre
	}
	return nil
}

// Clone returns a deep copy. Ratings is never nil on the copy.
func (m Movie) Clone() Movie {
	c := m
	c.Ratings = slices.Clone(m.Ratings)
	if c.Ratings == nil {
		c.Ratings = []int{}
	}
	return c
}

// AverageRating returns the arithmetic mean of the ratings, or 0 when unrated.
func (m Movie) AverageRating() float64 {
	if len(m.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range m.Ratings {
		sum += r
	}
	return float64(sum) / float64(len(m.Ratings))
}

// Patch holds the fields of a partial update. Nil fields are left untouched.
// The id is immutable and ratings only grow through RateMovie, so neither
// can be patched.
type Patch struct {
	Title       *string
	Director    *string
	ReleaseYear *int
	Genre       *string
}

// Apply replaces the supplied fields on m. Values are not validated.
func (p Patch) Apply(m *Movie) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Director != nil {
		m.Director = *p.Director
	}
	if p.ReleaseYear != nil {
		m.ReleaseYear = *p.ReleaseYear
	}
	if p.Genre != nil {
		m.Genre = *p.Genre
	}
}

// RatingScale is the closed interval of accepted ratings.
type RatingScale struct {
	Min int
	Max int
}

func (s RatingScale) Validate() error {
	if s.Min > s.Max {
		return ErrInvalidScale
	}
	return nil
}

func (s RatingScale) Contains(rating int) bool {
	return rating >= s.Min && rating <= s.Max
}

// InvalidRating builds the error returned for a rating outside the scale.
func (s RatingScale) InvalidRating() *errs.Error {
	return errs.Errorf(errs.EINVALID, "movie: rating must be between %d and %d", s.Min, s.Max)
}

type RatingSummary struct {
	MovieID string  `json:"movieId"`
	Average float64 `json:"averageRating"`
	Count   int     `json:"count"`
}
