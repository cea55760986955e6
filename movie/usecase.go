package movie

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

type Service interface {
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateMovie(ctx context.Context, id string, p Patch) (Movie, error)
	GetMovie(ctx context.Context, id string) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
	RateMovie(ctx context.Context, id string, rating int) (Movie, error)
	AverageRating(ctx context.Context, id string) (RatingSummary, error)
	TopRated(ctx context.Context) ([]Movie, error)
	MoviesByGenre(ctx context.Context, genre string) ([]Movie, error)
	MoviesByDirector(ctx context.Context, director string) ([]Movie, error)
	SearchMovies(ctx context.Context, keyword string) ([]Movie, error)
	ListMovies(ctx context.Context) ([]Movie, error)
}

// Repository stores movie records. Implementations return copies, never
// references to stored records.
type Repository interface {
	// CreateMovie inserts m, failing with ErrDuplicateID if the id is taken.
	CreateMovie(ctx context.Context, m Movie) error
	GetMovie(ctx context.Context, id string) (Movie, error)
	// UpdateMovie runs fn against the stored record atomically. If fn
	// returns an error the record is left unchanged.
	UpdateMovie(ctx context.Context, id string, fn func(m *Movie) error) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
	// AllMovies returns every record in insertion order.
	AllMovies(ctx context.Context) ([]Movie, error)
}

type Usecase struct {
	r     Repository
	scale RatingScale
}

func NewUsecase(r Repository, scale RatingScale) *Usecase {
	return &Usecase{
		r:     r,
		scale: scale,
	}
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	m.Ratings = []int{}
	if err := uc.r.CreateMovie(ctx, m); err != nil {
		return Movie{}, err
	}
	return m, nil
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id string, p Patch) (Movie, error) {
	return uc.r.UpdateMovie(ctx, id, func(m *Movie) error {
		p.Apply(m)
		return nil
	})
}

func (uc *Usecase) GetMovie(ctx context.Context, id string) (Movie, error) {
	return uc.r.GetMovie(ctx, id)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id string) error {
	return uc.r.DeleteMovie(ctx, id)
}

func (uc *Usecase) RateMovie(ctx context.Context, id string, rating int) (Movie, error) {
	return uc.r.UpdateMovie(ctx, id, func(m *Movie) error {
		if !uc.scale.Contains(rating) {
			return uc.scale.InvalidRating()
		}
		m.Ratings = append(m.Ratings, rating)
		return nil
	})
}

func (uc *Usecase) AverageRating(ctx context.Context, id string) (RatingSummary, error) {
	m, err := uc.r.GetMovie(ctx, id)
	if err != nil {
		return RatingSummary{}, err
	}
	return RatingSummary{
		MovieID: m.ID,
		Average: m.AverageRating(),
		Count:   len(m.Ratings),
	}, nil
}

// TopRated orders a snapshot of all movies by descending average rating.
// Unrated movies count as 0 and ties keep insertion order.
func (uc *Usecase) TopRated(ctx context.Context) ([]Movie, error) {
	movies, err := uc.r.AllMovies(ctx)
	if err != nil {
		return nil, err
	}

	averages := make(map[string]float64, len(movies))
	for _, m := range movies {
		averages[m.ID] = m.AverageRating()
	}
	sort.SliceStable(movies, func(i, j int) bool {
		return averages[movies[i].ID] > averages[movies[j].ID]
	})
	return movies, nil
}

func (uc *Usecase) MoviesByGenre(ctx context.Context, genre string) ([]Movie, error) {
	return uc.filter(ctx, func(m Movie) bool {
		return fold(m.Genre) == fold(genre)
	})
}

func (uc *Usecase) MoviesByDirector(ctx context.Context, director string) ([]Movie, error) {
	return uc.filter(ctx, func(m Movie) bool {
		return fold(m.Director) == fold(director)
	})
}

// SearchMovies matches keyword against titles ignoring case. An empty
// keyword matches every movie.
func (uc *Usecase) SearchMovies(ctx context.Context, keyword string) ([]Movie, error) {
	keyword = fold(keyword)
	return uc.filter(ctx, func(m Movie) bool {
		return strings.Contains(fold(m.Title), keyword)
	})
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

func (uc *Usecase) filter(ctx context.Context, keep func(Movie) bool) ([]Movie, error) {
	movies, err := uc.r.AllMovies(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if keep(m) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

// fold applies full Unicode case folding so every query compares text the
// same way. A Caser is stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
