package memory

import (
	"context"
	"slices"
	"sync"

	"moviestore/movie"
)

// MovieRepository implements movie.Repository on top of a map guarded by a
// single lock. Records are copied on the way in and on the way out.
type MovieRepository struct {
	sync.RWMutex
	data  map[string]*movie.Movie
	order []string
}

// NewMovieRepository creates an empty movie repository.
func NewMovieRepository() *MovieRepository {
	return &MovieRepository{data: map[string]*movie.Movie{}}
}

func (r *MovieRepository) CreateMovie(_ context.Context, m movie.Movie) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[m.ID]; ok {
		return movie.ErrDuplicateID
	}
	stored := m.Clone()
	r.data[m.ID] = &stored
	r.order = append(r.order, m.ID)
	return nil
}

func (r *MovieRepository) GetMovie(_ context.Context, id string) (movie.Movie, error) {
	r.RLock()
	defer r.RUnlock()
	m, ok := r.data[id]
	if !ok {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	return m.Clone(), nil
}

// UpdateMovie hands fn a scratch copy and only stores it when fn succeeds.
func (r *MovieRepository) UpdateMovie(_ context.Context, id string, fn func(m *movie.Movie) error) (movie.Movie, error) {
	r.Lock()
	defer r.Unlock()
	m, ok := r.data[id]
	if !ok {
		return movie.Movie{}, movie.ErrMovieNotFound
	}

	updated := m.Clone()
	if err := fn(&updated); err != nil {
		return movie.Movie{}, err
	}
	updated.ID = id
	r.data[id] = &updated
	return updated.Clone(), nil
}

func (r *MovieRepository) DeleteMovie(_ context.Context, id string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[id]; !ok {
		return movie.ErrMovieNotFound
	}
	delete(r.data, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

func (r *MovieRepository) AllMovies(_ context.Context) ([]movie.Movie, error) {
	r.RLock()
	defer r.RUnlock()
	movies := make([]movie.Movie, 0, len(r.order))
	for _, id := range r.order {
		movies = append(movies, r.data[id].Clone())
	}
	return movies, nil
}
