package httpserver

import (
	"moviestore/movie"
)

type AddMovieRequest struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Director    string `json:"director" validate:"required"`
	ReleaseYear int    `json:"releaseYear" validate:"required"`
	Genre       string `json:"genre" validate:"required"`
}

func (r AddMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		ID:          r.ID,
		Title:       r.Title,
		Director:    r.Director,
		ReleaseYear: r.ReleaseYear,
		Genre:       r.Genre,
	}
}

// UpdateMovieRequest is a partial update; omitted fields stay as they are.
type UpdateMovieRequest struct {
	Title       *string `json:"title"`
	Director    *string `json:"director"`
	ReleaseYear *int    `json:"releaseYear"`
	Genre       *string `json:"genre"`
}

func (r UpdateMovieRequest) ToPatch() movie.Patch {
	return movie.Patch{
		Title:       r.Title,
		Director:    r.Director,
		ReleaseYear: r.ReleaseYear,
		Genre:       r.Genre,
	}
}

type RateMovieRequest struct {
	Rating *int `json:"rating" validate:"required"`
}
