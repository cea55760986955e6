// Package seed loads fixture movies from YAML into a movie service at startup.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"moviestore/movie"

	"gopkg.in/yaml.v3"
)

type File struct {
	Movies []Movie `yaml:"movies"`
}

type Movie struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Director    string `yaml:"director"`
	ReleaseYear int    `yaml:"releaseYear"`
	Genre       string `yaml:"genre"`
	Ratings     []int  `yaml:"ratings"`
}

// Load decodes a seed document.
func Load(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return File{}, fmt.Errorf("seed: decode: %w", err)
	}
	return f, nil
}

// LoadFile opens path and decodes it.
func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("seed: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// Apply adds every movie and then its ratings through svc, so fixtures obey
// the same validation as API calls. It stops at the first failure and
// returns how many movies are in the store, including one whose ratings
// were only partly applied.
func Apply(ctx context.Context, svc movie.Service, f File) (int, error) {
	added := 0
	for _, m := range f.Movies {
		if _, err := svc.AddMovie(ctx, movie.Movie{
			ID:          m.ID,
			Title:       m.Title,
			Director:    m.Director,
			ReleaseYear: m.ReleaseYear,
			Genre:       m.Genre,
		}); err != nil {
			return added, fmt.Errorf("seed: add movie %q: %w", m.ID, err)
		}
		added++
		for _, r := range m.Ratings {
			if _, err := svc.RateMovie(ctx, m.ID, r); err != nil {
				return added, fmt.Errorf("seed: rate movie %q: %w", m.ID, err)
			}
		}
	}
	return added, nil
}
