// Command movieseed checks a seed file by loading it into a scratch store
// with the configured rating scale and printing what the server would see.
package main

import (
	"context"
	"flag"
	"os"

	"moviestore/memory"
	"moviestore/movie"
	"moviestore/pkg/config"
	"moviestore/pkg/logger"
	"moviestore/seed"
)

func main() {
	var path string
	flag.StringVar(&path, "file", "", "Path to the YAML seed file (defaults to SEED_FILE)")
	flag.Parse()

	log, err := logger.New("local")
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("load config failed", "error", err)
	}
	if path == "" {
		path = cfg.SeedFile
	}
	if path == "" {
		log.Fatal("no seed file given, use -file or SEED_FILE")
	}

	scale, err := cfg.RatingScale()
	if err != nil {
		log.Fatalw("invalid rating scale", "error", err)
	}

	f, err := seed.LoadFile(path)
	if err != nil {
		log.Fatalw("cannot read seed file", "error", err)
	}

	ctx := context.Background()
	svc := movie.NewUsecase(memory.NewMovieRepository(), scale)
	added, err := seed.Apply(ctx, svc, f)
	if err != nil {
		log.Fatalw("seed file rejected", "error", err, "accepted", added)
	}

	top, err := svc.TopRated(ctx)
	if err != nil {
		log.Fatalw("rank movies", "error", err)
	}
	for i, m := range top {
		log.Infow("movie", "rank", i+1, "id", m.ID, "title", m.Title, "average", m.AverageRating(), "ratings", len(m.Ratings))
	}
	log.Infow("seed file ok", "file", path, "movies", added)
}
