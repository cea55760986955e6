package httpserver

import (
	"net/http"

	"moviestore/errs"

	"github.com/labstack/echo/v4"
)

var errInvalidBody = errs.Errorf(errs.EINVALID, "invalid request body")

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.Use(s.requireMovieService)

	g.GET("", s.handleListMovies)
	g.POST("", s.handleAddMovie)
	g.GET("/top-rated", s.handleTopRated)
	g.GET("/search", s.handleSearchMovies)
	g.GET("/genre/:genre", s.handleMoviesByGenre)
	g.GET("/director/:director", s.handleMoviesByDirector)
	g.GET("/:id", s.handleGetMovie)
	g.PATCH("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
	g.POST("/:id/ratings", s.handleRateMovie)
	g.GET("/:id/ratings", s.handleAverageRating)
}

func (s *Server) requireMovieService(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.MovieService == nil {
			return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
		}
		return next(c)
	}
}

// handleAddMovie godoc
// @Summary Add Movie
// @Description Add a movie with a caller supplied id
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body AddMovieRequest true "Movie"
// @Success 201 {object} movie.Movie
// @Failure 400 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /api/movies [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	var req AddMovieRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, m)
}

// handleListMovies godoc
// @Summary List Movies
// @Description All movies in insertion order
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	m, err := s.MovieService.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, m)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Replace the supplied fields of a movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param movie body UpdateMovieRequest true "Fields to replace"
// @Success 200 {object} movie.Movie
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [patch]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	m, err := s.MovieService.UpdateMovie(c.Request().Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, m)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	id := c.Param("id")
	if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"id":     id,
		"status": "deleted",
	})
}

// handleRateMovie godoc
// @Summary Rate Movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param rating body RateMovieRequest true "Rating"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id}/ratings [post]
func (s *Server) handleRateMovie(c echo.Context) error {
	var req RateMovieRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m, err := s.MovieService.RateMovie(c.Request().Context(), c.Param("id"), *req.Rating)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, m)
}

// handleAverageRating godoc
// @Summary Average Rating
// @Description Mean rating of a movie, 0 with count 0 when unrated
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} movie.RatingSummary
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id}/ratings [get]
func (s *Server) handleAverageRating(c echo.Context) error {
	summary, err := s.MovieService.AverageRating(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, summary)
}

// handleTopRated godoc
// @Summary Top Rated Movies
// @Description All movies by descending average rating
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Router /api/movies/top-rated [get]
func (s *Server) handleTopRated(c echo.Context) error {
	movies, err := s.MovieService.TopRated(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}

// handleMoviesByGenre godoc
// @Summary Movies By Genre
// @Description Case-insensitive exact genre match
// @Tags movies
// @Produce json
// @Param genre path string true "Genre"
// @Success 200 {array} movie.Movie
// @Router /api/movies/genre/{genre} [get]
func (s *Server) handleMoviesByGenre(c echo.Context) error {
	movies, err := s.MovieService.MoviesByGenre(c.Request().Context(), c.Param("genre"))
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}

// handleMoviesByDirector godoc
// @Summary Movies By Director
// @Description Case-insensitive exact director match
// @Tags movies
// @Produce json
// @Param director path string true "Director"
// @Success 200 {array} movie.Movie
// @Router /api/movies/director/{director} [get]
func (s *Server) handleMoviesByDirector(c echo.Context) error {
	movies, err := s.MovieService.MoviesByDirector(c.Request().Context(), c.Param("director"))
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Case-insensitive title substring search, empty keyword matches all
// @Tags movies
// @Produce json
// @Param keyword query string false "Title keyword"
// @Success 200 {array} movie.Movie
// @Router /api/movies/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	movies, err := s.MovieService.SearchMovies(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}
