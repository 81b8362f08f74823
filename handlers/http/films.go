package httpHandler

import (
	"fmt"
	"net/http"

	"starwars-server/entities"
	"starwars-server/logger"
	"starwars-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type FilmHandler struct {
	useCase *usecases.CatalogUseCase
	log     zerolog.Logger
}

func NewFilmHandler(useCase *usecases.CatalogUseCase, log zerolog.Logger) *FilmHandler {
	return &FilmHandler{
		useCase: useCase,
		log:     logger.Component(log, "film_handler"),
	}
}

// GetAllFilms handles GET /films
func (h *FilmHandler) GetAllFilms(c *gin.Context) {
	films, err := h.useCase.GetAllFilms(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"films": serializeAll(films),
	})
}

// CreateFilm handles POST /film
func (h *FilmHandler) CreateFilm(c *gin.Context) {
	var in entities.FilmInput
	if !bindBody(c, &in) {
		return
	}

	film, err := h.useCase.CreateFilm(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s created!", film.Title),
		"data":    film.Serialize(),
	})
}

// DeleteFilm handles DELETE /film/:id
func (h *FilmHandler) DeleteFilm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.DeleteFilm(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("film %d deleted", id),
	})
}
