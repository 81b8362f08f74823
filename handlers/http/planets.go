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

type PlanetHandler struct {
	useCase *usecases.CatalogUseCase
	log     zerolog.Logger
}

func NewPlanetHandler(useCase *usecases.CatalogUseCase, log zerolog.Logger) *PlanetHandler {
	return &PlanetHandler{
		useCase: useCase,
		log:     logger.Component(log, "planet_handler"),
	}
}

// GetAllPlanets handles GET /planets
func (h *PlanetHandler) GetAllPlanets(c *gin.Context) {
	planets, err := h.useCase.GetAllPlanets(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"planets": serializeAll(planets),
	})
}

// CreatePlanet handles POST /planet
func (h *PlanetHandler) CreatePlanet(c *gin.Context) {
	var in entities.PlanetInput
	if !bindBody(c, &in) {
		return
	}

	planet, err := h.useCase.CreatePlanet(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s created!", planet.Name),
		"data":    planet.Serialize(),
	})
}

// GetPlanet handles GET /planet/:id
func (h *PlanetHandler) GetPlanet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	planet, err := h.useCase.GetPlanet(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"planet": planet.Serialize(),
	})
}

// DeletePlanet handles DELETE /planet/:id
func (h *PlanetHandler) DeletePlanet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.DeletePlanet(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("planet %d deleted", id),
	})
}
