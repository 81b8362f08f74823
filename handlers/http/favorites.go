package httpHandler

import (
	"fmt"
	"net/http"

	"starwars-server/logger"
	"starwars-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type FavoritesHandler struct {
	useCase *usecases.FavoritesUseCase
	log     zerolog.Logger
}

func NewFavoritesHandler(useCase *usecases.FavoritesUseCase, log zerolog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		useCase: useCase,
		log:     logger.Component(log, "favorites_handler"),
	}
}

// GetFavoriteCharacters handles GET /user/:user_id/favorites/character
func (h *FavoritesHandler) GetFavoriteCharacters(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	views, err := h.useCase.ListFavoriteCharacters(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, serializeAll(views))
}

// AddFavoriteCharacter handles POST /user/:user_id/favorites/character/:character_id
func (h *FavoritesHandler) AddFavoriteCharacter(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	characterID, ok := pathID(c, "character_id")
	if !ok {
		return
	}

	view, err := h.useCase.AddFavoriteCharacter(c.Request.Context(), userID, characterID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s added to favorites!", view.CharacterName),
		"data":    view.Serialize(),
	})
}

// RemoveFavoriteCharacter handles DELETE /user/:user_id/favorites/character/:character_id
func (h *FavoritesHandler) RemoveFavoriteCharacter(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	characterID, ok := pathID(c, "character_id")
	if !ok {
		return
	}

	if err := h.useCase.RemoveFavoriteCharacter(c.Request.Context(), userID, characterID); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("character %d removed from favorites", characterID),
	})
}

// GetFavoritePlanets handles GET /user/:user_id/favorites/planet
func (h *FavoritesHandler) GetFavoritePlanets(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	views, err := h.useCase.ListFavoritePlanets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, serializeAll(views))
}

// AddFavoritePlanet handles POST /user/:user_id/favorites/planet/:planet_id
func (h *FavoritesHandler) AddFavoritePlanet(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	planetID, ok := pathID(c, "planet_id")
	if !ok {
		return
	}

	view, err := h.useCase.AddFavoritePlanet(c.Request.Context(), userID, planetID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s added to favorites!", view.PlanetName),
		"data":    view.Serialize(),
	})
}

// RemoveFavoritePlanet handles DELETE /user/:user_id/favorites/planet/:planet_id
func (h *FavoritesHandler) RemoveFavoritePlanet(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	planetID, ok := pathID(c, "planet_id")
	if !ok {
		return
	}

	if err := h.useCase.RemoveFavoritePlanet(c.Request.Context(), userID, planetID); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("planet %d removed from favorites", planetID),
	})
}
