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

type CharacterHandler struct {
	useCase *usecases.CatalogUseCase
	log     zerolog.Logger
}

func NewCharacterHandler(useCase *usecases.CatalogUseCase, log zerolog.Logger) *CharacterHandler {
	return &CharacterHandler{
		useCase: useCase,
		log:     logger.Component(log, "character_handler"),
	}
}

// GetAllCharacters handles GET /characters
func (h *CharacterHandler) GetAllCharacters(c *gin.Context) {
	characters, err := h.useCase.GetAllCharacters(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"characters": serializeAll(characters),
	})
}

// CreateCharacter handles POST /character
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	var in entities.CharacterInput
	if !bindBody(c, &in) {
		return
	}

	character, err := h.useCase.CreateCharacter(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s created!", character.Name),
		"data":    character.Serialize(),
	})
}

// GetCharacter handles GET /character/:id
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	character, err := h.useCase.GetCharacter(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"character": character.Serialize(),
	})
}

// DeleteCharacter handles DELETE /character/:id
func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.DeleteCharacter(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("character %d deleted", id),
	})
}
