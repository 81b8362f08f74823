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

type UserHandler struct {
	useCase *usecases.CatalogUseCase
	log     zerolog.Logger
}

func NewUserHandler(useCase *usecases.CatalogUseCase, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		useCase: useCase,
		log:     logger.Component(log, "user_handler"),
	}
}

// GetAllUsers handles GET /users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.useCase.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": serializeAll(users),
	})
}

// CreateUser handles POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var in entities.UserInput
	if !bindBody(c, &in) {
		return
	}

	user, err := h.useCase.CreateUser(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s created!", user.Email),
		"data":    user.Serialize(),
	})
}

// DeleteUser handles DELETE /user/:user_id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.useCase.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("user %d deleted", id),
	})
}
