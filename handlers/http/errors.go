package httpHandler

import (
	"net/http"
	"strconv"

	"starwars-server/entities"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func statusFor(kind entities.ErrorKind) int {
	switch kind {
	case entities.KindMissingField, entities.KindInvalidEnumValue, entities.KindInvalidField:
		return http.StatusBadRequest
	case entities.KindNotFound:
		return http.StatusNotFound
	case entities.KindUniquenessViolation, entities.KindReferenced:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error", "kind"} with the status matching the error kind.
// Store failures are logged with their cause but never echoed to the client.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	kind := entities.KindOf(err)
	status := statusFor(kind)

	ev := log.Debug()
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
		msg = "internal server error"
	}
	ev.Err(err).
		Str("kind", string(kind)).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Int("status", status).
		Msg("request failed")

	c.JSON(status, gin.H{
		"error": msg,
		"kind":  kind,
	})
}

// bindBody decodes the JSON request body into dst, answering 400 on failure.
func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"kind":    entities.KindInvalidField,
			"details": err.Error(),
		})
		return false
	}
	return true
}

// pathID parses an unsigned integer path parameter, answering 400 on failure.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, strconv.IntSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid " + name,
			"kind":  entities.KindInvalidField,
		})
		return 0, false
	}
	return uint(id), true
}

type serializer interface {
	Serialize() entities.Record
}

func serializeAll[T serializer](items []T) []entities.Record {
	out := make([]entities.Record, 0, len(items))
	for _, item := range items {
		out = append(out, item.Serialize())
	}
	return out
}
