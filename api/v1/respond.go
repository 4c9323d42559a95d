package v1

import (
	"log"
	"net/http"

	"github.com/archidesk/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status and the standard
// error envelope. Internal causes are logged but never shown to clients.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Println("internal error:", err)
		message = "Internal server error"
	}

	body := gin.H{
		"status":  "error",
		"message": message,
	}
	if fields := apperrors.FieldsOf(err); len(fields) > 0 {
		body["errors"] = fields
	}

	c.JSON(status, body)
}
