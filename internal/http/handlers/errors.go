package handlers

import (
	"log"
	"net/http"

	"stayscape/internal/domain"
	"stayscape/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError maps classified errors onto the external vocabulary. The
// order matters: a single failure can satisfy several checks, so foreign-key
// wins over the bad-request tier, which wins over domain not-found, and
// anything unclassified falls through to a detail-free 500.
func RespondError(c *gin.Context, err error) {
	switch {
	case domain.IsForeignKey(err):
		respondMsg(c, http.StatusNotFound, err)
	case domain.IsType(err):
		respondMsg(c, http.StatusBadRequest, err)
	case domain.IsShape(err):
		respondMsg(c, http.StatusBadRequest, err)
	case domain.IsEnum(err):
		respondMsg(c, http.StatusBadRequest, err)
	case domain.IsDateFormat(err):
		respondMsg(c, http.StatusBadRequest, err)
	case domain.IsNotFound(err):
		respondMsg(c, http.StatusNotFound, err)
	default:
		log.Printf("[ERROR] request_id=%s unclassified: %v", middleware.GetRequestID(c), err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}

func respondMsg(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"msg": err.Error()})
}

// PageNotFound answers unmatched routes.
func PageNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": "Page not found."})
}

// MethodNotAllowed answers matched routes hit with a disallowed method.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"msg": "Method not allowed."})
}
