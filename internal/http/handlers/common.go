package handlers

import (
	"io"

	"stayscape/internal/domain"
	"stayscape/internal/validate"

	"github.com/gin-gonic/gin"
)

// ValidateBody reads the raw body and runs it through the schema check.
// Returns false after responding when the payload fails either tier.
func ValidateBody(c *gin.Context, schema validate.Schema) (validate.Fields, bool) {
	if c.Request.Body == nil {
		RespondError(c, domain.ShapeError{})
		return nil, false
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, domain.ShapeError{Err: err})
		return nil, false
	}
	fields, err := validate.Body(raw, schema)
	if err != nil {
		RespondError(c, err)
		return nil, false
	}
	return fields, true
}

// PathID coerces the :id segment, responding on failure.
func PathID(c *gin.Context) (int64, bool) {
	id, err := validate.ID(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return 0, false
	}
	return id, true
}
