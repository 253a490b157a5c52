package handlers

import (
	"net/http"

	"stayscape/internal/repositories"
	"stayscape/internal/validate"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	Repo repositories.ReviewRepository
}

var reviewCreateSchema = validate.Schema{
	"guest_id": {Required: true, Type: validate.Number},
	"rating":   {Required: true, Type: validate.Number},
	"comment":  {Type: validate.String},
}

func (h ReviewHandler) ListForProperty(c *gin.Context) {
	propertyID, ok := PathID(c)
	if !ok {
		return
	}

	reviews, average, err := h.Repo.ListForProperty(propertyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "average_rating": average})
}

func (h ReviewHandler) Create(c *gin.Context) {
	propertyID, ok := PathID(c)
	if !ok {
		return
	}
	fields, ok := ValidateBody(c, reviewCreateSchema)
	if !ok {
		return
	}

	review, err := h.Repo.Insert(propertyID, fields.Int("guest_id"), fields.Int("rating"), fields.Str("comment"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(reviewID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
