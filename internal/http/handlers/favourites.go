package handlers

import (
	"net/http"

	"stayscape/internal/repositories"
	"stayscape/internal/validate"

	"github.com/gin-gonic/gin"
)

type FavouriteHandler struct {
	Repo repositories.FavouriteRepository
}

var favouriteCreateSchema = validate.Schema{
	"guest_id": {Required: true, Type: validate.Number},
}

func (h FavouriteHandler) Create(c *gin.Context) {
	propertyID, ok := PathID(c)
	if !ok {
		return
	}
	fields, ok := ValidateBody(c, favouriteCreateSchema)
	if !ok {
		return
	}

	favourite, err := h.Repo.Insert(fields.Int("guest_id"), propertyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"favourite": gin.H{
		"favourite_id": favourite.FavouriteID,
		"msg":          "Property favourited successfully.",
	}})
}

func (h FavouriteHandler) Delete(c *gin.Context) {
	favouriteID, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(favouriteID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h FavouriteHandler) ListForUser(c *gin.Context) {
	userID, ok := PathID(c)
	if !ok {
		return
	}
	favourites, err := h.Repo.ListForUser(userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favourites": favourites})
}
