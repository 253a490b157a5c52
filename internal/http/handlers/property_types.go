package handlers

import (
	"net/http"

	"stayscape/internal/repositories"

	"github.com/gin-gonic/gin"
)

type PropertyTypeHandler struct {
	Repo repositories.PropertyTypeRepository
}

func (h PropertyTypeHandler) List(c *gin.Context) {
	types, err := h.Repo.List()
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property_types": types})
}
