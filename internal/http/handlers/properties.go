package handlers

import (
	"net/http"
	"strconv"

	"stayscape/internal/domain/models"
	"stayscape/internal/http/middleware"
	"stayscape/internal/repositories"
	"stayscape/internal/utils"
	"stayscape/internal/validate"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	Repo repositories.PropertyRepository
}

var propertyCreateSchema = validate.Schema{
	"name":            {Required: true, Type: validate.String},
	"property_type":   {Required: true, Type: validate.String},
	"location":        {Required: true, Type: validate.String},
	"price_per_night": {Required: true, Type: validate.Number},
	"description":     {Type: validate.String},
	"host_id":         {Required: true, Type: validate.Number},
}

var propertyPatchSchema = validate.Schema{
	"name":            {Type: validate.String},
	"property_name":   {Type: validate.String},
	"property_type":   {Type: validate.String},
	"location":        {Type: validate.String},
	"price_per_night": {Type: validate.Number},
	"description":     {Type: validate.String},
}

func (h PropertyHandler) List(c *gin.Context) {
	opts, err := validate.PropertyListOptions(c.Request.URL.Query())
	if err != nil {
		RespondError(c, err)
		return
	}

	properties, err := h.Repo.List(opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

func (h PropertyHandler) GetByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	userID, err := validate.OptionalUserID(c.Request.URL.Query())
	if err != nil {
		RespondError(c, err)
		return
	}

	property, err := h.Repo.GetByID(id, userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

func (h PropertyHandler) Create(c *gin.Context) {
	fields, ok := ValidateBody(c, propertyCreateSchema)
	if !ok {
		return
	}

	property, err := h.Repo.Insert(
		fields.Str("name"),
		fields.Str("property_type"),
		fields.Str("location"),
		fields.Num("price_per_night"),
		fields.Str("description"),
		fields.Int("host_id"),
	)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "property", "create", "property_id="+strconv.FormatInt(property.PropertyID, 10))
	c.JSON(http.StatusCreated, gin.H{"property": property})
}

func (h PropertyHandler) Patch(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	fields, ok := ValidateBody(c, propertyPatchSchema)
	if !ok {
		return
	}

	patch := models.PropertyPatch{
		Name:          fields.StrPtr("name"),
		PropertyType:  fields.StrPtr("property_type"),
		Location:      fields.StrPtr("location"),
		PricePerNight: fields.NumPtr("price_per_night"),
		Description:   fields.StrPtr("description"),
	}
	// property_name is the list-shape alias for name
	if patch.Name == nil {
		patch.Name = fields.StrPtr("property_name")
	}

	property, err := h.Repo.Update(id, patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

func (h PropertyHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "property", "delete", "property_id="+strconv.FormatInt(id, 10))
	c.Status(http.StatusNoContent)
}
