package handlers

import (
	"net/http"

	"stayscape/internal/domain"
	"stayscape/internal/domain/models"
	"stayscape/internal/repositories"
	"stayscape/internal/validate"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Repo repositories.UserRepository
}

var userCreateSchema = validate.Schema{
	"first_name":   {Required: true, Type: validate.String},
	"surname":      {Required: true, Type: validate.String},
	"email":        {Required: true, Type: validate.String},
	"phone_number": {Type: validate.String},
	"role":         {Type: validate.String},
	"avatar":       {Type: validate.String},
}

var userPatchSchema = validate.Schema{
	"first_name":   {Type: validate.String},
	"surname":      {Type: validate.String},
	"email":        {Type: validate.String},
	"phone_number": {Type: validate.String},
	"role":         {Type: validate.String},
	"avatar":       {Type: validate.String},
}

func validRole(role string) bool {
	return role == "" || role == "host" || role == "guest"
}

func (h UserHandler) GetByID(c *gin.Context) {
	userID, ok := PathID(c)
	if !ok {
		return
	}
	user, err := h.Repo.GetByID(userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h UserHandler) Create(c *gin.Context) {
	fields, ok := ValidateBody(c, userCreateSchema)
	if !ok {
		return
	}
	if !validRole(fields.Str("role")) {
		RespondError(c, domain.ShapeError{Field: "role"})
		return
	}

	user, err := h.Repo.Insert(
		fields.Str("first_name"),
		fields.Str("surname"),
		fields.Str("email"),
		fields.Str("phone_number"),
		fields.Str("role"),
		fields.Str("avatar"),
	)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h UserHandler) Patch(c *gin.Context) {
	userID, ok := PathID(c)
	if !ok {
		return
	}
	fields, ok := ValidateBody(c, userPatchSchema)
	if !ok {
		return
	}
	if fields.Has("role") && !validRole(fields.Str("role")) {
		RespondError(c, domain.ShapeError{Field: "role"})
		return
	}

	patch := models.UserPatch{
		FirstName:   fields.StrPtr("first_name"),
		Surname:     fields.StrPtr("surname"),
		Email:       fields.StrPtr("email"),
		PhoneNumber: fields.StrPtr("phone_number"),
		Role:        fields.StrPtr("role"),
		Avatar:      fields.StrPtr("avatar"),
	}
	user, err := h.Repo.Update(userID, patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
