// controllers/user_controller.go
package controllers

import (
	"net/http"

	"guest-portal/middleware"
	"guest-portal/services"
	"guest-portal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type updateProfilePayload struct {
	Name        *string        `json:"name"`
	Phone       *string        `json:"phone"`
	Address     *string        `json:"address"`
	Avatar      *string        `json:"avatar"`
	Language    *string        `json:"language"`
	Currency    *string        `json:"currency"`
	Preferences datatypes.JSON `json:"preferences"`
}

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

// GetUser returns the caller's own profile. The :id must match the caller:
// guests cannot read each other's accounts.
func (ctrl *UserController) GetUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if id != user.ID {
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", "You can only access your own profile")
		return
	}

	fresh, err := ctrl.UserSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": fresh})
}

func (ctrl *UserController) UpdateUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if id != user.ID {
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", "You can only edit your own profile")
		return
	}

	var payload updateProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request body", "details": err.Error()}})
		return
	}

	updated, err := ctrl.UserSvc.UpdateProfile(id, services.ProfileUpdate{
		Name:        payload.Name,
		Phone:       payload.Phone,
		Address:     payload.Address,
		Avatar:      payload.Avatar,
		Language:    payload.Language,
		Currency:    payload.Currency,
		Preferences: payload.Preferences,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": updated})
}
