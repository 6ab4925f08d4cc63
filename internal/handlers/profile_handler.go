package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/session"
)

// ProfileHandler handles profile read and save requests.
type ProfileHandler struct {
	profiles services.ProfileGateway
	sessions *session.Registry
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles services.ProfileGateway, sessions *session.Registry) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, sessions: sessions}
}

// GetProfile returns the signed-in user's profile.
// @Summary     Get profile
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.profiles.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SaveProfileRequest represents the request payload for saving a
// profile. The email is the natural key: saving the same email twice
// updates the existing profile rather than creating a duplicate.
type SaveProfileRequest struct {
	Email         string   `json:"email" binding:"required,email"`
	Name          string   `json:"name" binding:"required,min=2,max=100"`
	Phone         string   `json:"phone" binding:"max=30"`
	DOB           string   `json:"dob" binding:"max=30"`
	Address       string   `json:"address" binding:"max=200"`
	Occupation    string   `json:"occupation" binding:"max=100"`
	MonthlyIncome *float64 `json:"monthly_income" binding:"omitempty,gte=0"`
}

// SaveProfile inserts or updates the profile keyed by email in a single
// statement, then pushes the saved user into the session so subscribed
// components see the change.
// @Summary     Save profile
// @Description Create or update the profile addressed by email
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveProfileRequest true "Profile details"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.profiles.Upsert(c.Request.Context(), models.User{
		Email:         req.Email,
		Name:          req.Name,
		Phone:         req.Phone,
		DOB:           req.DOB,
		Address:       req.Address,
		Occupation:    req.Occupation,
		MonthlyIncome: req.MonthlyIncome,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.sessions.Get(userID).Set(user)

	c.JSON(http.StatusOK, gin.H{"user": user})
}
