package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
)

// @Summary Register a new society
// @Description Register a residential society with its secretary credentials.
// @Tags Society
// @Accept json
// @Produce json
// @Param society body RegisterSocietyRequest true "Society registration request"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Society already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /society/register [post]
func (h *Handler) registerSociety(c *gin.Context) {
	var input RegisterSocietyRequest
	log := h.logger.WithField("method", "registerSociety")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	society := RegisterSocietyToModel(input)
	if err := h.societyService.Register(c.Request.Context(), society, input.Password); err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrConflict: "society already registered with this email",
		})
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Society registered successfully"})
}

// @Summary Society login
// @Description Authenticate a society secretary and issue a token.
// @Tags Society
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid credentials"
// @Failure 404 {object} map[string]string "Society not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /society/login [post]
func (h *Handler) loginSociety(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "loginSociety")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	signed, err := h.societyService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrValidation: "invalid credentials",
			apperr.ErrNotFound:   "society not found",
		})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: signed})
}

// @Summary Get society details
// @Description Get the authenticated society with residents and fire status.
// @Tags Society
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Society
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Society not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /society/details [get]
func (h *Handler) getSocietyDetails(c *gin.Context) {
	log := h.logger.WithField("method", "getSocietyDetails")

	society, err := h.societyService.GetDetails(c.Request.Context(), subjectID(c))
	if err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrNotFound: "society not found",
		})
		return
	}
	c.JSON(http.StatusOK, society)
}

// @Summary Add a resident
// @Description Add a resident to the authenticated society. Flat numbers are unique within a society.
// @Tags Society
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resident body AddResidentRequest true "Resident request"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Flat number already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /society/residents [post]
func (h *Handler) addResident(c *gin.Context) {
	var input AddResidentRequest
	log := h.logger.WithField("method", "addResident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resident := &models.Resident{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		FlatNumber: input.FlatNumber,
	}
	if err := h.societyService.AddResident(c.Request.Context(), subjectID(c), resident); err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrConflict: "flat number already registered",
		})
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Resident added successfully"})
}

// @Summary Remove a resident
// @Description Remove a resident from the authenticated society.
// @Tags Society
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resident ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid resident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /society/residents/{id} [delete]
func (h *Handler) removeResident(c *gin.Context) {
	residentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident ID"})
		return
	}
	log := h.logger.WithField("method", "removeResident").WithField("resident_id", residentID)

	if err := h.societyService.RemoveResident(c.Request.Context(), subjectID(c), residentID); err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrNotFound: "resident not found",
		})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Resident removed successfully"})
}

// @Summary Update society coordinates
// @Description Update the location of the authenticated society.
// @Tags Society
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body LocationDTO true "Coordinates request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /society/coordinates [put]
func (h *Handler) updateCoordinates(c *gin.Context) {
	var input LocationDTO
	log := h.logger.WithField("method", "updateCoordinates")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := models.Location{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := h.societyService.UpdateLocation(c.Request.Context(), subjectID(c), location); err != nil {
		respondError(c, log, err, nil)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Coordinates updated successfully"})
}

// @Summary Trigger a fire alert
// @Description Atomically claim the alert, dispatch the nearest fire station and notify residents.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Society location coordinates are not set"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No fire stations available nearby"
// @Failure 409 {object} map[string]string "Fire alert is already active"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /society/trigger-fire [post]
func (h *Handler) triggerFire(c *gin.Context) {
	log := h.logger.WithField("method", "triggerFire")

	result, err := h.dispatchService.TriggerFire(c.Request.Context(), subjectID(c))
	if err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrConflict:   "fire alert is already active for this society",
			apperr.ErrValidation: "society location coordinates are not set",
			apperr.ErrNotFound:   "no fire stations available nearby",
		})
		return
	}
	c.JSON(http.StatusOK, ModelToDispatchResponse(result))
}

// @Summary Get fire status
// @Description Get the current fire alert status of the authenticated society.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FireStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Society not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /society/fire-status [get]
func (h *Handler) getFireStatus(c *gin.Context) {
	log := h.logger.WithField("method", "getFireStatus")

	status, err := h.dispatchService.GetFireStatus(c.Request.Context(), subjectID(c))
	if err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrNotFound: "society not found",
		})
		return
	}
	c.JSON(http.StatusOK, ModelToFireStatusResponse(status))
}
