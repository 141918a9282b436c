package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
)

// @Summary Register a new fire station
// @Description Register a fire station with its credentials and location.
// @Tags FireStation
// @Accept json
// @Produce json
// @Param station body RegisterStationRequest true "Station registration request"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Fire station already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /fire-station/register [post]
func (h *Handler) registerStation(c *gin.Context) {
	var input RegisterStationRequest
	log := h.logger.WithField("method", "registerStation")

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

	station := RegisterStationToModel(input)
	if err := h.stationService.Register(c.Request.Context(), station, input.Password); err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrConflict: "fire station already registered with this email",
		})
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Fire station registered successfully"})
}

// @Summary Fire station login
// @Description Authenticate a fire station and issue a token.
// @Tags FireStation
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid credentials"
// @Failure 404 {object} map[string]string "Fire station not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /fire-station/login [post]
func (h *Handler) loginStation(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "loginStation")

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

	signed, err := h.stationService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrValidation: "invalid credentials",
			apperr.ErrNotFound:   "fire station not found",
		})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: signed})
}

// @Summary Get fire station details
// @Description Get the authenticated fire station with personnel.
// @Tags FireStation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FireStation
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fire station not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /fire-station/details [get]
func (h *Handler) getStationDetails(c *gin.Context) {
	log := h.logger.WithField("method", "getStationDetails")

	station, err := h.stationService.GetDetails(c.Request.Context(), subjectID(c))
	if err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrNotFound: "fire station not found",
		})
		return
	}
	c.JSON(http.StatusOK, station)
}

// @Summary Add personnel
// @Description Add a staff member to the authenticated fire station.
// @Tags FireStation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param personnel body AddPersonnelRequest true "Personnel request"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /fire-station/personnel [post]
func (h *Handler) addPersonnel(c *gin.Context) {
	var input AddPersonnelRequest
	log := h.logger.WithField("method", "addPersonnel")

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

	person := &models.Personnel{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Role:  input.Role,
	}
	if err := h.stationService.AddPersonnel(c.Request.Context(), subjectID(c), person); err != nil {
		respondError(c, log, err, nil)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Personnel added successfully"})
}

// @Summary Update a response status
// @Description Update the status of a response owned by the authenticated station. Completed responses are terminal.
// @Tags FireStation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Response ID"
// @Param status body UpdateResponseRequest true "Status update request"
// @Success 200 {object} ResponseDTO
// @Failure 400 {object} map[string]string "Invalid response ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Response not found"
// @Failure 409 {object} map[string]string "Response is already completed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /fire-station/responses/{id} [put]
func (h *Handler) updateResponse(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid response ID"})
		return
	}
	log := h.logger.WithField("method", "updateResponse").WithField("response_id", responseID)

	var input UpdateResponseRequest
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

	response, err := h.responseService.UpdateStatus(
		c.Request.Context(), subjectID(c), responseID, models.ResponseStatus(input.Status))
	if err != nil {
		respondError(c, log, err, map[error]string{
			apperr.ErrConflict: "response is already completed",
			apperr.ErrNotFound: "response not found",
		})
		return
	}
	c.JSON(http.StatusOK, ModelToResponseDTO(response))
}

// @Summary List active emergencies
// @Description List responses of the authenticated station that are still in responding status.
// @Tags FireStation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ActiveResponseDTO
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /fire-station/active-responses [get]
func (h *Handler) listActiveResponses(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveResponses")

	responses, err := h.responseService.ListActive(c.Request.Context(), subjectID(c))
	if err != nil {
		respondError(c, log, err, nil)
		return
	}
	c.JSON(http.StatusOK, ModelsToActiveResponseDTOs(responses))
}

// @Summary Get station statistics
// @Description Get response and personnel aggregates of the authenticated station.
// @Tags FireStation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StationStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /fire-station/stats [get]
func (h *Handler) getStationStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStationStats")

	stats, err := h.stationService.GetStats(c.Request.Context(), subjectID(c))
	if err != nil {
		respondError(c, log, err, nil)
		return
	}
	c.JSON(http.StatusOK, ModelToStationStatsResponse(stats))
}
