package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/fire_dispatch_system/internal/service"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
	"github.com/shenikar/fire_dispatch_system/pkg/token"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	societyService  service.SocietyService
	stationService  service.StationService
	dispatchService service.DispatchService
	responseService service.ResponseService
	tokens          *token.Manager
	logger          *logrus.Logger
	validate        *validator.Validate
}

func NewHandler(
	societyService service.SocietyService,
	stationService service.StationService,
	dispatchService service.DispatchService,
	responseService service.ResponseService,
	tokens *token.Manager,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		societyService:  societyService,
		stationService:  stationService,
		dispatchService: dispatchService,
		responseService: responseService,
		tokens:          tokens,
		logger:          logger,
		validate:        validator.New(),
	}
}

// subjectID возвращает ID аутентифицированного субъекта из контекста gin
func subjectID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(subjectIDKey)
	subject, _ := id.(uuid.UUID)
	return subject
}

// respondError отображает вид ошибки на HTTP-статус. messages позволяет
// задать точное пользовательское сообщение для конкретного вида; внутренние
// ошибки наружу не протекают, клиент видит обобщенное сообщение.
func respondError(c *gin.Context, log *logrus.Entry, err error, messages map[error]string) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
		message = "invalid request"
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
		message = "conflict"
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.Is(err, apperr.ErrRollbackFailed):
		// Компенсация не прошла: общество осталось помечено горящим
		// без назначенной станции. Видимое операторам условие.
		log.WithError(err).WithField("rollback_failed", true).Error("Compensation failed, persistent inconsistent state")
	}

	for kind, kindMessage := range messages {
		if errors.Is(err, kind) {
			message = kindMessage
			break
		}
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}

	c.JSON(status, gin.H{"error": message})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
