package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/internal/service/mocks"
	"github.com/shenikar/fire_dispatch_system/pkg/apperr"
	"github.com/shenikar/fire_dispatch_system/pkg/token"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testMocks собирает моки всех сервисов хендлера
type testMocks struct {
	society  *mocks.MockSocietyService
	station  *mocks.MockStationService
	dispatch *mocks.MockDispatchService
	response *mocks.MockResponseService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		society:  mocks.NewMockSocietyService(ctrl),
		station:  mocks.NewMockStationService(ctrl),
		dispatch: mocks.NewMockDispatchService(ctrl),
		response: mocks.NewMockResponseService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	tokens := token.NewManager("test-secret", time.Hour)

	handler := NewHandler(m.society, m.station, m.dispatch, m.response, tokens, logger)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// authHeader выпускает токен и возвращает заголовок Authorization для него
func authHeader(t *testing.T, h *Handler, subjectID uuid.UUID, role string) map[string]string {
	signed, err := h.tokens.Issue(subjectID, role)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + signed}
}

func TestRegisterSociety_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegisterSocietyRequest{
		Name:           "Green Valley",
		Address:        "12 Garden Street",
		Area:           "North",
		City:           "Pune",
		SecretaryName:  "John Smith",
		SecretaryEmail: "secretary@example.com",
		SecretaryPhone: "+1234567890",
		Password:       "secret-password",
	}

	m.society.EXPECT().
		Register(gomock.Any(), gomock.Any(), reqBody.Password).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/society/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Society registered successfully")
}

func TestRegisterSociety_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.society.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/society/register", bytes.NewBufferString(`{"name": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestRegisterSociety_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegisterSocietyRequest{ // Отсутствует SecretaryEmail
		Name:           "Green Valley",
		Address:        "12 Garden Street",
		Area:           "North",
		City:           "Pune",
		SecretaryName:  "John Smith",
		SecretaryPhone: "+1234567890",
		Password:       "secret-password",
	}

	m.society.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/society/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'SecretaryEmail' failed on the 'required' tag")
}

func TestRegisterSociety_EmailTaken(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegisterSocietyRequest{
		Name:           "Green Valley",
		Address:        "12 Garden Street",
		Area:           "North",
		City:           "Pune",
		SecretaryName:  "John Smith",
		SecretaryEmail: "taken@example.com",
		SecretaryPhone: "+1234567890",
		Password:       "secret-password",
	}

	m.society.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: %w", apperr.ErrConflict)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/society/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "society already registered with this email")
}

func TestLoginSociety_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "secretary@example.com", Password: "secret-password"}

	m.society.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return("signed-token", nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/society/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TokenResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLoginSociety_InvalidCredentials(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "secretary@example.com", Password: "wrong-password"}

	m.society.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return("", fmt.Errorf("service: %w", apperr.ErrValidation)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/society/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestTriggerFire_Success(t *testing.T) {
	h, m, router := newTestHandler(t)
	societyID := uuid.New()
	result := &models.DispatchResult{
		StationID:      uuid.New(),
		StationName:    "Central Station",
		ResponseID:     uuid.New(),
		ResidentsTotal: 12,
	}

	m.dispatch.EXPECT().TriggerFire(gomock.Any(), societyID).Return(result, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/society/trigger-fire", nil, authHeader(t, h, societyID, token.RoleSociety))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DispatchResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, result.StationID, resp.StationID)
	assert.Equal(t, "Central Station", resp.StationName)
	assert.Equal(t, 12, resp.ResidentsTotal)
	assert.Contains(t, resp.Message, "Fire alert triggered successfully")
}

func TestTriggerFire_AlreadyActive(t *testing.T) {
	h, m, router := newTestHandler(t)
	societyID := uuid.New()

	m.dispatch.EXPECT().
		TriggerFire(gomock.Any(), societyID).
		Return(nil, fmt.Errorf("service: %w", apperr.ErrConflict)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/society/trigger-fire", nil, authHeader(t, h, societyID, token.RoleSociety))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "fire alert is already active for this society")
}

func TestTriggerFire_NoLocation(t *testing.T) {
	h, m, router := newTestHandler(t)
	societyID := uuid.New()

	m.dispatch.EXPECT().
		TriggerFire(gomock.Any(), societyID).
		Return(nil, fmt.Errorf("service: %w", apperr.ErrValidation)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/society/trigger-fire", nil, authHeader(t, h, societyID, token.RoleSociety))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "society location coordinates are not set")
}

func TestTriggerFire_NoStationNearby(t *testing.T) {
	h, m, router := newTestHandler(t)
	societyID := uuid.New()

	m.dispatch.EXPECT().
		TriggerFire(gomock.Any(), societyID).
		Return(nil, fmt.Errorf("service: %w", apperr.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/society/trigger-fire", nil, authHeader(t, h, societyID, token.RoleSociety))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no fire stations available nearby")
}

func TestTriggerFire_RollbackFailed(t *testing.T) {
	h, m, router := newTestHandler(t)
	societyID := uuid.New()

	// Компенсация не прошла: наружу уходит обобщенная 500
	m.dispatch.EXPECT().
		TriggerFire(gomock.Any(), societyID).
		Return(nil, fmt.Errorf("service: %w", apperr.ErrRollbackFailed)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/society/trigger-fire", nil, authHeader(t, h, societyID, token.RoleSociety))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestTriggerFire_Unauthorized(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.dispatch.EXPECT().TriggerFire(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/society/trigger-fire", nil) // Нет токена

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization token required")
}

func TestTriggerFire_WrongRole(t *testing.T) {
	h, m, router := newTestHandler(t)

	m.dispatch.EXPECT().TriggerFire(gomock.Any(), gomock.Any()).Times(0)

	// Токен станции не дает доступ к маршрутам общества
	w := makeRequest(router, "POST", "/api/v1/society/trigger-fire", nil, authHeader(t, h, uuid.New(), token.RoleStation))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid authorization token")
}

func TestGetFireStatus_Success(t *testing.T) {
	h, m, router := newTestHandler(t)
	societyID := uuid.New()
	stationID := uuid.New()
	activatedAt := time.Now().UTC().Truncate(time.Second)
	status := &models.FireStatus{
		IsActive:          true,
		ActivatedAt:       &activatedAt,
		RespondingStation: &stationID,
		StationName:       "Central Station",
	}

	m.dispatch.EXPECT().GetFireStatus(gomock.Any(), societyID).Return(status, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/society/fire-status", nil, authHeader(t, h, societyID, token.RoleSociety))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FireStatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.RespondingStation)
	assert.Equal(t, stationID, *resp.RespondingStation)
	assert.Equal(t, "Central Station", resp.StationName)
}

func TestAddResident_Success(t *testing.T) {
	h, m, router := newTestHandler(t)
	societyID := uuid.New()
	reqBody := AddResidentRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+1234567890",
		FlatNumber: "12A",
	}

	m.society.EXPECT().
		AddResident(gomock.Any(), societyID, gomock.Any()).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/society/residents", bytes.NewBuffer(bodyBytes), authHeader(t, h, societyID, token.RoleSociety))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Resident added successfully")
}

func TestAddResident_FlatNumberTaken(t *testing.T) {
	h, m, router := newTestHandler(t)
	societyID := uuid.New()
	reqBody := AddResidentRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+1234567890",
		FlatNumber: "12A",
	}

	m.society.EXPECT().
		AddResident(gomock.Any(), societyID, gomock.Any()).
		Return(fmt.Errorf("service: %w", apperr.ErrConflict)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/society/residents", bytes.NewBuffer(bodyBytes), authHeader(t, h, societyID, token.RoleSociety))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "flat number already registered")
}

func TestRemoveResident_InvalidID(t *testing.T) {
	h, m, router := newTestHandler(t)

	m.society.EXPECT().RemoveResident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/society/residents/invalid-uuid", nil, authHeader(t, h, uuid.New(), token.RoleSociety))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid resident ID")
}

func TestUpdateCoordinates_Success(t *testing.T) {
	h, m, router := newTestHandler(t)
	societyID := uuid.New()
	reqBody := LocationDTO{Latitude: 18.52, Longitude: 73.85}

	m.society.EXPECT().
		UpdateLocation(gomock.Any(), societyID, models.Location{Latitude: 18.52, Longitude: 73.85}).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/society/coordinates", bytes.NewBuffer(bodyBytes), authHeader(t, h, societyID, token.RoleSociety))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Coordinates updated successfully")
}

func TestUpdateResponse_Success(t *testing.T) {
	h, m, router := newTestHandler(t)
	stationID := uuid.New()
	responseID := uuid.New()
	reqBody := UpdateResponseRequest{Status: "completed"}
	updated := &models.Response{
		ID:        responseID,
		StationID: stationID,
		SocietyID: uuid.New(),
		Status:    models.ResponseStatusCompleted,
	}

	m.response.EXPECT().
		UpdateStatus(gomock.Any(), stationID, responseID, models.ResponseStatusCompleted).
		Return(updated, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/fire-station/responses/%s", responseID), bytes.NewBuffer(bodyBytes), authHeader(t, h, stationID, token.RoleStation))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ResponseDTO
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, responseID, resp.ID)
	assert.Equal(t, "completed", resp.Status)
}

func TestUpdateResponse_InvalidStatus(t *testing.T) {
	h, m, router := newTestHandler(t)

	m.response.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(UpdateResponseRequest{Status: "cancelled"})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/fire-station/responses/%s", uuid.New()), bytes.NewBuffer(bodyBytes), authHeader(t, h, uuid.New(), token.RoleStation))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Status' failed on the 'oneof' tag")
}

func TestUpdateResponse_AlreadyCompleted(t *testing.T) {
	h, m, router := newTestHandler(t)
	stationID := uuid.New()
	responseID := uuid.New()

	m.response.EXPECT().
		UpdateStatus(gomock.Any(), stationID, responseID, models.ResponseStatusResponding).
		Return(nil, fmt.Errorf("service: %w", apperr.ErrConflict)).
		Times(1)

	bodyBytes, _ := json.Marshal(UpdateResponseRequest{Status: "responding"})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/fire-station/responses/%s", responseID), bytes.NewBuffer(bodyBytes), authHeader(t, h, stationID, token.RoleStation))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "response is already completed")
}

func TestUpdateResponse_NotFound(t *testing.T) {
	h, m, router := newTestHandler(t)
	stationID := uuid.New()
	responseID := uuid.New()

	// Чужой или несуществующий выезд неотличимы для станции
	m.response.EXPECT().
		UpdateStatus(gomock.Any(), stationID, responseID, models.ResponseStatusCompleted).
		Return(nil, fmt.Errorf("service: %w", apperr.ErrNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(UpdateResponseRequest{Status: "completed"})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/fire-station/responses/%s", responseID), bytes.NewBuffer(bodyBytes), authHeader(t, h, stationID, token.RoleStation))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "response not found")
}

func TestListActiveResponses_Success(t *testing.T) {
	h, m, router := newTestHandler(t)
	stationID := uuid.New()
	active := []*models.ActiveResponse{
		{
			Response: models.Response{
				ID:        uuid.New(),
				StationID: stationID,
				SocietyID: uuid.New(),
				Status:    models.ResponseStatusResponding,
			},
			SocietyName:    "Green Valley",
			SocietyAddress: "12 Garden Street",
		},
	}

	m.response.EXPECT().ListActive(gomock.Any(), stationID).Return(active, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/fire-station/active-responses", nil, authHeader(t, h, stationID, token.RoleStation))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ActiveResponseDTO
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Green Valley", resp[0].SocietyName)
	assert.Equal(t, "responding", resp[0].Status)
}

func TestGetStationStats_Success(t *testing.T) {
	h, m, router := newTestHandler(t)
	stationID := uuid.New()
	stats := &models.StationStats{
		TotalResponses:     10,
		ResolvedResponses:  8,
		PersonnelCount:     5,
		AvgResponseSeconds: 420.5,
	}

	m.station.EXPECT().GetStats(gomock.Any(), stationID).Return(stats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/fire-station/stats", nil, authHeader(t, h, stationID, token.RoleStation))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StationStatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 10, resp.TotalResponses)
	assert.Equal(t, 8, resp.ResolvedResponses)
	assert.Equal(t, 5, resp.PersonnelCount)
	assert.Equal(t, 420.5, resp.AvgResponseSeconds)
}

func TestGetStationStats_ServiceError(t *testing.T) {
	h, m, router := newTestHandler(t)
	stationID := uuid.New()
	serviceError := errors.New("database error")

	m.station.EXPECT().GetStats(gomock.Any(), stationID).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/fire-station/stats", nil, authHeader(t, h, stationID, token.RoleStation))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestRegisterStation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegisterStationRequest{
		StationName: "Central Station",
		Address:     "1 Response Road",
		Area:        "North",
		City:        "Pune",
		Email:       "central@example.com",
		Password:    "secret-password",
		Phone:       "+1234567890",
		Location:    &LocationDTO{Latitude: 18.52, Longitude: 73.85},
	}

	m.station.EXPECT().
		Register(gomock.Any(), gomock.Any(), reqBody.Password).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/fire-station/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Fire station registered successfully")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
