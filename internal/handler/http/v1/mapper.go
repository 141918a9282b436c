package v1

import "github.com/shenikar/fire_dispatch_system/internal/models"

// RegisterSocietyToModel преобразует DTO регистрации в доменную модель
func RegisterSocietyToModel(dto RegisterSocietyRequest) *models.Society {
	return &models.Society{
		Name:           dto.Name,
		Address:        dto.Address,
		Area:           dto.Area,
		City:           dto.City,
		SecretaryName:  dto.SecretaryName,
		SecretaryEmail: dto.SecretaryEmail,
		SecretaryPhone: dto.SecretaryPhone,
		Location:       LocationToModel(dto.Location),
	}
}

// RegisterStationToModel преобразует DTO регистрации станции в доменную модель
func RegisterStationToModel(dto RegisterStationRequest) *models.FireStation {
	return &models.FireStation{
		StationName: dto.StationName,
		Address:     dto.Address,
		Area:        dto.Area,
		City:        dto.City,
		Email:       dto.Email,
		Phone:       dto.Phone,
		Location:    LocationToModel(dto.Location),
	}
}

// LocationToModel преобразует опциональные координаты
func LocationToModel(dto *LocationDTO) *models.Location {
	if dto == nil {
		return nil
	}
	return &models.Location{Latitude: dto.Latitude, Longitude: dto.Longitude}
}

// ModelToLocationDTO преобразует координаты модели в DTO
func ModelToLocationDTO(location *models.Location) *LocationDTO {
	if location == nil {
		return nil
	}
	return &LocationDTO{Latitude: location.Latitude, Longitude: location.Longitude}
}

// ModelToDispatchResponse преобразует итог диспетчеризации в DTO
func ModelToDispatchResponse(result *models.DispatchResult) *DispatchResponse {
	return &DispatchResponse{
		Message:        "Fire alert triggered successfully",
		StationID:      result.StationID,
		StationName:    result.StationName,
		ResponseID:     result.ResponseID,
		ResidentsTotal: result.ResidentsTotal,
		NotifyFailures: result.NotifyFailures,
	}
}

// ModelToFireStatusResponse преобразует статус тревоги в DTO
func ModelToFireStatusResponse(status *models.FireStatus) *FireStatusResponse {
	return &FireStatusResponse{
		IsActive:          status.IsActive,
		ActivatedAt:       status.ActivatedAt,
		RespondingStation: status.RespondingStation,
		StationName:       status.StationName,
	}
}

// ModelToResponseDTO преобразует запись о выезде в DTO
func ModelToResponseDTO(response *models.Response) *ResponseDTO {
	return &ResponseDTO{
		ID:        response.ID,
		StationID: response.StationID,
		SocietyID: response.SocietyID,
		Status:    string(response.Status),
		CreatedAt: response.CreatedAt,
		UpdatedAt: response.UpdatedAt,
	}
}

// ModelsToActiveResponseDTOs преобразует слайс активных выездов в DTO
func ModelsToActiveResponseDTOs(responses []*models.ActiveResponse) []*ActiveResponseDTO {
	dtos := make([]*ActiveResponseDTO, len(responses))
	for i, response := range responses {
		dtos[i] = &ActiveResponseDTO{
			ResponseDTO:     *ModelToResponseDTO(&response.Response),
			SocietyName:     response.SocietyName,
			SocietyAddress:  response.SocietyAddress,
			SocietyLocation: ModelToLocationDTO(response.SocietyLocation),
		}
	}
	return dtos
}

// ModelToStationStatsResponse преобразует статистику станции в DTO
func ModelToStationStatsResponse(stats *models.StationStats) *StationStatsResponse {
	return &StationStatsResponse{
		TotalResponses:     stats.TotalResponses,
		ResolvedResponses:  stats.ResolvedResponses,
		PersonnelCount:     stats.PersonnelCount,
		AvgResponseSeconds: stats.AvgResponseSeconds,
	}
}
