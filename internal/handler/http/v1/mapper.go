package v1

import "github.com/shenikar/captain_radius/internal/models"

// DTOToRadiusCheckRequest преобразует DTO в доменный запрос.
// Отсутствующий радиус передается нулем: сервис подставит значение по умолчанию.
func DTOToRadiusCheckRequest(dto RadiusCheckRequest) models.RadiusCheckRequest {
	req := models.RadiusCheckRequest{
		OriginText:      dto.Origin,
		DestinationText: dto.Destination,
	}
	if dto.RadiusKm != nil {
		req.RadiusKm = *dto.RadiusKm
	}
	return req
}

// ModelToRadiusCheckResponse преобразует результат проверки в DTO для ответа
func ModelToRadiusCheckResponse(model *models.RadiusCheck) *RadiusCheckResponse {
	return &RadiusCheckResponse{
		CheckID:      model.ID,
		WithinRadius: model.WithinRadius,
		DistanceKm:   model.DistanceKm,
		Message:      model.Message,
		RadiusKm:     model.RadiusKm,
	}
}

// ModelToRadiusCheckRecord преобразует запись журнала в DTO
func ModelToRadiusCheckRecord(model *models.RadiusCheck) *RadiusCheckRecordResponse {
	return &RadiusCheckRecordResponse{
		ID:           model.ID,
		CaptainID:    model.CaptainID,
		Origin:       model.OriginText,
		Destination:  model.DestinationText,
		RadiusKm:     model.RadiusKm,
		WithinRadius: model.WithinRadius,
		DistanceKm:   model.DistanceKm,
		Message:      model.Message,
		Reason:       string(model.Reason),
		CheckedAt:    model.CheckedAt,
	}
}

// ModelsToRadiusCheckRecords преобразует слайс записей в слайс DTO
func ModelsToRadiusCheckRecords(models []*models.RadiusCheck) []*RadiusCheckRecordResponse {
	responses := make([]*RadiusCheckRecordResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToRadiusCheckRecord(model)
	}
	return responses
}

// ModelToStatsResponse преобразует статистику в DTO
func ModelToStatsResponse(model *models.RadiusCheckStats) StatsResponse {
	return StatsResponse{
		Total:            model.Total,
		Rejected:         model.Rejected,
		OriginUnresolved: model.OriginUnresolved,
		WindowMinutes:    model.WindowMinutes,
	}
}
