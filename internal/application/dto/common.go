package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateRangeRequest rango de fechas para listados y reportes (query params).
type DateRangeRequest struct {
	StartDate string `query:"startDate"` // YYYY-MM-DD o RFC3339
	EndDate   string `query:"endDate"`
}
