package http

// APIResponse is the envelope every JSON endpoint responds with.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"indicator"`
	Message string                 `json:"message,omitempty" example:"Indicator is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
