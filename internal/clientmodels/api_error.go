package clientmodels

type APIErrorResponse struct {
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  []APIFieldError `json:"errors,omitempty"`
}

type APIFieldError struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
