package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResultadoValidacion resultado estructurado de una validación de negocio.
// Las validaciones nunca lanzan: reportan {isValid:false, error}.
type ResultadoValidacion struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}
