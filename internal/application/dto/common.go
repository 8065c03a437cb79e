package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo de éxito con mensaje para operaciones sin payload.
type MessageResponse struct {
	Message string `json:"message"`
}
