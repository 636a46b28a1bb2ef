package types

import "fmt"

// CustomError is an HTTP-mappable error carrying the legacy machine code
// (e.g. "PERFIL_NOT_FOUND") alongside the status.
type CustomError struct {
	Status  int    `json:"status"`
	Message string `json:"mensagem"`
	Code    string `json:"codigo"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [%s]", e.Status, e.Message, e.Code)
}

// NewCustomError builds a CustomError.
func NewCustomError(status int, message, code string) *CustomError {
	return &CustomError{Status: status, Message: message, Code: code}
}
