// Package response contém os tipos auxiliares para formar as respostas
// JSON de erro dos handlers HTTP. O contrato de erro é estável: corpo
// `{"error": "..."}` com status 400/401/403/404/500; sucesso devolve o
// próprio recurso, sem envelope.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse é a estrutura de erro devolvida por todos os handlers.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// Error devolve um ErrorResponse com a mensagem informada.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Error: msg,
	}
}

// ValidationError forma um ErrorResponse a partir das violações de validação.
// Cada violação vira um texto legível, unidas por vírgula.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		case "url":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid url", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{
		Error: strings.Join(errsMsgs, ", "),
	}
}
