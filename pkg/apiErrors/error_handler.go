package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIError é o envelope de falha devolvido por todos os endpoints de dados
type APIError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Message devolve o texto do erro de origem, sem o contexto adicionado pelas camadas internas
func Message(err error) string {
	if err == nil {
		return "Erro desconhecido"
	}

	if msg := errors.Cause(err).Error(); msg != "" {
		return msg
	}

	return err.Error()
}

// WriteError escreve o envelope de falha com o status informado
func WriteError(w http.ResponseWriter, status int, message string) {
	if message == "" {
		message = http.StatusText(status)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIError{
		Success: false,
		Error:   message,
	})
}

// FromError escreve o envelope de falha a partir de um erro Go
func FromError(w http.ResponseWriter, status int, err error) {
	WriteError(w, status, Message(err))
}
