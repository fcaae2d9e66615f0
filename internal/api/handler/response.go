package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cine-dw-api/pkg/apiErrors"
	"github.com/vfg2006/cine-dw-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope é a resposta de sucesso de todos os endpoints de dados.
// Total só é preenchido pela listagem de películas.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Total   *int `json:"total,omitempty"`
}

// writeResult transforma o resultado de uma consulta no envelope de sucesso ou de falha.
// É o único ponto onde erros de consulta viram resposta HTTP.
func writeResult[T any](w http.ResponseWriter, r *http.Request, operation string, rows []T, err error, includeTotal bool) {
	logger := log.ForContext(r.Context()).WithField("operation", operation)

	if err != nil {
		logger.WithError(err).Error("Erro ao consultar o warehouse")
		apiErrors.FromError(w, http.StatusInternalServerError, err)
		return
	}

	if rows == nil {
		rows = []T{}
	}

	envelope := Envelope{
		Success: true,
		Data:    rows,
	}
	if includeTotal {
		total := len(rows)
		envelope.Total = &total
	}

	logger.WithField("rows", len(rows)).Debug("Consulta concluída")

	writeJSON(w, http.StatusOK, envelope)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}
