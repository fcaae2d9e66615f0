package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateRunID gera um identificador curto para correlacionar os logs de uma execução agendada
func GenerateRunID() (string, error) {
	return gonanoid.Generate(runIDAlphabet, 10)
}
