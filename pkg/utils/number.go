package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseLeadingInt lê o inteiro no início de s (espaços e sinal opcionais),
// ignorando o que vier depois dos dígitos. "12abc" vira 12.
// ok é falso quando não há dígitos; err indica um número que não cabe em int.
func ParseLeadingInt(s string) (n int, ok bool, err error) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false, nil
	}

	n, err = strconv.Atoi(s[:end])
	if err != nil {
		return 0, false, errors.Errorf("número fora do intervalo suportado: %s", s[:end])
	}

	return n, true, nil
}

// IntOrDefault retorna o inteiro inicial de s ou def quando não há número ou ele é zero.
// Um número grande demais para int é erro, nunca def.
func IntOrDefault(s string, def int) (int, error) {
	n, ok, err := ParseLeadingInt(s)
	if err != nil {
		return 0, err
	}
	if !ok || n == 0 {
		return def, nil
	}

	return n, nil
}
