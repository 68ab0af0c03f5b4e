package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ParseYear valida e converte o parâmetro de ano de referência (4 dígitos).
// String vazia devolve o ano corrente — os dados de origem carregam apenas
// o número do mês, então algum ano sempre precisa ser assumido.
func ParseYear(yearStr string) (int, error) {
	if yearStr == "" {
		return time.Now().Year(), nil
	}

	if len(yearStr) != 4 {
		return 0, fmt.Errorf("ano inválido: use formato de quatro dígitos (ex: 2025)")
	}

	// Atoi aceita sinal, então o formato precisa ser validado dígito a dígito
	for _, c := range yearStr {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("ano inválido: %s", yearStr)
		}
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, fmt.Errorf("ano inválido: %s", yearStr)
	}

	return year, nil
}

// Period formata um par ano/mês no formato mm-yyyy usado pela tabela de snapshots
func Period(year, month int) string {
	return fmt.Sprintf("%02d-%04d", month, year)
}
