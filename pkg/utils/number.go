package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais, o suficiente
// para valores monetários e métricas percentuais
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
