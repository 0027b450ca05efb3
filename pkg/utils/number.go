package utils

import "math"

// RoundWithTwoDecimalPlace arredonda valores monetários e pontuações
// para duas casas decimais
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
