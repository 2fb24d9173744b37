package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CeilToCent arredonda o valor para cima no centavo. O epsilon absorve o
// ruído de ponto flutuante da aritmética de lucro (ex.: 88.00000000000001).
func CeilToCent(f float64) float64 {
	return math.Ceil(f*100-1e-6) / 100
}
