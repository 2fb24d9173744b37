package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Arredonda para baixo", input: 12.344, expected: 12.34},
		{name: "Arredonda para cima", input: 12.346, expected: 12.35},
		{name: "Inteiro permanece", input: 10.0, expected: 10.0},
		{name: "Negativo", input: -1.004, expected: -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}

func TestCeilToCent(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Fração de centavo sobe", input: 18.6913, expected: 18.70},
		{name: "Valor exato permanece", input: 88.0, expected: 88.0},
		{name: "Ruído de ponto flutuante não sobe centavo", input: 40 + 60*0.8, expected: 88.0},
		{name: "Um décimo de centavo sobe", input: 9.991, expected: 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CeilToCent(tt.input))
		})
	}
}
