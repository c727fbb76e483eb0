package service

import (
	"math/rand/v2"

	"github.com/avc-dev/shortlinks/internal/model"
)

const (
	CodeLength   = 5
	AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

//go:generate mockery --name Generator

// Generator выдает кандидатов в короткие коды. Уникальность не проверяется.
type Generator interface {
	GenerateCode() model.Code
}

// CodeGenerator случайный генератор кодов, безопасен для конкурентного использования
type CodeGenerator struct{}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() model.Code {
	result := make([]byte, CodeLength)

	for i := range result {
		result[i] = AllowedChars[rand.IntN(len(AllowedChars))]
	}

	return model.Code(result)
}

// IsValidCode проверяет длину и алфавит кода
func IsValidCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
