package utils

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// OnlyDigits remove tudo que não for dígito da string.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allEqualDigits informa se todos os caracteres da string são iguais
// (sequências como 000... e 111... são inválidas em CPF e CNPJ).
func allEqualDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// ValidateCPF valida o formato de um CPF: 11 dígitos após remover a
// pontuação, não todos iguais.
func ValidateCPF(cpf string) bool {
	digits := OnlyDigits(cpf)
	return len(digits) == 11 && !allEqualDigits(digits)
}

// ValidateCNPJ valida o formato de um CNPJ: 14 dígitos após remover a
// pontuação, não todos iguais.
func ValidateCNPJ(cnpj string) bool {
	digits := OnlyDigits(cnpj)
	return len(digits) == 14 && !allEqualDigits(digits)
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmailFormat valida o formato de um e-mail. String vazia passa; a
// obrigatoriedade é decidida pela regra de negócio.
func ValidateEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return true
	}
	return emailPattern.MatchString(trimmed)
}

// dateBRLayout é o formato de data usado em todo o sistema (DD/MM/AAAA).
const dateBRLayout = "02/01/2006"

// ParseDateBR interpreta uma data no formato brasileiro DD/MM/AAAA.
func ParseDateBR(dateStr string) (time.Time, error) {
	return time.Parse(dateBRLayout, strings.TrimSpace(dateStr))
}

// IsDateBR informa se a string é uma data válida no formato DD/MM/AAAA.
func IsDateBR(dateStr string) bool {
	_, err := ParseDateBR(dateStr)
	return err == nil
}

// FormatDateBR formata uma data no formato brasileiro DD/MM/AAAA.
func FormatDateBR(t time.Time) string {
	return t.Format(dateBRLayout)
}
