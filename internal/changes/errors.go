package changes

import (
	"errors"
	"fmt"
)

// Erros de validação do motor de alterações. Todos são recuperáveis: a
// gravação é abortada antes de qualquer mutação e a mensagem volta ao
// usuário.
var (
	ErrMissingChangeType = errors.New(`O campo "Tipo de alteração" é obrigatório.`)
	ErrUnknownChangeType = errors.New("Tipo de alteração desconhecido.")
	ErrNoEffectiveChange = errors.New("Nenhuma alteração detectada.")
)

// RequiredFieldError indica um campo obrigatório vazio sob o tipo de
// alteração ativo. Context distingue os campos do sub-formulário de novo
// contrato cuja menção fica fora das aspas.
type RequiredFieldError struct {
	Label   string
	Context string
}

func (e *RequiredFieldError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("O campo %q %s é obrigatório.", e.Label, e.Context)
	}
	return fmt.Sprintf("O campo %q é obrigatório.", e.Label)
}

func requiredField(label string) error {
	return &RequiredFieldError{Label: label}
}

func requiredNewContractField(label string) error {
	return &RequiredFieldError{Label: label, Context: "(Novo Contrato)"}
}

// IsValidationError informa se o erro é uma falha de validação do motor
// (recuperável, exibida ao usuário), e não um erro de infraestrutura.
func IsValidationError(err error) bool {
	var rf *RequiredFieldError
	return errors.Is(err, ErrMissingChangeType) ||
		errors.Is(err, ErrUnknownChangeType) ||
		errors.Is(err, ErrNoEffectiveChange) ||
		errors.As(err, &rf)
}
