// Package changes implementa o motor de alterações do terceiro: o catálogo
// de campos, o registro de tipos de alteração (visibilidade/edição por
// campo), a validação e as mutações derivadas de cada tipo, e a
// reconstrução/diferença do histórico a partir dos snapshots.
//
// O pacote é puro: não acessa banco nem contexto global; o usuário
// responsável é sempre recebido por parâmetro.
package changes

// ChangeType enumera, de forma fechada, os tipos de alteração suportados
// mais o sentinela de criação. A lógica de configuração e validação faz
// match exaustivo sobre essa enumeração.
type ChangeType int

const (
	TypeCreation ChangeType = iota
	TypeUnitClosure
	TypeCompanyTransfer
	TypeContractEnd
	TypeWorkShift
	TypeHazardAllowance
	TypeRegistrationData
)

// LegacyTransferLabel é um rótulo antigo de transferência que ainda aparece
// em históricos gravados antes da padronização dos tipos.
const LegacyTransferLabel = "Transferência e readimissão"

var changeTypeLabels = map[ChangeType]string{
	TypeCreation:         "Criação",
	TypeUnitClosure:      "Encerramento das atividades na unidade.",
	TypeCompanyTransfer:  "Encerramento de vínculo com a contratada e início com nova contratada.",
	TypeContractEnd:      "Encerramento do contrato de trabalho.",
	TypeWorkShift:        "Alteração na jornada de trabalho.",
	TypeHazardAllowance:  "Percepção temporária de adicional de insalubridade ou periculosidade.",
	TypeRegistrationData: "Alteração de dados cadastrais",
}

var changeTypeShortLabels = map[string]string{
	"Criação": "Criação",
	"Encerramento das atividades na unidade.":                                "Encerramento unidade",
	"Encerramento de vínculo com a contratada e início com nova contratada.": "Alteração de vínculo",
	"Encerramento do contrato de trabalho.":                                  "Encerramento contrato",
	"Alteração na jornada de trabalho.":                                      "Alteração de jornada",
	"Percepção temporária de adicional de insalubridade ou periculosidade.":  "Insalubridade/Periculosidade",
	"Alteração de dados cadastrais":                                          "Alteração de dados",
	LegacyTransferLabel:                                                      "Transferência/Readmissão",
}

// SelectableTypes lista os seis tipos oferecidos no formulário de edição, na
// ordem de exibição. A criação não é selecionável.
var SelectableTypes = []ChangeType{
	TypeUnitClosure,
	TypeCompanyTransfer,
	TypeContractEnd,
	TypeWorkShift,
	TypeHazardAllowance,
	TypeRegistrationData,
}

// Label devolve o rótulo completo do tipo, como gravado no histórico.
func (t ChangeType) Label() string {
	return changeTypeLabels[t]
}

// Parse resolve um rótulo para o tipo correspondente.
func Parse(label string) (ChangeType, bool) {
	for t, l := range changeTypeLabels {
		if l == label {
			return t, true
		}
	}
	return 0, false
}

// DisplayType devolve o rótulo curto exibido na tabela de histórico; rótulos
// desconhecidos são exibidos como estão.
func DisplayType(label string) string {
	if short, ok := changeTypeShortLabels[label]; ok {
		return short
	}
	return label
}

// IsTransferLabel informa se o rótulo representa uma troca de contratada
// (incluindo o rótulo legado), caso em que o histórico exibe a tabela de
// contrato anterior/novo contrato em vez do diff usual.
func IsTransferLabel(label string) bool {
	return label == TypeCompanyTransfer.Label() || label == LegacyTransferLabel
}
