package changes

// FieldConfig diz se um campo aparece no formulário de edição e se pode ser
// editado sob o tipo de alteração ativo.
type FieldConfig struct {
	Visible  bool `json:"visible"`
	Editable bool `json:"editable"`
}

// defaultHidden são os campos ocultos na configuração padrão (sem tipo de
// alteração selecionado); todo o restante aparece somente leitura.
var defaultHidden = []Field{
	FieldDataEncerramentoAtividades,
	FieldDataEncerramentoVinculo,
}

// shownOnly restringe, por tipo, os campos visíveis ao subconjunto listado.
// Tipos ausentes mantêm a visibilidade padrão.
var shownOnly = map[ChangeType][]Field{
	TypeUnitClosure: {
		FieldUnidades, FieldEntidade, FieldRazaoSocial, FieldCNPJ,
		FieldName, FieldCPF, FieldCargo, FieldDataInicioAtividades,
		FieldDataEncerramentoAtividades,
	},
	TypeContractEnd: {
		FieldUnidades, FieldEntidade, FieldRazaoSocial, FieldCNPJ,
		FieldName, FieldCPF, FieldCargo, FieldDataInicioAtividades,
		FieldDataEncerramentoAtividades, FieldDataEncerramentoVinculo,
	},
	TypeHazardAllowance: {
		FieldUnidades, FieldEntidade, FieldRazaoSocial, FieldCNPJ,
		FieldName, FieldCPF, FieldCargo, FieldRecebeInsalubridade,
		FieldNaturezaAdicional, FieldDataInicioInsalubridade,
		FieldDataTerminoInsalubridade,
	},
	TypeWorkShift: {
		FieldUnidades, FieldEntidade, FieldRazaoSocial, FieldCNPJ,
		FieldName, FieldCPF, FieldCargo, FieldJornadaTrabalho,
	},
	// A transferência de contratada usa um sub-formulário próprio; nenhum
	// campo padrão aparece.
	TypeCompanyTransfer: {},
}

// alsoHidden esconde campos adicionais em tipos que partem da visibilidade
// padrão.
var alsoHidden = map[ChangeType][]Field{
	TypeRegistrationData: {
		FieldDataEncerramentoAtividades, FieldDataEncerramentoVinculo,
		FieldDataInicioVinculo, FieldJornadaTrabalho,
		FieldRecebeInsalubridade, FieldNaturezaAdicional,
		FieldDataInicioInsalubridade, FieldDataTerminoInsalubridade,
	},
}

// editable marca os campos liberados para edição sob cada tipo.
var editable = map[ChangeType][]Field{
	TypeUnitClosure: {FieldDataEncerramentoAtividades},
	TypeContractEnd: {FieldDataEncerramentoAtividades, FieldDataEncerramentoVinculo},
	TypeHazardAllowance: {
		FieldRecebeInsalubridade, FieldNaturezaAdicional,
		FieldDataInicioInsalubridade, FieldDataTerminoInsalubridade,
	},
	TypeRegistrationData: {
		FieldCPF, FieldName, FieldDataNascimento, FieldDataInicioAtividades,
		FieldEscolaridade, FieldGenero, FieldEndereco, FieldNumero,
		FieldComplemento, FieldBairro, FieldCidade, FieldEstado, FieldUF,
		FieldCEP, FieldObsReferencia, FieldPais, FieldStatus,
	},
	// A nova jornada é um campo próprio do formulário (não do catálogo);
	// a jornada atual fica somente leitura.
	TypeWorkShift: {},
}

// DefaultFieldConfig devolve a configuração sem tipo selecionado: campos
// visíveis e desabilitados, datas de encerramento ocultas.
func DefaultFieldConfig() map[Field]FieldConfig {
	cfg := make(map[Field]FieldConfig, len(AllFields))
	for _, f := range AllFields {
		cfg[f] = FieldConfig{Visible: true}
	}
	for _, f := range defaultHidden {
		cfg[f] = FieldConfig{}
	}
	return cfg
}

// FieldConfigFor devolve a configuração de visibilidade/edição de todos os
// campos sob o tipo informado.
func FieldConfigFor(t ChangeType) map[Field]FieldConfig {
	cfg := DefaultFieldConfig()
	if shown, ok := shownOnly[t]; ok {
		for _, f := range AllFields {
			cfg[f] = FieldConfig{}
		}
		for _, f := range shown {
			cfg[f] = FieldConfig{Visible: true}
		}
	}
	for _, f := range alsoHidden[t] {
		cfg[f] = FieldConfig{}
	}
	for _, f := range editable[t] {
		cfg[f] = FieldConfig{Visible: true, Editable: true}
	}
	return cfg
}

// compareFields define, por rótulo de tipo, o subconjunto de campos
// comparado ao exibir o diff de uma entrada do histórico. Tipos fora do
// mapa comparam o catálogo inteiro.
var compareFields = map[string][]Field{
	"Encerramento das atividades na unidade.": {
		FieldDataEncerramentoAtividades, FieldStatus,
	},
	"Encerramento do contrato de trabalho.": {
		FieldDataEncerramentoAtividades, FieldDataEncerramentoVinculo, FieldStatus,
	},
	"Alteração na jornada de trabalho.": {
		FieldJornadaTrabalho,
	},
	"Percepção temporária de adicional de insalubridade ou periculosidade.": {
		FieldRecebeInsalubridade, FieldNaturezaAdicional,
		FieldDataInicioInsalubridade, FieldDataTerminoInsalubridade,
	},
	"Alteração de dados cadastrais": {
		FieldCPF, FieldName, FieldDataNascimento, FieldDataInicioAtividades,
		FieldEscolaridade, FieldGenero, FieldStatus, FieldEndereco,
		FieldNumero, FieldComplemento, FieldBairro, FieldCidade, FieldEstado,
		FieldUF, FieldCEP, FieldObsReferencia, FieldPais,
	},
}

// CompareFields devolve o subconjunto de comparação registrado para o
// rótulo, ou nil quando o tipo não está no registro.
func CompareFields(label string) []Field {
	return compareFields[label]
}

// transferCompareFields é o subconjunto fixo exibido para transferências de
// contratada; a tabela mostra todos os campos, alterados ou não, porque o
// evento é uma substituição integral do contrato.
var transferCompareFields = []Field{
	FieldUnidades, FieldEntidade, FieldRazaoSocial, FieldCNPJ,
	FieldDataInicioVinculo, FieldDataInicioAtividades,
	FieldJornadaTrabalho, FieldCargo, FieldRecebeInsalubridade,
}

// transferHazardFields complementa a tabela quando há insalubridade antes ou
// depois da transferência.
var transferHazardFields = []Field{
	FieldNaturezaAdicional, FieldDataInicioInsalubridade, FieldDataTerminoInsalubridade,
}
