package changes

import (
	"strings"

	"github.com/sicat_management/internal/models"
)

// Field identifica um atributo do terceiro no catálogo de campos. Os nomes
// seguem as chaves JSON do registro.
type Field string

const (
	FieldUnidades                   Field = "unidades"
	FieldEntidade                   Field = "entidade"
	FieldRazaoSocial                Field = "razaoSocial"
	FieldCNPJ                       Field = "cnpj"
	FieldName                       Field = "name"
	FieldCPF                        Field = "cpf"
	FieldEscolaridade               Field = "escolaridade"
	FieldGenero                     Field = "genero"
	FieldDataNascimento             Field = "dataNascimento"
	FieldEndereco                   Field = "endereco"
	FieldNumero                     Field = "numero"
	FieldComplemento                Field = "complemento"
	FieldBairro                     Field = "bairro"
	FieldCidade                     Field = "cidade"
	FieldEstado                     Field = "estado"
	FieldUF                         Field = "uf"
	FieldCEP                        Field = "cep"
	FieldObsReferencia              Field = "obsReferencia"
	FieldPais                       Field = "pais"
	FieldCargo                      Field = "cargo"
	FieldDataInicioVinculo          Field = "dataInicioVinculo"
	FieldDataInicioAtividades       Field = "dataInicioAtividades"
	FieldDataEncerramentoAtividades Field = "dataEncerramentoAtividades"
	FieldDataEncerramentoVinculo    Field = "dataEncerramentoVinculo"
	FieldJornadaTrabalho            Field = "jornadaTrabalho"
	FieldRecebeInsalubridade        Field = "recebeInsalubridade"
	FieldNaturezaAdicional          Field = "naturezaAdicional"
	FieldDataInicioInsalubridade    Field = "dataInicioInsalubridade"
	FieldDataTerminoInsalubridade   Field = "dataTerminoInsalubridade"
	FieldStatus                     Field = "status"
)

// AllFields lista o catálogo completo na ordem de exibição (id e histórico
// ficam fora do catálogo).
var AllFields = []Field{
	FieldUnidades,
	FieldEntidade,
	FieldRazaoSocial,
	FieldCNPJ,
	FieldName,
	FieldCPF,
	FieldEscolaridade,
	FieldGenero,
	FieldDataNascimento,
	FieldEndereco,
	FieldNumero,
	FieldComplemento,
	FieldBairro,
	FieldCidade,
	FieldEstado,
	FieldUF,
	FieldCEP,
	FieldObsReferencia,
	FieldPais,
	FieldCargo,
	FieldDataInicioVinculo,
	FieldDataInicioAtividades,
	FieldDataEncerramentoAtividades,
	FieldDataEncerramentoVinculo,
	FieldJornadaTrabalho,
	FieldRecebeInsalubridade,
	FieldNaturezaAdicional,
	FieldDataInicioInsalubridade,
	FieldDataTerminoInsalubridade,
	FieldStatus,
}

var fieldLabels = map[Field]string{
	FieldUnidades:                   "Unidades",
	FieldEntidade:                   "Entidade",
	FieldRazaoSocial:                "Razão Social",
	FieldCNPJ:                       "CNPJ",
	FieldName:                       "Nome Completo",
	FieldCPF:                        "CPF",
	FieldEscolaridade:               "Escolaridade",
	FieldGenero:                     "Gênero",
	FieldDataNascimento:             "Data de Nascimento",
	FieldEndereco:                   "Endereço",
	FieldNumero:                     "Número",
	FieldComplemento:                "Complemento",
	FieldBairro:                     "Bairro",
	FieldCidade:                     "Cidade",
	FieldEstado:                     "Estado",
	FieldUF:                         "UF",
	FieldCEP:                        "CEP",
	FieldObsReferencia:              "OBS/Referência",
	FieldPais:                       "País",
	FieldCargo:                      "Cargo",
	FieldDataInicioVinculo:          "Início do Vínculo",
	FieldDataInicioAtividades:       "Início das Atividades",
	FieldDataEncerramentoAtividades: "Data de encerramento das atividades na unidade",
	FieldDataEncerramentoVinculo:    "Data encerramento do vínculo com a contratada",
	FieldJornadaTrabalho:            "Jornada de Trabalho",
	FieldRecebeInsalubridade:        "Recebe Insalubridade",
	FieldNaturezaAdicional:          "Natureza do Adicional",
	FieldDataInicioInsalubridade:    "Início Insalubridade",
	FieldDataTerminoInsalubridade:   "Término Insalubridade",
	FieldStatus:                     "Status",
}

// Label devolve o rótulo de exibição do campo; campos fora do catálogo caem
// no próprio nome.
func Label(f Field) string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Value extrai o valor bruto do campo no snapshot: "" para ausente e slices
// unidos por vírgula. O switch é exaustivo sobre o catálogo.
func Value(s *models.Snapshot, f Field) string {
	switch f {
	case FieldUnidades:
		return strings.Join(s.Unidades, ", ")
	case FieldEntidade:
		return s.Entidade
	case FieldRazaoSocial:
		return s.RazaoSocial
	case FieldCNPJ:
		return s.CNPJ
	case FieldName:
		return s.Name
	case FieldCPF:
		return s.CPF
	case FieldEscolaridade:
		return s.Escolaridade
	case FieldGenero:
		return s.Genero
	case FieldDataNascimento:
		return s.DataNascimento
	case FieldEndereco:
		return s.Endereco
	case FieldNumero:
		return s.Numero
	case FieldComplemento:
		return s.Complemento
	case FieldBairro:
		return s.Bairro
	case FieldCidade:
		return s.Cidade
	case FieldEstado:
		return s.Estado
	case FieldUF:
		return s.UF
	case FieldCEP:
		return s.CEP
	case FieldObsReferencia:
		return s.ObsReferencia
	case FieldPais:
		return s.Pais
	case FieldCargo:
		return s.Cargo
	case FieldDataInicioVinculo:
		return s.DataInicioVinculo
	case FieldDataInicioAtividades:
		return s.DataInicioAtividades
	case FieldDataEncerramentoAtividades:
		return s.DataEncerramentoAtividades
	case FieldDataEncerramentoVinculo:
		return s.DataEncerramentoVinculo
	case FieldJornadaTrabalho:
		return s.JornadaTrabalho
	case FieldRecebeInsalubridade:
		return s.RecebeInsalubridade
	case FieldNaturezaAdicional:
		return s.NaturezaAdicional
	case FieldDataInicioInsalubridade:
		return s.DataInicioInsalubridade
	case FieldDataTerminoInsalubridade:
		return s.DataTerminoInsalubridade
	case FieldStatus:
		return s.Status
	}
	return ""
}

// FormatValue formata um valor bruto para exibição: vazio vira travessão.
func FormatValue(v string) string {
	if v == "" {
		return "—"
	}
	return v
}
