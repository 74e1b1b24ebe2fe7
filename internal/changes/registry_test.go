package changes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFieldConfig(t *testing.T) {
	cfg := DefaultFieldConfig()
	require.Len(t, cfg, len(AllFields))

	// Tudo visível e somente leitura, exceto as datas de encerramento.
	assert.Equal(t, FieldConfig{Visible: true}, cfg[FieldName])
	assert.Equal(t, FieldConfig{}, cfg[FieldDataEncerramentoAtividades])
	assert.Equal(t, FieldConfig{}, cfg[FieldDataEncerramentoVinculo])
	for _, c := range cfg {
		assert.False(t, c.Editable)
	}
}

func TestFieldConfigForUnitClosure(t *testing.T) {
	cfg := FieldConfigFor(TypeUnitClosure)

	assert.Equal(t, FieldConfig{Visible: true, Editable: true}, cfg[FieldDataEncerramentoAtividades])
	assert.Equal(t, FieldConfig{Visible: true}, cfg[FieldName])
	// Fora do subconjunto: oculto.
	assert.Equal(t, FieldConfig{}, cfg[FieldEndereco])
	assert.Equal(t, FieldConfig{}, cfg[FieldJornadaTrabalho])
}

func TestFieldConfigForCompanyTransferHidesEverything(t *testing.T) {
	cfg := FieldConfigFor(TypeCompanyTransfer)
	for f, c := range cfg {
		assert.Equal(t, FieldConfig{}, c, "campo %s deveria estar oculto", f)
	}
}

func TestFieldConfigForRegistrationData(t *testing.T) {
	cfg := FieldConfigFor(TypeRegistrationData)

	assert.Equal(t, FieldConfig{Visible: true, Editable: true}, cfg[FieldName])
	assert.Equal(t, FieldConfig{Visible: true, Editable: true}, cfg[FieldCEP])
	// Campos de contrato e insalubridade ficam ocultos.
	assert.Equal(t, FieldConfig{}, cfg[FieldJornadaTrabalho])
	assert.Equal(t, FieldConfig{}, cfg[FieldRecebeInsalubridade])
	// Os de empresa aparecem somente leitura.
	assert.Equal(t, FieldConfig{Visible: true}, cfg[FieldRazaoSocial])
}

func TestCompareFields(t *testing.T) {
	subset := CompareFields(TypeWorkShift.Label())
	assert.Equal(t, []Field{FieldJornadaTrabalho}, subset)

	assert.Nil(t, CompareFields("tipo desconhecido"))
	// A transferência não usa o registro de comparação; a exibição é a
	// tabela própria.
	assert.Nil(t, CompareFields(TypeCompanyTransfer.Label()))
}

func TestParseAndLabels(t *testing.T) {
	for _, typ := range SelectableTypes {
		parsed, ok := Parse(typ.Label())
		require.True(t, ok)
		assert.Equal(t, typ, parsed)
	}

	_, ok := Parse("rótulo inexistente")
	assert.False(t, ok)

	assert.True(t, IsTransferLabel(TypeCompanyTransfer.Label()))
	assert.True(t, IsTransferLabel(LegacyTransferLabel))
	assert.False(t, IsTransferLabel(TypeWorkShift.Label()))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "—", FormatValue(""))
	assert.Equal(t, "Porteiro", FormatValue("Porteiro"))
}
