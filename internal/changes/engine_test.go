package changes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicat_management/internal/models"
)

var fixedNow = time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

func baseSnapshot() models.Snapshot {
	return models.Snapshot{
		ID:                   1,
		Unidades:             []string{"SESI - Campinas"},
		Entidade:             models.EntidadeSesi,
		RazaoSocial:          "Alfa Serviços Ltda",
		CNPJ:                 "12.345.678/0001-90",
		Name:                 "João da Silva",
		CPF:                  "123.456.789-00",
		Escolaridade:         "Ensino Médio",
		Genero:               "Masculino",
		Cargo:                "Porteiro",
		DataInicioVinculo:    "01/02/2023",
		DataInicioAtividades: "10/02/2023",
		JornadaTrabalho:      "Jornada 44h Semanais",
		RecebeInsalubridade:  models.RecebeNao,
		Status:               models.StatusAtivo,
	}
}

func TestApplyUnitClosure(t *testing.T) {
	original := baseSnapshot()
	edited := original.Clone()
	edited.DataEncerramentoAtividades = "30/06/2024"

	result, err := Apply(original, Input{
		Type:        TypeUnitClosure,
		Edited:      edited,
		Responsible: "Maria Gestora",
		Now:         fixedNow,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusInativo, result.Updated.Status)
	assert.Equal(t, "30/06/2024", result.Updated.DataEncerramentoAtividades)

	entry := result.Entry
	assert.Equal(t, TypeUnitClosure.Label(), entry.ChangeType)
	assert.Equal(t, "Status: Ativo", entry.PreviousData)
	assert.Equal(t, "Status: Inativo\nData de Encerramento: 30/06/2024", entry.CurrentData)
	assert.Equal(t, "15/07/2024", entry.ChangeDate)
	assert.Equal(t, "Maria Gestora", entry.Responsible)

	// O snapshot guarda o estado anterior, intocado pela alteração.
	require.NotNil(t, entry.SnapshotBeforeChange)
	assert.Equal(t, models.StatusAtivo, entry.SnapshotBeforeChange.Status)
	assert.Empty(t, entry.SnapshotBeforeChange.DataEncerramentoAtividades)
}

func TestApplyUnitClosureRequiresDate(t *testing.T) {
	original := baseSnapshot()
	_, err := Apply(original, Input{Type: TypeUnitClosure, Edited: original.Clone(), Now: fixedNow})
	require.Error(t, err)
	assert.EqualError(t, err, `O campo "Data de encerramento das atividades na unidade" é obrigatório.`)
	assert.True(t, IsValidationError(err))
}

func TestApplyContractEnd(t *testing.T) {
	original := baseSnapshot()
	edited := original.Clone()
	edited.DataEncerramentoAtividades = "30/06/2024"

	// A segunda data também é obrigatória.
	_, err := Apply(original, Input{Type: TypeContractEnd, Edited: edited, Now: fixedNow})
	require.Error(t, err)
	assert.EqualError(t, err, `O campo "Data encerramento do vínculo com a contratada" é obrigatório.`)

	edited.DataEncerramentoVinculo = "05/07/2024"
	result, err := Apply(original, Input{Type: TypeContractEnd, Edited: edited, Now: fixedNow})
	require.NoError(t, err)

	assert.Equal(t, models.StatusInativo, result.Updated.Status)
	assert.Equal(t, "Status: Inativo\nEncerramento Atividades: 30/06/2024\nEncerramento Vínculo: 05/07/2024", result.Entry.CurrentData)
}

func TestApplyHazardAllowanceGrant(t *testing.T) {
	original := baseSnapshot()
	edited := original.Clone()
	edited.RecebeInsalubridade = models.RecebeSim
	edited.NaturezaAdicional = models.NaturezaTemporaria
	edited.DataInicioInsalubridade = "01/07/2024"
	edited.DataTerminoInsalubridade = "31/12/2024"

	result, err := Apply(original, Input{Type: TypeHazardAllowance, Edited: edited, Now: fixedNow})
	require.NoError(t, err)

	assert.Equal(t, models.RecebeSim, result.Updated.RecebeInsalubridade)
	assert.Equal(t, "Recebe: Não\nNatureza: -\nInício: -\nFim: -", result.Entry.PreviousData)
	assert.Equal(t, "Recebe: Sim\nNatureza: Temporário\nInício: 01/07/2024\nFim: 31/12/2024", result.Entry.CurrentData)
}

func TestApplyHazardAllowanceValidationOrder(t *testing.T) {
	original := baseSnapshot()
	edited := original.Clone()
	edited.RecebeInsalubridade = models.RecebeSim

	_, err := Apply(original, Input{Type: TypeHazardAllowance, Edited: edited, Now: fixedNow})
	assert.EqualError(t, err, `O campo "Natureza do adicional de insalubridade ou periculosidade." é obrigatório.`)

	edited.NaturezaAdicional = models.NaturezaTemporaria
	_, err = Apply(original, Input{Type: TypeHazardAllowance, Edited: edited, Now: fixedNow})
	assert.EqualError(t, err, `O campo "Data início Insalubridade e Periculosidade." é obrigatório.`)

	edited.DataInicioInsalubridade = "01/07/2024"
	_, err = Apply(original, Input{Type: TypeHazardAllowance, Edited: edited, Now: fixedNow})
	assert.EqualError(t, err, `O campo "Data Término insalubridade e Periculosidade." é obrigatório.`)
}

func TestApplyHazardAllowanceRevokeClearsFields(t *testing.T) {
	original := baseSnapshot()
	original.RecebeInsalubridade = models.RecebeSim
	original.NaturezaAdicional = models.NaturezaTemporaria
	original.DataInicioInsalubridade = "01/01/2024"
	original.DataTerminoInsalubridade = "30/06/2024"

	edited := original.Clone()
	edited.RecebeInsalubridade = models.RecebeNao

	result, err := Apply(original, Input{Type: TypeHazardAllowance, Edited: edited, Now: fixedNow})
	require.NoError(t, err)

	assert.Empty(t, result.Updated.NaturezaAdicional)
	assert.Empty(t, result.Updated.DataInicioInsalubridade)
	assert.Empty(t, result.Updated.DataTerminoInsalubridade)
	// O lado anterior era temporário, então as linhas de fim aparecem.
	assert.Contains(t, result.Entry.PreviousData, "Fim: 30/06/2024")
	assert.Contains(t, result.Entry.CurrentData, "Fim: -")
}

func TestApplyHazardAllowanceDefinitiveClearsEndDate(t *testing.T) {
	original := baseSnapshot()
	edited := original.Clone()
	edited.RecebeInsalubridade = models.RecebeSim
	edited.NaturezaAdicional = models.NaturezaDefinitiva
	edited.DataInicioInsalubridade = "01/07/2024"
	edited.DataTerminoInsalubridade = "31/12/2024"

	result, err := Apply(original, Input{Type: TypeHazardAllowance, Edited: edited, Now: fixedNow})
	require.NoError(t, err)
	assert.Empty(t, result.Updated.DataTerminoInsalubridade)
}

func TestApplyRegistrationData(t *testing.T) {
	original := baseSnapshot()
	edited := original.Clone()
	edited.Name = "João Silva Santos"
	edited.Cidade = "Campinas"

	result, err := Apply(original, Input{Type: TypeRegistrationData, Edited: edited, Now: fixedNow})
	require.NoError(t, err)

	assert.Equal(t, "Dados originais dos campos alterados.", result.Entry.PreviousData)
	assert.Equal(t, "Nome Completo: 'João da Silva' -> 'João Silva Santos'\nCidade: '' -> 'Campinas'", result.Entry.CurrentData)
	assert.Equal(t, "João Silva Santos", result.Updated.Name)
}

func TestApplyRegistrationDataNoChange(t *testing.T) {
	original := baseSnapshot()
	_, err := Apply(original, Input{Type: TypeRegistrationData, Edited: original.Clone(), Now: fixedNow})
	assert.ErrorIs(t, err, ErrNoEffectiveChange)
}

func TestApplyWorkShift(t *testing.T) {
	original := baseSnapshot()

	_, err := Apply(original, Input{Type: TypeWorkShift, Edited: original.Clone(), Now: fixedNow})
	assert.EqualError(t, err, `O campo "Nova Jornada de Trabalho" é obrigatório.`)

	result, err := Apply(original, Input{
		Type:       TypeWorkShift,
		Edited:     original.Clone(),
		NewJornada: "Jornada 12H36",
		Now:        fixedNow,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jornada 12H36", result.Updated.JornadaTrabalho)
	assert.Equal(t, "Jornada: Jornada 44h Semanais", result.Entry.PreviousData)
	assert.Equal(t, "Jornada: Jornada 12H36", result.Entry.CurrentData)
}

func TestApplyCompanyTransfer(t *testing.T) {
	original := baseSnapshot()
	nc := &models.NewContractData{
		Unidades:             []string{"SENAI - Sorocaba"},
		RazaoSocial:          "Beta Facilities S.A.",
		CNPJ:                 "98.765.432/0001-10",
		Cargo:                "Vigilante",
		DataInicioVinculo:    "01/08/2024",
		DataInicioAtividades: "05/08/2024",
		JornadaTrabalho:      "Jornada 12H36",
		RecebeInsalubridade:  models.RecebeNao,
	}

	result, err := Apply(original, Input{
		Type:        TypeCompanyTransfer,
		Edited:      original.Clone(),
		NewContract: nc,
		Now:         fixedNow,
	})
	require.NoError(t, err)

	updated := result.Updated
	assert.Equal(t, []string{"SENAI - Sorocaba"}, updated.Unidades)
	assert.Equal(t, models.EntidadeSenai, updated.Entidade)
	assert.Equal(t, "Beta Facilities S.A.", updated.RazaoSocial)
	assert.Equal(t, "98.765.432/0001-10", updated.CNPJ)
	assert.Equal(t, "Vigilante", updated.Cargo)
	// Dados pessoais são preservados na transferência.
	assert.Equal(t, original.Name, updated.Name)
	assert.Equal(t, original.CPF, updated.CPF)

	assert.Equal(t, "Empresa: Alfa Serviços Ltda\nInício Atividades: 10/02/2023", result.Entry.PreviousData)
	assert.Equal(t, "Nova Empresa: Beta Facilities S.A.\nNovo Início Atividades: 05/08/2024", result.Entry.CurrentData)
}

func TestApplyCompanyTransferValidationOrder(t *testing.T) {
	original := baseSnapshot()

	_, err := Apply(original, Input{Type: TypeCompanyTransfer, Edited: original.Clone(), Now: fixedNow})
	assert.EqualError(t, err, `O campo "Entidade/Unidade (Novo Contrato)" é obrigatório.`)

	nc := &models.NewContractData{Unidades: []string{"SESI - Bauru"}}
	_, err = Apply(original, Input{Type: TypeCompanyTransfer, Edited: original.Clone(), NewContract: nc, Now: fixedNow})
	assert.EqualError(t, err, `O campo "Empresa (Novo Contrato)" é obrigatório.`)

	nc.RazaoSocial = "Beta Facilities S.A."
	_, err = Apply(original, Input{Type: TypeCompanyTransfer, Edited: original.Clone(), NewContract: nc, Now: fixedNow})
	assert.EqualError(t, err, `O campo "Cargo (Novo Contrato)" é obrigatório.`)
}

func TestApplyCompanyTransferHazardValidation(t *testing.T) {
	original := baseSnapshot()
	nc := &models.NewContractData{
		Unidades:             []string{"SESI - Bauru"},
		RazaoSocial:          "Beta Facilities S.A.",
		Cargo:                "Vigilante",
		DataInicioVinculo:    "01/08/2024",
		DataInicioAtividades: "05/08/2024",
		JornadaTrabalho:      "Jornada 12H36",
		RecebeInsalubridade:  models.RecebeSim,
	}

	_, err := Apply(original, Input{Type: TypeCompanyTransfer, Edited: original.Clone(), NewContract: nc, Now: fixedNow})
	assert.EqualError(t, err, `O campo "Natureza do adicional de insalubridade ou periculosidade." (Novo Contrato) é obrigatório.`)
}

func TestApplyUnknownType(t *testing.T) {
	original := baseSnapshot()
	_, err := Apply(original, Input{Type: ChangeType(99), Edited: original.Clone(), Now: fixedNow})
	assert.ErrorIs(t, err, ErrUnknownChangeType)
}

func TestApplyDoesNotMutateOriginal(t *testing.T) {
	original := baseSnapshot()
	edited := original.Clone()
	edited.DataEncerramentoAtividades = "30/06/2024"

	_, err := Apply(original, Input{Type: TypeUnitClosure, Edited: edited, Now: fixedNow})
	require.NoError(t, err)

	assert.Equal(t, models.StatusAtivo, original.Status)
	assert.Empty(t, original.DataEncerramentoAtividades)
}

func TestApplyResponsibleFallback(t *testing.T) {
	original := baseSnapshot()
	edited := original.Clone()
	edited.DataEncerramentoAtividades = "30/06/2024"

	result, err := Apply(original, Input{Type: TypeUnitClosure, Edited: edited, Now: fixedNow})
	require.NoError(t, err)
	assert.Equal(t, "Sistema", result.Entry.Responsible)
}

// Alterações encadeadas: cada snapshot captura o estado imediatamente
// anterior, permitindo reconstruir toda a linha do tempo.
func TestApplyChainedChangesSnapshots(t *testing.T) {
	state := baseSnapshot()

	edited := state.Clone()
	edited.RecebeInsalubridade = models.RecebeSim
	edited.NaturezaAdicional = models.NaturezaDefinitiva
	edited.DataInicioInsalubridade = "01/03/2024"
	first, err := Apply(state, Input{Type: TypeHazardAllowance, Edited: edited, Now: fixedNow})
	require.NoError(t, err)

	state = first.Updated
	second, err := Apply(state, Input{
		Type:       TypeWorkShift,
		Edited:     state.Clone(),
		NewJornada: "Jornada Parcial",
		Now:        fixedNow,
	})
	require.NoError(t, err)

	// O snapshot da primeira entrada é o estado de criação; o da segunda é o
	// estado após a insalubridade.
	assert.Equal(t, models.RecebeNao, first.Entry.SnapshotBeforeChange.RecebeInsalubridade)
	assert.Equal(t, models.RecebeSim, second.Entry.SnapshotBeforeChange.RecebeInsalubridade)
	assert.Equal(t, "Jornada 44h Semanais", second.Entry.SnapshotBeforeChange.JornadaTrabalho)
	assert.Equal(t, "Jornada Parcial", second.Updated.JornadaTrabalho)
}

func TestNewCreationEntry(t *testing.T) {
	entry := NewCreationEntry("", fixedNow)
	assert.Equal(t, "Criação", entry.ChangeType)
	assert.Equal(t, "-", entry.PreviousData)
	assert.Equal(t, "Cadastro inicial do colaborador", entry.CurrentData)
	assert.Equal(t, "15/07/2024", entry.ChangeDate)
	assert.Equal(t, "Sistema", entry.Responsible)
	assert.Nil(t, entry.SnapshotBeforeChange)
}
