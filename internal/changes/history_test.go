package changes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicat_management/internal/models"
)

func thirdPartyFromSnapshot(s models.Snapshot, history ...models.ThirdPartyHistory) *models.ThirdParty {
	var tp models.ThirdParty
	tp.ApplySnapshot(s)
	tp.ID = s.ID
	tp.History = history
	return &tp
}

func creationEntry() models.ThirdPartyHistory {
	return models.ThirdPartyHistory{
		ChangeType:   "Criação",
		PreviousData: "-",
		CurrentData:  "Cadastro inicial do colaborador",
		ChangeDate:   "10/02/2023",
		Responsible:  "Sistema",
	}
}

func TestBuildHistoryCreationOnly(t *testing.T) {
	tp := thirdPartyFromSnapshot(baseSnapshot(), creationEntry())

	views := BuildHistory(tp)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "Criação", view.ChangeType)
	assert.Equal(t, DetailCreation, view.Kind)
	// A criação lista o catálogo inteiro, com travessão nos campos vazios.
	require.Len(t, view.Rows, len(AllFields))
	assert.Equal(t, FieldUnidades, view.Rows[0].Field)
	assert.Equal(t, "SESI - Campinas", view.Rows[0].After)

	byField := make(map[Field]DiffRow)
	for _, row := range view.Rows {
		byField[row.Field] = row
	}
	assert.Equal(t, "—", byField[FieldCidade].After)
	assert.Equal(t, "João da Silva", byField[FieldName].After)
}

func TestBuildHistoryReversedOrder(t *testing.T) {
	original := baseSnapshot()

	afterShift := original.Clone()
	afterShift.JornadaTrabalho = "Jornada 12H36"

	snapCreation := original.Clone()
	shiftEntry := models.ThirdPartyHistory{
		ChangeType:           TypeWorkShift.Label(),
		ChangeDate:           "01/03/2024",
		Responsible:          "Maria Gestora",
		SnapshotBeforeChange: &snapCreation,
	}

	tp := thirdPartyFromSnapshot(afterShift, creationEntry(), shiftEntry)
	views := BuildHistory(tp)
	require.Len(t, views, 2)

	// Mais recente primeiro.
	assert.Equal(t, TypeWorkShift.Label(), views[0].ChangeType)
	assert.Equal(t, "Alteração de jornada", views[0].DisplayType)
	assert.Equal(t, "Criação", views[1].ChangeType)
}

func TestBuildHistoryDiffSubset(t *testing.T) {
	original := baseSnapshot()
	live := original.Clone()
	live.JornadaTrabalho = "Jornada 12H36"
	// Mudança fora do subconjunto registrado não aparece no diff de jornada.
	live.Cidade = "Campinas"

	snap := original.Clone()
	entry := models.ThirdPartyHistory{
		ChangeType:           TypeWorkShift.Label(),
		ChangeDate:           "01/03/2024",
		SnapshotBeforeChange: &snap,
	}

	tp := thirdPartyFromSnapshot(live, creationEntry(), entry)
	views := BuildHistory(tp)
	require.Len(t, views, 2)

	view := views[0]
	assert.Equal(t, DetailDiff, view.Kind)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, FieldJornadaTrabalho, view.Rows[0].Field)
	assert.Equal(t, "Jornada 44h Semanais", view.Rows[0].Before)
	assert.Equal(t, "Jornada 12H36", view.Rows[0].After)
}

// Entradas com tipo fora do registro comparam o catálogo inteiro; assim uma
// mudança de cargo gravada sob um rótulo antigo ainda aparece no diff.
func TestBuildHistoryUnregisteredTypeComparesAllFields(t *testing.T) {
	original := baseSnapshot()
	live := original.Clone()
	live.Cargo = "Zelador"

	snap := original.Clone()
	entry := models.ThirdPartyHistory{
		ChangeType:           "Correção manual de cargo",
		ChangeDate:           "01/04/2024",
		SnapshotBeforeChange: &snap,
	}

	tp := thirdPartyFromSnapshot(live, creationEntry(), entry)
	views := BuildHistory(tp)

	view := views[0]
	assert.Equal(t, "Correção manual de cargo", view.DisplayType)
	assert.Equal(t, DetailDiff, view.Kind)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, FieldCargo, view.Rows[0].Field)
	assert.Equal(t, "Porteiro", view.Rows[0].Before)
	assert.Equal(t, "Zelador", view.Rows[0].After)
}

func TestBuildHistoryEmptyDiff(t *testing.T) {
	original := baseSnapshot()
	snap := original.Clone()
	entry := models.ThirdPartyHistory{
		ChangeType:           TypeWorkShift.Label(),
		ChangeDate:           "01/03/2024",
		SnapshotBeforeChange: &snap,
	}

	// O registro vivo é idêntico ao snapshot: nada mudou no subconjunto.
	tp := thirdPartyFromSnapshot(original, creationEntry(), entry)
	views := BuildHistory(tp)

	assert.Equal(t, DetailEmpty, views[0].Kind)
	assert.Empty(t, views[0].Rows)
}

func TestBuildHistoryTransferTable(t *testing.T) {
	original := baseSnapshot()
	live := original.Clone()
	live.Unidades = []string{"SENAI - Sorocaba"}
	live.Entidade = models.EntidadeSenai
	live.RazaoSocial = "Beta Facilities S.A."
	live.Cargo = "Vigilante"

	snap := original.Clone()
	entry := models.ThirdPartyHistory{
		ChangeType:           TypeCompanyTransfer.Label(),
		ChangeDate:           "01/05/2024",
		SnapshotBeforeChange: &snap,
	}

	tp := thirdPartyFromSnapshot(live, creationEntry(), entry)
	views := BuildHistory(tp)

	view := views[0]
	assert.Equal(t, DetailTransfer, view.Kind)
	// Sem insalubridade em nenhum dos lados: só o subconjunto fixo, inteiro,
	// inclusive campos que não mudaram.
	require.Len(t, view.Rows, len(transferCompareFields))

	byField := make(map[Field]DiffRow)
	for _, row := range view.Rows {
		byField[row.Field] = row
	}
	assert.Equal(t, "Alfa Serviços Ltda", byField[FieldRazaoSocial].Before)
	assert.Equal(t, "Beta Facilities S.A.", byField[FieldRazaoSocial].After)
	assert.Equal(t, "Jornada 44h Semanais", byField[FieldJornadaTrabalho].Before)
	assert.Equal(t, "Jornada 44h Semanais", byField[FieldJornadaTrabalho].After)
}

func TestBuildHistoryTransferTableWithHazard(t *testing.T) {
	original := baseSnapshot()
	live := original.Clone()
	live.RazaoSocial = "Beta Facilities S.A."
	live.RecebeInsalubridade = models.RecebeSim
	live.NaturezaAdicional = models.NaturezaDefinitiva
	live.DataInicioInsalubridade = "01/05/2024"

	snap := original.Clone()
	entry := models.ThirdPartyHistory{
		ChangeType:           LegacyTransferLabel,
		ChangeDate:           "01/05/2024",
		SnapshotBeforeChange: &snap,
	}

	tp := thirdPartyFromSnapshot(live, creationEntry(), entry)
	views := BuildHistory(tp)

	view := views[0]
	assert.Equal(t, "Transferência/Readmissão", view.DisplayType)
	assert.Equal(t, DetailTransfer, view.Kind)
	assert.Len(t, view.Rows, len(transferCompareFields)+len(transferHazardFields))
}

func TestBuildHistoryUnavailableWithoutSnapshot(t *testing.T) {
	original := baseSnapshot()
	entry := models.ThirdPartyHistory{
		ChangeType: TypeWorkShift.Label(),
		ChangeDate: "01/03/2024",
	}

	tp := thirdPartyFromSnapshot(original, creationEntry(), entry)
	views := BuildHistory(tp)

	assert.Equal(t, DetailUnavailable, views[0].Kind)
}

func TestBuildHistoryUnidadesComparedStructurally(t *testing.T) {
	original := baseSnapshot()
	live := original.Clone()
	live.Unidades = []string{"SESI - Campinas", "SESI - Bauru"}
	live.Entidade = models.EntidadeSesi

	snap := original.Clone()
	entry := models.ThirdPartyHistory{
		ChangeType:           "Ajuste de lotação",
		ChangeDate:           "01/06/2024",
		SnapshotBeforeChange: &snap,
	}

	tp := thirdPartyFromSnapshot(live, creationEntry(), entry)
	views := BuildHistory(tp)

	view := views[0]
	require.Equal(t, DetailDiff, view.Kind)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, FieldUnidades, view.Rows[0].Field)
	assert.Equal(t, "SESI - Campinas", view.Rows[0].Before)
	assert.Equal(t, "SESI - Campinas, SESI - Bauru", view.Rows[0].After)
}
