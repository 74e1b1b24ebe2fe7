package changes

import (
	"github.com/sicat_management/internal/models"
	"github.com/sicat_management/pkg/utils"
)

// DetailKind classifica o corpo de uma entrada do histórico na exibição.
type DetailKind string

const (
	// DetailCreation lista o estado completo registrado no cadastro inicial.
	DetailCreation DetailKind = "creation"
	// DetailTransfer exibe a tabela contrato anterior/novo contrato.
	DetailTransfer DetailKind = "transfer"
	// DetailDiff exibe somente os campos que mudaram entre os snapshots.
	DetailDiff DetailKind = "diff"
	// DetailEmpty indica que nenhum campo comparado mudou.
	DetailEmpty DetailKind = "empty"
	// DetailUnavailable indica entrada sem snapshot para reconstruir o diff.
	DetailUnavailable DetailKind = "unavailable"
)

// DiffRow é uma linha da tabela de comparação de uma entrada do histórico.
// Before e After já vêm formatados para exibição.
type DiffRow struct {
	Field  Field  `json:"field"`
	Label  string `json:"label"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// EntryView é uma entrada do histórico pronta para exibição: metadados da
// alteração mais o detalhe reconstruído a partir dos snapshots.
type EntryView struct {
	ChangeDate   string     `json:"changeDate"`
	ChangeType   string     `json:"changeType"`
	DisplayType  string     `json:"displayType"`
	Responsible  string     `json:"responsible"`
	PreviousData string     `json:"previousData"`
	CurrentData  string     `json:"currentData"`
	Kind         DetailKind `json:"kind"`
	Rows         []DiffRow  `json:"rows,omitempty"`
}

// BuildHistory reconstrói a visão do histórico de um terceiro, da entrada
// mais recente para a mais antiga. O estado "depois" da entrada i é o
// snapshot da entrada i+1; para a última entrada é o registro vivo. O
// estado "antes" é o snapshot da própria entrada.
func BuildHistory(tp *models.ThirdParty) []EntryView {
	n := len(tp.History)
	views := make([]EntryView, 0, n)

	live := tp.Snapshot()

	for i := n - 1; i >= 0; i-- {
		h := tp.History[i]
		view := EntryView{
			ChangeDate:   h.ChangeDate,
			ChangeType:   h.ChangeType,
			DisplayType:  DisplayType(h.ChangeType),
			Responsible:  h.Responsible,
			PreviousData: h.PreviousData,
			CurrentData:  h.CurrentData,
		}

		var after *models.Snapshot
		if i == n-1 {
			s := live.Clone()
			after = &s
		} else {
			after = tp.History[i+1].SnapshotBeforeChange
		}

		view.Kind, view.Rows = buildDetail(h, after)
		views = append(views, view)
	}

	return views
}

func buildDetail(h models.ThirdPartyHistory, after *models.Snapshot) (DetailKind, []DiffRow) {
	if h.ChangeType == TypeCreation.Label() {
		if after == nil {
			return DetailUnavailable, nil
		}
		return DetailCreation, fullListing(after)
	}

	before := h.SnapshotBeforeChange
	if before == nil || after == nil {
		return DetailUnavailable, nil
	}

	if IsTransferLabel(h.ChangeType) {
		return DetailTransfer, transferRows(before, after)
	}

	fields := CompareFields(h.ChangeType)
	if fields == nil {
		fields = AllFields
	}

	var rows []DiffRow
	for _, f := range fields {
		if !snapshotFieldChanged(before, after, f) {
			continue
		}
		rows = append(rows, DiffRow{
			Field:  f,
			Label:  Label(f),
			Before: FormatValue(Value(before, f)),
			After:  FormatValue(Value(after, f)),
		})
	}
	if len(rows) == 0 {
		return DetailEmpty, nil
	}
	return DetailDiff, rows
}

// fullListing devolve todos os campos do catálogo formatados, usados na
// entrada de criação (não há estado anterior para comparar).
func fullListing(s *models.Snapshot) []DiffRow {
	rows := make([]DiffRow, 0, len(AllFields))
	for _, f := range AllFields {
		rows = append(rows, DiffRow{
			Field: f,
			Label: Label(f),
			After: FormatValue(Value(s, f)),
		})
	}
	return rows
}

// transferRows monta a tabela contrato anterior/novo contrato: o
// subconjunto fixo aparece inteiro, mudado ou não, e os campos de
// insalubridade entram quando algum dos lados recebe o adicional.
func transferRows(before, after *models.Snapshot) []DiffRow {
	fields := transferCompareFields
	if before.RecebeInsalubridade == models.RecebeSim || after.RecebeInsalubridade == models.RecebeSim {
		fields = append(append([]Field{}, fields...), transferHazardFields...)
	}
	rows := make([]DiffRow, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, DiffRow{
			Field:  f,
			Label:  Label(f),
			Before: FormatValue(Value(before, f)),
			After:  FormatValue(Value(after, f)),
		})
	}
	return rows
}

// snapshotFieldChanged compara o campo entre os dois snapshots. Unidades é
// comparado estruturalmente; os demais campos, pelo valor formatado.
func snapshotFieldChanged(before, after *models.Snapshot, f Field) bool {
	if f == FieldUnidades {
		return !utils.CompareStringSlices(before.Unidades, after.Unidades)
	}
	return FormatValue(Value(before, f)) != FormatValue(Value(after, f))
}
