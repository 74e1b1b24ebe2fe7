package models

import (
	"time"
)

// ThirdPartyHistory corresponde à tabela third_party_histories: uma entrada
// do razão imutável de alterações de um terceiro. A ordem de inserção é a
// ordem cronológica; entradas nunca são editadas nem removidas.
//
// SnapshotBeforeChange guarda o estado completo do registro (sem histórico)
// imediatamente ANTES da alteração ser aplicada; é nulo apenas na entrada
// sintética de criação. PreviousData/CurrentData são resumos em texto livre,
// apenas informativos — a reconstrução usa exclusivamente os snapshots.
type ThirdPartyHistory struct {
	ID                   int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ThirdPartyID         int64     `json:"-" gorm:"column:third_party_id;not null;index"`
	ChangeType           string    `json:"changeType" gorm:"column:change_type;not null;size:255"`
	PreviousData         string    `json:"previousData" gorm:"column:previous_data;type:text"`
	CurrentData          string    `json:"currentData" gorm:"column:current_data;type:text"`
	SnapshotBeforeChange *Snapshot `json:"snapshotBeforeChange" gorm:"column:snapshot_before_change;type:text"`
	ChangeDate           string    `json:"changeDate" gorm:"column:change_date;not null;size:10"`
	Responsible          string    `json:"responsible" gorm:"column:responsible;size:255"`
	CreatedAt            time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName especifica o nome da tabela do ThirdPartyHistory.
func (ThirdPartyHistory) TableName() string {
	return "third_party_histories"
}
