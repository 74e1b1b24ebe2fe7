package models

import (
	"time"

	"gorm.io/gorm"
)

// Perfis de acesso dos usuários do sistema. Perfis de unidade enxergam
// somente os terceiros lotados na sua unidade.
const (
	PerfilGerenciaFacilities = "Gerência de Facilities"
	PerfilSede               = "Sede"
	PerfilGestorUnidade      = "Gestor de unidade"
	PerfilUnidade            = "Unidade"
)

// RestrictedProfile informa se o perfil tem visão restrita à própria unidade.
func RestrictedProfile(profile string) bool {
	return profile == PerfilUnidade || profile == PerfilGestorUnidade
}

// User corresponde à tabela users: um usuário interno do SICAT.
type User struct {
	ID           int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	NIF          string         `json:"nif" gorm:"column:nif;size:50"`
	Name         string         `json:"name" gorm:"column:name;not null;size:255"`
	Email        string         `json:"email" gorm:"column:email;unique;not null;size:255"`
	PasswordHash string         `json:"-" gorm:"column:password_hash;not null;size:255"` // o hash nunca sai em JSON
	Unidade      string         `json:"unidade" gorm:"column:unidade;size:255"`
	Profile      string         `json:"profile" gorm:"column:profile;not null;size:100"`
	CreatedBy    string         `json:"createdBy" gorm:"column:created_by;size:255"`
	LastEditedBy string         `json:"lastEditedBy" gorm:"column:last_edited_by;size:255"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName especifica o nome da tabela do User.
func (User) TableName() string {
	return "users"
}
