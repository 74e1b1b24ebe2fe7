package models

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de um contrato.
const (
	ContratoAtivo   = "Ativo"
	ContratoInativo = "Inativo"
)

// Company corresponde à tabela companies: uma contratada prestadora de
// serviços, com seus contratos aninhados.
type Company struct {
	ID        int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string         `json:"name" gorm:"column:name;not null;size:255"`
	CNPJ      string         `json:"cnpj" gorm:"column:cnpj;unique;not null;size:20"`
	Contracts []Contract     `json:"contracts" gorm:"foreignKey:CompanyID"`
	CreatedAt time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName especifica o nome da tabela da Company.
func (Company) TableName() string {
	return "companies"
}

// Contract corresponde à tabela contracts. ServiceProvided alimenta as
// opções de cargo ao transferir um terceiro para a contratada.
type Contract struct {
	ID               int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	CompanyID        int64          `json:"-" gorm:"column:company_id;not null;index"`
	NumeroContrato   string         `json:"numeroContrato" gorm:"column:numero_contrato;size:100"`
	DataInicio       string         `json:"dataInicio" gorm:"column:data_inicio;size:10"`
	DataEncerramento string         `json:"dataEncerramento" gorm:"column:data_encerramento;size:10"`
	PSDA             string         `json:"psda" gorm:"column:psda;size:100"`
	ServiceProvided  StringList     `json:"serviceProvided" gorm:"column:service_provided;type:text"`
	Status           string         `json:"status" gorm:"column:status;not null;default:'Ativo';size:20"`
	CreatedAt        time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt        time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName especifica o nome da tabela do Contract.
func (Contract) TableName() string {
	return "contracts"
}
