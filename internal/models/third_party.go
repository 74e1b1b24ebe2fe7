package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Valores possíveis dos campos enumerados do terceiro.
const (
	StatusAtivo   = "Ativo"
	StatusInativo = "Inativo"

	RecebeSim = "Sim"
	RecebeNao = "Não"

	NaturezaTemporaria = "Temporário"
	NaturezaDefinitiva = "Definitivo"

	EntidadeSesi      = "SESI"
	EntidadeSenai     = "SENAI"
	EntidadeSesiSenai = "SESI/SENAI"
)

// EscolaridadeOptions, GeneroOptions e JornadaOptions espelham as opções do
// formulário de cadastro.
var (
	EscolaridadeOptions = []string{"Não Informado", "Ensino Fundamental", "Ensino Médio", "Ensino Superior", "Pós-Graduação"}
	GeneroOptions       = []string{"Não Informado", "Masculino", "Feminino", "Outros"}
	JornadaOptions      = []string{"Jornada 44h Semanais", "Jornada 12H36", "Jornada Parcial"}
)

// StringList armazena um slice de strings como JSON em uma coluna de texto
// (as unidades e os serviços prestados são gravados dessa forma).
type StringList []string

// Value implementa driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implementa sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return errors.New("valor incompatível para StringList")
	}
}

// ThirdParty corresponde à tabela third_parties: o registro de um
// colaborador terceirizado. Mutações passam obrigatoriamente pelo motor de
// alterações (internal/changes); nunca por edição direta de campos.
type ThirdParty struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Unidades    StringList `json:"unidades" gorm:"column:unidades;type:text;not null"`
	Entidade    string     `json:"entidade" gorm:"column:entidade;size:20"` // derivada das unidades, nunca editada diretamente
	RazaoSocial string     `json:"razaoSocial" gorm:"column:razao_social;size:255"`
	CNPJ        string     `json:"cnpj" gorm:"column:cnpj;size:20"` // cópia desnormalizada do CNPJ da contratada

	Name           string `json:"name" gorm:"column:name;not null;size:255"`
	CPF            string `json:"cpf" gorm:"column:cpf;unique;not null;size:14"`
	Escolaridade   string `json:"escolaridade" gorm:"column:escolaridade;size:50"`
	Genero         string `json:"genero" gorm:"column:genero;size:50"`
	DataNascimento string `json:"dataNascimento" gorm:"column:data_nascimento;size:10"`

	Endereco      string `json:"endereco" gorm:"column:endereco;size:255"`
	Numero        string `json:"numero" gorm:"column:numero;size:20"`
	Complemento   string `json:"complemento" gorm:"column:complemento;size:255"`
	Bairro        string `json:"bairro" gorm:"column:bairro;size:255"`
	Cidade        string `json:"cidade" gorm:"column:cidade;size:255"`
	Estado        string `json:"estado" gorm:"column:estado;size:100"`
	UF            string `json:"uf" gorm:"column:uf;size:2"`
	CEP           string `json:"cep" gorm:"column:cep;size:10"`
	Pais          string `json:"pais" gorm:"column:pais;size:100"`
	ObsReferencia string `json:"obsReferencia" gorm:"column:obs_referencia;size:255"`

	Cargo                      string `json:"cargo" gorm:"column:cargo;size:255"`
	DataInicioVinculo          string `json:"dataInicioVinculo" gorm:"column:data_inicio_vinculo;size:10"`
	DataInicioAtividades       string `json:"dataInicioAtividades" gorm:"column:data_inicio_atividades;size:10"`
	DataEncerramentoAtividades string `json:"dataEncerramentoAtividades" gorm:"column:data_encerramento_atividades;size:10"`
	DataEncerramentoVinculo    string `json:"dataEncerramentoVinculo" gorm:"column:data_encerramento_vinculo;size:10"`
	JornadaTrabalho            string `json:"jornadaTrabalho" gorm:"column:jornada_trabalho;size:50"`

	RecebeInsalubridade      string `json:"recebeInsalubridade" gorm:"column:recebe_insalubridade;not null;default:'Não';size:10"`
	NaturezaAdicional        string `json:"naturezaAdicional" gorm:"column:natureza_adicional;size:20"`
	DataInicioInsalubridade  string `json:"dataInicioInsalubridade" gorm:"column:data_inicio_insalubridade;size:10"`
	DataTerminoInsalubridade string `json:"dataTerminoInsalubridade" gorm:"column:data_termino_insalubridade;size:10"`

	Status  string              `json:"status" gorm:"column:status;not null;default:'Ativo';size:20"`
	History []ThirdPartyHistory `json:"history" gorm:"foreignKey:ThirdPartyID"`

	CreatedAt time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName especifica o nome da tabela do ThirdParty.
func (ThirdParty) TableName() string {
	return "third_parties"
}

// DeriveEntidade calcula a entidade a partir do prefixo das unidades.
// Unidades mistas resultam em "SESI/SENAI"; o campo nunca é informado pelo
// usuário.
func DeriveEntidade(unidades []string) string {
	var hasSesi, hasSenai bool
	for _, u := range unidades {
		if strings.HasPrefix(u, EntidadeSenai) {
			hasSenai = true
		} else if strings.HasPrefix(u, EntidadeSesi) {
			hasSesi = true
		}
	}
	switch {
	case hasSesi && hasSenai:
		return EntidadeSesiSenai
	case hasSenai:
		return EntidadeSenai
	case hasSesi:
		return EntidadeSesi
	default:
		return ""
	}
}

// Snapshot é o estado completo do terceiro SEM o histórico. É a forma
// gravada em ThirdPartyHistory.SnapshotBeforeChange; o histórico nunca é
// copiado para dentro de um snapshot, para evitar crescimento aninhado sem
// limite. Campos opcionais usam "" como ausente.
type Snapshot struct {
	ID                         int64    `json:"id"`
	Unidades                   []string `json:"unidades"`
	Entidade                   string   `json:"entidade"`
	RazaoSocial                string   `json:"razaoSocial"`
	CNPJ                       string   `json:"cnpj"`
	Name                       string   `json:"name"`
	CPF                        string   `json:"cpf"`
	Escolaridade               string   `json:"escolaridade"`
	Genero                     string   `json:"genero"`
	DataNascimento             string   `json:"dataNascimento"`
	Endereco                   string   `json:"endereco"`
	Numero                     string   `json:"numero"`
	Complemento                string   `json:"complemento,omitempty"`
	Bairro                     string   `json:"bairro"`
	Cidade                     string   `json:"cidade"`
	Estado                     string   `json:"estado"`
	UF                         string   `json:"uf"`
	CEP                        string   `json:"cep"`
	Pais                       string   `json:"pais"`
	ObsReferencia              string   `json:"obsReferencia,omitempty"`
	Cargo                      string   `json:"cargo"`
	DataInicioVinculo          string   `json:"dataInicioVinculo"`
	DataInicioAtividades       string   `json:"dataInicioAtividades"`
	DataEncerramentoAtividades string   `json:"dataEncerramentoAtividades,omitempty"`
	DataEncerramentoVinculo    string   `json:"dataEncerramentoVinculo,omitempty"`
	JornadaTrabalho            string   `json:"jornadaTrabalho"`
	RecebeInsalubridade        string   `json:"recebeInsalubridade"`
	NaturezaAdicional          string   `json:"naturezaAdicional,omitempty"`
	DataInicioInsalubridade    string   `json:"dataInicioInsalubridade,omitempty"`
	DataTerminoInsalubridade   string   `json:"dataTerminoInsalubridade,omitempty"`
	Status                     string   `json:"status"`
}

// Value implementa driver.Valuer; o snapshot é gravado como JSON.
func (s Snapshot) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implementa sql.Scanner.
func (s *Snapshot) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("valor incompatível para Snapshot")
	}
}

// Snapshot produz uma cópia campo a campo do registro, excluindo o
// histórico. A cópia é profunda: o slice de unidades é duplicado.
func (t *ThirdParty) Snapshot() Snapshot {
	s := Snapshot{
		ID:                         t.ID,
		Entidade:                   t.Entidade,
		RazaoSocial:                t.RazaoSocial,
		CNPJ:                       t.CNPJ,
		Name:                       t.Name,
		CPF:                        t.CPF,
		Escolaridade:               t.Escolaridade,
		Genero:                     t.Genero,
		DataNascimento:             t.DataNascimento,
		Endereco:                   t.Endereco,
		Numero:                     t.Numero,
		Complemento:                t.Complemento,
		Bairro:                     t.Bairro,
		Cidade:                     t.Cidade,
		Estado:                     t.Estado,
		UF:                         t.UF,
		CEP:                        t.CEP,
		Pais:                       t.Pais,
		ObsReferencia:              t.ObsReferencia,
		Cargo:                      t.Cargo,
		DataInicioVinculo:          t.DataInicioVinculo,
		DataInicioAtividades:       t.DataInicioAtividades,
		DataEncerramentoAtividades: t.DataEncerramentoAtividades,
		DataEncerramentoVinculo:    t.DataEncerramentoVinculo,
		JornadaTrabalho:            t.JornadaTrabalho,
		RecebeInsalubridade:        t.RecebeInsalubridade,
		NaturezaAdicional:          t.NaturezaAdicional,
		DataInicioInsalubridade:    t.DataInicioInsalubridade,
		DataTerminoInsalubridade:   t.DataTerminoInsalubridade,
		Status:                     t.Status,
	}
	s.Unidades = make([]string, len(t.Unidades))
	copy(s.Unidades, t.Unidades)
	return s
}

// Clone devolve uma cópia independente do snapshot.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Unidades = make([]string, len(s.Unidades))
	copy(c.Unidades, s.Unidades)
	return c
}

// NormalizeInsalubridade aplica os invariantes do adicional: quem não recebe
// não tem natureza nem datas; natureza definitiva não tem data de término.
func (s *Snapshot) NormalizeInsalubridade() {
	if s.RecebeInsalubridade != RecebeSim {
		s.NaturezaAdicional = ""
		s.DataInicioInsalubridade = ""
		s.DataTerminoInsalubridade = ""
		return
	}
	if s.NaturezaAdicional == NaturezaDefinitiva {
		s.DataTerminoInsalubridade = ""
	}
}

// ApplySnapshot grava os campos do snapshot de volta no registro. O ID e o
// histórico do registro são preservados.
func (t *ThirdParty) ApplySnapshot(s Snapshot) {
	t.Unidades = make(StringList, len(s.Unidades))
	copy(t.Unidades, s.Unidades)
	t.Entidade = s.Entidade
	t.RazaoSocial = s.RazaoSocial
	t.CNPJ = s.CNPJ
	t.Name = s.Name
	t.CPF = s.CPF
	t.Escolaridade = s.Escolaridade
	t.Genero = s.Genero
	t.DataNascimento = s.DataNascimento
	t.Endereco = s.Endereco
	t.Numero = s.Numero
	t.Complemento = s.Complemento
	t.Bairro = s.Bairro
	t.Cidade = s.Cidade
	t.Estado = s.Estado
	t.UF = s.UF
	t.CEP = s.CEP
	t.Pais = s.Pais
	t.ObsReferencia = s.ObsReferencia
	t.Cargo = s.Cargo
	t.DataInicioVinculo = s.DataInicioVinculo
	t.DataInicioAtividades = s.DataInicioAtividades
	t.DataEncerramentoAtividades = s.DataEncerramentoAtividades
	t.DataEncerramentoVinculo = s.DataEncerramentoVinculo
	t.JornadaTrabalho = s.JornadaTrabalho
	t.RecebeInsalubridade = s.RecebeInsalubridade
	t.NaturezaAdicional = s.NaturezaAdicional
	t.DataInicioInsalubridade = s.DataInicioInsalubridade
	t.DataTerminoInsalubridade = s.DataTerminoInsalubridade
	t.Status = s.Status
}

// NewContractData carrega o sub-formulário de "novo contrato" usado no tipo
// de alteração de transferência para outra contratada.
type NewContractData struct {
	Unidades                 []string `json:"unidades"`
	RazaoSocial              string   `json:"razaoSocial"`
	CNPJ                     string   `json:"cnpj"`
	Cargo                    string   `json:"cargo"`
	DataInicioVinculo        string   `json:"dataInicioVinculo"`
	DataInicioAtividades     string   `json:"dataInicioAtividades"`
	JornadaTrabalho          string   `json:"jornadaTrabalho"`
	RecebeInsalubridade      string   `json:"recebeInsalubridade"`
	NaturezaAdicional        string   `json:"naturezaAdicional,omitempty"`
	DataInicioInsalubridade  string   `json:"dataInicioInsalubridade,omitempty"`
	DataTerminoInsalubridade string   `json:"dataTerminoInsalubridade,omitempty"`
}

// ThirdPartyChangePayload é o corpo da requisição de alteração de um
// terceiro. Revision é o tamanho do histórico visto pelo cliente ao carregar
// o registro; quando informado, um valor divergente indica registro
// desatualizado e a gravação é recusada.
type ThirdPartyChangePayload struct {
	ChangeType         string           `json:"changeType"`
	Revision           *int             `json:"revision,omitempty"`
	Data               Snapshot         `json:"data"`
	NewJornadaTrabalho string           `json:"newJornadaTrabalho,omitempty"`
	NewContract        *NewContractData `json:"newContract,omitempty"`
}

// DashboardSummary agrega as contagens exibidas no painel.
type DashboardSummary struct {
	Total            int64 `json:"total"`
	Ativos           int64 `json:"ativos"`
	Inativos         int64 `json:"inativos"`
	Sesi             int64 `json:"sesi"`
	Senai            int64 `json:"senai"`
	SesiSenai        int64 `json:"sesiSenai"`
	ComInsalubridade int64 `json:"comInsalubridade"`
}
