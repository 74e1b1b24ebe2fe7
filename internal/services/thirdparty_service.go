package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sicat_management/internal/changes"
	"github.com/sicat_management/internal/models"
	"github.com/sicat_management/internal/repositories"
	"github.com/sicat_management/pkg/utils"
)

// Erros de negócio do serviço de terceiros.
var (
	ErrThirdPartyNotFound = errors.New("terceiro não encontrado")
	ErrCompanyNotFound    = errors.New("empresa contratada não encontrada")
	ErrCargoUnavailable   = errors.New("o cargo informado não consta nos contratos ativos da contratada")
	ErrStaleRecord        = errors.New("Registro desatualizado. Recarregue a página e tente novamente.")
	ErrInvalidCPF         = errors.New("CPF inválido")
)

// ThirdPartyService concentra as regras de negócio dos terceiros: cadastro,
// listagem e aplicação de alterações via motor de alterações. O campo now é
// injetável para os testes fixarem a data das entradas de histórico.
type ThirdPartyService struct {
	repo        repositories.ThirdPartyRepository
	companyRepo repositories.CompanyRepository
	now         func() time.Time
}

// NewThirdPartyService cria um ThirdPartyService.
func NewThirdPartyService(repo repositories.ThirdPartyRepository, companyRepo repositories.CompanyRepository) *ThirdPartyService {
	return &ThirdPartyService{repo: repo, companyRepo: companyRepo, now: time.Now}
}

// creationRequired lista os campos obrigatórios do cadastro inicial, na
// ordem de validação do formulário.
var creationRequired = []changes.Field{
	changes.FieldUnidades,
	changes.FieldRazaoSocial,
	changes.FieldName,
	changes.FieldCPF,
	changes.FieldCargo,
	changes.FieldDataInicioVinculo,
	changes.FieldDataInicioAtividades,
	changes.FieldJornadaTrabalho,
}

// Create registra um novo terceiro. A entidade é derivada das unidades, os
// invariantes de insalubridade são normalizados e a entrada de criação é
// gravada junto com o registro, na mesma transação.
func (s *ThirdPartyService) Create(data models.Snapshot, actingUser string) (*models.ThirdParty, error) {
	for _, f := range creationRequired {
		if changes.Value(&data, f) == "" {
			return nil, fmt.Errorf("O campo %q é obrigatório.", changes.Label(f))
		}
	}
	if !utils.ValidateCPF(data.CPF) {
		return nil, ErrInvalidCPF
	}

	data.Entidade = models.DeriveEntidade(data.Unidades)
	if data.RecebeInsalubridade == "" {
		data.RecebeInsalubridade = models.RecebeNao
	}
	data.NormalizeInsalubridade()
	if data.Status == "" {
		data.Status = models.StatusAtivo
	}

	var tp models.ThirdParty
	tp.ApplySnapshot(data)

	entry := changes.NewCreationEntry(actingUser, s.now())
	if err := s.repo.Create(&tp, &entry); err != nil {
		return nil, err
	}
	tp.History = []models.ThirdPartyHistory{entry}
	return &tp, nil
}

// GetByID carrega um terceiro com o histórico completo.
func (s *ThirdPartyService) GetByID(id int64) (*models.ThirdParty, error) {
	tp, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrThirdPartyNotFound
		}
		return nil, err
	}
	return tp, nil
}

// List devolve uma página de terceiros conforme o filtro.
func (s *ThirdPartyService) List(filter repositories.ThirdPartyListFilter) ([]models.ThirdParty, int64, error) {
	return s.repo.List(filter)
}

// ApplyChange valida e aplica uma alteração tipada sobre o terceiro. O fluxo
// é: carregar o registro com histórico, checar a revisão do cliente, resolver
// o tipo, delegar ao motor de alterações e persistir registro + entrada na
// mesma transação. actingUser é sempre recebido por parâmetro; em branco, a
// entrada registra "Sistema".
func (s *ThirdPartyService) ApplyChange(id int64, payload models.ThirdPartyChangePayload, actingUser string) (*models.ThirdParty, error) {
	tp, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Checagem otimista: a revisão é o tamanho do histórico visto pelo
	// cliente; divergência significa gravação concorrente.
	if payload.Revision != nil && *payload.Revision != len(tp.History) {
		return nil, ErrStaleRecord
	}

	if payload.ChangeType == "" {
		return nil, changes.ErrMissingChangeType
	}
	changeType, ok := changes.Parse(payload.ChangeType)
	if !ok || changeType == changes.TypeCreation {
		return nil, changes.ErrUnknownChangeType
	}

	// Na transferência, a contratada de destino precisa existir e o cargo
	// precisa constar nos serviços dos contratos ativos dela. O CNPJ gravado
	// é sempre o da empresa, nunca o informado pelo cliente.
	if changeType == changes.TypeCompanyTransfer && payload.NewContract != nil && payload.NewContract.RazaoSocial != "" {
		company, err := s.companyRepo.GetByName(payload.NewContract.RazaoSocial)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, err
		}
		if payload.NewContract.Cargo != "" {
			options := ActiveServiceOptions(company)
			if !utils.ContainsString(options, payload.NewContract.Cargo) {
				return nil, ErrCargoUnavailable
			}
		}
		payload.NewContract.CNPJ = company.CNPJ
	}

	result, err := changes.Apply(tp.Snapshot(), changes.Input{
		Type:        changeType,
		Edited:      payload.Data,
		NewJornada:  payload.NewJornadaTrabalho,
		NewContract: payload.NewContract,
		Responsible: actingUser,
		Now:         s.now(),
	})
	if err != nil {
		return nil, err
	}

	tp.ApplySnapshot(result.Updated)
	if err := s.repo.SaveWithHistory(tp, &result.Entry); err != nil {
		return nil, err
	}
	tp.History = append(tp.History, result.Entry)
	return tp, nil
}

// History reconstrói a visão de exibição do histórico do terceiro.
func (s *ThirdPartyService) History(id int64) ([]changes.EntryView, error) {
	tp, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return changes.BuildHistory(tp), nil
}
