package services

import (
	"errors"
	"sort"

	"github.com/sicat_management/internal/models"
	"github.com/sicat_management/internal/repositories"
	"github.com/sicat_management/pkg/utils"
)

// Erros de negócio do serviço de empresas.
var (
	ErrCompanyNameRequired = errors.New(`O campo "Razão Social" é obrigatório.`)
	ErrInvalidCNPJ         = errors.New("CNPJ inválido")
)

// CompanyService concentra as regras de negócio das empresas contratadas.
type CompanyService struct {
	repo repositories.CompanyRepository
}

// NewCompanyService cria um CompanyService.
func NewCompanyService(repo repositories.CompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

// Create cadastra uma empresa com validação de razão social e CNPJ.
func (s *CompanyService) Create(company *models.Company) error {
	if company.Name == "" {
		return ErrCompanyNameRequired
	}
	if !utils.ValidateCNPJ(company.CNPJ) {
		return ErrInvalidCNPJ
	}
	return s.repo.Create(company)
}

// List devolve todas as empresas com seus contratos.
func (s *CompanyService) List() ([]models.Company, error) {
	return s.repo.List()
}

// GetByID carrega uma empresa com contratos.
func (s *CompanyService) GetByID(id int64) (*models.Company, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

// AddContract anexa um contrato à empresa.
func (s *CompanyService) AddContract(companyID int64, contract *models.Contract) error {
	if _, err := s.GetByID(companyID); err != nil {
		return err
	}
	contract.CompanyID = companyID
	if contract.Status == "" {
		contract.Status = models.ContratoAtivo
	}
	return s.repo.AddContract(contract)
}

// CargoOptions devolve os cargos disponíveis na empresa, derivados dos
// serviços prestados em contratos ativos.
func (s *CompanyService) CargoOptions(id int64) ([]string, error) {
	company, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return ActiveServiceOptions(company), nil
}

// ActiveServiceOptions devolve, sem repetição e em ordem alfabética, a união
// dos serviços prestados nos contratos ativos da empresa. Contratos inativos
// não contribuem.
func ActiveServiceOptions(company *models.Company) []string {
	seen := make(map[string]bool)
	var options []string
	for _, contract := range company.Contracts {
		if contract.Status != models.ContratoAtivo {
			continue
		}
		for _, service := range contract.ServiceProvided {
			if service == "" || seen[service] {
				continue
			}
			seen[service] = true
			options = append(options, service)
		}
	}
	sort.Strings(options)
	return options
}
