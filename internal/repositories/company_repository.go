package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sicat_management/internal/models"
)

// ErrCNPJExists indica tentativa de cadastrar empresa com CNPJ já usado.
var ErrCNPJExists = errors.New("já existe uma empresa cadastrada com este CNPJ")

// CompanyRepository define o acesso a dados das empresas contratadas e seus
// contratos.
type CompanyRepository interface {
	Create(company *models.Company) error
	List() ([]models.Company, error)
	GetByID(id int64) (*models.Company, error)
	GetByName(name string) (*models.Company, error)
	Update(company *models.Company) error
	AddContract(contract *models.Contract) error
}

type gormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository cria um CompanyRepository sobre GORM.
func NewGormCompanyRepository(db *gorm.DB) CompanyRepository {
	return &gormCompanyRepository{db: db}
}

func (r *gormCompanyRepository) Create(company *models.Company) error {
	var count int64
	if err := r.db.Model(&models.Company{}).Where("cnpj = ?", company.CNPJ).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCNPJExists
	}
	return r.db.Create(company).Error
}

func (r *gormCompanyRepository) List() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Preload("Contracts").Order("name ASC").Find(&companies).Error
	return companies, err
}

func (r *gormCompanyRepository) GetByID(id int64) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("Contracts").First(&company, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *gormCompanyRepository) GetByName(name string) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("Contracts").Where("name = ?", name).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *gormCompanyRepository) Update(company *models.Company) error {
	return r.db.Omit("Contracts").Save(company).Error
}

func (r *gormCompanyRepository) AddContract(contract *models.Contract) error {
	return r.db.Create(contract).Error
}
