package repositories

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/sicat_management/internal/models"
)

// Erros de persistência expostos pelos repositórios.
var (
	ErrRecordNotFound = errors.New("registro não encontrado")
	ErrCPFExists      = errors.New("já existe um terceiro cadastrado com este CPF")
)

// ThirdPartyListFilter reúne os filtros da listagem paginada de terceiros.
// RestrictUnidade, quando preenchido, limita o resultado aos registros cuja
// lista de unidades contém a unidade do usuário.
type ThirdPartyListFilter struct {
	Page            int
	Limit           int
	Search          string
	SearchBy        string
	Status          string
	Entidade        string
	Insalubridade   string
	RestrictUnidade string
}

// ThirdPartyRepository define o acesso a dados dos terceiros e do seu
// histórico. Toda gravação de alteração é transacional: registro e entrada
// de histórico são persistidos juntos ou nada é persistido.
type ThirdPartyRepository interface {
	Create(tp *models.ThirdParty, entry *models.ThirdPartyHistory) error
	GetByID(id int64) (*models.ThirdParty, error)
	List(filter ThirdPartyListFilter) ([]models.ThirdParty, int64, error)
	SaveWithHistory(tp *models.ThirdParty, entry *models.ThirdPartyHistory) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
	CountByEntidade(entidade string) (int64, error)
	CountWithInsalubridade() (int64, error)
}

type gormThirdPartyRepository struct {
	db *gorm.DB
}

// NewGormThirdPartyRepository cria um ThirdPartyRepository sobre GORM.
func NewGormThirdPartyRepository(db *gorm.DB) ThirdPartyRepository {
	return &gormThirdPartyRepository{db: db}
}

// ptBRCollator ordena nomes conforme a colação pt-BR; o SQLite não tem essa
// colação nativa, então a página é reordenada em memória.
var ptBRCollator = collate.New(language.BrazilianPortuguese, collate.IgnoreCase)

func (r *gormThirdPartyRepository) Create(tp *models.ThirdParty, entry *models.ThirdPartyHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ThirdParty{}).Where("cpf = ?", tp.CPF).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCPFExists
		}
		if err := tx.Create(tp).Error; err != nil {
			return err
		}
		entry.ThirdPartyID = tp.ID
		return tx.Create(entry).Error
	})
}

func (r *gormThirdPartyRepository) GetByID(id int64) (*models.ThirdParty, error) {
	var tp models.ThirdParty
	err := r.db.Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&tp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &tp, nil
}

func (r *gormThirdPartyRepository) List(filter ThirdPartyListFilter) ([]models.ThirdParty, int64, error) {
	query := r.db.Model(&models.ThirdParty{})

	if filter.Search != "" {
		term := "%" + strings.TrimSpace(filter.Search) + "%"
		switch filter.SearchBy {
		case "cpf":
			query = query.Where("cpf LIKE ?", term)
		case "razaoSocial":
			query = query.Where("razao_social LIKE ?", term)
		default:
			query = query.Where("name LIKE ?", term)
		}
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Entidade != "" {
		query = query.Where("entidade = ?", filter.Entidade)
	}
	if filter.Insalubridade != "" {
		query = query.Where("recebe_insalubridade = ?", filter.Insalubridade)
	}
	if filter.RestrictUnidade != "" {
		// Unidades é uma coluna JSON; o LIKE sobre o valor serializado cobre
		// o caso de unidade contida na lista.
		query = query.Where("unidades LIKE ?", "%\""+filter.RestrictUnidade+"\"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var items []models.ThirdParty
	err := query.Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return ptBRCollator.CompareString(items[i].Name, items[j].Name) < 0
	})

	return items, total, nil
}

func (r *gormThirdPartyRepository) SaveWithHistory(tp *models.ThirdParty, entry *models.ThirdPartyHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("History").Save(tp).Error; err != nil {
			return err
		}
		entry.ThirdPartyID = tp.ID
		return tx.Create(entry).Error
	})
}

func (r *gormThirdPartyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ThirdParty{}).Count(&count).Error
	return count, err
}

func (r *gormThirdPartyRepository) CountByEntidade(entidade string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ThirdParty{}).Where("entidade = ?", entidade).Count(&count).Error
	return count, err
}

func (r *gormThirdPartyRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ThirdParty{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *gormThirdPartyRepository) CountWithInsalubridade() (int64, error) {
	var count int64
	err := r.db.Model(&models.ThirdParty{}).
		Where("recebe_insalubridade = ? AND status = ?", models.RecebeSim, models.StatusAtivo).
		Count(&count).Error
	return count, err
}
