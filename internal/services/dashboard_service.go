package services

import (
	"github.com/sicat_management/internal/models"
	"github.com/sicat_management/internal/repositories"
)

// DashboardService agrega as contagens exibidas no painel inicial.
type DashboardService struct {
	repo repositories.ThirdPartyRepository
}

// NewDashboardService cria um DashboardService.
func NewDashboardService(repo repositories.ThirdPartyRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Summary calcula as contagens de terceiros por status, entidade e
// insalubridade.
func (s *DashboardService) Summary() (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	var err error

	if summary.Total, err = s.repo.Count(); err != nil {
		return nil, err
	}
	if summary.Ativos, err = s.repo.CountByStatus(models.StatusAtivo); err != nil {
		return nil, err
	}
	if summary.Inativos, err = s.repo.CountByStatus(models.StatusInativo); err != nil {
		return nil, err
	}
	if summary.Sesi, err = s.repo.CountByEntidade(models.EntidadeSesi); err != nil {
		return nil, err
	}
	if summary.Senai, err = s.repo.CountByEntidade(models.EntidadeSenai); err != nil {
		return nil, err
	}
	if summary.SesiSenai, err = s.repo.CountByEntidade(models.EntidadeSesiSenai); err != nil {
		return nil, err
	}
	if summary.ComInsalubridade, err = s.repo.CountWithInsalubridade(); err != nil {
		return nil, err
	}

	return &summary, nil
}
