package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sicat_management/internal/models"
)

func TestActiveServiceOptions(t *testing.T) {
	company := &models.Company{
		Contracts: []models.Contract{
			{Status: models.ContratoAtivo, ServiceProvided: models.StringList{"Porteiro", "Vigilante"}},
			{Status: models.ContratoAtivo, ServiceProvided: models.StringList{"Vigilante", "Auxiliar de Limpeza"}},
			{Status: models.ContratoInativo, ServiceProvided: models.StringList{"Jardineiro"}},
		},
	}

	options := ActiveServiceOptions(company)

	// União sem repetição, ordenada; contratos inativos não contribuem.
	assert.Equal(t, []string{"Auxiliar de Limpeza", "Porteiro", "Vigilante"}, options)
}

func TestActiveServiceOptionsNoActiveContracts(t *testing.T) {
	company := &models.Company{
		Contracts: []models.Contract{
			{Status: models.ContratoInativo, ServiceProvided: models.StringList{"Jardineiro"}},
		},
	}
	assert.Empty(t, ActiveServiceOptions(company))
}

func TestCompanyCreateValidation(t *testing.T) {
	svc := NewCompanyService(&fakeCompanyRepo{})

	err := svc.Create(&models.Company{CNPJ: "98.765.432/0001-10"})
	assert.ErrorIs(t, err, ErrCompanyNameRequired)

	err = svc.Create(&models.Company{Name: "Alfa Serviços Ltda", CNPJ: "123"})
	assert.ErrorIs(t, err, ErrInvalidCNPJ)

	err = svc.Create(&models.Company{Name: "Alfa Serviços Ltda", CNPJ: "12.345.678/0001-90"})
	assert.NoError(t, err)
}
