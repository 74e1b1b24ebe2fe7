package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sicat_management/pkg/utils"
)

// Catálogo fixo das escolas SESI e SENAI do estado de São Paulo. Os nomes
// carregam o prefixo da entidade, que é a base da derivação do campo
// entidade dos terceiros.
var (
	sesiUnits = prefixUnits("SESI", []string{
		"Agudos", "Alumínio", "Álvares Machado", "Americana", "Amparo",
		"Andradina", "Araçatuba", "Araraquara", "Araras", "Assis", "Avaré",
		"Bariri", "Barra Bonita", "Barretos", "Batatais", "Bauru", "Birigui",
		"Botucatu", "Bragança Paulista", "Campinas", "Cotia", "Cruzeiro",
		"Cubatão", "Diadema", "Guarulhos", "Indaiatuba", "Itapetininga", "Itu",
		"Jundiaí", "Lençóis Paulista", "Limeira", "Mauá", "Mogi Guaçu",
		"Osasco", "Piracicaba", "Presidente Epitácio", "Presidente Prudente",
		"Ribeirão Preto", "Rio Claro", "Salto", "Santa Bárbara D'Oeste",
		"Santa Cruz do Rio Pardo", "Santa Rita do Passa Quatro",
		"Santana de Parnaíba", "Santo Anastácio", "Santo André", "Santos",
		"São Bernardo do Campo", "São Caetano do Sul", "São Carlos",
		"São João da Boa Vista", "São José do Rio Preto", "São José dos Campos",
		"SP - Belenzinho", "SP - Ipiranga", "SP - Tatuapé", "SP - Vila Bianca",
		"SP - Vila Císper", "SP - Vila Carrão", "SP - Vila das Mercês",
		"SP - Vila Espanhola", "SP - Vila Leopoldina", "SP - Lauzane Paulista",
		"SP - Cidade A.E. Carvalho", "São Roque", "Sertãozinho", "Suzano",
		"Taubaté",
	})
	senaiUnits = prefixUnits("SENAI", []string{
		"Alumínio", "Araras", "Barra Bonita", "Barueri", "Bauru", "Campinas",
		"Cotia", "Cruzeiro", "Diadema", "Franco da Rocha", "Guarulhos",
		"Jandira", "Jundiaí", "Lençóis Paulista", "Limeira", "Mairinque",
		"Mogi das Cruzes", "Mogi Guaçu", "Osasco", "Piracicaba", "Pirassununga",
		"Presidente Prudente", "Ribeirão Preto", "Rio Claro", "Santo André",
		"São Bernardo do Campo", "São Caetano do Sul", "São João da Boa Vista",
		"São José dos Campos", "SP - Barra Funda", "SP - Bom Retiro",
		"SP - Brás", "SP - Cambuci", "SP - Ipiranga", "SP - Leopoldina",
		"SP - Mooca", "SP - Pirituba", "SP - Santo Amaro", "SP - Vila Alpina",
		"SP - Vila Anastácio", "SP - Vila Mariana", "Sertãozinho", "Sorocaba",
		"Suzano", "Sumaré", "Tatuí", "Taubaté", "Valinhos", "Votuporanga",
	})
)

func prefixUnits(entity string, names []string) []string {
	units := make([]string, len(names))
	for i, name := range names {
		units[i] = entity + " - " + name
	}
	return units
}

// UnitCatalog é o corpo da resposta do catálogo de unidades.
type UnitCatalog struct {
	Sesi  []string `json:"sesi"`
	Senai []string `json:"senai"`
}

// UnitHandler trata a consulta do catálogo de unidades.
type UnitHandler struct{}

// NewUnitHandler cria um UnitHandler.
func NewUnitHandler() *UnitHandler {
	return &UnitHandler{}
}

// List devolve o catálogo de unidades por entidade.
// @Summary Lista as unidades SESI e SENAI
// @Tags unidades
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=UnitCatalog}
// @Router /unidades [get]
func (h *UnitHandler) List(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, UnitCatalog{
		Sesi:  sesiUnits,
		Senai: senaiUnits,
	}, "")
}
