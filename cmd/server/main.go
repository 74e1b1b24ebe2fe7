package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sicat_management/configs"
	"github.com/sicat_management/internal/routes"
	"github.com/sicat_management/pkg/db"
)

// @title SICAT - Sistema de Cadastro de Terceiros
// @version 1.0
// @description API de cadastro e histórico de colaboradores terceirizados do SESI/SENAI-SP.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configs.LoadConfig()

	db.InitDB()
	defer db.CloseDB()

	router := gin.Default()
	routes.SetupRoutes(router)

	port := configs.AppConfig.ServerPort
	log.Printf("Servidor iniciando na porta %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Falha ao iniciar o servidor: %v", err)
	}
}
