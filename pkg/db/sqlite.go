package db

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sicat_management/configs"
	"github.com/sicat_management/internal/models"
)

var gormDB *gorm.DB

const (
	dbPathEnv     = "SQLITE_DB_PATH"
	defaultDbFile = "data/sicat.db"
)

// InitDB abre a conexão GORM com o SQLite, executa as migrações e semeia o
// usuário administrador inicial. O caminho do arquivo vem da variável
// SQLITE_DB_PATH; sem ela, usa o padrão "data/sicat.db".
func InitDB() {
	dbPath := os.Getenv(dbPathEnv)
	if dbPath == "" {
		dbPath = defaultDbFile
		log.Printf("Variável %s não definida, usando o caminho padrão: %s", dbPathEnv, dbPath)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Fatalf("Falha ao criar o diretório do banco de dados: %v", err)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var err error
	gormDB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		log.Fatalf("Falha ao conectar ao banco de dados: %v", err)
	}

	log.Println("Conexão com o banco de dados estabelecida.")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Contract{},
		&models.ThirdParty{},
		&models.ThirdPartyHistory{},
	); err != nil {
		log.Fatalf("Falha ao migrar o banco de dados: %v", err)
	}

	seedAdminUser()
}

// seedAdminUser cria o usuário administrador inicial quando a tabela de
// usuários está vazia, com as credenciais da configuração.
func seedAdminUser() {
	var count int64
	if err := gormDB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Fatalf("Falha ao verificar os usuários existentes: %v", err)
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Falha ao gerar o hash da senha inicial: %v", err)
	}

	admin := models.User{
		Name:         "Administrador",
		Email:        configs.AppConfig.AdminEmail,
		PasswordHash: string(hash),
		Profile:      models.PerfilGerenciaFacilities,
		CreatedBy:    "Sistema",
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		log.Fatalf("Falha ao criar o usuário administrador inicial: %v", err)
	}
	log.Printf("Usuário administrador inicial criado: %s", admin.Email)
}

// GetDB devolve a instância GORM inicializada por InitDB.
func GetDB() *gorm.DB {
	if gormDB == nil {
		log.Fatal("O banco de dados não foi inicializado. Chame InitDB primeiro.")
	}
	return gormDB
}

// CloseDB encerra a conexão subjacente com o banco.
func CloseDB() {
	if gormDB == nil {
		return
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Printf("Falha ao obter a conexão para encerramento: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Falha ao encerrar a conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados encerrada.")
}
