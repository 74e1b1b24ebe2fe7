package configs

import (
	"log"
	"os"
	"sync"
)

// AppConfig guarda a configuração da aplicação, populada uma única vez por
// LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration define as opções de configuração da aplicação.
type Configuration struct {
	JWTSecret     string
	ServerPort    string
	AdminEmail    string
	AdminPassword string
}

const (
	defaultJWTSecret     = "sicat"
	envJWTSecretKey      = "JWT_SECRET_KEY"
	defaultServerPort    = "8081"
	envServerPortKey     = "SERVER_PORT"
	defaultAdminEmail    = "admin@sesisenai.org.br"
	envAdminEmailKey     = "ADMIN_EMAIL"
	defaultAdminPassword = "admin123"
	envAdminPasswordKey  = "ADMIN_PASSWORD"
)

// LoadConfig carrega a configuração das variáveis de ambiente, com valores
// padrão para desenvolvimento. Deve ser chamada uma vez na inicialização.
func LoadConfig() {
	once.Do(func() {
		jwtSecret := os.Getenv(envJWTSecretKey)
		if jwtSecret == "" {
			jwtSecret = defaultJWTSecret
			log.Printf("Aviso: variável %s não definida. Usando a chave JWT padrão; defina-a em produção.", envJWTSecretKey)
		}

		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
			log.Printf("Info: variável %s não definida. Usando a porta padrão %s.", envServerPortKey, defaultServerPort)
		}

		adminEmail := os.Getenv(envAdminEmailKey)
		if adminEmail == "" {
			adminEmail = defaultAdminEmail
		}

		adminPassword := os.Getenv(envAdminPasswordKey)
		if adminPassword == "" {
			adminPassword = defaultAdminPassword
			log.Printf("Aviso: variável %s não definida. Usando a senha padrão do usuário inicial; defina-a em produção.", envAdminPasswordKey)
		}

		AppConfig = Configuration{
			JWTSecret:     jwtSecret,
			ServerPort:    serverPort,
			AdminEmail:    adminEmail,
			AdminPassword: adminPassword,
		}

		log.Println("Configuração da aplicação carregada.")
	})
}
