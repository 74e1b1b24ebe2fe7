package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sicat_management/internal/models"
	"github.com/sicat_management/internal/repositories"
	"github.com/sicat_management/pkg/utils"
)

// Erros de negócio do serviço de usuários.
var (
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidEmail       = errors.New("e-mail inválido")
	ErrInvalidProfile     = errors.New("perfil de acesso inválido")
	ErrPasswordRequired   = errors.New(`O campo "Senha" é obrigatório.`)
	ErrUnidadeRequired    = errors.New(`O campo "Unidade" é obrigatório para perfis de unidade.`)
	ErrInvalidCredentials = errors.New("e-mail ou senha incorretos")
)

var validProfiles = []string{
	models.PerfilGerenciaFacilities,
	models.PerfilSede,
	models.PerfilGestorUnidade,
	models.PerfilUnidade,
}

// UserService concentra as regras de negócio dos usuários internos: cadastro
// com hash de senha, edição com carimbo de auditoria e autenticação.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService cria um UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create cadastra um usuário. A senha é armazenada apenas como hash bcrypt;
// actingUser fica registrado como criador.
func (s *UserService) Create(user *models.User, password, actingUser string) error {
	if !utils.ValidateEmailFormat(user.Email) || user.Email == "" {
		return ErrInvalidEmail
	}
	if !utils.ContainsString(validProfiles, user.Profile) {
		return ErrInvalidProfile
	}
	if models.RestrictedProfile(user.Profile) && user.Unidade == "" {
		return ErrUnidadeRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.CreatedBy = actingUser
	return s.repo.Create(user)
}

// List devolve todos os usuários.
func (s *UserService) List() ([]models.User, error) {
	return s.repo.List()
}

// Update grava alterações cadastrais do usuário. Uma nova senha, quando
// informada, substitui o hash; actingUser fica registrado como último editor.
func (s *UserService) Update(id int64, updated *models.User, newPassword, actingUser string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if updated.Profile != "" {
		if !utils.ContainsString(validProfiles, updated.Profile) {
			return nil, ErrInvalidProfile
		}
		user.Profile = updated.Profile
	}
	if updated.Name != "" {
		user.Name = updated.Name
	}
	if updated.NIF != "" {
		user.NIF = updated.NIF
	}
	user.Unidade = updated.Unidade
	if models.RestrictedProfile(user.Profile) && user.Unidade == "" {
		return nil, ErrUnidadeRequired
	}

	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.LastEditedBy = actingUser
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate valida as credenciais e devolve o usuário. E-mail inexistente
// e senha errada retornam o mesmo erro, sem distinguir os casos.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
