package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sicat_management/internal/models"
	"github.com/sicat_management/internal/repositories"
)

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repositories.ErrEmailExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) List() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

func TestUserCreateHashesPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	user := models.User{
		Name:    "Maria Gestora",
		Email:   "maria@sesisenai.org.br",
		Profile: models.PerfilSede,
	}
	require.NoError(t, svc.Create(&user, "senha-secreta", "Administrador"))

	assert.NotEqual(t, "senha-secreta", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-secreta")))
	assert.Equal(t, "Administrador", user.CreatedBy)
}

func TestUserCreateValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.Create(&models.User{Email: "x", Profile: models.PerfilSede}, "s", "")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	err = svc.Create(&models.User{Email: "a@b.com", Profile: "Qualquer"}, "s", "")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	// Perfil restrito exige unidade.
	err = svc.Create(&models.User{Email: "a@b.com", Profile: models.PerfilUnidade}, "s", "")
	assert.ErrorIs(t, err, ErrUnidadeRequired)

	err = svc.Create(&models.User{Email: "a@b.com", Profile: models.PerfilSede}, "", "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestUserUpdateAuditStamp(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user := models.User{Name: "Maria", Email: "maria@sesisenai.org.br", Profile: models.PerfilSede}
	require.NoError(t, svc.Create(&user, "senha", "Administrador"))

	updated, err := svc.Update(user.ID, &models.User{Name: "Maria Gestora"}, "", "Outro Gestor")
	require.NoError(t, err)

	assert.Equal(t, "Maria Gestora", updated.Name)
	assert.Equal(t, "Outro Gestor", updated.LastEditedBy)
	// Senha preservada quando não informada.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("senha")))
}

func TestAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	user := models.User{Name: "Maria", Email: "maria@sesisenai.org.br", Profile: models.PerfilSede}
	require.NoError(t, svc.Create(&user, "senha", ""))

	got, err := svc.Authenticate("maria@sesisenai.org.br", "senha")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate("maria@sesisenai.org.br", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nao-existe@sesisenai.org.br", "senha")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
