package authenticating

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-manager-api/internal/config"
	"github.com/vfg2006/lead-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		userRepo: userRepo,
		cfg:      &config.Config{SecretKey: "chave-de-teste"},
	}

	return service, userRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateUser(t *testing.T) {
	t.Run("cria usuário com role e timezone padrão e senha com hash", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "maria@exemplo.com", user.Email)
				assert.Equal(t, 3, user.RoleID)
				assert.Equal(t, defaultTimezone, user.Timezone)
				assert.False(t, user.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha123")))
				return user, nil
			})

		created, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        " Maria@Exemplo.com ",
			PasswordHash: "Senha123",
		})

		require.NoError(t, err)
		assert.NotNil(t, created)
	})

	t.Run("rejeita cadastro sem campos obrigatórios", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(&domain.User{Name: "Maria", Email: "maria@exemplo.com"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("rejeita email já cadastrado", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("maria@exemplo.com").
			Return(&domain.User{ID: uuid.New(), Email: "maria@exemplo.com"}, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@exemplo.com",
			PasswordHash: "Senha123",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("rejeita senha fraca", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(nil, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@exemplo.com",
			PasswordHash: "senha",
		})

		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestLoginUser(t *testing.T) {
	userID := uuid.New()

	t.Run("login com sucesso devolve token válido", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("maria@exemplo.com").
			Return(&domain.User{
				ID:           userID,
				Name:         "Maria",
				Email:        "maria@exemplo.com",
				PasswordHash: hashPassword(t, "Senha123"),
				Active:       true,
				RoleID:       3,
				Timezone:     defaultTimezone,
			}, nil)

		token, err := service.LoginUser("maria@exemplo.com", "Senha123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, 3, claims.UserRoleID)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("naoexiste@exemplo.com").Return(nil, nil)

		_, err := service.LoginUser("naoexiste@exemplo.com", "Senha123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("conta desativada", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("maria@exemplo.com").
			Return(&domain.User{ID: userID, Email: "maria@exemplo.com", Active: false}, nil)

		_, err := service.LoginUser("maria@exemplo.com", "Senha123")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("maria@exemplo.com").
			Return(&domain.User{
				ID:           userID,
				Email:        "maria@exemplo.com",
				PasswordHash: hashPassword(t, "Senha123"),
				Active:       true,
			}, nil)

		_, err := service.LoginUser("maria@exemplo.com", "SenhaErrada1")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("token assinado com outra chave é rejeitado", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("maria@exemplo.com").
			Return(&domain.User{
				ID:           userID,
				Email:        "maria@exemplo.com",
				PasswordHash: hashPassword(t, "Senha123"),
				Active:       true,
			}, nil)

		token, err := service.LoginUser("maria@exemplo.com", "Senha123")
		require.NoError(t, err)

		other := &Service{cfg: &config.Config{SecretKey: "outra-chave"}}
		_, err = other.ValidateToken(token)

		assert.Error(t, err)
	})
}

func TestChangePassword(t *testing.T) {
	userID := uuid.New()

	t.Run("troca a senha com sucesso", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(userID).
			Return(&domain.User{ID: userID, PasswordHash: hashPassword(t, "SenhaAntiga1")}, nil)
		userRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("SenhaNova2")))
				return nil
			})

		err := service.ChangePassword(userID, "SenhaAntiga1", "SenhaNova2")

		assert.NoError(t, err)
	})

	t.Run("senha atual incorreta", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(userID).
			Return(&domain.User{ID: userID, PasswordHash: hashPassword(t, "SenhaAntiga1")}, nil)

		err := service.ChangePassword(userID, "SenhaErrada1", "SenhaNova2")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("nova senha igual à atual", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(userID).
			Return(&domain.User{ID: userID, PasswordHash: hashPassword(t, "SenhaAntiga1")}, nil)

		err := service.ChangePassword(userID, "SenhaAntiga1", "SenhaAntiga1")

		assert.ErrorIs(t, err, ErrSamePassword)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "senha válida", password: "Senha123", valid: true},
		{name: "muito curta", password: "Abc1", valid: false},
		{name: "sem maiúscula", password: "senha1234", valid: false},
		{name: "sem minúscula", password: "SENHA1234", valid: false},
		{name: "sem dígito", password: "SenhaForte", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tc.password)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}
