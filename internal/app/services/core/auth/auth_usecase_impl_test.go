package auth

import (
	"context"
	"mindwell-service/internal/app/config"
	"mindwell-service/internal/app/models"
	"mindwell-service/internal/pkg/constvars"
	"mindwell-service/internal/pkg/dto/requests"
	"mindwell-service/internal/pkg/exceptions"
	"mindwell-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users map[string]*models.User
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	userID := "user-" + user.Username
	user.ID = userID
	f.users[userID] = user
	return userID, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email || user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

type fakeRedisRepository struct {
	data map[string]string
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(encoded)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func newTestAuthUsecase(userRepository *fakeUserRepository, redisRepository *fakeRedisRepository) *authUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		InternalConfig: &config.InternalConfig{
			App: config.App{SessionExpTimeInHour: 24},
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 24},
		},
		Log: zap.NewNop(),
	}
}

func TestRegisterUser(t *testing.T) {
	userRepository := &fakeUserRepository{users: map[string]*models.User{}}
	uc := newTestAuthUsecase(userRepository, &fakeRedisRepository{data: map[string]string{}})

	t.Run("registers a new user with hashed password", func(t *testing.T) {
		response, err := uc.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "user@example.com",
			Username: "user1",
			Password: "Secret123!",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.UserID)

		stored := userRepository.users[response.UserID]
		assert.NotEqual(t, "Secret123!", stored.Password)
		assert.True(t, utils.CheckPasswordHash("Secret123!", stored.Password))
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		_, err := uc.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "user@example.com",
			Username: "someone-else",
			Password: "Secret123!",
		})

		assert.Error(t, err)
		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customError.StatusCode)
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		_, err := uc.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "other@example.com",
			Username: "user1",
			Password: "Secret123!",
		})

		assert.Error(t, err)
	})
}

func TestLoginUser(t *testing.T) {
	userRepository := &fakeUserRepository{users: map[string]*models.User{}}
	redisRepository := &fakeRedisRepository{data: map[string]string{}}
	uc := newTestAuthUsecase(userRepository, redisRepository)

	_, err := uc.RegisterUser(context.Background(), &requests.RegisterUser{
		Email:    "user@example.com",
		Username: "user1",
		Password: "Secret123!",
	})
	assert.NoError(t, err)

	t.Run("valid credentials produce a token backed by a session", func(t *testing.T) {
		response, err := uc.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "user@example.com",
			Password: "Secret123!",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Len(t, redisRepository.data, 1)

		sessionID, err := utils.ParseSessionJWT(response.Token, "test-secret")
		assert.NoError(t, err)
		assert.Contains(t, redisRepository.data, "session:"+sessionID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := uc.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "user@example.com",
			Password: "wrong",
		})

		assert.Error(t, err)
		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customError.StatusCode)
	})

	t.Run("unknown email is rejected the same way as a wrong password", func(t *testing.T) {
		_, err := uc.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "ghost@example.com",
			Password: "Secret123!",
		})

		assert.Error(t, err)
		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customError.StatusCode)
	})
}

func TestLogoutUser(t *testing.T) {
	redisRepository := &fakeRedisRepository{data: map[string]string{
		"session:session-1": `{"user_id":"user-1"}`,
	}}
	uc := newTestAuthUsecase(&fakeUserRepository{users: map[string]*models.User{}}, redisRepository)

	err := uc.LogoutUser(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.Empty(t, redisRepository.data)
}
