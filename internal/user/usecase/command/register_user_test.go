package command

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/user/domain"
	"github.com/mestakip/tiretrack/internal/user/repository"
	"github.com/mestakip/tiretrack/pkg/apperr"
)

func newUserRepo(t *testing.T) *repository.GormUserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	repo := repository.NewGormUserRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func TestRegisterDefaultsToOperator(t *testing.T) {
	repo := newUserRepo(t)
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOperator, user.Role)
	assert.Equal(t, domain.StatusActive, user.Status)
	assert.NotEqual(t, "secret1", user.Password)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	handler := NewRegisterUserHandler(newUserRepo(t))

	_, err := handler.Handle(RegisterUserCommand{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "12345",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	handler := NewRegisterUserHandler(newUserRepo(t))

	_, err := handler.Handle(RegisterUserCommand{Username: "jdoe", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = handler.Handle(RegisterUserCommand{Username: "jdoe", Email: "b@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestLoginLifecycle(t *testing.T) {
	repo := newUserRepo(t)
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	user, err := register.Handle(RegisterUserCommand{Username: "jdoe", Email: "jdoe@example.com", Password: "secret1"})
	require.NoError(t, err)

	resp, err := login.Handle(LoginUserCommand{Username: "jdoe", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	_, err = login.Handle(LoginUserCommand{Username: "jdoe", Password: "wrong"})
	assert.Error(t, err)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	repo := newUserRepo(t)
	register := NewRegisterUserHandler(repo)
	toggle := NewToggleStatusHandler(repo)
	login := NewLoginUserHandler(repo)

	user, err := register.Handle(RegisterUserCommand{Username: "jdoe", Email: "jdoe@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = toggle.Handle(ToggleStatusCommand{UserID: user.ID})
	require.NoError(t, err)

	_, err = login.Handle(LoginUserCommand{Username: "jdoe", Password: "secret1"})
	assert.Error(t, err)
}
