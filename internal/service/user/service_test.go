package user

import (
	"context"
	"testing"

	"github.com/rh-war/hr-console-backend-go/internal/domain/user"
	"github.com/rh-war/hr-console-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(seed []user.User) user.UserService {
	return NewUserService(memory.NewUserRepository(seed))
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Name:     "Carla Mendes",
		Login:    "carla.mendes",
		Password: "s3nh4-forte",
		Role:     user.RoleManager,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, user.RoleManager, created.Role)

	got, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.NotContains(t, []string{got.Name, got.Login}, "s3nh4-forte")
}

func TestCreateUser_DuplicateLogin(t *testing.T) {
	svc := newTestService([]user.User{
		{ID: 1, Name: "Admin", Login: "admin", Role: user.RoleAdministrator},
	})

	_, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Name:     "Outro Admin",
		Login:    "admin",
		Password: "admin",
		Role:     user.RoleAdministrator,
	})
	assert.ErrorIs(t, err, user.ErrLoginExists)
}

func TestUpdateUser_RehashesOnPasswordChange(t *testing.T) {
	oldHash, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := memory.NewUserRepository([]user.User{
		{ID: 1, Name: "Maria Silva", Login: "maria.silva", PasswordHash: string(oldHash), Role: user.RoleManager},
	})
	svc := NewUserService(repo)
	ctx := context.Background()

	newPass := "new-pass"
	require.NoError(t, svc.UpdateUser(ctx, user.UpdateUserRequest{ID: 1, Password: &newPass}))

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-pass")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("old-pass")))
	assert.Equal(t, "Maria Silva", stored.Name)
}

func TestMenuSections_PerRole(t *testing.T) {
	svc := newTestService(nil)

	tests := []struct {
		role     user.Role
		expected []string
	}{
		{user.RoleAdministrator, []string{"dashboard", "employees", "leaves", "performance", "recruitment", "reports", "profiles"}},
		{user.RoleManager, []string{"dashboard", "employees", "leaves", "performance", "recruitment", "reports"}},
		{user.RoleCoordinator, []string{"dashboard", "employees", "leaves", "performance", "recruitment", "reports"}},
		{user.RoleUser, []string{"dashboard", "employees", "leaves", "performance"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.MenuSections(tt.role))
		})
	}
}
