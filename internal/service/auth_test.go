package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserRepository, *mocks.MockTokenIssuer) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)
	tokensMock := mocks.NewMockTokenIssuer(ctrl)

	svc := NewAuthService(usersMock, tokensMock, newTestLogger()).(*authService)
	svc.bcryptCost = bcrypt.MinCost
	return svc, usersMock, tokensMock
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	svc, usersMock, tokensMock := newTestAuthService(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	usersMock.EXPECT().GetByEmail(ctx, "ana@example.com").Return(nil, models.ErrNotFound).Times(1)
	usersMock.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		assert.Equal(t, "ana@example.com", u.Email)
		assert.Equal(t, models.RoleUser, u.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cretpass")))
		u.ID = id
		return nil
	}).Times(1)
	tokensMock.EXPECT().
		Generate(models.Session{UserID: id.Hex(), Email: "ana@example.com", Name: "Ana", Role: models.RoleUser}).
		Return("signed-token", nil).Times(1)

	user, token, err := svc.Register(ctx, models.RegisterInput{Name: " Ana ", Email: " Ana@Example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Ana", user.Name)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, usersMock, _ := newTestAuthService(t)

	usersMock.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(&models.User{}, nil).Times(1)
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, _, err := svc.Register(context.Background(), models.RegisterInput{Email: "ana@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRegister_LookupError(t *testing.T) {
	svc, usersMock, _ := newTestAuthService(t)
	dbErr := errors.New("mongo down")

	usersMock.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(1)

	_, _, err := svc.Register(context.Background(), models.RegisterInput{Email: "x@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, models.ErrConflict)
}

func TestLogin(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "ana@example.com", Name: "Ana", Role: models.RoleAdmin}

	tests := []struct {
		name     string
		lookup   error
		password string
		wantErr  error
	}{
		{name: "valid credentials", password: "s3cretpass"},
		{name: "wrong password", password: "nope", wantErr: models.ErrUnauthorized},
		{name: "unknown email", lookup: models.ErrNotFound, password: "s3cretpass", wantErr: models.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, usersMock, tokensMock := newTestAuthService(t)
			stored := *user
			stored.PasswordHash = hashed(t, "s3cretpass")

			if tt.lookup != nil {
				usersMock.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(nil, tt.lookup).Times(1)
			} else {
				usersMock.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(&stored, nil).Times(1)
			}
			if tt.wantErr == nil {
				tokensMock.EXPECT().Generate(SessionFor(&stored)).Return("signed-token", nil).Times(1)
			} else {
				tokensMock.EXPECT().Generate(gomock.Any()).Times(0)
			}

			got, token, err := svc.Login(context.Background(), "ANA@example.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed-token", token)
			assert.Equal(t, models.RoleAdmin, got.Role)
		})
	}
}

func TestMe(t *testing.T) {
	svc, usersMock, _ := newTestAuthService(t)
	id := primitive.NewObjectID()

	usersMock.EXPECT().GetByID(gomock.Any(), id).Return(&models.User{ID: id, Name: "Ana"}, nil).Times(1)

	user, err := svc.Me(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestMe_InvalidSubject(t *testing.T) {
	svc, usersMock, _ := newTestAuthService(t)
	missing := primitive.NewObjectID()

	usersMock.EXPECT().GetByID(gomock.Any(), missing).Return(nil, models.ErrNotFound).Times(1)

	_, err := svc.Me(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = svc.Me(context.Background(), missing.Hex())
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}
