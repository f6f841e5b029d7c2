package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http/httptest"
	"testing"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type stubUserFinder struct {
	users map[string]*entity.User
}

func (s *stubUserFinder) FindByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, errors.New("sql: no rows in result set")
	}
	return user, nil
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"metadata": map[string]interface{}{
			"user_id":   userID,
			"full_name": "Testeur",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newAuthApp(users *stubUserFinder) *fiber.App {
	v := viper.New()
	v.Set("jwt.secret", testSecret)

	app := fiber.New()
	app.Use(VerifyBearer(v, users, log.Log{LogLevel: 3}))
	app.Get("/me", func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUser(ctx).Role)
	})
	app.Get("/admin", RequireRole(entity.RoleAdmin), func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})
	return app
}

func TestVerifyBearerRejectsMissingToken(t *testing.T) {
	app := newAuthApp(&stubUserFinder{})

	request := httptest.NewRequest("GET", "/me", nil)
	response, err := app.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
}

func TestVerifyBearerRejectsForgedToken(t *testing.T) {
	app := newAuthApp(&stubUserFinder{})

	request := httptest.NewRequest("GET", "/me", nil)
	request.Header.Set("Authorization", "Bearer not.a.token")
	response, err := app.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
}

func TestVerifyBearerRejectsUnknownUser(t *testing.T) {
	app := newAuthApp(&stubUserFinder{users: map[string]*entity.User{}})

	request := httptest.NewRequest("GET", "/me", nil)
	request.Header.Set("Authorization", "Bearer "+signToken(t, "ghost"))
	response, err := app.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
}

func TestVerifyBearerLoadsRoleFromProfile(t *testing.T) {
	users := &stubUserFinder{users: map[string]*entity.User{
		"user-1": {UserID: "user-1", Role: sql.NullString{String: entity.RoleMerchant, Valid: true}},
	}}
	app := newAuthApp(users)

	request := httptest.NewRequest("GET", "/me", nil)
	request.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))
	response, err := app.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
}

func TestRequireRoleBlocksWrongRole(t *testing.T) {
	users := &stubUserFinder{users: map[string]*entity.User{
		"user-1": {UserID: "user-1"},
	}}
	app := newAuthApp(users)

	request := httptest.NewRequest("GET", "/admin", nil)
	request.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))
	response, err := app.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, response.StatusCode)
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	users := &stubUserFinder{users: map[string]*entity.User{
		"admin-1": {UserID: "admin-1", Role: sql.NullString{String: entity.RoleAdmin, Valid: true}},
	}}
	app := newAuthApp(users)

	request := httptest.NewRequest("GET", "/admin", nil)
	request.Header.Set("Authorization", "Bearer "+signToken(t, "admin-1"))
	response, err := app.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
}
