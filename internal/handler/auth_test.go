package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/utils"
)

func testCfg() config.Config {
	return config.Config{
		Env:           "test",
		JWTSecret:     "test-secret",
		TokenTTLHours: 24,
		BcryptCost:    4, // minimum cost keeps the suite fast
	}
}

const validRegister = `{
	"email": "linh@example.com",
	"password": "s3cret9",
	"firstName": "Linh",
	"lastName": "Tran",
	"phone": "0912345678"
}`

func TestRegisterSuccessSetsCookie(t *testing.T) {
	users := newFakeUserStore()
	h := NewAuthHandler(testCfg(), users)

	c, rec := newTestCtx(t, http.MethodPost, "/v1/auth/register", validRegister)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User registered OK", body["message"])

	u, ok := body["user"].(map[string]any)
	require.True(t, ok, "response must embed the created user")
	assert.Equal(t, "linh@example.com", u["email"])
	assert.Equal(t, model.RoleUser, u["role"])
	assert.NotContains(t, rec.Body.String(), "password", "credential must never be serialized")

	resp := rec.Result()
	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == utils.AuthCookieName {
			cookie = ck
		}
	}
	require.NotNil(t, cookie, "session cookie must be set")
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure, "secure flag only outside prod when APP_ENV=prod")
	assert.NotEmpty(t, cookie.Value)
}

func TestRegisterShortPassword(t *testing.T) {
	users := newFakeUserStore()
	h := NewAuthHandler(testCfg(), users)

	c, rec := newTestCtx(t, http.MethodPost, "/v1/auth/register",
		`{"email":"a@b.com","password":"12345","firstName":"A","lastName":"B","phone":"0912345678"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password with 6 or more characters required")
	assert.Empty(t, users.users, "no record may be created")
	assert.Empty(t, rec.Result().Cookies(), "no credential may be issued")
}

func TestRegisterAggregatesFieldErrors(t *testing.T) {
	h := NewAuthHandler(testCfg(), newFakeUserStore())

	c, rec := newTestCtx(t, http.MethodPost, "/v1/auth/register",
		`{"email":"not-an-email","password":"12345","firstName":"","lastName":"","phone":"123"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	errs, ok := body["message"].([]any)
	require.True(t, ok, "validation failures are reported per field")
	assert.Len(t, errs, 5)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	users.add(model.User{Email: "linh@example.com", Role: model.RoleUser})
	h := NewAuthHandler(testCfg(), users)

	c, rec := newTestCtx(t, http.MethodPost, "/v1/auth/register", validRegister)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
	assert.Len(t, users.users, 1, "conflict must not create a second record")
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserStore()
	h := NewAuthHandler(testCfg(), users)

	// Register through the handler so the stored hash is real.
	c, _ := newTestCtx(t, http.MethodPost, "/v1/auth/register", validRegister)
	require.NoError(t, h.Register(c))

	c, rec := newTestCtx(t, http.MethodPost, "/v1/auth/login",
		`{"email":"linh@example.com","password":"wrong-pass"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLoginUnknownEmailAnswersLikeWrongPassword(t *testing.T) {
	h := NewAuthHandler(testCfg(), newFakeUserStore())

	c, rec := newTestCtx(t, http.MethodPost, "/v1/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLoginSuccess(t *testing.T) {
	users := newFakeUserStore()
	h := NewAuthHandler(testCfg(), users)

	c, _ := newTestCtx(t, http.MethodPost, "/v1/auth/register", validRegister)
	require.NoError(t, h.Register(c))

	c, rec := newTestCtx(t, http.MethodPost, "/v1/auth/login",
		`{"email":"linh@example.com","password":"s3cret9"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var hasCookie bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == utils.AuthCookieName && ck.Value != "" {
			hasCookie = true
		}
	}
	assert.True(t, hasCookie, "login must issue a fresh session cookie")
}

func TestMe(t *testing.T) {
	users := newFakeUserStore()
	u := users.add(model.User{Email: "linh@example.com", Role: model.RoleUser, Status: model.UserActive})
	h := NewAuthHandler(testCfg(), users)

	c, rec := newTestCtx(t, http.MethodGet, "/v1/users/me", "")
	asUser(c, u)
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "linh@example.com", body["email"])
}

func TestMeVanishedAccount(t *testing.T) {
	h := NewAuthHandler(testCfg(), newFakeUserStore())

	c, rec := newTestCtx(t, http.MethodGet, "/v1/users/me", "")
	asUser(c, &model.User{ID: 12, Role: model.RoleUser})
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}
