package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"urenregistratie/internal/database"
	"urenregistratie/internal/model"
	"urenregistratie/internal/policy"
	"urenregistratie/internal/service"
	"urenregistratie/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const secret = "testsecret"

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func bearer(t *testing.T, u model.User) string {
	t.Helper()
	tok, err := service.IssueAccessToken(u, secret, time.Minute)
	require.NoError(t, err)
	return "Bearer " + tok
}

// withUsers makes the user lookup answer from the given rows only.
func withUsers(t *testing.T, users ...model.User) {
	t.Helper()
	t.Cleanup(func() { getUserByID = store.GetUserByID })
	getUserByID = func(_ context.Context, _ database.Querier, id int) (*model.User, error) {
		for _, u := range users {
			if u.ID == id {
				return &u, nil
			}
		}
		return nil, model.ErrNotFound
	}
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}

func TestExtractClaims(t *testing.T) {
	// missing header
	ctx, _ := newContext("")
	_, err := extractClaims(ctx, secret)
	requireStatus(t, err, http.StatusUnauthorized)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx, secret)
	requireStatus(t, err, http.StatusUnauthorized)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, secret)
	requireStatus(t, err, http.StatusUnauthorized)

	// signed with another secret
	tok, _ := service.IssueAccessToken(model.User{ID: 1, Role: model.RoleAdmin}, "other", time.Minute)
	ctx, _ = newContext("Bearer " + tok)
	_, err = extractClaims(ctx, secret)
	requireStatus(t, err, http.StatusUnauthorized)

	// valid token
	ctx, _ = newContext(bearer(t, model.User{ID: 1, Role: model.RoleAdmin}))
	claims, err := extractClaims(ctx, secret)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.Equal(t, model.RoleAdmin, claims.Role)
}

func TestRequireAuth(t *testing.T) {
	withUsers(t, model.User{ID: 2, Role: model.RoleUser})
	ctx, rec := newContext(bearer(t, model.User{ID: 2, Role: model.RoleUser}))
	called := false
	handler := RequireAuth(nil, secret)(func(c echo.Context) error {
		called = true
		actor, err := Actor(c)
		require.NoError(t, err)
		require.Equal(t, policy.Actor{UserID: 2, Role: model.RoleUser}, actor)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err := RequireAuth(nil, secret)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestRequireAuthUsesStoredRole(t *testing.T) {
	// token still says admin, the account was demoted since
	withUsers(t, model.User{ID: 7, Role: model.RoleUser})
	ctx, _ := newContext(bearer(t, model.User{ID: 7, Role: model.RoleAdmin}))
	called := false
	err := RequireAuth(nil, secret)(RequireAdmin(func(echo.Context) error {
		called = true
		return nil
	}))(ctx)
	requireStatus(t, err, http.StatusForbidden)
	require.False(t, called)

	// and the other way round: a promotion applies immediately
	withUsers(t, model.User{ID: 8, Role: model.RoleAdmin})
	ctx, _ = newContext(bearer(t, model.User{ID: 8, Role: model.RoleUser}))
	err = RequireAuth(nil, secret)(func(c echo.Context) error {
		actor, err := Actor(c)
		require.NoError(t, err)
		require.Equal(t, model.RoleAdmin, actor.Role)
		return nil
	})(ctx)
	require.NoError(t, err)
}

func TestRequireAuthDeletedUser(t *testing.T) {
	withUsers(t)
	ctx, _ := newContext(bearer(t, model.User{ID: 9, Role: model.RoleAdmin}))
	called := false
	err := RequireAuth(nil, secret)(func(echo.Context) error { called = true; return nil })(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
	require.False(t, called)
}

func TestRequireAuthLookupError(t *testing.T) {
	t.Cleanup(func() { getUserByID = store.GetUserByID })
	getUserByID = func(context.Context, database.Querier, int) (*model.User, error) {
		return nil, model.ErrStore
	}
	ctx, _ := newContext(bearer(t, model.User{ID: 2, Role: model.RoleUser}))
	err := RequireAuth(nil, secret)(func(echo.Context) error { return nil })(ctx)
	require.ErrorIs(t, err, model.ErrStore)
}

func TestRequireAuthVerifierError(t *testing.T) {
	t.Cleanup(func() { verifyAccessToken = service.VerifyAccessToken })
	verifyAccessToken = func(string, string) (*service.CustomClaims, error) {
		return nil, errors.New("boom")
	}
	ctx, _ := newContext("Bearer x")
	err := RequireAuth(nil, secret)(func(echo.Context) error { return nil })(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestRequireAdmin(t *testing.T) {
	withUsers(t, model.User{ID: 1, Role: model.RoleAdmin}, model.User{ID: 2, Role: model.RoleUser})
	chain := func(auth string) (bool, error) {
		ctx, _ := newContext(auth)
		called := false
		err := RequireAuth(nil, secret)(RequireAdmin(func(echo.Context) error {
			called = true
			return nil
		}))(ctx)
		return called, err
	}

	called, err := chain(bearer(t, model.User{ID: 1, Role: model.RoleAdmin}))
	require.NoError(t, err)
	require.True(t, called)

	called, err = chain(bearer(t, model.User{ID: 2, Role: model.RoleUser}))
	requireStatus(t, err, http.StatusForbidden)
	require.False(t, called)

	called, err = chain("")
	requireStatus(t, err, http.StatusUnauthorized)
	require.False(t, called)

	// without RequireAuth in front
	ctx, _ := newContext("")
	err = RequireAdmin(func(echo.Context) error { return nil })(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
}
