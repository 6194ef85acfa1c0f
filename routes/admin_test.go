package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// buildTestApp creates a minimal iris app with the admin party and a JWT
// verifier. The role check runs against the token claims instead of the
// profile table so the gate can be exercised without a database.
func buildTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(mockAccessToken) })

	admin := app.Party("/v1/admin", accessTokenVerifierMiddleware, mockAdminOnlyMiddleware)
	{
		admin.Get("/stats", func(ctx iris.Context) {
			ctx.JSON(iris.Map{"data": iris.Map{}})
		})
		admin.Patch("/users/{id:uint}/role", AdminChangeUserRole)
		admin.Delete("/users/{id:uint}", AdminDeleteUser)
	}

	app.Build()
	return app
}

type mockAccessToken struct {
	ID   uint
	Role string
}

func mockAdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*mockAccessToken)
	if claims.Role != "ADMIN" {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

func signTestToken(id uint, role string) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(mockAccessToken{ID: id, Role: role})
	return string(token)
}

func TestAdminRBAC(t *testing.T) {
	app := buildTestApp()

	// No token
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK {
		t.Fatalf("expected non-200 without token, got %d", resp.Code)
	}

	// USER role -> 403
	req2 := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	req2.Header.Set("Authorization", "Bearer "+signTestToken(1, "USER"))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for USER role, got %d", resp2.Code)
	}

	// ADMIN role -> 200
	req3 := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	req3.Header.Set("Authorization", "Bearer "+signTestToken(1, "ADMIN"))
	resp3 := httptest.NewRecorder()
	app.ServeHTTP(resp3, req3)
	if resp3.Code != http.StatusOK {
		t.Fatalf("expected 200 for ADMIN role, got %d", resp3.Code)
	}
}

// The self-protection check fires before any payload parsing or data access,
// so it can be verified end to end without a database.
func TestAdminSelfProtection(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/users/7/role", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(7, "ADMIN"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for self role change, got %d", resp.Code)
	}

	req2 := httptest.NewRequest(http.MethodDelete, "/v1/admin/users/7", nil)
	req2.Header.Set("Authorization", "Bearer "+signTestToken(7, "ADMIN"))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for self delete, got %d", resp2.Code)
	}
}
