package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

const testSecret = "test-secret"

func authRouter(required ...entity.Capability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, required...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": utils.CurrentUserID(c),
			"roleId": utils.CurrentRoleID(c),
		})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := authRouter()

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "not-a-token").Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := utils.GenerateToken(1, entity.RoleOwner, "other-secret", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doGet(r, token).Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := utils.GenerateToken(1, entity.RoleOwner, testSecret, -time.Minute)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doGet(r, token).Code)
	})

	t.Run("valid token passes claims through", func(t *testing.T) {
		token, err := utils.GenerateToken(7, entity.RoleOwner, testSecret, time.Hour)
		require.NoError(t, err)
		w := doGet(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":7,"roleId":2}`, w.Body.String())
	})
}

func TestAuthMiddlewareCapabilityGate(t *testing.T) {
	r := authRouter(entity.CapInviteRestaurant)

	ownerToken, err := utils.GenerateToken(1, entity.RoleOwner, testSecret, time.Hour)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(2, entity.RoleSuperAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doGet(r, ownerToken).Code)
	assert.Equal(t, http.StatusOK, doGet(r, adminToken).Code)
}
