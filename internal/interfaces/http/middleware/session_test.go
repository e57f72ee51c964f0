package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrsproject/lrs/internal/application/auth/dto"
	"github.com/lrsproject/lrs/internal/infrastructure/auth"
	"github.com/lrsproject/lrs/internal/interfaces/http/handlers/testutil"
	"github.com/lrsproject/lrs/internal/shared/constants"
)

const testCookie = "lrs_session"

func newSessionRouter(sessions *auth.SessionService, tenantID *uint) *gin.Engine {
	m := NewSessionMiddleware(sessions, testCookie, testutil.NewMockLogger())
	r := gin.New()
	r.GET("/user/:externalId",
		func(c *gin.Context) {
			c.Set(constants.ContextKeyAuth, &dto.AuthContext{CredentialID: 1, TenantID: tenantID})
		},
		m.ResolveUser("externalId"),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"external_id": c.GetString(constants.ContextKeyExternalID),
				"tenant":      c.GetUint(constants.ContextKeySessionTenant),
			})
		})
	return r
}

func TestSessionResolveUser(t *testing.T) {
	sessions := auth.NewSessionService("test-secret", 1)
	token, _, err := sessions.Issue(3, "mailto:jane@example.edu")
	require.NoError(t, err)
	otherTenant := uint(9)
	sameTenant := uint(3)

	tests := []struct {
		name       string
		path       string
		cookie     string
		tenantID   *uint
		wantStatus int
		wantBody   string
	}{
		{"explicit id passes", "/user/jane", "", &sameTenant, http.StatusOK, `{"external_id":"","tenant":0}`},
		{"me with session", "/user/me", token, &sameTenant, http.StatusOK, `{"external_id":"mailto:jane@example.edu","tenant":3}`},
		{"me with global caller", "/user/me", token, nil, http.StatusOK, `{"external_id":"mailto:jane@example.edu","tenant":3}`},
		{"me without cookie", "/user/me", "", &sameTenant, http.StatusUnauthorized, MsgMissingSession},
		{"me with forged cookie", "/user/me", token + "x", &sameTenant, http.StatusUnauthorized, MsgInvalidSession},
		{"me from another tenant", "/user/me", token, &otherTenant, http.StatusUnauthorized, MsgInvalidSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newSessionRouter(sessions, tt.tenantID)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: testCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}
