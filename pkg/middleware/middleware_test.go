package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserEmail: "gestor@empresa.com"}

	tests := []struct {
		name       string
		enabled    bool
		method     string
		path       string
		header     string
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "autenticação desabilitada libera tudo",
			enabled:    false,
			method:     http.MethodGet,
			path:       "/api/metrics",
			wantStatus: http.StatusOK,
		},
		{
			name:       "healthcheck é público",
			enabled:    true,
			method:     http.MethodGet,
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "login é público",
			enabled:    true,
			method:     http.MethodPost,
			path:       "/v1/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight passa sem token",
			enabled:    true,
			method:     http.MethodOptions,
			path:       "/api/deals",
			wantStatus: http.StatusOK,
		},
		{
			name:       "sem header",
			enabled:    true,
			method:     http.MethodGet,
			path:       "/api/metrics",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"code":"AUTH_006"`,
		},
		{
			name:       "sem Bearer",
			enabled:    true,
			method:     http.MethodGet,
			path:       "/api/metrics",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"code":"AUTH_006"`,
		},
		{
			name:    "token expirado",
			enabled: true,
			method:  http.MethodGet,
			path:    "/api/metrics",
			header:  "Bearer expirado",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("expirado").Return(nil, authenticating.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"code":"AUTH_007"`,
		},
		{
			name:    "token válido",
			enabled: true,
			method:  http.MethodGet,
			path:    "/api/metrics",
			header:  "Bearer valido",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("valido").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			auth.EXPECT().Enabled().Return(tt.enabled).AnyTimes()
			if tt.setup != nil {
				tt.setup(auth)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAuthMiddleware_ClaimsNoContexto(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().Enabled().Return(true)
	auth.EXPECT().ValidateToken("valido").Return(&domain.Claims{UserEmail: "gestor@empresa.com"}, nil)

	var got *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/deals", nil)
	req.Header.Set("Authorization", "Bearer valido")

	AuthMiddleware(auth)(next).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "gestor@empresa.com", got.UserEmail)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000", "https://dashboard.empresa.com/"})(okHandler())

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
		req.Header.Set("Origin", "https://dashboard.empresa.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "https://dashboard.empresa.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("origem não permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
		req.Header.Set("Origin", "https://outro.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		called := false
		preflight := Cors([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodOptions, "/api/deals", nil)
		req.Header.Set("Origin", "https://qualquer.com")
		rec := httptest.NewRecorder()

		preflight.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://qualquer.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/deals", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SRV_001"`)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500_000))
	assert.Equal(t, "250 ms", formatDuration(250_000_000))
	assert.Equal(t, "1.50 s", formatDuration(1_500_000_000))
}
