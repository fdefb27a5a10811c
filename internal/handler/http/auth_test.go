package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const signUpBody = `{"email":"alice@example.com","password":"secret","key_salt":"AAECAwQFBgcICQoLDA0ODw=="}`

// ─────────────────────────────────────────────
// signUp
// ─────────────────────────────────────────────

func TestSignUp(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		callService bool
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "created",
			body:        signUpBody,
			callService: true,
			wantStatus:  http.StatusCreated,
		},
		{
			name:        "duplicate email",
			body:        signUpBody,
			serviceErr:  service.ErrEmailTaken,
			callService: true,
			wantStatus:  http.StatusConflict,
			wantMessage: "email already registered",
		},
		{
			name:        "validation failure",
			body:        `{"email":"","password":"secret"}`,
			serviceErr:  fmt.Errorf("sign up: %w", &validators.ValidationError{Field: validators.FieldEmail, Reason: "is required"}),
			callService: true,
			wantStatus:  http.StatusBadRequest,
			wantMessage: (&validators.ValidationError{Field: validators.FieldEmail, Reason: "is required"}).Error(),
		},
		{
			name:        "malformed json",
			body:        `{"email":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided",
		},
		{
			name:        "storage down",
			body:        signUpBody,
			serviceErr:  fmt.Errorf("insert: %w", store.ErrStorageUnavailable),
			callService: true,
			wantStatus:  http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			if tt.callService {
				deps.auth.EXPECT().SignUp(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, creds models.Credentials) (models.User, error) {
						if tt.serviceErr != nil {
							return models.User{}, tt.serviceErr
						}
						assert.Equal(t, "alice@example.com", creds.Email)
						assert.Equal(t, "secret", creds.Password)
						assert.Len(t, creds.KeySalt, 16)
						return models.User{ID: "user-1", Email: creds.Email}, nil
					})
			}

			rr := doRequest(t, router, http.MethodPost, "/api/auth/signup", tt.body, nil)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus == http.StatusCreated {
				var resp models.SignUpResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "user-1", resp.ID)
				return
			}
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rr))
			}
		})
	}
}

func TestSignUp_BodyTooLarge(t *testing.T) {
	router, _ := newTestRouter(t)
	body := `{"email":"a@b.c","password":"` + strings.Repeat("0", int(maxBodyBytes)) + `"}`
	require.Greater(t, len(body), int(maxBodyBytes))

	rr := doRequest(t, router, http.MethodPost, "/api/auth/signup", body, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid data provided", errorMessage(t, rr))
}

// ─────────────────────────────────────────────
// keyParams
// ─────────────────────────────────────────────

func TestKeyParams(t *testing.T) {
	router, deps := newTestRouter(t)
	salt := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	deps.auth.EXPECT().KeyParams(gomock.Any(), "alice@example.com").Return(salt, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/params", `{"email":"alice@example.com"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.KeyParamsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, salt, resp.KeySalt)
}

func TestKeyParams_InvalidEmail(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.auth.EXPECT().KeyParams(gomock.Any(), "").
		Return(nil, &validators.ValidationError{Field: validators.FieldEmail, Reason: "is required"})

	rr := doRequest(t, router, http.MethodPost, "/api/auth/params", `{"email":""}`, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	router, deps := newTestRouter(t)
	expires := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	deps.auth.EXPECT().Login(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "secret"}).
		Return(models.Token{SignedString: "signed.jwt.value", UserID: "user-1", ExpiresAt: expires}, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.value", rr.Header().Get("Authorization"))

	var resp struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.value", resp.Token)
	assert.True(t, expires.Equal(resp.ExpiresAt))
	assert.NotContains(t, rr.Body.String(), "user-1")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrInvalidCredentials)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid email or password", errorMessage(t, rr))
	assert.Empty(t, rr.Header().Get("Authorization"))
}
