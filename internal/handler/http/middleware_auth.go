package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.TokenService.Verify] and, on success, stores the user ID in the
// request context with [utils.WithUserID] before delegating to the next
// handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the header is absent ("No token provided");
//   - the header is not "Bearer <token>" or the token does not verify
//     ("Invalid token");
//   - the token is past its expiry ("Token expired").
//
// A request never continues without a user ID.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Str("func", "*Handler.auth").Msg("no token provided")
			writeMessage(w, http.StatusUnauthorized, app.MsgNoTokenProvided)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Msg("malformed authorization header")
			writeMessage(w, http.StatusUnauthorized, app.MsgInvalidToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrAuthExpired) {
				writeMessage(w, http.StatusUnauthorized, app.MsgTokenExpired)
				return
			}
			writeMessage(w, http.StatusUnauthorized, app.MsgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
