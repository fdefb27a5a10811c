package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, "*Handler.signUp", err)
		return
	}

	user, err := h.services.AuthService.SignUp(r.Context(), creds)
	if err != nil {
		writeError(w, r, "*Handler.signUp", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.SignUpResponse{ID: user.ID}, http.StatusCreated)
}

func (h *Handler) keyParams(w http.ResponseWriter, r *http.Request) {
	var req models.KeyParamsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.keyParams", err)
		return
	}

	salt, err := h.services.AuthService.KeyParams(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, "*Handler.keyParams", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.KeyParamsResponse{KeySalt: salt}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, token, http.StatusOK)
}
