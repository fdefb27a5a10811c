package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetLogger(restyLogger{logger})
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		return mapHTTPError(resp)
	})

	return &httpServerAdapter{
		client: client,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

// authorized builds a request carrying token. An empty token never reaches
// the network.
func (h *httpServerAdapter) authorized(ctx context.Context, token string) (*resty.Request, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrAuthMissing
	}
	return h.request(ctx).SetAuthToken(token), nil
}

// do sends req. Non-2xx statuses arrive already mapped by the response
// middleware; anything else is a transport failure.
func (h *httpServerAdapter) do(req *resty.Request, method, path, op string) error {
	resp, err := req.Execute(method, path)
	if err == nil {
		return nil
	}

	if isStatusError(err) {
		h.logger.Debug().Err(err).Str("func", "*httpServerAdapter."+op).Int("status", resp.StatusCode()).Msg("server rejected request")
		return err
	}

	h.logger.Err(err).Str("func", "*httpServerAdapter."+op).Msg("request failed")
	return fmt.Errorf("%s request: %w: %w", op, ErrServerUnavailable, err)
}

func (h *httpServerAdapter) SignUp(ctx context.Context, creds models.Credentials) (string, error) {
	var result models.SignUpResponse

	req := h.request(ctx).SetBody(creds).SetResult(&result)
	if err := h.do(req, resty.MethodPost, "/api/auth/signup", "SignUp"); err != nil {
		return "", err
	}

	return result.ID, nil
}

func (h *httpServerAdapter) KeyParams(ctx context.Context, email string) ([]byte, error) {
	var result models.KeyParamsResponse

	req := h.request(ctx).SetBody(models.KeyParamsRequest{Email: email}).SetResult(&result)
	if err := h.do(req, resty.MethodPost, "/api/auth/params", "KeyParams"); err != nil {
		return nil, err
	}
	if len(result.KeySalt) == 0 {
		return nil, fmt.Errorf("%w: empty key salt", ErrUnexpectedResponse)
	}

	return result.KeySalt, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	var result models.Token

	req := h.request(ctx).SetBody(creds).SetResult(&result)
	if err := h.do(req, resty.MethodPost, "/api/auth/login", "Login"); err != nil {
		return models.Token{}, err
	}
	if result.IsZero() {
		return models.Token{}, fmt.Errorf("%w: empty token", ErrUnexpectedResponse)
	}

	return result, nil
}

func (h *httpServerAdapter) CreateEntry(ctx context.Context, token, ciphertext string) (string, error) {
	req, err := h.authorized(ctx, token)
	if err != nil {
		return "", err
	}

	var result models.EntryCreatedResponse
	req.SetBody(models.EntryRequest{Ciphertext: ciphertext}).SetResult(&result)
	if err = h.do(req, resty.MethodPost, "/api/vault/", "CreateEntry"); err != nil {
		return "", err
	}

	return result.ID, nil
}

func (h *httpServerAdapter) ListEntries(ctx context.Context, token string, filter models.ListFilter) ([]models.VaultEntry, error) {
	req, err := h.authorized(ctx, token)
	if err != nil {
		return nil, err
	}

	var result []models.EntryResponse
	req.SetQueryParams(filterParams(filter)).SetResult(&result)
	if err = h.do(req, resty.MethodGet, "/api/vault/", "ListEntries"); err != nil {
		return nil, err
	}

	entries := make([]models.VaultEntry, 0, len(result))
	for _, e := range result {
		entries = append(entries, models.VaultEntry{ID: e.ID, Ciphertext: e.Ciphertext, CreatedAt: e.CreatedAt})
	}
	return entries, nil
}

func (h *httpServerAdapter) UpdateEntry(ctx context.Context, token, id, ciphertext string) error {
	req, err := h.authorized(ctx, token)
	if err != nil {
		return err
	}

	req.SetPathParam("id", id).SetBody(models.EntryRequest{Ciphertext: ciphertext})
	return h.do(req, resty.MethodPut, "/api/vault/{id}", "UpdateEntry")
}

func (h *httpServerAdapter) DeleteEntry(ctx context.Context, token, id string) error {
	req, err := h.authorized(ctx, token)
	if err != nil {
		return err
	}

	req.SetPathParam("id", id)
	return h.do(req, resty.MethodDelete, "/api/vault/{id}", "DeleteEntry")
}

func filterParams(filter models.ListFilter) map[string]string {
	params := make(map[string]string)
	if filter.Order != "" {
		params["order"] = string(filter.Order)
	}
	if filter.CreatedAfter != nil {
		params["after"] = filter.CreatedAfter.UTC().Format(time.RFC3339Nano)
	}
	if filter.CreatedBefore != nil {
		params["before"] = filter.CreatedBefore.UTC().Format(time.RFC3339Nano)
	}
	if filter.Limit > 0 {
		params["limit"] = strconv.FormatUint(filter.Limit, 10)
	}
	return params
}
