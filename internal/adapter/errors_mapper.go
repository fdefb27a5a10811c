package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = []error{
	ErrSessionExpired,
	ErrBadRequest,
	ErrNotFound,
	ErrConflict,
	ErrServerUnavailable,
	ErrUnexpectedResponse,
}

func isStatusError(err error) bool {
	for _, target := range statusErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp)

	switch status := resp.StatusCode(); {
	case status == http.StatusUnauthorized:
		return &SessionExpiredError{Message: msg}
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServerUnavailable, msg)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, status, msg)
	}
}

// errorMessage prefers the "message" field of a JSON error body and falls
// back to the raw body or the status text.
func errorMessage(resp *resty.Response) string {
	body := resp.Body()

	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode())
}
