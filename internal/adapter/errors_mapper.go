package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/fitiplus/models"
)

// mapTransportError classifies an error returned by resty before any
// response was read.
func mapTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &APIError{kind: ErrTimeout, cause: err}
	}
	return &APIError{kind: ErrNetwork, cause: err}
}

// mapHTTPError returns nil for 2xx responses.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), Message: serverMessage(resp.Body())}
	if resp.StatusCode() == http.StatusUnauthorized {
		apiErr.kind = ErrUnauthorized
	} else {
		apiErr.kind = ErrServer
	}
	return apiErr
}

// serverMessage extracts "message", then "error", then falls back to the
// trimmed body text. HTML error pages yield "".
func serverMessage(body []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		if er.Message != "" {
			return er.Message
		}
		if er.Error != "" {
			return er.Error
		}
		return ""
	}

	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, "<") {
		return ""
	}
	return text
}

func malformed(err error) error {
	return &APIError{kind: ErrMalformedResponse, cause: err}
}
