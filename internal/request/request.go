// Package request holds the HTTP plumbing shared by the storage and
// vault clients: header construction and error-body parsing.
package request

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/vcodx/automizor"
)

// BaseURL normalizes a host into a base URL. A bare host gets an https
// scheme; trailing slashes are stripped so paths can be appended.
func BaseURL(host string) string {
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}
	return strings.TrimRight(host, "/")
}

// Headers builds the common headers sent on every API request.
func Headers(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Token "+token)
	h.Set("User-Agent", "automizor/"+automizor.Version)
	return h
}

// NewID returns a fresh request identifier for the X-Request-Id header.
func NewID() string {
	return uuid.NewString()
}

// ErrorDetail extracts the best-available diagnostic from an error
// response body. It is an explicit two-step parse: first a structured
// decode of the platform's error shapes ({"detail": ...} or
// {"errors": [...]}), then the trimmed raw body, then the HTTP status
// text when the body is empty.
func ErrorDetail(statusCode int, body []byte) string {
	var payload struct {
		Detail string   `json:"detail"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if len(payload.Errors) > 0 {
			return strings.Join(payload.Errors, "; ")
		}
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return http.StatusText(statusCode)
}
