package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Code
	}{
		{"401 maps to unauthorized", http.StatusUnauthorized, `{"message":"invalid token"}`, CodeUnauthorized},
		{"403 maps to forbidden", http.StatusForbidden, `{"message":"nope"}`, CodeForbidden},
		{"404 maps to not found", http.StatusNotFound, "", CodeNotFound},
		{"429 maps to rate limited", http.StatusTooManyRequests, "", CodeRateLimited},
		{"500 maps to server error", http.StatusInternalServerError, "", CodeServerError},
		{"503 maps to server error", http.StatusServiceUnavailable, "", CodeServerError},
		{"400 maps to unknown", http.StatusBadRequest, `{"message":"missing fields"}`, CodeUnknown},
		{"409 maps to unknown", http.StatusConflict, "", CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.status, []byte(tt.body))
			assert.Equal(t, tt.want, got.Code)
			assert.NotEmpty(t, got.Message)
		})
	}

	t.Run("server message wins over status text", func(t *testing.T) {
		got := Classify(http.StatusUnauthorized, []byte(`{"message":"invalid credentials"}`))
		assert.Equal(t, "invalid credentials", got.Message)
	})

	t.Run("garbage body falls back to status text", func(t *testing.T) {
		got := Classify(http.StatusInternalServerError, []byte("<html>oops</html>"))
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), got.Message)
	})
}

func TestRetryable(t *testing.T) {
	retryable := []Code{CodeServerError, CodeNetworkError}
	terminal := []Code{CodeUnauthorized, CodeForbidden, CodeNotFound, CodeRateLimited, CodeValidation, CodeUnknown}

	for _, code := range retryable {
		assert.True(t, (&Error{Code: code}).Retryable(), "%s should be retryable", code)
	}
	for _, code := range terminal {
		assert.False(t, (&Error{Code: code}).Retryable(), "%s should not be retried", code)
	}
}

func TestNetworkError(t *testing.T) {
	err := NetworkError(errors.New("connection refused"))
	assert.Equal(t, CodeNetworkError, err.Code)
	assert.Equal(t, "connection refused", err.Details["cause"])
}
