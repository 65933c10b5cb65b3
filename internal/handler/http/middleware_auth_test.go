// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/utils"
)

// ---- Helpers ----

func newAuthTestHandler() *Handler {
	return &Handler{
		cfg:    testAppConfig(),
		logger: logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// signedToken mints a real token with arbitrary parameters so the table
// below can produce expired, foreign-issuer and wrong-key variants.
func signedToken(t *testing.T, issuer string, duration time.Duration, signKey string) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(issuer, testUserID, duration, signKey)
	require.NoError(t, err)
	return token.SignedString
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts use the second part",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     func(t *testing.T) string
		expectedStatus int
		nextCalled     bool
		wantBody       string
	}{
		{
			name:           "empty Authorization header yields 401",
			authHeader:     func(t *testing.T) string { return "" },
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
			wantBody:       ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:           "header without space yields 401",
			authHeader:     func(t *testing.T) string { return "BearerTokenWithoutSpace" },
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
			wantBody:       ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:           "garbage token yields 401",
			authHeader:     func(t *testing.T) string { return "Bearer not-a-jwt-at-all" },
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
			wantBody:       http.StatusText(http.StatusUnauthorized),
		},
		{
			name: "expired token yields 401 with specific error",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, testIssuer, -time.Minute, testSignKey)
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
			wantBody:       "token is expired",
		},
		{
			name: "token signed with a different key yields 401",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, testIssuer, time.Hour, "some-other-key")
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
			wantBody:       http.StatusText(http.StatusUnauthorized),
		},
		{
			name: "token from a foreign issuer yields 401",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, "someone-else", time.Hour, testSignKey)
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
			wantBody:       http.StatusText(http.StatusUnauthorized),
		},
		{
			name: "valid token calls next",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, testIssuer, time.Hour, testSignKey)
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthTestHandler()

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader(t), next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}

// ---- UserID lands in the context ----

func TestAuth_UserIDInContext(t *testing.T) {
	h := newAuthTestHandler()

	var gotUserID any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value(utils.UserIDCtxKey)
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, validAuthHeader(t), next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testUserID, gotUserID)
}

// ---- Original request context is not mutated ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newAuthTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", validAuthHeader(t))
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}
