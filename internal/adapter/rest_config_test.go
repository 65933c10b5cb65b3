// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// ── GetConfig ────────────────────────────────────────────────────────────────

func TestRestConfig_GetConfig_Success(t *testing.T) {
	want := models.VaultConfig{UserID: "user-1", Salt: "c29tZXNhbHQ="}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/vault/config", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	storages := newTestStorages(t, srv.URL)
	got, err := storages.Configs.GetConfig(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Salt, got.Salt)
}

func TestRestConfig_GetConfig_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("vault not initialized"))
	}))
	defer srv.Close()

	storages := newTestStorages(t, srv.URL)
	_, err := storages.Configs.GetConfig(context.Background(), "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrConfigNotFound)
}

// ── SaveConfig ───────────────────────────────────────────────────────────────

func TestRestConfig_SaveConfig_Success(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/vault/config", r.URL.Path)

		var received models.VaultConfig
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "user-1", received.UserID)
		assert.Equal(t, "c29tZXNhbHQ=", received.Salt)

		received.CreatedAt = created
		received.UpdatedAt = created

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer srv.Close()

	storages := newTestStorages(t, srv.URL)
	cfg := models.VaultConfig{UserID: "user-1", Salt: "c29tZXNhbHQ="}

	err := storages.Configs.SaveConfig(context.Background(), &cfg)

	require.NoError(t, err)
	assert.Equal(t, created, cfg.CreatedAt)
	assert.Equal(t, created, cfg.UpdatedAt)
}

func TestRestConfig_SaveConfig_AlreadyExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("vault already initialized"))
	}))
	defer srv.Close()

	storages := newTestStorages(t, srv.URL)
	err := storages.Configs.SaveConfig(context.Background(), &models.VaultConfig{UserID: "user-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrConfigAlreadyExists)
}
