// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/raulshma/ever-life-vault-sub006/internal/crypto"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/service"
	"github.com/raulshma/ever-life-vault-sub006/internal/utils"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

func (h *Handler) vaultStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	hasVault, err := vault.Session.HasVault(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.vaultStatus").Msg("error occured during vault lookup")
		http.Error(w, "error looking up vault", statusFromError(err))
		return
	}

	utils.WriteJSON(w, statusResponse(vault.Session, hasVault), http.StatusOK)
}

func (h *Handler) initializeVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.InitializeVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := vault.Session.InitializeVault(ctx, req.Password); err != nil {
		var weak *service.WeakPasswordError
		switch {
		case errors.As(err, &weak):
			log.Err(err).Msg("weak master password rejected")
			http.Error(w, weak.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrVaultAlreadyInitialized):
			log.Err(err).Msg("vault already initialized")
			http.Error(w, "vault is already initialized", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("error occured during vault initialization")
			http.Error(w, "error initializing vault", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) unlockVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.UnlockVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ttl := time.Duration(req.TimeoutMinutes) * time.Minute
	if err := vault.Session.UnlockVault(ctx, req.Password, ttl); err != nil {
		switch {
		case errors.Is(err, crypto.ErrAuthenticationFailed):
			log.Err(err).Msg("master password rejected")
			http.Error(w, "invalid master password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrVaultNotInitialized):
			log.Err(err).Msg("vault is not initialized")
			http.Error(w, "vault is not initialized", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("error occured during vault unlock")
			http.Error(w, "error unlocking vault", statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, statusResponse(vault.Session, true), http.StatusOK)
}

func (h *Handler) lockVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	if err := vault.Session.LockVault(ctx); err != nil {
		log.Err(err).Msg("error occured during vault lock")
		http.Error(w, "error locking vault", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) restoreSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	restored, err := vault.Session.RestoreSession(ctx)
	if err != nil {
		log.Err(err).Msg("error occured during session restore")
		http.Error(w, "error restoring session", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.RestoreSessionResponse{Restored: restored}, http.StatusOK)
}

func (h *Handler) changeMasterPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := vault.Session.ChangeMasterPassword(ctx, req.CurrentPassword, req.NewPassword); err != nil {
		log.Err(err).Msg("master password change rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// statusResponse snapshots the session state for a status or unlock
// response. ExpiresAt is only meaningful while unlocked.
func statusResponse(session service.SessionManager, hasVault bool) models.VaultStatusResponse {
	resp := models.VaultStatusResponse{
		HasVault:    hasVault,
		IsUnlocked:  session.IsUnlocked(),
		IsUnlocking: session.State() == service.StateUnlocking,
	}
	if resp.IsUnlocked {
		resp.ExpiresAt = session.ExpiresAt().Format(time.RFC3339)
	}
	return resp
}
