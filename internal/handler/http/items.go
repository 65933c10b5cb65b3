package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/service"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/internal/utils"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// listItems serves the decrypted in-memory snapshot. An optional "q"
// query filters by search, an optional "type" by item type; a locked
// vault yields an empty list, never an error.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var items []models.VaultItem
	switch {
	case r.URL.Query().Get("q") != "":
		items = vault.Items.SearchItems(r.URL.Query().Get("q"))
	case r.URL.Query().Get("type") != "":
		items = vault.Items.ItemsByType(models.ItemType(r.URL.Query().Get("type")))
	default:
		items = vault.Items.Items()
	}

	utils.WriteJSON(w, models.ItemListResponse{Items: items}, http.StatusOK)
}

// refreshItems reloads and decrypts the user's rows from storage.
// Records that fail to decrypt come back in the failures list; they
// never abort the fetch.
func (h *Handler) refreshItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	items, failures, err := vault.Items.FetchItems(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.refreshItems").Msg("error occured during fetching vault items")
		http.Error(w, "error fetching vault items", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ItemListResponse{Items: items, Failures: failures}, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createItem").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := vault.Items.AddItem(ctx, req.Type, req.Name, req.Data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVaultLocked):
			log.Err(err).Str("func", "*Handler.createItem").Msg("vault is locked")
			http.Error(w, "vault is locked", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidItem):
			log.Err(err).Str("func", "*Handler.createItem").Msg("invalid item rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.createItem").Msg("error occured during adding vault item")
			http.Error(w, "error adding vault item", statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	itemID := chi.URLParam(r, "itemID")

	var update models.VaultItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateItem").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := vault.Items.UpdateItem(ctx, itemID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVaultLocked):
			log.Err(err).Str("func", "*Handler.updateItem").Msg("vault is locked")
			http.Error(w, "vault is locked", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrItemNotLoaded) || errors.Is(err, store.ErrItemNotFound):
			log.Err(err).Str("func", "*Handler.updateItem").Msg("vault item not found")
			http.Error(w, "vault item not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrInvalidItem):
			log.Err(err).Str("func", "*Handler.updateItem").Msg("invalid update rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.updateItem").Msg("error occured during updating vault item")
			http.Error(w, "error updating vault item", statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vault, ok := h.vault(r)
	if !ok {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	itemID := chi.URLParam(r, "itemID")

	if err := vault.Items.DeleteItem(ctx, itemID); err != nil {
		switch {
		case errors.Is(err, service.ErrVaultLocked):
			log.Err(err).Str("func", "*Handler.deleteItem").Msg("vault is locked")
			http.Error(w, "vault is locked", http.StatusForbidden)
			return
		case errors.Is(err, store.ErrItemNotFound):
			log.Err(err).Str("func", "*Handler.deleteItem").Msg("vault item not found")
			http.Error(w, "vault item not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.deleteItem").Msg("error occured during deleting vault item")
			http.Error(w, "error deleting vault item", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
