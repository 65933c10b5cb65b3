// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

// Package adapter provides the remote REST row store: implementations of
// the store repository interfaces that keep vault rows in a hosted HTTP
// service instead of a directly attached database.
//
// The adapter only moves ciphertext and session metadata; nothing at this
// layer can decrypt a record. Row-level outcomes are mapped onto the same
// sentinel errors the SQL repositories return, so the service layer
// cannot tell the backends apart. Transport-level failures are mapped
// from HTTP status codes by mapHTTPError onto the sentinels in errors.go.
package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
)

// NewRestStorages constructs a [store.Storages] aggregate backed by the
// remote REST row store at cfg.BaseURL. The base URL is normalised and
// validated; cfg.APIKey, when set, is attached to every request as a
// bearer token.
func NewRestStorages(cfg config.Rest, logger *logger.Logger) (*store.Storages, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid rest base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	logger.Info().
		Str("func", "NewRestStorages").
		Str("base_url", baseURL).
		Msg("using remote rest row store")

	return &store.Storages{
		Items:    &restItemRepository{client: client},
		Configs:  &restConfigRepository{client: client},
		Sessions: &restSessionRepository{client: client},
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
