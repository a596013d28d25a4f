// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privault Authors

// Package http exposes the vault engine over a loopback-only JSON API so
// local frontends can drive it without linking the engine in. The facade
// performs no authentication of its own: the envelope's session gate is the
// authority, and the listener never leaves the local host.
package http

import (
	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/internal/vault"
)

type Handler struct {
	lifecycle vault.ItemLifecycle

	logger *logger.Logger
}

func NewHandler(lifecycle vault.ItemLifecycle, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		lifecycle: lifecycle,
		logger:    logger,
	}
}
