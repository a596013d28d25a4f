// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privault Authors

// Package tui is the terminal frontend of the vault engine: a list of
// items, a detail screen for revealed content, and forms for notes and
// file uploads. All engine calls go through vault.ItemLifecycle; the TUI
// never touches ciphertext or the store directly.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/internal/vault"
)

// Run blocks until the user quits or the program fails.
func Run(ctx context.Context, lifecycle vault.ItemLifecycle, log *logger.Logger) error {
	log.Info().Msg("starting terminal ui")

	program := tea.NewProgram(newAppModel(ctx, lifecycle), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Err(err).Msg("terminal ui stopped with error")
		return err
	}

	log.Info().Msg("terminal ui closed")
	return nil
}
