package tui

import "github.com/privault/privault/internal/vault"

type listLoadedMsg struct {
	items []vault.ListedItem
	err   error
}

type revealDoneMsg struct {
	id   string
	view vault.View
	err  error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct{}
