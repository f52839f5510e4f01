// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal type-ahead widget: a login screen
// followed by an incremental term search that copies the filtered user list
// URL of the chosen term to the clipboard.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/models"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit the program")

const (
	pageLogin  = "login"
	pageSearch = "search"
)

type TUI struct {
	services  *service.ClientServices
	listURL   string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the terminal UI. listURL is the user list page the filter URLs
// are built from.
func New(services *service.ClientServices, listURL string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil || services.SearchService == nil {
		return nil, ErrNoClientServices
	}
	if listURL == "" {
		return nil, ErrNoListURL
	}

	return &TUI{
		services:  services,
		listURL:   listURL,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the login screen and, after a successful login, the term search.
// It blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageLogin:  NewLoginModel(ctx, t.services.AuthService),
		pageSearch: NewSearchModel(ctx, t.services.SearchService, t.listURL),
	}

	root := NewRootModel(pages, pageLogin, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal program failed")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
