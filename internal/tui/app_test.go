// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-tags/internal/adapter"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/mock"
	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/models"
)

func newTestRoot(t *testing.T) (RootModel, *mock.MockClientAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	search := mock.NewMockClientSearchService(ctrl)

	pages := map[string]tea.Model{
		pageLogin:  NewLoginModel(context.Background(), auth),
		pageSearch: NewSearchModel(context.Background(), search, testListURL),
	}
	return NewRootModel(pages, pageLogin, models.NewAppBuildInfo("v1.2.3", "", "abc")), auth
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, testListURL, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoClientServices)

	services := &service.ClientServices{
		AuthService:   mock.NewMockClientAuthService(gomock.NewController(t)),
		SearchService: mock.NewMockClientSearchService(gomock.NewController(t)),
	}
	_, err = New(services, "", models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoListURL)

	ui, err := New(services, testListURL, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, testListURL, ui.listURL)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, updated.(RootModel).quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyF1})
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "v1.2.3")
	assert.Contains(t, root.View(), "N/A")

	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = updated.(RootModel)
	assert.NotContains(t, root.View(), "v1.2.3")
}

func TestRootModel_SuccessfulLoginOpensSearch(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, cmd := root.Update(LoginResult{User: models.User{UserID: 1, Login: "admin"}})
	root = updated.(RootModel)
	require.NotNil(t, cmd)
	assert.Equal(t, "admin", root.user.Login)

	nav := cmd()
	assert.Equal(t, NavigateTo{Page: pageSearch}, nav)

	updated, _ = root.Update(nav)
	root = updated.(RootModel)
	assert.IsType(t, &SearchModel{}, root.current)
}

func TestRootModel_NavigateUnknownPage(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, cmd := root.Update(NavigateTo{Page: "missing"})

	assert.Nil(t, cmd)
	assert.IsType(t, &LoginModel{}, updated.(RootModel).current)
}

func TestLoginModel_RequiresCredentials(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "Login and password are required", m.errMsg)
}

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewLoginModel(context.Background(), auth)
	m.inputs[0].SetValue(" admin ")
	m.inputs[1].SetValue("secret")

	auth.EXPECT().
		Login(gomock.Any(), "admin", "secret").
		Return(models.User{UserID: 1, Login: "admin"}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	msg := cmd()
	assert.Equal(t, LoginResult{User: models.User{UserID: 1, Login: "admin"}}, msg)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "second enter while submitting")
}

func TestLoginModel_FailureMessage(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	m.submitting = true

	m.Update(LoginResult{Err: errors.Join(service.ErrLoginOnServer, adapter.ErrUnauthorized)})

	assert.False(t, m.submitting)
	assert.Equal(t, loginFailedMessage, m.errMsg)
	assert.Contains(t, m.View(), loginFailedMessage)
}

func TestLoginModel_TabMovesFocus(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, m.focus)
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "permission denied", err: adapter.ErrPermissionDenied, want: permissionDeniedMessage},
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: loginFailedMessage},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: serverUnavailable},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "äöü...", fitText("äöüßäöüß", 6))
}
