// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/models"
)

func newTestRoleRepo(t *testing.T) (*roleRepository, sqlmock.Sqlmock) {
	db, mock, conn := newTestDB(t)
	t.Cleanup(func() { _ = conn.Close() })
	return &roleRepository{DB: db, logger: logger.Nop()}, mock
}

func TestRoleExists(t *testing.T) {
	repo, mock := newTestRoleRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM roles WHERE name = \\$1").
		WithArgs("administrator").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM roles").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.RoleExists(context.Background(), "administrator")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.RoleExists(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGrantCapabilities(t *testing.T) {
	repo, mock := newTestRoleRepo(t)

	mock.ExpectExec("INSERT INTO role_capabilities \\(role,capability\\) VALUES \\(\\$1,\\$2\\),\\(\\$3,\\$4\\) ON CONFLICT \\(role, capability\\) DO NOTHING").
		WithArgs("administrator", "manage_user_tags", "administrator", "assign_user_tags").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.GrantCapabilities(context.Background(), "administrator",
		[]models.Capability{"manage_user_tags", "assign_user_tags"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantCapabilities_NothingToGrant(t *testing.T) {
	repo, mock := newTestRoleRepo(t)

	require.NoError(t, repo.GrantCapabilities(context.Background(), "administrator", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantCapabilities_UnknownRole(t *testing.T) {
	repo, mock := newTestRoleRepo(t)

	mock.ExpectExec("INSERT INTO role_capabilities").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.GrantCapabilities(context.Background(), "ghost", []models.Capability{"x"})
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestGetCapabilities(t *testing.T) {
	repo, mock := newTestRoleRepo(t)

	mock.ExpectQuery("SELECT capability FROM role_capabilities WHERE role = \\$1 ORDER BY capability ASC").
		WithArgs("administrator").
		WillReturnRows(sqlmock.NewRows([]string{"capability"}).AddRow("edit_users").AddRow("list_users"))

	caps, err := repo.GetCapabilities(context.Background(), "administrator")
	require.NoError(t, err)
	assert.Equal(t, []models.Capability{models.CapEditUsers, models.CapListUsers}, caps)
}
