// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/models"
)

func newTestMetaRepo(t *testing.T) (*metaRepository, sqlmock.Sqlmock) {
	db, mock, conn := newTestDB(t)
	t.Cleanup(func() { _ = conn.Close() })
	return &metaRepository{DB: db, logger: logger.Nop()}, mock
}

func TestGetMeta(t *testing.T) {
	repo, mock := newTestMetaRepo(t)

	mock.ExpectQuery("SELECT meta_value FROM usermeta WHERE user_id = \\$1 AND meta_key = \\$2").
		WithArgs(int64(4), "user_tag_terms").
		WillReturnRows(sqlmock.NewRows([]string{"meta_value"}).AddRow("a:1:{i:0;i:5;}"))

	v, ok, err := repo.GetMeta(context.Background(), 4, "user_tag_terms")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a:1:{i:0;i:5;}", v)
}

func TestGetMeta_Missing(t *testing.T) {
	repo, mock := newTestMetaRepo(t)

	mock.ExpectQuery("SELECT meta_value FROM usermeta").WillReturnError(sql.ErrNoRows)

	v, ok, err := repo.GetMeta(context.Background(), 4, "user_tag_terms")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestGetMeta_Error(t *testing.T) {
	repo, mock := newTestMetaRepo(t)

	mock.ExpectQuery("SELECT meta_value FROM usermeta").WillReturnError(errors.New("boom"))

	_, _, err := repo.GetMeta(context.Background(), 4, "user_tag_terms")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSetMeta(t *testing.T) {
	repo, mock := newTestMetaRepo(t)

	mock.ExpectExec("INSERT INTO usermeta \\(user_id,meta_key,meta_value\\) VALUES \\(\\$1,\\$2,\\$3\\) ON CONFLICT \\(user_id, meta_key\\) DO UPDATE").
		WithArgs(int64(4), "user_tag_terms", "a:0:{}").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SetMeta(context.Background(), 4, "user_tag_terms", "a:0:{}"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMeta_UnknownUser(t *testing.T) {
	repo, mock := newTestMetaRepo(t)

	mock.ExpectExec("INSERT INTO usermeta").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.SetMeta(context.Background(), 404, "user_tag_terms", "a:0:{}")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestDeleteMeta(t *testing.T) {
	repo, mock := newTestMetaRepo(t)

	mock.ExpectExec("DELETE FROM usermeta WHERE user_id = \\$1 AND meta_key = \\$2").
		WithArgs(int64(4), "user_tag_terms").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteMeta(context.Background(), 4, "user_tag_terms"))
}

func TestFindMetaByPatterns(t *testing.T) {
	repo, mock := newTestMetaRepo(t)

	mock.ExpectQuery(`SELECT user_id, meta_value FROM usermeta WHERE meta_key = \$1 AND \(meta_value LIKE \$2 ESCAPE '\\' OR meta_value LIKE \$3 ESCAPE '\\'\) ORDER BY user_id ASC`).
		WithArgs("user_tag_terms", "%i:5;%", `%s:1:"5"%`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "meta_value"}).
			AddRow(2, "a:1:{i:0;i:5;}").
			AddRow(9, `a:1:{i:0;s:1:"5";}`))

	metas, err := repo.FindMetaByPatterns(context.Background(), "user_tag_terms", []string{"i:5;", `s:1:"5"`})
	require.NoError(t, err)
	assert.Equal(t, []models.UserMeta{
		{UserID: 2, Key: "user_tag_terms", Value: "a:1:{i:0;i:5;}"},
		{UserID: 9, Key: "user_tag_terms", Value: `a:1:{i:0;s:1:"5";}`},
	}, metas)
}
