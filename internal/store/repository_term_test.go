// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/models"
)

var testTermColumns = []string{"term_id", "taxonomy", "name", "slug", "created_at"}

func newTestTermRepo(t *testing.T) (*termRepository, sqlmock.Sqlmock) {
	db, mock, conn := newTestDB(t)
	t.Cleanup(func() { _ = conn.Close() })
	return &termRepository{DB: db, logger: logger.Nop()}, mock
}

func TestCreateTerm_Success(t *testing.T) {
	repo, mock := newTestTermRepo(t)

	mock.ExpectQuery("INSERT INTO terms").
		WithArgs("user_tag", "Go Developers", "go developers", "go-developers", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"term_id"}).AddRow(5))

	term, err := repo.CreateTerm(context.Background(), models.Term{
		Taxonomy: "user_tag",
		Name:     "Go Developers",
		Slug:     "go-developers",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), term.TermID)
	assert.False(t, term.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTerm_SlugTakenRetriesWithSuffix(t *testing.T) {
	repo, mock := newTestTermRepo(t)

	mock.ExpectQuery("INSERT INTO terms").
		WithArgs("user_tag", "Go", "go", "go", sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectQuery("INSERT INTO terms").
		WithArgs("user_tag", "Go", "go", "go-2", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"term_id"}).AddRow(6))

	term, err := repo.CreateTerm(context.Background(), models.Term{Taxonomy: "user_tag", Name: "Go", Slug: "go"})
	require.NoError(t, err)
	assert.Equal(t, "go-2", term.Slug)
	assert.Equal(t, int64(6), term.TermID)
}

func TestCreateTerm_SlugExhausted(t *testing.T) {
	repo, mock := newTestTermRepo(t)

	for range maxSlugAttempts {
		mock.ExpectQuery("INSERT INTO terms").WillReturnError(pgError(pgerrcode.UniqueViolation))
	}

	_, err := repo.CreateTerm(context.Background(), models.Term{Taxonomy: "user_tag", Name: "Go", Slug: "go"})
	assert.ErrorIs(t, err, ErrTermAlreadyExists)
}

func TestCreateTerm_DBError(t *testing.T) {
	repo, mock := newTestTermRepo(t)

	mock.ExpectQuery("INSERT INTO terms").WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateTerm(context.Background(), models.Term{Taxonomy: "user_tag", Name: "Go", Slug: "go"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUpdateTerm(t *testing.T) {
	repo, mock := newTestTermRepo(t)
	now := time.Now()

	mock.ExpectExec("UPDATE terms SET name = \\$1, name_folded = \\$2, slug = \\$3 WHERE taxonomy = \\$4 AND term_id = \\$5").
		WithArgs("Rust", "rust", "rust", "user_tag", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM terms").
		WillReturnRows(sqlmock.NewRows(testTermColumns).AddRow(5, "user_tag", "Rust", "rust", now))

	term, err := repo.UpdateTerm(context.Background(), models.Term{TermID: 5, Taxonomy: "user_tag", Name: "Rust", Slug: "rust"})
	require.NoError(t, err)
	assert.Equal(t, "Rust", term.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTerm_NotFound(t *testing.T) {
	repo, mock := newTestTermRepo(t)

	mock.ExpectExec("UPDATE terms").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateTerm(context.Background(), models.Term{TermID: 99, Taxonomy: "user_tag", Name: "X", Slug: "x"})
	assert.ErrorIs(t, err, ErrTermNotFound)
}

func TestUpdateTerm_SlugTaken(t *testing.T) {
	repo, mock := newTestTermRepo(t)

	mock.ExpectExec("UPDATE terms").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateTerm(context.Background(), models.Term{TermID: 5, Taxonomy: "user_tag", Name: "X", Slug: "x"})
	assert.ErrorIs(t, err, ErrTermAlreadyExists)
}

func TestDeleteTerm(t *testing.T) {
	repo, mock := newTestTermRepo(t)

	mock.ExpectExec("DELETE FROM terms WHERE taxonomy = \\$1 AND term_id = \\$2").
		WithArgs("user_tag", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM terms").
		WithArgs("user_tag", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteTerm(context.Background(), "user_tag", 5))
	assert.ErrorIs(t, repo.DeleteTerm(context.Background(), "user_tag", 5), ErrTermNotFound)
}

func TestGetTerm_NotFound(t *testing.T) {
	repo, mock := newTestTermRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM terms").
		WillReturnRows(sqlmock.NewRows(testTermColumns))

	_, err := repo.GetTerm(context.Background(), "user_tag", 42)
	assert.ErrorIs(t, err, ErrTermNotFound)
}

func TestListTerms_SearchWindow(t *testing.T) {
	repo, mock := newTestTermRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT term_id, taxonomy, name, slug, created_at FROM terms WHERE \(taxonomy = \$1 AND name_folded LIKE \$2 ESCAPE '\\'\) ORDER BY name ASC, term_id ASC LIMIT 10 OFFSET 10`).
		WithArgs("user_tag", `%50\%%`).
		WillReturnRows(sqlmock.NewRows(testTermColumns).
			AddRow(3, "user_tag", "50% off", "50-off", now))

	terms, err := repo.ListTerms(context.Background(), models.TermQuery{
		Taxonomy: "user_tag",
		Search:   "50%",
		Limit:    10,
		Offset:   10,
	})
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "50% off", terms[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTerms_QueryError(t *testing.T) {
	repo, mock := newTestTermRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM terms").WillReturnError(errors.New("boom"))

	_, err := repo.ListTerms(context.Background(), models.TermQuery{Taxonomy: "user_tag"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCountTerms(t *testing.T) {
	repo, mock := newTestTermRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM terms WHERE \(taxonomy = \$1\)`).
		WithArgs("user_tag").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))

	n, err := repo.CountTerms(context.Background(), models.TermQuery{Taxonomy: "user_tag", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 21, n)
}
