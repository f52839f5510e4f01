// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/text/cases"

	"github.com/MKhiriev/go-user-tags/models"
)

const (
	termsTable           = "terms"
	usersTable           = "users"
	usermetaTable        = "usermeta"
	rolesTable           = "roles"
	roleCapabilitesTable = "role_capabilities"
)

var (
	termColumns = []string{"term_id", "taxonomy", "name", "slug", "created_at"}
	userColumns = []string{"user_id", "login", "display_name", "email", "role", "auth_hash", "created_at"}
)

// likeEscape is the ESCAPE clause matching escapeLike.
const likeEscape = ` ESCAPE '\'`

// foldName returns the case-folded form of a term name stored in
// name_folded and used for substring search.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// termFilter builds the WHERE conditions shared by term listing and counting.
func termFilter(query models.TermQuery) sq.And {
	where := sq.And{sq.Eq{"taxonomy": query.Taxonomy}}

	if query.Search != "" {
		pattern := "%" + escapeLike(foldName(query.Search)) + "%"
		where = append(where, sq.Expr("name_folded LIKE ?"+likeEscape, pattern))
	}

	if query.IDs != nil {
		where = append(where, sq.Eq{"term_id": query.IDs})
	}

	return where
}

func buildListTermsQuery(b sq.StatementBuilderType, query models.TermQuery) (string, []any, error) {
	sel := b.Select(termColumns...).
		From(termsTable).
		Where(termFilter(query)).
		OrderBy("name ASC", "term_id ASC")

	if query.Limit > 0 {
		sel = sel.Limit(query.Limit)
	}
	if query.Offset > 0 {
		sel = sel.Offset(query.Offset)
	}

	return wrapBuild(sel.ToSql())
}

func buildCountTermsQuery(b sq.StatementBuilderType, query models.TermQuery) (string, []any, error) {
	return wrapBuild(b.Select("COUNT(*)").
		From(termsTable).
		Where(termFilter(query)).
		ToSql())
}

func buildInsertTermQuery(b sq.StatementBuilderType, term models.Term) (string, []any, error) {
	return wrapBuild(b.Insert(termsTable).
		Columns("taxonomy", "name", "name_folded", "slug", "created_at").
		Values(term.Taxonomy, term.Name, foldName(term.Name), term.Slug, term.CreatedAt).
		Suffix("RETURNING term_id").
		ToSql())
}

func buildUpdateTermQuery(b sq.StatementBuilderType, term models.Term) (string, []any, error) {
	return wrapBuild(b.Update(termsTable).
		Set("name", term.Name).
		Set("name_folded", foldName(term.Name)).
		Set("slug", term.Slug).
		Where("taxonomy = ? AND term_id = ?", term.Taxonomy, term.TermID).
		ToSql())
}

func buildFindMetaQuery(b sq.StatementBuilderType, key string, patterns []string) (string, []any, error) {
	matches := make(sq.Or, 0, len(patterns))
	for _, p := range patterns {
		matches = append(matches, sq.Expr("meta_value LIKE ?"+likeEscape, "%"+escapeLike(p)+"%"))
	}

	return wrapBuild(b.Select("user_id", "meta_value").
		From(usermetaTable).
		Where(sq.Eq{"meta_key": key}).
		Where(matches).
		OrderBy("user_id ASC").
		ToSql())
}

func buildUpsertMetaQuery(b sq.StatementBuilderType, userID int64, key, value string) (string, []any, error) {
	return wrapBuild(b.Insert(usermetaTable).
		Columns("user_id", "meta_key", "meta_value").
		Values(userID, key, value).
		Suffix("ON CONFLICT (user_id, meta_key) DO UPDATE SET meta_value = excluded.meta_value").
		ToSql())
}

func userFilter(query models.UserListQuery) sq.Sqlizer {
	if query.Include == nil {
		return sq.And{}
	}
	return sq.Eq{"user_id": query.Include}
}

func buildListUsersQuery(b sq.StatementBuilderType, query models.UserListQuery) (string, []any, error) {
	sel := b.Select(userColumns...).
		From(usersTable).
		Where(userFilter(query)).
		OrderBy("login ASC", "user_id ASC")

	if query.PerPage > 0 {
		page := max(query.Page, 1)
		sel = sel.Limit(uint64(query.PerPage)).Offset(uint64((page - 1) * query.PerPage))
	}

	return wrapBuild(sel.ToSql())
}

func buildCountUsersQuery(b sq.StatementBuilderType, query models.UserListQuery) (string, []any, error) {
	return wrapBuild(b.Select("COUNT(*)").
		From(usersTable).
		Where(userFilter(query)).
		ToSql())
}

func buildGrantQuery(b sq.StatementBuilderType, role string, caps []models.Capability) (string, []any, error) {
	ins := b.Insert(roleCapabilitesTable).Columns("role", "capability")
	for _, c := range caps {
		ins = ins.Values(role, string(c))
	}

	return wrapBuild(ins.Suffix("ON CONFLICT (role, capability) DO NOTHING").ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
