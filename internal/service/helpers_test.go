// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/mock"
	"github.com/MKhiriev/go-user-tags/internal/serial"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStorage = errors.New("storage error")

// memMeta is an in-memory store.MetaRepository. Pattern search is a plain
// substring scan, the same preselection the SQL backends perform.
type memMeta struct {
	mu   sync.Mutex
	rows map[int64]map[string]string
}

func newMemMeta() *memMeta {
	return &memMeta{rows: make(map[int64]map[string]string)}
}

func (m *memMeta) GetMeta(_ context.Context, userID int64, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[userID][key]
	return v, ok, nil
}

func (m *memMeta) SetMeta(_ context.Context, userID int64, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows[userID] == nil {
		m.rows[userID] = make(map[string]string)
	}
	m.rows[userID][key] = value
	return nil
}

func (m *memMeta) DeleteMeta(_ context.Context, userID int64, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows[userID], key)
	return nil
}

func (m *memMeta) FindMetaByPatterns(_ context.Context, key string, patterns []string) ([]models.UserMeta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.UserMeta
	for userID, kv := range m.rows {
		v, ok := kv[key]
		if !ok {
			continue
		}
		for _, p := range patterns {
			if strings.Contains(v, p) {
				out = append(out, models.UserMeta{UserID: userID, Key: key, Value: v})
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (m *memMeta) has(userID int64, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[userID][key]
	return ok
}

var _ store.MetaRepository = (*memMeta)(nil)

func adminActor() *models.Actor {
	tax := UserTagTaxonomy()
	caps := map[models.Capability]bool{
		models.CapEditUsers: true,
		models.CapListUsers: true,
	}
	for _, c := range tax.Capabilities.All() {
		caps[c] = true
	}
	return &models.Actor{UserID: 1, Login: "admin", Role: models.RoleAdministrator, SessionID: "s-1", Capabilities: caps}
}

func subscriberActor(userID int64) *models.Actor {
	return &models.Actor{UserID: userID, Login: "sub", Role: "subscriber", SessionID: "s-2", Capabilities: map[models.Capability]bool{}}
}

func newTestTagRepository(t *testing.T) (*tagRepository, *memMeta, *mock.MockTermStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	meta := newMemMeta()
	terms := mock.NewMockTermStore(ctrl)
	return &tagRepository{taxonomy: UserTagTaxonomy(), meta: meta, terms: terms, logger: logger.Nop()}, meta, terms
}

func encodeIDs(t *testing.T, ids []int64) string {
	t.Helper()
	blob, err := serial.EncodeIDs(ids)
	require.NoError(t, err)
	return blob
}
