// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-user-tags/internal/config"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/utils"
	"github.com/MKhiriev/go-user-tags/models"
)

// Forgery token actions.
const (
	// NonceActionSearch guards the type-ahead search action.
	NonceActionSearch = "aut_ajax_nonce"

	nonceLength = 10
)

// ProfileNonceAction is the forgery token action of the profile form of
// userID.
func ProfileNonceAction(userID int64) string {
	return "update-user_" + strconv.FormatInt(userID, 10)
}

// nonceService derives tokens from an HMAC over the current half-lifetime
// tick, the action, and the actor's user and session ids.
type nonceService struct {
	key      string
	lifetime time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

// NewNonceService constructs a [NonceService] from the application settings.
func NewNonceService(cfg config.App, logger *logger.Logger) NonceService {
	logger.Debug().Msg("creating nonce service")

	lifetime := cfg.NonceLifetime
	if lifetime <= 0 {
		lifetime = config.DefaultNonceLifetime
	}

	return &nonceService{
		key:      cfg.NonceKey,
		lifetime: lifetime,
		now:      time.Now,
		logger:   logger,
	}
}

// Create implements [NonceService].
func (n *nonceService) Create(actor *models.Actor, action string) string {
	return n.token(n.tick(), actor, action)
}

// Verify implements [NonceService]. Tokens of the current and the previous
// tick are accepted.
func (n *nonceService) Verify(actor *models.Actor, action, token string) bool {
	if token == "" {
		return false
	}

	tick := n.tick()
	if utils.EqualHashes(token, n.token(tick, actor, action)) {
		return true
	}
	return utils.EqualHashes(token, n.token(tick-1, actor, action))
}

// tick is ceil(now / (lifetime/2)).
func (n *nonceService) tick() int64 {
	half := int64(n.lifetime / 2)
	now := n.now().UnixNano()
	return (now + half - 1) / half
}

func (n *nonceService) token(tick int64, actor *models.Actor, action string) string {
	var (
		userID    int64
		sessionID string
	)
	if actor != nil {
		userID = actor.UserID
		sessionID = actor.SessionID
	}

	data := strconv.FormatInt(tick, 10) + "|" + action + "|" + strconv.FormatInt(userID, 10) + "|" + sessionID
	return utils.HashString(data, n.key)[:nonceLength]
}
