// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/store"
	"github.com/MKhiriev/fitiplus/internal/utils"
	"github.com/MKhiriev/fitiplus/models"
)

// Store is the single source of truth for who is logged in.
//
// Identity and access token are set together or not at all. Every mutation
// writes through to the key-value store before returning; a write failure is
// logged and the in-memory state is kept.
//
// generation increases on every Set and Clear. Writers that resolve after a
// network round trip (refresh, profile fetch) pass the generation they
// started from, and their update is dropped if the session was replaced or
// cleared in the meantime.
type Store struct {
	mu           sync.RWMutex
	identity     *models.Identity
	token        string
	refreshToken string
	generation   uint64

	kv     store.KeyValueStore
	logger *logger.Logger
}

// NewStore returns an empty store over kv. Call [Store.Load] to restore a
// persisted session.
func NewStore(kv store.KeyValueStore, log *logger.Logger) *Store {
	return &Store{kv: kv, logger: log}
}

// Load replaces the in-memory state with what is persisted. Partial or
// unparseable data is wiped from storage. Load never fails; on any problem
// the store ends up unauthenticated.
func (s *Store) Load(ctx context.Context) {
	identity, token, refresh, err := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++

	if err != nil {
		s.identity, s.token, s.refreshToken = nil, "", ""
		s.logger.Warn().Err(err).Str("func", "Store.Load").Msg("discarding persisted session")
		s.deleteAll(ctx, "Store.Load")
		return
	}

	s.identity, s.token, s.refreshToken = identity, token, refresh
	if identity != nil {
		s.logger.Debug().Str("func", "Store.Load").Str("user_id", identity.ID).Msg("session restored")
	}
}

// read returns a nil identity and no error when nothing is stored at all.
func (s *Store) read(ctx context.Context) (*models.Identity, string, string, error) {
	rawIdentity, identityOK, err := s.get(ctx, KeyIdentity)
	if err != nil {
		return nil, "", "", err
	}
	token, tokenOK, err := s.get(ctx, KeyToken)
	if err != nil {
		return nil, "", "", err
	}
	refresh, _, err := s.get(ctx, KeyRefreshToken)
	if err != nil {
		return nil, "", "", err
	}

	if !identityOK && !tokenOK {
		if refresh != "" {
			return nil, "", "", fmt.Errorf("%w: refresh token without session", ErrCorruptLocalState)
		}
		return nil, "", "", nil
	}
	if !identityOK || !tokenOK || token == "" {
		return nil, "", "", fmt.Errorf("%w: partial session", ErrCorruptLocalState)
	}

	var identity models.Identity
	if err = json.Unmarshal([]byte(rawIdentity), &identity); err != nil {
		return nil, "", "", fmt.Errorf("%w: %w", ErrCorruptLocalState, err)
	}
	if !identity.Valid() {
		return nil, "", "", fmt.Errorf("%w: identity without id", ErrCorruptLocalState)
	}

	return &identity, token, refresh, nil
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.kv.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		// unreadable storage is treated as corrupt and cleared
		return "", false, fmt.Errorf("%w: %w", ErrCorruptLocalState, err)
	}
	return v, true, nil
}

// IsAuthenticated reports whether both an identity and a token are held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.token != ""
}

// Current returns a copy of the identity, or nil.
func (s *Store) Current() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Clone()
}

// Token returns the access token or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// RefreshToken returns the refresh token or "".
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Generation returns the current session generation.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Snapshot returns a consistent copy of the whole session.
func (s *Store) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Session{
		Identity:     s.identity.Clone(),
		AccessToken:  s.token,
		RefreshToken: s.refreshToken,
		Offline:      utils.IsOfflineToken(s.token),
	}
}

// Set replaces the whole session. An empty refreshToken removes any stored
// one.
func (s *Store) Set(ctx context.Context, identity *models.Identity, token, refreshToken string) error {
	if identity == nil || !identity.Valid() || token == "" {
		return ErrInvalidSession
	}
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = identity.Clone()
	s.token = token
	s.refreshToken = refreshToken
	s.generation++

	s.put(ctx, "Store.Set", KeyIdentity, string(raw))
	s.put(ctx, "Store.Set", KeyToken, token)
	s.putOrDelete(ctx, "Store.Set", KeyRefreshToken, refreshToken)

	return nil
}

// SetTokens replaces the tokens of the current session if gen is still
// current. An empty refreshToken keeps the existing one. It reports whether
// the update was applied.
func (s *Store) SetTokens(ctx context.Context, gen uint64, token, refreshToken string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.identity == nil {
		s.logger.Debug().Str("func", "Store.SetTokens").Uint64("gen", gen).Uint64("current", s.generation).
			Msg("stale token update dropped")
		return false
	}

	s.token = token
	s.put(ctx, "Store.SetTokens", KeyToken, token)
	if refreshToken != "" {
		s.refreshToken = refreshToken
		s.put(ctx, "Store.SetTokens", KeyRefreshToken, refreshToken)
	}
	return true
}

// SetIdentity replaces the identity of the current session if gen is still
// current. It reports whether the update was applied.
func (s *Store) SetIdentity(ctx context.Context, gen uint64, identity *models.Identity) bool {
	if identity == nil || !identity.Valid() {
		return false
	}
	raw, err := json.Marshal(identity)
	if err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.token == "" {
		s.logger.Debug().Str("func", "Store.SetIdentity").Uint64("gen", gen).Uint64("current", s.generation).
			Msg("stale identity update dropped")
		return false
	}

	s.identity = identity.Clone()
	s.put(ctx, "Store.SetIdentity", KeyIdentity, string(raw))
	return true
}

// Clear forgets the session in memory and in storage. Calling it when
// already unauthenticated is harmless.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity, s.token, s.refreshToken = nil, "", ""
	s.generation++
	s.deleteAll(ctx, "Store.Clear")
}

// put, putOrDelete and deleteAll must be called with mu held, so that
// storage writes happen in the same order as the memory updates.
func (s *Store) put(ctx context.Context, fn, key, value string) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.logger.Err(err).Str("func", fn).Str("key", key).Msg("failed to persist session value")
	}
}

func (s *Store) putOrDelete(ctx context.Context, fn, key, value string) {
	if value == "" {
		if err := s.kv.Delete(ctx, key); err != nil {
			s.logger.Err(err).Str("func", fn).Str("key", key).Msg("failed to delete session value")
		}
		return
	}
	s.put(ctx, fn, key, value)
}

func (s *Store) deleteAll(ctx context.Context, fn string) {
	if err := s.kv.Delete(ctx, allKeys...); err != nil {
		s.logger.Err(err).Str("func", fn).Msg("failed to delete persisted session")
	}
}
