package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/mock"
	"github.com/MKhiriev/fitiplus/internal/store"
	"github.com/MKhiriev/fitiplus/internal/utils"
	"github.com/MKhiriev/fitiplus/models"
)

func admin() *models.Identity {
	return &models.Identity{
		ID:    "1",
		Email: "admin@fitiplus.com",
		Name:  "Usuario Administrador",
		Preferences: &models.Preferences{
			Allergies: []string{"gluten"},
		},
	}
}

func newTestStore(t *testing.T) (*Store, store.KeyValueStore) {
	t.Helper()
	kv := store.NewMemoryKeyValueStore()
	return NewStore(kv, logger.Nop()), kv
}

// ── Set / Clear ──

func TestStore_SetThenClear(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	assert.False(t, s.IsAuthenticated())

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Set(ctx, admin(), "tok1", "ref1"))
		assert.True(t, s.IsAuthenticated())

		s.Clear(ctx)
		assert.False(t, s.IsAuthenticated())
		assert.Nil(t, s.Current())
		assert.Empty(t, s.Token())
		assert.Empty(t, s.RefreshToken())
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	require.NoError(t, s.Set(ctx, admin(), "tok1", "ref1"))

	s.Clear(ctx)
	once := s.Snapshot()
	s.Clear(ctx)

	assert.Equal(t, once, s.Snapshot())
	for _, k := range allKeys {
		_, err := kv.Get(ctx, k)
		assert.ErrorIs(t, err, store.ErrKeyNotFound, k)
	}
}

func TestStore_SetRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	require.NoError(t, s.Set(ctx, admin(), "tok1", ""))
	gen := s.Generation()

	assert.ErrorIs(t, s.Set(ctx, nil, "tok2", ""), ErrInvalidSession)
	assert.ErrorIs(t, s.Set(ctx, &models.Identity{Email: "x@y.z"}, "tok2", ""), ErrInvalidSession)
	assert.ErrorIs(t, s.Set(ctx, admin(), "", ""), ErrInvalidSession)

	assert.Equal(t, "tok1", s.Token())
	assert.Equal(t, gen, s.Generation())
}

func TestStore_CurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	require.NoError(t, s.Set(ctx, admin(), "tok1", ""))

	c := s.Current()
	c.Name = "mutated"
	c.Preferences.Allergies[0] = "mutated"

	assert.Equal(t, "Usuario Administrador", s.Current().Name)
	assert.Equal(t, "gluten", s.Current().Preferences.Allergies[0])
}

func TestStore_SetWithoutRefreshDropsStoredRefresh(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	require.NoError(t, s.Set(ctx, admin(), "tok1", "ref1"))
	require.NoError(t, s.Set(ctx, admin(), "tok2", ""))

	_, err := kv.Get(ctx, KeyRefreshToken)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
	assert.Empty(t, s.RefreshToken())
}

// ── Load ──

func TestStore_RoundTripAcrossRestart(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	require.NoError(t, s.Set(ctx, admin(), "tok1", "ref1"))

	restarted := NewStore(kv, logger.Nop())
	restarted.Load(ctx)

	assert.True(t, restarted.IsAuthenticated())
	assert.Equal(t, admin(), restarted.Current())
	assert.Equal(t, "tok1", restarted.Token())
	assert.Equal(t, "ref1", restarted.RefreshToken())
}

func TestStore_LoadEmptyStorage(t *testing.T) {
	s, _ := newTestStore(t)
	s.Load(context.Background())
	assert.False(t, s.IsAuthenticated())
}

func TestStore_LoadDiscardsCorruptState(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{name: "identity without token", values: map[string]string{KeyIdentity: `{"id":"1","email":"a@b.c"}`}},
		{name: "token without identity", values: map[string]string{KeyToken: "tok1", KeyRefreshToken: "ref1"}},
		{name: "refresh token only", values: map[string]string{KeyRefreshToken: "ref1"}},
		{name: "empty token", values: map[string]string{KeyIdentity: `{"id":"1","email":"a@b.c"}`, KeyToken: ""}},
		{name: "unparseable identity", values: map[string]string{KeyIdentity: `{"id":`, KeyToken: "tok1"}},
		{name: "identity without id", values: map[string]string{KeyIdentity: `{"email":"a@b.c"}`, KeyToken: "tok1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, kv := newTestStore(t)
			for k, v := range tt.values {
				require.NoError(t, kv.Set(ctx, k, v))
			}

			assert.NotPanics(t, func() { s.Load(ctx) })
			assert.False(t, s.IsAuthenticated())
			assert.Nil(t, s.Current())
			assert.Empty(t, s.Token())
			for _, k := range allKeys {
				_, err := kv.Get(ctx, k)
				assert.ErrorIs(t, err, store.ErrKeyNotFound, k)
			}
		})
	}
}

func TestStore_LoadUnreadableStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)

	kv.EXPECT().Get(gomock.Any(), KeyIdentity).Return("", errors.New("disk gone"))
	kv.EXPECT().Delete(gomock.Any(), KeyIdentity, KeyToken, KeyRefreshToken).Return(nil)

	s := NewStore(kv, logger.Nop())
	s.Load(context.Background())
	assert.False(t, s.IsAuthenticated())
}

// ── write failures ──

func TestStore_WriteFailureKeepsMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)

	kv.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("readonly")).Times(3)

	s := NewStore(kv, logger.Nop())
	require.NoError(t, s.Set(context.Background(), admin(), "tok1", "ref1"))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok1", s.Token())
}

func TestStore_ClearWithFailingStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)

	kv.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	kv.EXPECT().Delete(gomock.Any(), KeyRefreshToken).Return(nil)
	kv.EXPECT().Delete(gomock.Any(), KeyIdentity, KeyToken, KeyRefreshToken).Return(errors.New("locked"))

	s := NewStore(kv, logger.Nop())
	require.NoError(t, s.Set(context.Background(), admin(), "tok1", ""))
	s.Clear(context.Background())

	assert.False(t, s.IsAuthenticated())
}

// ── generation guard ──

func TestStore_SetTokensGeneration(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	require.NoError(t, s.Set(ctx, admin(), "tok1", "ref1"))
	gen := s.Generation()

	assert.True(t, s.SetTokens(ctx, gen, "tok2", ""))
	assert.Equal(t, "tok2", s.Token())
	assert.Equal(t, "ref1", s.RefreshToken())
	assert.Equal(t, gen, s.Generation())

	v, _ := kv.Get(ctx, KeyToken)
	assert.Equal(t, "tok2", v)

	assert.True(t, s.SetTokens(ctx, gen, "tok3", "ref3"))
	assert.Equal(t, "ref3", s.RefreshToken())
	assert.False(t, s.SetTokens(ctx, gen, "", "ref4"))
}

func TestStore_SetTokensAfterLogoutIsDropped(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	require.NoError(t, s.Set(ctx, admin(), "tok1", "ref1"))
	gen := s.Generation()

	s.Clear(ctx)

	assert.False(t, s.SetTokens(ctx, gen, "late", "late"))
	assert.False(t, s.IsAuthenticated())
	_, err := kv.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestStore_SetIdentityGeneration(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	require.NoError(t, s.Set(ctx, admin(), "tok1", ""))
	gen := s.Generation()

	updated := admin()
	updated.Name = "Ana"
	assert.True(t, s.SetIdentity(ctx, gen, updated))
	assert.Equal(t, "Ana", s.Current().Name)

	// another login replaced the session
	require.NoError(t, s.Set(ctx, &models.Identity{ID: "2", Email: "b@c.d"}, "tok2", ""))
	assert.False(t, s.SetIdentity(ctx, gen, updated))
	assert.Equal(t, "2", s.Current().ID)

	assert.False(t, s.SetIdentity(ctx, s.Generation(), &models.Identity{}))
}

// ── snapshot ──

func TestStore_SnapshotOffline(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	tok, err := utils.MintOfflineToken("1")
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, admin(), tok, ""))

	snap := s.Snapshot()
	assert.True(t, snap.Authenticated())
	assert.True(t, snap.Offline)

	require.NoError(t, s.Set(ctx, admin(), "tok1", ""))
	assert.False(t, s.Snapshot().Offline)
}
