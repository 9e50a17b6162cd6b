package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"edumart/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type failingStorage struct {
	*storage.MemoryStorage
	err error
}

func (f *failingStorage) Delete(ctx context.Context, key string) error {
	return f.err
}

func TestSession_StartAndRestore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	s := New(store)

	assert.False(t, s.Authenticated())
	assert.ErrorIs(t, s.Start(ctx, "", nil), ErrEmptyToken)

	require.NoError(t, s.Start(ctx, "tok-1", profile{ID: "u1", Email: "a@b.c"}))
	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok-1", s.Token())

	persisted, ok, _ := store.Get(ctx, storage.KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", persisted)

	restored := New(store)
	require.NoError(t, restored.Restore(ctx))
	assert.Equal(t, "tok-1", restored.Token())

	var p profile
	found, err := restored.DecodeUser(&p)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a@b.c", p.Email)
}

func TestSession_RestoreIgnoresCorruptProfile(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	require.NoError(t, store.Set(ctx, storage.KeyToken, "tok"))
	require.NoError(t, store.Set(ctx, storage.KeyUser, "{not json"))

	s := New(store)
	require.NoError(t, s.Restore(ctx))

	assert.Equal(t, "tok", s.Token())
	assert.Nil(t, s.User())
}

func TestSession_SetUser(t *testing.T) {
	ctx := context.Background()
	s := New(storage.NewMemoryStorage())
	require.NoError(t, s.Start(ctx, "tok", profile{ID: "u1"}))

	require.NoError(t, s.SetUser(ctx, profile{ID: "u1", Email: "new@b.c"}))

	var p profile
	_, err := s.DecodeUser(&p)
	require.NoError(t, err)
	assert.Equal(t, "new@b.c", p.Email)
	assert.Equal(t, "tok", s.Token())
}

func TestSession_EndAndExpire(t *testing.T) {
	for _, tc := range []struct {
		name string
		call func(*Session, context.Context) error
		want EventKind
	}{
		{"End", (*Session).End, EventSignedOut},
		{"Expire", (*Session).Expire, EventUnauthorized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemoryStorage()
			s := New(store)
			require.NoError(t, s.Start(ctx, "tok", profile{ID: "u1"}))

			events, unsubscribe := s.Subscribe(4)
			defer unsubscribe()

			require.NoError(t, tc.call(s, ctx))

			assert.False(t, s.Authenticated())
			assert.Nil(t, s.User())
			_, ok, _ := store.Get(ctx, storage.KeyToken)
			assert.False(t, ok)
			_, ok, _ = store.Get(ctx, storage.KeyUser)
			assert.False(t, ok)

			select {
			case ev := <-events:
				assert.Equal(t, tc.want, ev.Kind)
			case <-time.After(time.Second):
				t.Fatal("no event published")
			}
		})
	}
}

func TestSession_ExpireClearsMemoryWhenStorageFails(t *testing.T) {
	ctx := context.Background()
	store := &failingStorage{MemoryStorage: storage.NewMemoryStorage(), err: errors.New("disk full")}
	s := New(store)
	require.NoError(t, s.Start(ctx, "tok", profile{ID: "u1"}))

	err := s.Expire(ctx)

	assert.Error(t, err)
	assert.Empty(t, s.Token())
}

func TestSession_Subscribe(t *testing.T) {
	ctx := context.Background()
	s := New(storage.NewMemoryStorage())

	events, unsubscribe := s.Subscribe(1)
	require.NoError(t, s.Start(ctx, "a", nil))
	// buffer is full; this one is dropped instead of blocking
	require.NoError(t, s.End(ctx))

	ev := <-events
	assert.Equal(t, EventSignedIn, ev.Kind)

	unsubscribe()
	unsubscribe()
	_, open := <-events
	assert.False(t, open)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "signed_in", EventSignedIn.String())
	assert.Equal(t, "signed_out", EventSignedOut.String())
	assert.Equal(t, "unauthorized", EventUnauthorized.String())
	assert.Equal(t, "unknown", EventKind(0).String())
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	t.Run("Reads exp", func(t *testing.T) {
		got, ok := TokenExpiry(signed)
		assert.True(t, ok)
		assert.True(t, exp.Equal(got))
	})

	t.Run("Session", func(t *testing.T) {
		s := New(storage.NewMemoryStorage())
		require.NoError(t, s.Start(context.Background(), signed, nil))
		got, ok := s.ExpiresAt()
		assert.True(t, ok)
		assert.True(t, exp.Equal(got))
	})

	t.Run("Opaque token", func(t *testing.T) {
		_, ok := TokenExpiry("not-a-jwt")
		assert.False(t, ok)
	})

	t.Run("Empty", func(t *testing.T) {
		_, ok := TokenExpiry("")
		assert.False(t, ok)
	})
}

func TestBearerHeader(t *testing.T) {
	assert.Equal(t, "Bearer abc", BearerHeader("abc"))
	assert.Empty(t, BearerHeader(""))
}
