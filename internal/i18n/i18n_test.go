package i18n

import (
	"context"
	"errors"
	"testing"

	"edumart/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorage struct {
	storage.Storage
}

func (failingStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk unavailable")
}

func TestTables(t *testing.T) {
	t.Run("Every key exists in every language", func(t *testing.T) {
		for _, lang := range Languages {
			for _, key := range Keys {
				v, ok := tables[lang][key]
				assert.Truef(t, ok, "%s missing %s", lang, key)
				assert.NotEmptyf(t, v, "%s has empty %s", lang, key)
			}
		}
	})

	t.Run("No language defines unknown keys", func(t *testing.T) {
		known := make(map[Key]bool, len(Keys))
		for _, k := range Keys {
			known[k] = true
		}
		for _, lang := range Languages {
			for k := range tables[lang] {
				assert.Truef(t, known[k], "%s defines unknown key %s", lang, k)
			}
		}
	})
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "EduMart", Lookup(English, BrandName))
	assert.Equal(t, "سوق التعليم", Lookup(Arabic, BrandName))

	t.Run("Missing key returns the key", func(t *testing.T) {
		for _, lang := range Languages {
			assert.Equal(t, "does.not.exist", Lookup(lang, Key("does.not.exist")))
		}
	})

	t.Run("Unknown language returns the key", func(t *testing.T) {
		assert.Equal(t, string(CartTitle), Lookup(Language("fr"), CartTitle))
	})
}

func TestLocalizer(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults to English", func(t *testing.T) {
		l := New(ctx, storage.NewMemoryStorage())

		assert.Equal(t, English, l.Lang())
		assert.Equal(t, "ltr", l.Dir())
		assert.Equal(t, "Shopping Cart", l.T(CartTitle))
	})

	t.Run("Restores persisted language", func(t *testing.T) {
		store := storage.NewMemoryStorage()
		require.NoError(t, store.Set(ctx, storage.KeyLanguage, "ar"))

		l := New(ctx, store)

		assert.Equal(t, Arabic, l.Lang())
		assert.Equal(t, "rtl", l.Dir())
	})

	t.Run("Unknown persisted value falls back", func(t *testing.T) {
		store := storage.NewMemoryStorage()
		require.NoError(t, store.Set(ctx, storage.KeyLanguage, "klingon"))

		assert.Equal(t, English, New(ctx, store).Lang())
	})

	t.Run("Storage failure falls back", func(t *testing.T) {
		assert.Equal(t, English, New(ctx, failingStorage{}).Lang())
	})

	t.Run("SetLang persists", func(t *testing.T) {
		store := storage.NewMemoryStorage()
		l := New(ctx, store)

		require.NoError(t, l.SetLang(ctx, Arabic))

		v, ok, err := store.Get(ctx, storage.KeyLanguage)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "ar", v)
		assert.Equal(t, "سلة التسوق", l.T(CartTitle))
		assert.Equal(t, Arabic, New(ctx, store).Lang())
	})

	t.Run("SetLang rejects unsupported", func(t *testing.T) {
		l := New(ctx, storage.NewMemoryStorage())

		err := l.SetLang(ctx, Language("de"))

		assert.ErrorIs(t, err, ErrUnsupportedLanguage)
		assert.Equal(t, English, l.Lang())
	})
}
