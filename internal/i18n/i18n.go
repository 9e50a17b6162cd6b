// Package i18n holds the UI language and the translation tables for it.
package i18n

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"edumart/internal/logger"
	"edumart/internal/storage"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Languages lists the supported languages in display order.
var Languages = []Language{English, Arabic}

func (l Language) Valid() bool {
	return l == English || l == Arabic
}

// Dir is the text direction for the language.
func (l Language) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

//go:embed locales/*.yaml
var localeFS embed.FS

var tables = mustLoadTables()

func mustLoadTables() map[Language]map[Key]string {
	out := make(map[Language]map[Key]string, len(Languages))
	for _, lang := range Languages {
		table, err := loadTable(lang)
		if err != nil {
			panic(err)
		}
		out[lang] = table
	}
	return out
}

func loadTable(lang Language) (map[Key]string, error) {
	raw, err := localeFS.ReadFile("locales/" + string(lang) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read locale %s: %w", lang, err)
	}
	var table map[Key]string
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse locale %s: %w", lang, err)
	}
	return table, nil
}

// Lookup translates key in lang, falling back to the key itself.
func Lookup(lang Language, key Key) string {
	if v, ok := tables[lang][key]; ok && v != "" {
		return v
	}
	return string(key)
}

// Localizer is the current language, persisted under storage.KeyLanguage.
type Localizer struct {
	mu    sync.RWMutex
	store storage.Storage
	lang  Language
}

// New restores the persisted language. A missing or unknown value means
// English; a storage failure is logged and also means English.
func New(ctx context.Context, store storage.Storage) *Localizer {
	l := &Localizer{store: store, lang: English}

	v, ok, err := store.Get(ctx, storage.KeyLanguage)
	switch {
	case err != nil:
		logger.FromCtx(ctx).Warn("failed to restore language",
			zap.String("layer", "i18n"),
			zap.Error(err),
		)
	case ok && Language(v).Valid():
		l.lang = Language(v)
	}
	return l
}

func (l *Localizer) Lang() Language {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// SetLang switches and persists the language.
func (l *Localizer) SetLang(ctx context.Context, lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	l.mu.Lock()
	l.lang = lang
	l.mu.Unlock()

	if err := l.store.Set(ctx, storage.KeyLanguage, string(lang)); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}
	return nil
}

func (l *Localizer) Dir() string {
	return l.Lang().Dir()
}

func (l *Localizer) T(key Key) string {
	return Lookup(l.Lang(), key)
}
