// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package dictionary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/testutil"
)

type fakeStore struct {
	texts        []store.SiteText
	keys         []store.TranslationKey
	translations map[string][]store.KeyTranslation
	err          error
}

func (f *fakeStore) ListPublishedSiteTexts(context.Context) ([]store.SiteText, error) {
	return f.texts, f.err
}

func (f *fakeStore) ListActiveTranslationKeys(context.Context) ([]store.TranslationKey, error) {
	return f.keys, nil
}

func (f *fakeStore) ListKeyTranslations(_ context.Context, lang string) ([]store.KeyTranslation, error) {
	return f.translations[lang], nil
}

func TestBuildFromSiteTexts(t *testing.T) {
	fs := &fakeStore{
		texts: []store.SiteText{
			{Key: "nav.journey", Text: "Journey", TextI18n: model.Translations{"ru": "Путь"}},
			{Key: "nav.contact", Text: "", TextI18n: model.Translations{"en": "Contact"}},
			{Key: "nav.blank", Text: ""},
		},
		keys: []store.TranslationKey{{ID: 1, Key: "legacy.only"}},
	}

	d, err := NewBuilder(fs).Build(context.Background(), "ru", "en")
	require.NoError(t, err)

	assert.Equal(t, SourceSiteText, d.Source)
	assert.Equal(t, "Путь", d.Entries["nav.journey"])
	assert.Equal(t, "Contact", d.Entries["nav.contact"])
	assert.NotContains(t, d.Entries, "legacy.only")
	assert.Equal(t, "default", d.Text("nav.blank", "default"))
	assert.Equal(t, "default", d.Text("missing", "default"))
	assert.Equal(t, "Путь", d.Text("nav.journey", "default"))
}

func TestBuildLegacyFallback(t *testing.T) {
	fs := &fakeStore{
		keys: []store.TranslationKey{{ID: 1, Key: "greeting"}},
		translations: map[string][]store.KeyTranslation{
			"en": {{KeyID: 1, Text: "Hello"}},
		},
	}
	b := NewBuilder(fs)
	ctx := context.Background()

	d, err := b.Build(ctx, "fr", "en")
	require.NoError(t, err)
	assert.Equal(t, SourceLegacy, d.Source)
	assert.Equal(t, map[string]string{"greeting": "Hello"}, d.Entries)

	d, err = b.Build(ctx, "fr", "es")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greeting": "greeting"}, d.Entries)
}

func TestBuildLegacyPrefersRequestedLanguage(t *testing.T) {
	fs := &fakeStore{
		keys: []store.TranslationKey{{ID: 1, Key: "a"}, {ID: 2, Key: "b"}, {ID: 3, Key: "c"}},
		translations: map[string][]store.KeyTranslation{
			"ru": {{KeyID: 1, Text: "А"}, {KeyID: 99, Text: "orphan"}},
			"en": {{KeyID: 1, Text: "A"}, {KeyID: 2, Text: "B"}},
		},
	}

	d, err := NewBuilder(fs).Build(context.Background(), "ru", "en")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "А", "b": "B", "c": "c"}, d.Entries)
}

func TestBuildEmpty(t *testing.T) {
	d, err := NewBuilder(&fakeStore{}).Build(context.Background(), "en", "en")
	require.NoError(t, err)
	assert.Equal(t, SourceEmpty, d.Source)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, "x", d.Text("any", "x"))
}

func TestBuildStoreError(t *testing.T) {
	_, err := NewBuilder(&fakeStore{err: errors.New("boom")}).Build(context.Background(), "en", "en")
	assert.Error(t, err)
}

func TestBuildWithStore(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	q := store.New(db)

	en, err := q.CreateLanguage(ctx, store.Language{Code: "en", Name: "English", IsActive: true})
	require.NoError(t, err)
	key, err := q.UpsertTranslationKey(ctx, store.TranslationKey{Key: "greeting", IsActive: true})
	require.NoError(t, err)
	require.NoError(t, q.UpsertKeyTranslation(ctx, en.ID, key.ID, "Hello"))

	b := NewBuilder(q)
	d, err := b.Build(ctx, "fr", "en")
	require.NoError(t, err)
	assert.Equal(t, SourceLegacy, d.Source)
	assert.Equal(t, "Hello", d.Entries["greeting"])

	_, err = q.UpsertSiteText(ctx, store.SiteText{Key: "nav.journey", Text: "Journey", IsPublished: true})
	require.NoError(t, err)
	d, err = b.Build(ctx, "fr", "en")
	require.NoError(t, err)
	assert.Equal(t, SourceSiteText, d.Source)
	assert.Equal(t, map[string]string{"nav.journey": "Journey"}, d.Entries)
}
