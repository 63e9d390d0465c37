package data

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afklabs/afk-responder/internal/biz/domain"
)

func openTestRepo(t *testing.T) *settingsRepo {
	t.Helper()
	r, err := NewSettingsRepo(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r.(*settingsRepo)
}

func TestLoadReturnsNilWhenEmpty(t *testing.T) {
	r := openTestRepo(t)

	got, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	r := openTestRepo(t)

	s := domain.DefaultSettings()
	s.IsListening = true
	s.Language = domain.LangEnglish
	s.Persona.Age = 31
	s.Persona.GenderPhrase = "a guy"
	s.Persona.UseSwearing = false
	s.Persona.CanInsult = true
	s.Persona.Suffix = "- back later"
	s.ModelName = "gemini-2.0-flash"
	s.RecordInteraction("42", "Alice", "https://t.me/c/123/7", string(domain.KindMention), time.Now())
	s.RecordInteraction("43", "Bob", "", string(domain.KindDirect), time.Now())

	require.NoError(t, r.Save(context.Background(), s))

	got, err := r.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, s.IsListening, got.IsListening)
	assert.Equal(t, s.Language, got.Language)
	assert.Equal(t, s.Persona, got.Persona)
	assert.Equal(t, s.ModelName, got.ModelName)
	assert.Equal(t, s.Ledger, got.Ledger)
}

func TestSaveReplacesPreviousRecord(t *testing.T) {
	r := openTestRepo(t)
	ctx := context.Background()

	first := domain.DefaultSettings()
	first.RecordInteraction("42", "Alice", "", string(domain.KindDirect), time.Now())
	require.NoError(t, r.Save(ctx, first))

	second := domain.DefaultSettings()
	second.Persona.Age = 50
	second.RecordInteraction("99", "Carol", "", string(domain.KindReply), time.Now())
	require.NoError(t, r.Save(ctx, second))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 50, got.Persona.Age)
	assert.NotContains(t, got.Ledger, "42", "old interactions are rewritten, not merged")
	assert.Contains(t, got.Ledger, "99")
}

func TestSaveClearedLedgerPersistsEmpty(t *testing.T) {
	r := openTestRepo(t)
	ctx := context.Background()

	s := domain.DefaultSettings()
	s.RecordInteraction("42", "Alice", "", string(domain.KindDirect), time.Now())
	require.NoError(t, r.Save(ctx, s))

	s.ClearLedger()
	require.NoError(t, r.Save(ctx, s))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Ledger)
}
