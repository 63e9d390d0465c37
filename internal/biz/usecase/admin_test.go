package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/afklabs/afk-responder/internal/biz/domain"
	"github.com/afklabs/afk-responder/internal/locale"
)

func newTestAdmin(t *testing.T) (*AdminUsecase, *SettingsManager) {
	t.Helper()
	m := newTestManager(t, &memSettingsRepo{})
	admin := NewAdminUsecase(m, locale.NewResolver(), zap.NewNop())
	return admin, m
}

func TestStartCommandShowsMainMenu(t *testing.T) {
	admin, _ := newTestAdmin(t)

	views := admin.HandleCommand(context.Background(), "start")
	require.Len(t, views, 1)
	assert.False(t, views[0].Edit)
	assert.NotEmpty(t, views[0].Keyboard)
}

func TestToggleListeningConfirmsAndRefreshes(t *testing.T) {
	admin, m := newTestAdmin(t)

	views := admin.HandleCallback(context.Background(), ActionToggleListening)
	require.Len(t, views, 2)
	assert.True(t, m.Snapshot().IsListening)

	views = admin.HandleCallback(context.Background(), ActionToggleListening)
	require.Len(t, views, 2)
	assert.False(t, m.Snapshot().IsListening)
}

func TestLanguageSwitch(t *testing.T) {
	admin, m := newTestAdmin(t)

	views := admin.HandleCallback(context.Background(), ActionLangPrefix+domain.LangRussian)
	require.NotEmpty(t, views)
	assert.Equal(t, domain.LangRussian, m.Snapshot().Language)

	assert.Empty(t, admin.HandleCallback(context.Background(), ActionLangPrefix+"xx"))
	assert.Equal(t, domain.LangRussian, m.Snapshot().Language)
}

func TestAgeInputValidation(t *testing.T) {
	admin, m := newTestAdmin(t)
	ctx := context.Background()

	admin.HandleCallback(ctx, ActionPersonaAge)
	require.Equal(t, domain.PendingAge, admin.Pending())

	for _, bad := range []string{"abc", "0", "150"} {
		views := admin.HandleText(ctx, bad)
		require.Len(t, views, 1, "input %q", bad)
		assert.Equal(t, domain.DefaultAge, m.Snapshot().Persona.Age, "input %q must not be stored", bad)
		assert.Equal(t, domain.PendingAge, admin.Pending(), "pending state re-armed after %q", bad)
	}

	views := admin.HandleText(ctx, "45")
	require.Len(t, views, 2)
	assert.Equal(t, 45, m.Snapshot().Persona.Age)
	assert.Equal(t, domain.PendingNone, admin.Pending())
}

func TestGenderInputTruncates(t *testing.T) {
	admin, m := newTestAdmin(t)
	ctx := context.Background()

	admin.HandleCallback(ctx, ActionPersonaGender)
	long := "abcdefghijklmnopqrstuvwxyzabcdefghij" // 36 runes
	admin.HandleText(ctx, long)

	got := m.Snapshot().Persona.GenderPhrase
	assert.Len(t, []rune(got), domain.MaxGenderLen)
	assert.Equal(t, long[:domain.MaxGenderLen], got)
}

func TestSuffixDashClearsThenStrayTextIgnored(t *testing.T) {
	admin, m := newTestAdmin(t)
	ctx := context.Background()

	admin.HandleCallback(ctx, ActionPersonaSuffix)
	views := admin.HandleText(ctx, SuffixClearToken)
	require.NotEmpty(t, views)
	assert.Equal(t, "", m.Snapshot().Persona.Suffix)

	// No pending action remains; the follow-up text is ignored.
	assert.Empty(t, admin.HandleText(ctx, "hello"))
	assert.Equal(t, "", m.Snapshot().Persona.Suffix)
}

func TestSuffixSetVerbatim(t *testing.T) {
	admin, m := newTestAdmin(t)
	ctx := context.Background()

	admin.HandleCallback(ctx, ActionPersonaSuffix)
	admin.HandleText(ctx, "bye")
	assert.Equal(t, "bye", m.Snapshot().Persona.Suffix)
}

func TestMenuActionCancelsPendingInput(t *testing.T) {
	admin, m := newTestAdmin(t)
	ctx := context.Background()

	admin.HandleCallback(ctx, ActionPersonaAge)
	admin.HandleCallback(ctx, ActionMainMenu)
	assert.Equal(t, domain.PendingNone, admin.Pending())

	// Text after cancellation changes nothing.
	assert.Empty(t, admin.HandleText(ctx, "45"))
	assert.Equal(t, domain.DefaultAge, m.Snapshot().Persona.Age)
}

func TestSecondButtonPressReplacesPending(t *testing.T) {
	admin, m := newTestAdmin(t)
	ctx := context.Background()

	admin.HandleCallback(ctx, ActionPersonaAge)
	admin.HandleCallback(ctx, ActionPersonaSuffix)
	require.Equal(t, domain.PendingSuffix, admin.Pending())

	admin.HandleText(ctx, "45")
	assert.Equal(t, "45", m.Snapshot().Persona.Suffix)
	assert.Equal(t, domain.DefaultAge, m.Snapshot().Persona.Age)
}

func TestPersonaFlagFlip(t *testing.T) {
	admin, m := newTestAdmin(t)
	ctx := context.Background()

	require.False(t, m.Snapshot().Persona.CanInsult)
	admin.HandleCallback(ctx, ActionPersonaInsult)
	assert.True(t, m.Snapshot().Persona.CanInsult)
}

func TestLedgerViewListsEntries(t *testing.T) {
	admin, m := newTestAdmin(t)
	ctx := context.Background()

	views := admin.HandleCallback(ctx, ActionListLedger)
	require.Len(t, views, 1)
	assert.Contains(t, views[0].Text, "ℹ️")

	m.Update(ctx, func(s *domain.Settings) {
		s.RecordInteraction("42", "Alice <X>", "", "direct", time.Now())
	})
	views = admin.HandleCallback(ctx, ActionListLedger)
	require.Len(t, views, 1)
	assert.Contains(t, views[0].Text, "tg://user?id=42")
	assert.Contains(t, views[0].Text, "Alice &lt;X&gt;")
	assert.True(t, views[0].HTML)
}
