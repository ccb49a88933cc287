package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/ports"
	portsmocks "github.com/hypr-showkey/showkey/internal/ports/mocks"
)

func TestUsageService_FlushRecordsTrackedBindings(t *testing.T) {
	repo := portsmocks.NewMockUsageRepository(t)
	svc := NewUsageService(repo)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	svc.Track(domain.Keybinding{Modifiers: []string{"SUPER"}, Key: "T", Dispatcher: "exec", Args: "kitty"})
	svc.Track(domain.Keybinding{Key: "PRINT", Dispatcher: "exec", Args: "grim"})
	require.Equal(t, 2, svc.Pending())

	repo.EXPECT().Record(mock.Anything, []ports.UsageEvent{
		{Action: "exec, kitty", Combo: "SUPER + T", UsedAt: fixed},
		{Action: "exec, grim", Combo: "PRINT", UsedAt: fixed},
	}).Return(nil)

	require.NoError(t, svc.Flush(context.Background()))
	assert.Equal(t, 0, svc.Pending())
}

func TestUsageService_FlushWithNothingPending(t *testing.T) {
	repo := portsmocks.NewMockUsageRepository(t)
	svc := NewUsageService(repo)

	require.NoError(t, svc.Flush(context.Background()))
}

func TestUsageService_FlushFailureKeepsEvents(t *testing.T) {
	repo := portsmocks.NewMockUsageRepository(t)
	svc := NewUsageService(repo)
	svc.Track(domain.Keybinding{Key: "A", Dispatcher: "exec"})

	repo.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("database is locked")).Once()

	err := svc.Flush(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record usage")
	assert.Equal(t, 1, svc.Pending())
}

func TestUsageService_Disabled(t *testing.T) {
	svc := NewUsageService(nil)
	svc.Track(domain.Keybinding{Key: "A", Dispatcher: "exec"})

	assert.False(t, svc.Enabled())
	assert.Equal(t, 0, svc.Pending())
	assert.NoError(t, svc.Flush(context.Background()))

	stats, err := svc.TopUsed(context.Background(), 10)
	assert.NoError(t, err)
	assert.Nil(t, stats)
}

func TestUsageService_TopUsed(t *testing.T) {
	repo := portsmocks.NewMockUsageRepository(t)
	svc := NewUsageService(repo)

	want := []ports.UsageStat{{Combo: "SUPER + T", Action: "exec, kitty", Count: 3}}
	repo.EXPECT().TopUsed(mock.Anything, 5).Return(want, nil)

	got, err := svc.TopUsed(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
