package catalog

import (
	"testing"
	"time"

	"github.com/matchday/matchday-go/internal/clock"
	"github.com/matchday/matchday-go/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

func newService(now time.Time) *Service {
	return New(memory.NewStore(), clock.NewFixed(now), Config{})
}

func TestService_ListUpcoming(t *testing.T) {
	t.Parallel()

	// The calendar opens with match23 on 9-Apr-25; match24 is 10-Apr-25.
	now := time.Date(2025, 4, 10, 15, 0, 0, 0, time.UTC)

	t.Run("excludes past matches, keeps today", func(t *testing.T) {
		t.Parallel()
		svc := newService(now)

		matches := svc.ListUpcoming(true)
		require.NotEmpty(t, matches)
		require.Equal(t, "match24", matches[0].ID, "a match earlier today must still be listed")
		for _, m := range matches {
			require.NotEqual(t, "match23", m.ID, "yesterday's match must be filtered out")
		}
	})

	t.Run("default view is the first three", func(t *testing.T) {
		t.Parallel()
		svc := newService(now)

		visible := svc.ListUpcoming(false)
		require.Len(t, visible, 3)
		require.Equal(t, []string{"match24", "match25", "match26"},
			[]string{visible[0].ID, visible[1].ID, visible[2].ID})
	})

	t.Run("view-all only changes slice length", func(t *testing.T) {
		t.Parallel()
		svc := newService(now)

		all := svc.ListUpcoming(true)
		visible := svc.ListUpcoming(false)
		require.Greater(t, len(all), len(visible))
		require.Equal(t, all[:3], visible, "order must be preserved across the toggle")
	})

	t.Run("empty when the season is over", func(t *testing.T) {
		t.Parallel()
		svc := newService(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

		require.Empty(t, svc.ListUpcoming(true))
	})
}

func TestService_GetMatch(t *testing.T) {
	t.Parallel()

	svc := newService(time.Now())

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		m, err := svc.GetMatch("match25")
		require.NoError(t, err)
		require.Equal(t, "Chennai Super Kings", m.Team1.Name)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		_, err := svc.GetMatch("match999")
		require.ErrorIs(t, err, ErrMatchNotFound)
	})
}

func TestService_SeatingMap(t *testing.T) {
	t.Parallel()

	svc := newService(time.Now())

	t.Run("known venue", func(t *testing.T) {
		t.Parallel()
		url := svc.SeatingMap("Eden Gardens, Kolkata")
		require.Contains(t, url, "eden-gardens")
	})

	t.Run("unknown venue falls back", func(t *testing.T) {
		t.Parallel()
		url := svc.SeatingMap("Lord's, London")
		require.Equal(t, "/img/stadium-map.png", url)
		require.NotEmpty(t, url, "seating map lookup must never come back empty")
	})
}
