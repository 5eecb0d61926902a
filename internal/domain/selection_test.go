package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelection_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start Selection
		apply func(Selection) Selection
		want  Selection
	}{
		{
			name:  "grid click from empty selects",
			start: NoSelection(),
			apply: func(s Selection) Selection { return s.SelectFromGrid("vip") },
			want:  GridSelection("vip"),
		},
		{
			name:  "grid click replaces another grid selection",
			start: GridSelection("vip"),
			apply: func(s Selection) Selection { return s.SelectFromGrid("premium") },
			want:  GridSelection("premium"),
		},
		{
			name:  "grid click never deselects",
			start: GridSelection("vip"),
			apply: func(s Selection) Selection { return s.SelectFromGrid("vip") },
			want:  GridSelection("vip"),
		},
		{
			name:  "grid click overrides a different button selection",
			start: ButtonSelection("general"),
			apply: func(s Selection) Selection { return s.SelectFromGrid("vip") },
			want:  GridSelection("vip"),
		},
		{
			name:  "grid click on the button-selected id is a no-op",
			start: ButtonSelection("vip"),
			apply: func(s Selection) Selection { return s.SelectFromGrid("vip") },
			want:  ButtonSelection("vip"),
		},
		{
			name:  "button click from empty selects",
			start: NoSelection(),
			apply: func(s Selection) Selection { return s.SelectFromButtons("premium") },
			want:  ButtonSelection("premium"),
		},
		{
			name:  "button click overrides a different grid selection",
			start: GridSelection("vip"),
			apply: func(s Selection) Selection { return s.SelectFromButtons("premium") },
			want:  ButtonSelection("premium"),
		},
		{
			name:  "button click on the grid-selected id is a no-op",
			start: GridSelection("vip"),
			apply: func(s Selection) Selection { return s.SelectFromButtons("vip") },
			want:  GridSelection("vip"),
		},
		{
			name:  "button click on its own selection toggles off",
			start: ButtonSelection("premium"),
			apply: func(s Selection) Selection { return s.SelectFromButtons("premium") },
			want:  NoSelection(),
		},
		{
			name:  "button click replaces another button selection",
			start: ButtonSelection("premium"),
			apply: func(s Selection) Selection { return s.SelectFromButtons("general") },
			want:  ButtonSelection("general"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.apply(tt.start))
		})
	}
}

func TestSelection_AtMostOneActive(t *testing.T) {
	t.Parallel()

	// Picking from one surface then a different id from the other must
	// leave exactly one active selection, the later one.
	s := NoSelection().SelectFromGrid("vip").SelectFromButtons("premium")

	id, ok := s.TicketID()
	require.True(t, ok)
	require.Equal(t, "premium", id)
	require.Equal(t, SourceButtons, s.Source())
}

func TestQuantity(t *testing.T) {
	t.Parallel()

	t.Run("decrement floors at 1", func(t *testing.T) {
		t.Parallel()
		q := NewQuantity(1)
		require.Equal(t, Quantity(1), q.Decrement())
	})

	t.Run("increment is unbounded", func(t *testing.T) {
		t.Parallel()
		q := NewQuantity(1)
		for i := 0; i < 100; i++ {
			q = q.Increment()
		}
		require.Equal(t, Quantity(101), q)
	})

	t.Run("new quantity clamps up to 1", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, Quantity(1), NewQuantity(0))
		require.Equal(t, Quantity(1), NewQuantity(-5))
		require.Equal(t, Quantity(4), NewQuantity(4))
	})
}
