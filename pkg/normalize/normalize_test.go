package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodex/melodex/pkg/errors"
)

func mustMapping(t *testing.T, pairs ...MappingPair) *Mapping {
	t.Helper()
	m, err := NewMapping(pairs)
	require.NoError(t, err)
	return m
}

func TestNameMappingOverride(t *testing.T) {
	m := mustMapping(t, MappingPair{Raw: "Beyoncé ", Canonical: "Beyonce"})

	got, err := Name("Beyoncé ", m)
	require.NoError(t, err)
	assert.Equal(t, "Beyonce", got)

	// The override wins over anything the generic rules would do.
	m = mustMapping(t, MappingPair{Raw: "Someone (Remastered)", Canonical: "Someone Else"})
	got, err = Name("Someone (Remastered)", m)
	require.NoError(t, err)
	assert.Equal(t, "Someone Else", got)
}

func TestTitleGenericRules(t *testing.T) {
	m := EmptyMapping()

	tests := []struct {
		raw  string
		want string
	}{
		{"Ágætis byrjun (Remastered)", "Ágætis byrjun"},
		{"21 [Deluxe Edition]", "21"},
		{"Lemonade (feat. Jack White)", "Lemonade"},
		{"Blue Lines - Deluxe Edition", "Blue Lines"},
		{"Hello - Single", "Hello"},
		{"In Rainbows (Disk 2) (Bonus Tracks)", "In Rainbows (Disk 2)"},
		{"OK Computer  ", "OK Computer"},
		{"Low   End    Theory", "Low End Theory"},
		// Bracket removal exposes a trailing dash marker.
		{"Hurry Up - Single (Remastered 2020)", "Hurry Up"},
		// Non-keyword brackets survive.
		{"Live at Wembley (1986)", "Live at Wembley (1986)"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Title(tt.raw, m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameIdempotent(t *testing.T) {
	m := mustMapping(t, MappingPair{Raw: "Sigur Ros", Canonical: "Sigur Rós"})

	inputs := []string{
		"Ágætis byrjun (Remastered)",
		"  The   National ",
		"Sigur Ros",
		"Hello - Single (Deluxe Edition)",
		"AC/DC",
	}

	for _, raw := range inputs {
		once, err := Name(raw, m)
		require.NoError(t, err)

		twice, err := Name(once, m)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "cleaning a cleaned name must change nothing")
	}
}

func TestNameEmptyResult(t *testing.T) {
	m := EmptyMapping()

	for _, raw := range []string{"", "   ", "(Remastered)"} {
		_, err := Name(raw, m)
		assert.ErrorIs(t, err, errors.ErrEmptyName, "raw %q", raw)
	}

	// An override mapping to nothing is the same failure.
	m = mustMapping(t, MappingPair{Raw: "Ghost Artist", Canonical: " "})
	_, err := Name("Ghost Artist", m)
	assert.ErrorIs(t, err, errors.ErrEmptyName)
}

func TestNewMapping(t *testing.T) {
	t.Run("last write wins", func(t *testing.T) {
		m := mustMapping(t,
			MappingPair{Raw: "Prince", Canonical: "The Artist"},
			MappingPair{Raw: "Prince", Canonical: "Prince"},
		)
		got, ok := m.Resolve("Prince")
		require.True(t, ok)
		assert.Equal(t, "Prince", got)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("empty raw key is fatal", func(t *testing.T) {
		_, err := NewMapping([]MappingPair{{Raw: "  ", Canonical: "X"}})
		assert.ErrorIs(t, err, errors.ErrMalformedRecord)
	})

	t.Run("nil mapping resolves nothing", func(t *testing.T) {
		var m *Mapping
		_, ok := m.Resolve("anyone")
		assert.False(t, ok)
		assert.Equal(t, 0, m.Len())
	})
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Beyoncé", "beyonce"},
		{"BEYONCE", "beyonce"},
		{"Sigur Rós", "sigur ros"},
		{"AC/DC", "acdc"},
		{"The Go! Team", "the go team"},
		{"Ólafur Arnalds", "olafur arnalds"},
		{"  Arcade   Fire ", "arcade fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.name))
		})
	}
}

func TestKeyMatchesAcrossSpellings(t *testing.T) {
	// Case-only and accent-only differences must never produce distinct keys,
	// or the missing reports would be full of false positives.
	assert.Equal(t, Key("Beyoncé"), Key("beyonce"))
	assert.Equal(t, Key("Sigur Rós"), Key("SIGUR ROS"))
	assert.NotEqual(t, Key("Adele"), Key("Drake"))
}
