package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreInitialState(t *testing.T) {
	t.Parallel()

	s := New([]string{"1", "4", "1"})
	require.Equal(t, State{}, s.Snapshot())
	require.Equal(t, []string{"1", "4"}, s.Favorites())

	_, ok := s.ShortAddress()
	require.False(t, ok)
}

func TestToggleFavoriteScenario(t *testing.T) {
	t.Parallel()

	s := New([]string{"1", "4"})
	s.ToggleFavorite("1")
	require.Equal(t, []string{"4"}, s.Favorites())

	s.ToggleFavorite("7")
	require.Equal(t, []string{"4", "7"}, s.Favorites())
	require.True(t, s.IsFavorite("7"))
	require.False(t, s.IsFavorite("1"))
}

func TestToggleFavoriteTwiceRestores(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"1", "4", "7", "", "no-such-listing", "ünïcode"} {
		s := New([]string{"1", "4"})
		before := s.Favorites()
		s.ToggleFavorite(id)
		s.ToggleFavorite(id)
		assert.ElementsMatch(t, before, s.Favorites(), "id %q", id)
	}
}

func TestToggleFavoriteAddsExactlyOne(t *testing.T) {
	t.Parallel()

	s := New([]string{"1", "4"})
	n := len(s.Favorites())
	s.ToggleFavorite("99")
	require.Len(t, s.Favorites(), n+1)
}

func TestFavoritesReturnsCopy(t *testing.T) {
	t.Parallel()

	s := New([]string{"1"})
	favs := s.Favorites()
	favs[0] = "mutated"
	require.Equal(t, []string{"1"}, s.Favorites())
}

func TestSetConnected(t *testing.T) {
	t.Parallel()

	s := New([]string{"1"})
	s.OpenModal()
	s.SetConnected("0xABCDEF1234567890")

	require.Equal(t, State{Connected: true, Address: "0xABCDEF1234567890"}, s.Snapshot())
	short, ok := s.ShortAddress()
	require.True(t, ok)
	require.Equal(t, "0xABCD...7890", short)
}

func TestSetConnectedIgnoresEmptyAddress(t *testing.T) {
	t.Parallel()

	s := New(nil)
	s.OpenModal()
	s.SetConnected("")
	require.Equal(t, State{ModalOpen: true}, s.Snapshot())
}

func TestModalIndependentOfConnection(t *testing.T) {
	t.Parallel()

	s := New(nil)
	s.OpenModal()
	s.OpenModal()
	require.True(t, s.Snapshot().ModalOpen)
	s.CloseModal()
	require.Equal(t, State{}, s.Snapshot())

	s.SetConnected("0x1234567890abcdef")
	s.OpenModal()
	st := s.Snapshot()
	require.True(t, st.Connected)
	require.True(t, st.ModalOpen)
}

func TestShortenAddress(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                   "",
		"0x12":               "0x12...0x12",
		"0123456789":         "012345...6789",
		"0xABCDEF1234567890": "0xABCD...7890",
	}
	for in, want := range cases {
		assert.Equal(t, want, ShortenAddress(in), "input %q", in)
	}
}
