package seated

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodex/melodex/pkg/errors"
)

const notificationsPage = `Some navigation text
Account settings
Following (3)
The National
Following
Bon Iver
Following
Sigur Rós
Following
`

func TestFollowedArtists(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/notifications", r.URL.Path)
		_, _ = w.Write([]byte(notificationsPage))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	names, err := client.FollowedArtists(context.Background(), "session-token")
	require.NoError(t, err)

	assert.Equal(t, "Bearer session-token", gotAuth)
	assert.Equal(t, []string{"The National", "Bon Iver", "Sigur Rós"}, names)
}

func TestFollowedArtistsRequiresSession(t *testing.T) {
	client := New()
	_, err := client.FollowedArtists(context.Background(), "")
	assert.ErrorIs(t, err, errors.ErrSessionRequired)
}

func TestFollowedArtistsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.FollowedArtists(context.Background(), "token")
	require.Error(t, err)

	assert.ErrorIs(t, err, errors.ErrServiceUnavailable)

	var fetchErr *errors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
}

func TestParseFollowedArtists(t *testing.T) {
	t.Run("without header keeps all lines", func(t *testing.T) {
		names := parseFollowedArtists("A\nB\n")
		assert.Equal(t, []string{"A", "B"}, names)
	})

	t.Run("drops blank and button lines", func(t *testing.T) {
		names := parseFollowedArtists("Following (1)\n\nA\nFollowing\n")
		assert.Equal(t, []string{"A"}, names)
	})
}
