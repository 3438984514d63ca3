package pubsub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/nrrc/shuttleboard/internal/pubsub"
	"github.com/nrrc/shuttleboard/internal/tournament"
)

// Mirrors the wiring in main: committed store changes flow from the watcher
// through a listener into the pubsub client.
func TestWatcherPublishesChangeEvents(t *testing.T) {
	broker := pubsub.NewMock()
	watcher := tournament.NewWatcher()

	watcher.Subscribe(tournament.CollectionTeams, func(_ tournament.Collection, payload any) {
		require.NoError(t, broker.SendMessage(pubsub.EventTeamsChanged, payload))
	})

	teams := []tournament.Team{{ID: "t1", Name: "Anna & Bo"}}
	watcher.Notify(tournament.CollectionTeams, teams)

	require.Len(t, broker.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventTeamsChanged), broker.SendMessageCalls[0].Topic)
	assert.Equal(t, teams, broker.SendMessageCalls[0].Data)
}

func TestMockProcessMessageDecodes(t *testing.T) {
	broker := pubsub.NewMock()
	broker.ProcessMessageFunc = func(data []byte, returnValue any) error {
		return msgpack.Unmarshal(data, returnValue)
	}

	payload, err := msgpack.Marshal([]tournament.Team{{ID: "t1", Name: "Anna & Bo"}})
	require.NoError(t, err)

	var decoded []tournament.Team
	require.NoError(t, broker.ProcessMessage(payload, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Anna & Bo", decoded[0].Name)

	broker.Reset()
	assert.Empty(t, broker.ProcessMessageCalls)
}
