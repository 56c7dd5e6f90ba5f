package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/airhockey/internal/entity"
	"github.com/rocketscienceinc/airhockey/testing/suite"
)

func TestScoreboard_SaveGame(t *testing.T) {
	ctx, st := suite.New(t)

	scoreboard := NewScoreboard(st.Storage, time.Hour)

	// Given: two finished games of one session
	for i, winner := range []entity.Player{entity.Player1, entity.Player2} {
		err := scoreboard.SaveGame(ctx, entity.GameRecord{
			SessionID: "s1",
			Number:    i + 1,
			Server:    entity.Player1,
			Winner:    winner,
		})
		require.NoError(t, err)
	}

	// When: the score is read back
	score, err := scoreboard.GetScore(ctx, "s1")

	// Then: both games are counted and the key expires
	require.NoError(t, err)
	assert.Equal(t, entity.Score{GamesPlayed: 2, Player1Wins: 1, Player2Wins: 1}, score)

	ttl, err := st.Storage.TTL(ctx, sessionKey("s1")).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestScoreboard_SaveSession(t *testing.T) {
	ctx, st := suite.New(t)

	scoreboard := NewScoreboard(st.Storage, time.Minute)

	// Given: a finished session
	record := entity.SessionRecord{
		SessionID:   "s2",
		PlayerCount: 1,
		Result: entity.SessionResult{
			Winner:            entity.Player2,
			GameCount:         3,
			GamesPlayed:       3,
			GamesWonByPlayer1: 1,
		},
	}

	// When: it is saved
	require.NoError(t, scoreboard.SaveSession(ctx, record))

	// Then: the hash holds the final tally
	values, err := st.Storage.HGetAll(ctx, sessionKey("s2")).Result()
	require.NoError(t, err)
	assert.Equal(t, "3", values[fieldGamesPlayed])
	assert.Equal(t, "1", values[fieldPlayer1Wins])
	assert.Equal(t, "2", values[fieldPlayer2Wins])
	assert.Equal(t, entity.Player2.String(), values[fieldWinner])
	assert.Equal(t, "false", values[fieldQuit])

	score, err := scoreboard.GetScore(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, entity.Score{GamesPlayed: 3, Player1Wins: 1, Player2Wins: 2}, score)
}

func TestScoreboard_Publish(t *testing.T) {
	ctx, st := suite.New(t)

	scoreboard := NewScoreboard(st.Storage, time.Minute)

	// Given: a subscriber on the events channel
	sub := st.Storage.Subscribe(ctx, EventsChannel)
	t.Cleanup(func() { _ = sub.Close() })

	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	// When: a game is saved
	record := entity.GameRecord{SessionID: "s3", Number: 1, Server: entity.Player1, Winner: entity.Player2, Blocks: 4}
	require.NoError(t, scoreboard.SaveGame(ctx, record))

	// Then: the subscriber receives it
	select {
	case msg := <-sub.Channel():
		var got event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, "game", got.Type)
		require.NotNil(t, got.Game)
		assert.Equal(t, record.Blocks, got.Game.Blocks)
		assert.Equal(t, record.Winner, got.Game.Winner)
	case <-time.After(5 * time.Second):
		t.Fatal("no event published")
	}
}

func TestScoreboard_GetScore_NotFound(t *testing.T) {
	ctx, st := suite.New(t)

	scoreboard := NewScoreboard(st.Storage, time.Minute)

	_, err := scoreboard.GetScore(ctx, "missing")

	require.ErrorIs(t, err, ErrSessionNotFound)
}
