package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/airhockey/internal/entity"
)

const (
	EventsChannel = "airhockey:events"

	sessionKeyPrefix = "airhockey:session:"

	fieldGamesPlayed = "games-played"
	fieldPlayer1Wins = "player1-wins"
	fieldPlayer2Wins = "player2-wins"
	fieldWinner      = "winner"
	fieldQuit        = "quit"
)

// Scoreboard mirrors the running session into redis for external displays.
// Every key expires after the ttl, so nothing outlives the session by long.
type Scoreboard interface {
	SaveGame(ctx context.Context, record entity.GameRecord) error
	SaveSession(ctx context.Context, record entity.SessionRecord) error
	GetScore(ctx context.Context, sessionID string) (entity.Score, error)
}

type event struct {
	Type    string                `json:"type"`
	Game    *entity.GameRecord    `json:"game,omitempty"`
	Session *entity.SessionRecord `json:"session,omitempty"`
}

type dbScoreboard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScoreboard(client *redis.Client, ttl time.Duration) Scoreboard {
	return &dbScoreboard{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbScoreboard) SaveGame(ctx context.Context, record entity.GameRecord) error {
	key := sessionKey(record.SessionID)

	winsField := fieldPlayer2Wins
	if record.Winner == entity.Player1 {
		winsField = fieldPlayer1Wins
	}

	pipe := that.client.TxPipeline()
	pipe.HIncrBy(ctx, key, fieldGamesPlayed, 1)
	pipe.HIncrBy(ctx, key, winsField, 1)
	pipe.Expire(ctx, key, that.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return that.publish(ctx, event{Type: "game", Game: &record})
}

func (that *dbScoreboard) SaveSession(ctx context.Context, record entity.SessionRecord) error {
	key := sessionKey(record.SessionID)
	result := record.Result

	pipe := that.client.TxPipeline()
	pipe.HSet(ctx, key,
		fieldGamesPlayed, result.GamesPlayed,
		fieldPlayer1Wins, result.GamesWonByPlayer1,
		fieldPlayer2Wins, result.GamesWonByPlayer2(),
		fieldWinner, result.Winner.String(),
		fieldQuit, strconv.FormatBool(result.Quit),
	)
	pipe.Expire(ctx, key, that.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return that.publish(ctx, event{Type: "session", Session: &record})
}

func (that *dbScoreboard) GetScore(ctx context.Context, sessionID string) (entity.Score, error) {
	values, err := that.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	if len(values) == 0 {
		return entity.Score{}, ErrSessionNotFound
	}

	var score entity.Score
	for field, target := range map[string]*int{
		fieldGamesPlayed: &score.GamesPlayed,
		fieldPlayer1Wins: &score.Player1Wins,
		fieldPlayer2Wins: &score.Player2Wins,
	} {
		raw, ok := values[field]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(raw); err != nil {
			return entity.Score{}, fmt.Errorf("failed to parse %s: %w", field, err)
		}
	}

	return score, nil
}

func (that *dbScoreboard) publish(ctx context.Context, e event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, EventsChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
