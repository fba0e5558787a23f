package db

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gemrush.io/backend/games"
	"gemrush.io/backend/responses"
)

type DB struct {
	*gorm.DB
}

// RecordRound persists one settled round.
func (db *DB) RecordRound(playerID uint, wager decimal.Decimal, outcome games.Outcome) error {
	detail, err := json.Marshal(outcome.Detail)
	if err != nil {
		return err
	}

	round := Round{
		Game:       outcome.Game.String(),
		Wager:      wager,
		Class:      outcome.Class,
		Multiplier: outcome.Multiplier,
		Payout:     outcome.Payout,
		Detail:     string(detail),
		UserID:     playerID,
	}

	return db.Create(&round).Error
}

// RecentRounds returns the latest settled rounds, newest first,
// optionally filtered to one game.
func (db *DB) RecentRounds(gameName string, limit int) ([]responses.Round, error) {
	rounds := make([]responses.Round, 0, limit)

	query := `
		SELECT
			rounds.id,
			rounds.timestamp,
			rounds.game,
			rounds.wager,
			rounds.class,
			rounds.multiplier,
			rounds.payout,
			rounds.detail,
			rounds.user_id,
			users.username
		FROM rounds
		INNER JOIN users ON rounds.user_id = users.id`
	args := []any{limit}
	if gameName != "" {
		query += `
		WHERE rounds.game = $2`
		args = append(args, gameName)
	}
	query += `
		ORDER BY rounds.timestamp DESC
		LIMIT $1`

	if err := db.Raw(query, args...).Scan(&rounds).Error; err != nil {
		return nil, err
	}

	return rounds, nil
}

// UserRounds returns one player's settled rounds, newest first.
func (db *DB) UserRounds(userID uint, limit int, offset int) ([]responses.Round, error) {
	rounds := make([]responses.Round, 0, limit)

	err := db.Raw(`
		SELECT
			rounds.id,
			rounds.timestamp,
			rounds.game,
			rounds.wager,
			rounds.class,
			rounds.multiplier,
			rounds.payout,
			rounds.detail,
			rounds.user_id,
			users.username
		FROM rounds
		INNER JOIN users ON rounds.user_id = users.id
		WHERE rounds.user_id = $1
		ORDER BY rounds.id DESC
		LIMIT $2
		OFFSET $3`, userID, limit, offset).Scan(&rounds).Error
	if err != nil {
		return nil, err
	}

	return rounds, nil
}

// LatestGames returns the names of the games a player wagered on most
// recently.
func (db *DB) LatestGames(userID uint, limit int) ([]string, error) {
	var names []string

	err := db.Raw(`
		SELECT DISTINCT ON (game) game FROM (
			SELECT game, timestamp FROM rounds
			WHERE user_id = $1
			ORDER BY timestamp DESC
			LIMIT $2
		) AS latest`, userID, limit).Scan(&names).Error
	if err != nil {
		return nil, err
	}

	return names, nil
}

// FindUserByCredentials looks a user up by login and hashed password.
func (db *DB) FindUserByCredentials(login string, hashedPassword string) (User, error) {
	var user User
	err := db.Where("login = $1 AND password = $2", login, hashedPassword).First(&user).Error

	return user, err
}

// RevokeRefreshToken deletes one refresh token belonging to the user.
func (db *DB) RevokeRefreshToken(token string, userID uint) error {
	return db.Where("token = $1 AND user_id = $2", token, userID).Delete(&RefreshToken{}).Error
}
