package responses

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	Ok  = "OK"
	Err = "ERR"
)

type JsonResponse[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

// OK responses

type Credentials struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    uint64 `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

type User struct {
	ID               uint      `json:"id"`
	RegistrationTime time.Time `json:"registration_time"`
	Username         string    `json:"username"`
}

type Balance struct {
	Balance decimal.Decimal `json:"balance"`
}

type Round struct {
	ID         uint            `json:"id"`
	Timestamp  time.Time       `json:"timestamp"`
	Game       string          `json:"game"`
	Wager      decimal.Decimal `json:"wager"`
	Class      string          `json:"class"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Payout     decimal.Decimal `json:"payout"`
	Detail     string          `json:"detail"`
	UserID     uint            `json:"user_id"`
	Username   string          `json:"username"`
}

type WSResponse struct {
	Id   uint        `json:"id"`
	Data interface{} `json:"data"`
}
