package requests

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Login struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterUser struct {
	Login    string `json:"login"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Play is one wager: the game's name, the stake and the game-specific
// parameter payload, passed through uninterpreted.
type Play struct {
	Game   string          `json:"game"`
	Wager  decimal.Decimal `json:"wager"`
	Params json.RawMessage `json:"params"`
}

type Transfer struct {
	Amount decimal.Decimal `json:"amount"`
}

type WSRequest struct {
	Method string          `json:"method"`
	Id     uint            `json:"id"`
	Data   json.RawMessage `json:"data"`
}
