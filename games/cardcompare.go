package games

import (
	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

const (
	cardScoreMin = 12
	cardScoreMax = 23
	cardBustOver = 21
)

const (
	cardClassPlayerBust = "player_bust"
	cardClassDealerBust = "dealer_bust"
	cardClassPlayerHigh = "player_high"
	cardClassNatural    = "natural"
	cardClassStandOff   = "stand_off"
)

// CardCompareGame draws two independent hand scores and settles them
// blackjack-style: a busted player always loses, a player 21 against
// a non-21 dealer pays 3:2, otherwise a dealer bust or the higher
// score pays even money.
type CardCompareGame struct{}

type CardCompareDetail struct {
	PlayerScore int `json:"player_score"`
	DealerScore int `json:"dealer_score"`
}

func (g *CardCompareGame) Resolve(wager decimal.Decimal, _ Params, src rng.Source) (Outcome, error) {
	player := src.IntRange(cardScoreMin, cardScoreMax)
	dealer := src.IntRange(cardScoreMin, cardScoreMax)

	class := classifyCards(player, dealer)
	mult := Lookup(CardCompare, class)

	text := "DEALER WINS"
	if mult.IsPositive() {
		text = "YOU WON!"
	}

	return Outcome{
		Game:       CardCompare,
		Class:      class,
		Multiplier: mult,
		Payout:     wager.Mul(mult),
		Text:       text,
		Detail:     CardCompareDetail{PlayerScore: player, DealerScore: dealer},
	}, nil
}

func classifyCards(player, dealer int) string {
	switch {
	case player > cardBustOver:
		return cardClassPlayerBust
	case player == 21 && dealer != 21:
		return cardClassNatural
	case dealer > cardBustOver:
		return cardClassDealerBust
	case player > dealer:
		return cardClassPlayerHigh
	}
	return cardClassStandOff
}
