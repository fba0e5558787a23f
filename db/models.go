package db

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID               uint      `gorm:"primaryKey"`
	RegistrationTime time.Time `gorm:"autoCreateTime"`
	Login            string    `gorm:"unique;not null"`
	Username         string    `gorm:"not null"`
	Password         string    `gorm:"size:128;not null"`
}

type RefreshToken struct {
	Token        string    `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;"`
	User         User      `gorm:"not null;constraint:OnDelete:CASCADE"`
	CreationDate time.Time `gorm:"autoCreateTime"`
}

// Round is the persisted record of one settled wager. Detail carries
// the game's raw draw payload as JSON; Class and Multiplier are
// denormalized so history queries never re-derive them.
type Round struct {
	ID         uint            `gorm:"primaryKey"`
	Timestamp  time.Time       `gorm:"autoCreateTime"`
	Game       string          `gorm:"size:32;not null;index"`
	Wager      decimal.Decimal `gorm:"type:numeric(1000,4);not null"`
	Class      string          `gorm:"size:32;not null"`
	Multiplier decimal.Decimal `gorm:"type:numeric(1000,4);not null"`
	Payout     decimal.Decimal `gorm:"type:numeric(1000,4);not null"`
	Detail     string          `gorm:"not null"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"not null;constraint:OnDelete:CASCADE"`
}
