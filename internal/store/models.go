package store

import (
	"gorm.io/datatypes"
)

// GameRecord is the persisted row for a game snapshot
type GameRecord struct {
	ID             string         `gorm:"primaryKey;size:36"`
	IsActive       bool           `gorm:"not null"`
	Pot            int            `gorm:"not null"`
	CurrentBet     int            `gorm:"not null"`
	Stage          string         `gorm:"size:16;not null"`
	TurnIndex      int            `gorm:"not null"`
	TurnOrder      datatypes.JSON `gorm:"type:json"`
	CommunityCards datatypes.JSON `gorm:"type:json"`
	Players        []PlayerRecord `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName maps GameRecord onto the games table
func (GameRecord) TableName() string { return "games" }

// PlayerRecord is the persisted row for a player within a game
type PlayerRecord struct {
	ID         uint           `gorm:"primaryKey;autoIncrement"`
	GameID     string         `gorm:"size:36;index;not null"`
	Name       string         `gorm:"size:64;not null"`
	Balance    int            `gorm:"not null"`
	CurrentBet int            `gorm:"not null"`
	IsActive   bool           `gorm:"not null"`
	IsAllIn    bool           `gorm:"not null"`
	HasActed   bool           `gorm:"not null"`
	Cards      datatypes.JSON `gorm:"type:json"`
}

// TableName maps PlayerRecord onto the players table
func (PlayerRecord) TableName() string { return "players" }
