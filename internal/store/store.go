// Package store persists game snapshots to SQLite. It is write-only
// from the daemon's point of view: gameplay never reads it back, the
// rows exist for inspection and post-game analysis.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/openpoker/dealerd/internal/game"
)

// Store wraps the snapshot database
type Store struct {
	db     *gorm.DB
	logger *log.Logger
}

// Open opens (creating if necessary) the snapshot database at path and
// migrates the schema
func Open(path string, logger *log.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&GameRecord{}, &PlayerRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger.WithPrefix("store").With("path", path),
	}, nil
}

// Save upserts a game snapshot, replacing its player rows, in one
// transaction
func (s *Store) Save(snapshot game.Snapshot) error {
	record, err := recordFromSnapshot(snapshot)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", snapshot.GameID).Delete(&PlayerRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear players: %w", err)
		}

		players := record.Players
		record.Players = nil
		if err := tx.Save(&record).Error; err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}
		if len(players) > 0 {
			if err := tx.Create(&players).Error; err != nil {
				return fmt.Errorf("failed to save players: %w", err)
			}
		}
		return nil
	})
}

// Load returns the persisted snapshot row for a game ID, for
// inspection tooling
func (s *Store) Load(gameID string) (*GameRecord, error) {
	var record GameRecord
	if err := s.db.Preload("Players").First(&record, "id = ?", gameID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Close closes the underlying database handle
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func recordFromSnapshot(snapshot game.Snapshot) (GameRecord, error) {
	turnOrder, err := json.Marshal(snapshot.TurnOrder)
	if err != nil {
		return GameRecord{}, fmt.Errorf("failed to encode turn order: %w", err)
	}
	board, err := json.Marshal(snapshot.CommunityCards)
	if err != nil {
		return GameRecord{}, fmt.Errorf("failed to encode community cards: %w", err)
	}

	record := GameRecord{
		ID:             snapshot.GameID,
		IsActive:       snapshot.IsActive,
		Pot:            snapshot.Pot,
		CurrentBet:     snapshot.CurrentBet,
		Stage:          snapshot.Stage,
		TurnIndex:      snapshot.TurnIndex,
		TurnOrder:      datatypes.JSON(turnOrder),
		CommunityCards: datatypes.JSON(board),
	}

	for _, p := range snapshot.Players {
		cards, err := json.Marshal(p.Cards)
		if err != nil {
			return GameRecord{}, fmt.Errorf("failed to encode cards for %s: %w", p.Name, err)
		}
		record.Players = append(record.Players, PlayerRecord{
			GameID:     snapshot.GameID,
			Name:       p.Name,
			Balance:    p.Balance,
			CurrentBet: p.CurrentBet,
			IsActive:   p.IsActive,
			IsAllIn:    p.IsAllIn,
			HasActed:   p.HasActed,
			Cards:      datatypes.JSON(cards),
		})
	}

	return record, nil
}
