package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vms/backend/internal/infrastructure/config"
	"github.com/vms/backend/internal/store"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// stateSlot is the single-row storage model: the whole state tree serialized
// as one JSON payload under a named slot.
type stateSlot struct {
	Name      string    `gorm:"primaryKey;size:128"`
	Payload   string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (stateSlot) TableName() string {
	return "state_slots"
}

// StateSlotStore persists full state snapshots into a sqlite-backed slot
// table. Each Save overwrites the slot wholesale; there is no history and no
// partial write.
type StateSlotStore struct {
	db   *gorm.DB
	slot string
	log  *zap.Logger
}

// OpenStateSlotStore opens (or creates) the sqlite database at the
// configured path and migrates the slot table.
func OpenStateSlotStore(cfg *config.StorageConfig, log *zap.Logger) (*StateSlotStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := db.AutoMigrate(&stateSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state_slots: %w", err)
	}
	return &StateSlotStore{db: db, slot: cfg.Slot, log: log}, nil
}

// Save serializes the snapshot and overwrites the slot.
func (s *StateSlotStore) Save(state store.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	row := stateSlot{Name: s.slot, Payload: string(payload)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write state slot: %w", err)
	}
	return nil
}

// Load reads the slot and deserializes it. A missing slot returns ok=false
// with no error; an unreadable or unparsable payload also returns ok=false
// so callers fall back to a fresh state rather than failing startup.
func (s *StateSlotStore) Load() (store.State, bool, error) {
	var row stateSlot
	err := s.db.First(&row, "name = ?", s.slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.State{}, false, nil
	}
	if err != nil {
		return store.State{}, false, fmt.Errorf("failed to read state slot: %w", err)
	}
	var state store.State
	if err := json.Unmarshal([]byte(row.Payload), &state); err != nil {
		s.log.Warn("saved state is unparsable, starting fresh", zap.Error(err))
		return store.State{}, false, nil
	}
	return state, true, nil
}

// Close closes the underlying database handle.
func (s *StateSlotStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
