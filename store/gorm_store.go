package store

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Collection is one named collection persisted as a single JSON document.
type Collection struct {
	Name string         `gorm:"primaryKey;size:64"`
	Data datatypes.JSON `gorm:"not null"`
}

// Sequence is a monotonic counter row, independent of collection contents.
type Sequence struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value int64  `gorm:"not null;default:0"`
}

// GormStore keeps whole collections as JSON rows in a relational database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Collection{}, &Sequence{}); err != nil {
		return nil, fmt.Errorf("%w: migrate: %v", ErrUnavailable, err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(name string, dest any) (bool, error) {
	var row Collection
	err := s.db.First(&row, "name = ?", name).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: get %s: %v", ErrUnavailable, name, err)
	}
	if err := json.Unmarshal(row.Data, dest); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", ErrUnavailable, name, err)
	}
	return true, nil
}

func (s *GormStore) Set(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrUnavailable, name, err)
	}
	row := Collection{Name: name, Data: data}
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrUnavailable, name, err)
	}
	return nil
}

func (s *GormStore) Remove(name string) error {
	if err := s.db.Delete(&Collection{}, "name = ?", name).Error; err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrUnavailable, name, err)
	}
	return nil
}

func (s *GormStore) NextSequence(name string) (int64, error) {
	var next int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var seq Sequence
		if err := tx.FirstOrCreate(&seq, Sequence{Name: name}).Error; err != nil {
			return err
		}
		seq.Value++
		next = seq.Value
		return tx.Save(&seq).Error
	})
	if err != nil {
		return 0, fmt.Errorf("%w: sequence %s: %v", ErrUnavailable, name, err)
	}
	return next, nil
}
