package main

import (
	"errors"
	"fmt"
	"strings"

	"kasku/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemSuggestion is the trimmed item shape returned by name search.
type ItemSuggestion struct {
	ID   uint   `json:"id"`
	Nama string `json:"nama"`
}

// SearchItems matches item names case-insensitively by substring, ordered by
// name. A blank query returns an empty result without touching the store.
func SearchItems(userID, query string, limit int) ([]ItemSuggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []ItemSuggestion{}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	suggestions := []ItemSuggestion{}
	err := db.Model(&models.Item{}).
		Where("user_id = ? AND nama ILIKE ?", userID, "%"+query+"%").
		Order("nama asc").
		Limit(limit).
		Find(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

// ListItems returns all of the user's items, newest first.
func ListItems(userID string) ([]models.Item, error) {
	items := []models.Item{}
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem registers a new item name for the user. The pre-check is a
// fast path; the store's unique index decides races.
func CreateItem(userID, nama string) (*models.Item, error) {
	nama = strings.TrimSpace(nama)
	if nama == "" {
		return nil, fmt.Errorf("%w: nama item wajib diisi", ErrValidation)
	}
	var existing models.Item
	err := db.Where("user_id = ? AND lower(nama) = lower(?)", userID, nama).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: item dengan nama ini sudah ada", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	item := models.Item{UserID: userID, Nama: nama}
	if err := db.Create(&item).Error; err != nil {
		if isUniqueConstraintError(err) { // lost the race after the pre-check
			return nil, fmt.Errorf("%w: item dengan nama ini sudah ada", ErrConflict)
		}
		return nil, err
	}
	return &item, nil
}

// RenameItem changes an item's name, applying the same duplicate check but
// excluding the item being renamed.
func RenameItem(userID string, itemID uint, nama string) (*models.Item, error) {
	nama = strings.TrimSpace(nama)
	if nama == "" {
		return nil, fmt.Errorf("%w: nama item wajib diisi", ErrValidation)
	}
	var dup models.Item
	err := db.Where("user_id = ? AND lower(nama) = lower(?) AND id <> ?", userID, nama, itemID).First(&dup).Error
	if err == nil {
		return nil, fmt.Errorf("%w: item dengan nama ini sudah ada", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	var item models.Item
	if err := db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}
	item.Nama = nama
	if err := db.Save(&item).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, fmt.Errorf("%w: item dengan nama ini sudah ada", ErrConflict)
		}
		return nil, err
	}
	return &item, nil
}

// EnsureItemExists upserts an item by case-insensitive name. It is called for
// every line-item name on transaction create/update and must not fail on the
// already-exists case. The insert races through ON CONFLICT DO NOTHING so a
// concurrent create cannot abort the surrounding store transaction.
func EnsureItemExists(tx *gorm.DB, userID, nama string) error {
	nama = strings.TrimSpace(nama)
	if nama == "" {
		return fmt.Errorf("%w: nama item wajib diisi", ErrValidation)
	}
	var existing models.Item
	err := tx.Where("user_id = ? AND lower(nama) = lower(?)", userID, nama).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Item{UserID: userID, Nama: nama}).Error
}

// DeleteItem removes an item from the user's catalog.
func DeleteItem(userID string, itemID uint) error {
	res := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: item tidak ditemukan", ErrNotFound)
	}
	return nil
}
