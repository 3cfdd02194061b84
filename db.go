package main

import (
	"log"
	"strings"

	"kasku/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB(cfg Config) {
	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	var err error
	db, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	if !cfg.AutoMigrate {
		return
	}
	// Migrate models individually so a failure on one doesn't block others
	if err := db.AutoMigrate(&models.Item{}); err != nil {
		log.Printf("migration warning (items): %v", err)
	}
	if err := db.AutoMigrate(&models.Transaksi{}); err != nil {
		log.Printf("migration warning (transaksis): %v", err)
	}
	if err := db.AutoMigrate(&models.TransaksiItem{}); err != nil {
		log.Printf("migration warning (transaksi_items): %v", err)
	}
	if err := ensureItemNamaUniqueIndex(); err != nil {
		log.Printf("warning: ensuring items name uniqueness failed: %v", err)
	}
}

// ensureItemNamaUniqueIndex creates the case-insensitive per-user uniqueness
// constraint on item names. GORM tags cannot express an expression index, so
// this is raw DDL. The index is the authoritative backstop for the registry's
// check-then-create path.
func ensureItemNamaUniqueIndex() error {
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_items_user_nama_lower
		ON items (user_id, lower(nama))`).Error
}

// isUniqueConstraintError detects a store-level uniqueness rejection, which
// signals we lost a check-then-create race.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
