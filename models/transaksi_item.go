package models

import "time"

// TransaksiItem is a line item owned exclusively by its parent transaction.
// Line amount = Qty*HargaSatuan - Diskon. Rows are replaced wholesale when a
// transaction update carries items; partial edits are not supported.
type TransaksiItem struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	TransaksiID uint      `json:"transaksi_id" gorm:"index;not null"`
	NamaItem    string    `json:"nama_item" gorm:"size:255;not null"`
	Qty         int       `json:"qty" gorm:"not null"`
	HargaSatuan float64   `json:"harga_satuan" gorm:"not null"`
	Diskon      float64   `json:"diskon" gorm:"not null;default:0"`
}
