package models

import "time"

// Transaction types.
const (
	TipePemasukan   = "PEMASUKAN"
	TipePengeluaran = "PENGELUARAN"
	TipeHutang      = "HUTANG"
	TipePiutang     = "PIUTANG"
)

// Transaction statuses. BELUM LUNAS applies to HUTANG/PIUTANG until settled.
const (
	StatusTransaksi  = "TRANSAKSI"
	StatusBelumLunas = "BELUM LUNAS"
)

// Transaksi is a financial transaction belonging to a user.
// Total is either supplied directly or derived from the owned items.
type Transaksi struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"-"`
	UserID     string          `json:"user_id" gorm:"size:64;index;not null"`
	Tipe       string          `json:"tipe" gorm:"size:16;not null;index"`
	Tanggal    time.Time       `json:"tanggal" gorm:"not null;index"`
	JatuhTempo *time.Time      `json:"jatuh_tempo,omitempty"`
	Catatan    string          `json:"catatan" gorm:"size:512"`
	Total      float64         `json:"total" gorm:"not null"`
	Status     string          `json:"status" gorm:"size:16;not null"`
	Items      []TransaksiItem `json:"items" gorm:"foreignKey:TransaksiID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// ValidTipe reports whether tipe is one of the four known transaction types.
func ValidTipe(tipe string) bool {
	switch tipe {
	case TipePemasukan, TipePengeluaran, TipeHutang, TipePiutang:
		return true
	}
	return false
}

// StatusForTipe returns the status a transaction of the given type must carry:
// BELUM LUNAS for payables/receivables, TRANSAKSI otherwise.
func StatusForTipe(tipe string) string {
	if tipe == TipeHutang || tipe == TipePiutang {
		return StatusBelumLunas
	}
	return StatusTransaksi
}
