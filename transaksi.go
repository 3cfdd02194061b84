package main

import (
	"errors"
	"fmt"
	"time"

	"kasku/models"
	"kasku/pkg/daterange"
	"kasku/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransaksiItemPayload is one line item in a create/update request.
type TransaksiItemPayload struct {
	NamaItem    string  `json:"nama_item"`
	Qty         int     `json:"qty"`
	HargaSatuan float64 `json:"harga_satuan"`
	Diskon      float64 `json:"diskon"`
}

// TransaksiPayload is the create/update request body. On update every field
// is optional; only the supplied ones are applied.
type TransaksiPayload struct {
	Tipe       string                 `json:"tipe"`
	Tanggal    string                 `json:"tanggal"`
	JatuhTempo string                 `json:"jatuh_tempo"`
	Catatan    *string                `json:"catatan"`
	Total      *float64               `json:"total"`
	Items      []TransaksiItemPayload `json:"items"`
}

// hitungTotal sums the line amounts: qty * harga_satuan - diskon.
func hitungTotal(items []TransaksiItemPayload) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Qty)*it.HargaSatuan - it.Diskon
	}
	return total
}

// parseTanggal accepts RFC3339 timestamps or bare dates.
func parseTanggal(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: format tanggal tidak valid: %s", ErrValidation, s)
}

func buildItemRows(transaksiID uint, items []TransaksiItemPayload) []models.TransaksiItem {
	rows := make([]models.TransaksiItem, 0, len(items))
	for _, it := range items {
		rows = append(rows, models.TransaksiItem{
			TransaksiID: transaksiID,
			NamaItem:    it.NamaItem,
			Qty:         it.Qty,
			HargaSatuan: it.HargaSatuan,
			Diskon:      it.Diskon,
		})
	}
	return rows
}

// CreateTransaksi records a transaction and its line items. Item names are
// registered in the user's catalog on the way in; the transaction row and
// its item rows are written inside one store transaction.
func CreateTransaksi(userID string, p TransaksiPayload) (*models.Transaksi, error) {
	if p.Tipe == "" {
		return nil, fmt.Errorf("%w: tipe transaksi wajib diisi", ErrValidation)
	}
	if !models.ValidTipe(p.Tipe) {
		return nil, fmt.Errorf("%w: tipe transaksi tidak dikenal: %s", ErrValidation, p.Tipe)
	}

	var total float64
	if len(p.Items) > 0 {
		total = hitungTotal(p.Items)
	} else if p.Total != nil {
		total = *p.Total
	}

	tanggal := time.Now()
	if p.Tanggal != "" {
		t, err := parseTanggal(p.Tanggal)
		if err != nil {
			return nil, err
		}
		tanggal = t
	}
	var jatuhTempo *time.Time
	if p.JatuhTempo != "" {
		t, err := parseTanggal(p.JatuhTempo)
		if err != nil {
			return nil, err
		}
		jatuhTempo = &t
	}

	trx := models.Transaksi{
		UserID:     userID,
		Tipe:       p.Tipe,
		Tanggal:    tanggal,
		JatuhTempo: jatuhTempo,
		Total:      total,
		Status:     models.StatusForTipe(p.Tipe),
	}
	if p.Catatan != nil {
		trx.Catatan = *p.Catatan
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&trx).Error; err != nil {
			return err
		}
		if len(p.Items) == 0 {
			return nil
		}
		for _, it := range p.Items {
			if err := EnsureItemExists(tx, userID, it.NamaItem); err != nil {
				return err
			}
		}
		rows := buildItemRows(trx.ID, p.Items)
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		trx.Items = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	if trx.Items == nil {
		trx.Items = []models.TransaksiItem{}
	}
	return &trx, nil
}

// GetTransaksi returns the user's transaction joined with its line items.
func GetTransaksi(userID string, id uint) (*models.Transaksi, error) {
	var trx models.Transaksi
	err := db.Preload("Items").Where("id = ? AND user_id = ?", id, userID).First(&trx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: transaksi tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}
	if trx.Items == nil {
		trx.Items = []models.TransaksiItem{}
	}
	return &trx, nil
}

// UpdateTransaksi applies a partial payload. Total is always recomputed:
// from the items when supplied, else from the payload total, else zero.
// A non-empty items array replaces all prior line items wholesale; without
// one the existing rows stay untouched and are returned as-is.
func UpdateTransaksi(userID string, id uint, p TransaksiPayload) (*models.Transaksi, error) {
	var trx models.Transaksi
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&trx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: transaksi tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}

	if p.Tipe != "" {
		if !models.ValidTipe(p.Tipe) {
			return nil, fmt.Errorf("%w: tipe transaksi tidak dikenal: %s", ErrValidation, p.Tipe)
		}
		trx.Tipe = p.Tipe
		trx.Status = models.StatusForTipe(p.Tipe)
	}
	if p.Tanggal != "" {
		t, err := parseTanggal(p.Tanggal)
		if err != nil {
			return nil, err
		}
		trx.Tanggal = t
	}
	if p.JatuhTempo != "" {
		t, err := parseTanggal(p.JatuhTempo)
		if err != nil {
			return nil, err
		}
		trx.JatuhTempo = &t
	}
	if p.Catatan != nil {
		trx.Catatan = *p.Catatan
	}
	switch {
	case len(p.Items) > 0:
		trx.Total = hitungTotal(p.Items)
	case p.Total != nil:
		trx.Total = *p.Total
	default:
		trx.Total = 0
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&trx).Error; err != nil {
			return err
		}
		if len(p.Items) == 0 {
			// nothing replaced; reflect the rows that are actually there
			rows := []models.TransaksiItem{}
			if err := tx.Where("transaksi_id = ?", trx.ID).Find(&rows).Error; err != nil {
				return err
			}
			trx.Items = rows
			return nil
		}
		if err := tx.Where("transaksi_id = ?", trx.ID).Delete(&models.TransaksiItem{}).Error; err != nil {
			return err
		}
		for _, it := range p.Items {
			if err := EnsureItemExists(tx, userID, it.NamaItem); err != nil {
				return err
			}
		}
		rows := buildItemRows(trx.ID, p.Items)
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		trx.Items = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

// DeleteTransaksi removes the transaction and its line items together.
func DeleteTransaksi(userID string, id uint) error {
	var trx models.Transaksi
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&trx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: transaksi tidak ditemukan", ErrNotFound)
		}
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaksi_id = ?", trx.ID).Delete(&models.TransaksiItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&trx).Error
	})
}

// ListFilter narrows a transaction listing. Zero date fields mean no window;
// hari is only honored with bulan and tahun, bulan only with tahun.
type ListFilter struct {
	Tahun int
	Bulan int
	Hari  int
	Page  int
	Size  int
}

// ListTransaksi returns one page of the user's transactions, newest first.
func ListTransaksi(userID string, f ListFilter) ([]models.Transaksi, pagination.Page, error) {
	r, berjangka := daterange.Resolve(f.Tahun, f.Bulan, f.Hari)
	base := func() *gorm.DB {
		q := db.Model(&models.Transaksi{}).Where("user_id = ?", userID)
		if berjangka {
			q = q.Where("tanggal >= ? AND tanggal < ?", r.Start, r.End)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, pagination.Page{}, err
	}
	pg := pagination.Paginate(total, f.Page, f.Size)

	records := []models.Transaksi{}
	err := base().Order("tanggal desc").Offset(pg.Offset).Limit(pg.PageSize).Find(&records).Error
	if err != nil {
		return nil, pagination.Page{}, err
	}
	for i := range records {
		if records[i].Items == nil {
			records[i].Items = []models.TransaksiItem{}
		}
	}
	return records, pg, nil
}

// ListHutang returns one page of the year's payables and receivables.
func ListHutang(userID string, tahun, page, size int) ([]models.Transaksi, pagination.Page, error) {
	if tahun <= 0 {
		return nil, pagination.Page{}, fmt.Errorf("%w: parameter tahun wajib diisi", ErrValidation)
	}
	r, _ := daterange.Resolve(tahun, 0, 0)
	base := func() *gorm.DB {
		return db.Model(&models.Transaksi{}).
			Where("user_id = ? AND tipe IN ?", userID, []string{models.TipeHutang, models.TipePiutang}).
			Where("tanggal >= ? AND tanggal < ?", r.Start, r.End)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, pagination.Page{}, err
	}
	pg := pagination.Paginate(total, page, size)

	records := []models.Transaksi{}
	err := base().Order("tanggal desc").Offset(pg.Offset).Limit(pg.PageSize).Find(&records).Error
	if err != nil {
		return nil, pagination.Page{}, err
	}
	for i := range records {
		if records[i].Items == nil {
			records[i].Items = []models.TransaksiItem{}
		}
	}
	return records, pg, nil
}
