package main

import (
	"fmt"

	"kasku/models"
	"kasku/pkg/daterange"
)

// Classification of transaction types for cash-flow reporting. Payables
// count toward the income projection and receivables toward the expense
// projection: the buckets reflect expected cash-flow direction, not cash
// actually received or paid.
var (
	tipePemasukan   = []string{models.TipePemasukan, models.TipeHutang}
	tipePengeluaran = []string{models.TipePengeluaran, models.TipePiutang}
)

// TotalArus is the count and grand total of one classification bucket.
type TotalArus struct {
	JumlahTransaksi int64   `json:"jumlah_transaksi"`
	GrandTotal      float64 `json:"grand_total"`
}

// RingkasanHutang sums payables and receivables separately over one year.
type RingkasanHutang struct {
	Tahun             int     `json:"tahun"`
	GrandTotalHutang  float64 `json:"grand_total_hutang"`
	GrandTotalPiutang float64 `json:"grand_total_piutang"`
}

// RingkasanPeriode combines both buckets over one resolved window. Bulan and
// Hari are echoed only when the caller supplied them.
type RingkasanPeriode struct {
	Tahun                 int     `json:"tahun"`
	Bulan                 *int    `json:"bulan,omitempty"`
	Hari                  *int    `json:"hari,omitempty"`
	GrandTotalPemasukan   float64 `json:"grand_total_pemasukan"`
	GrandTotalPengeluaran float64 `json:"grand_total_pengeluaran"`
}

// RingkasanBulan is one month's entry in the yearly breakdown.
type RingkasanBulan struct {
	Bulan                 int     `json:"bulan"`
	GrandTotalPemasukan   float64 `json:"grand_total_pemasukan"`
	GrandTotalPengeluaran float64 `json:"grand_total_pengeluaran"`
}

// totalArus pushes count and sum into a single SELECT over the filtered set.
func totalArus(userID string, tipes []string, r daterange.Range, berjangka bool) (TotalArus, error) {
	q := db.Model(&models.Transaksi{}).Where("user_id = ? AND tipe IN ?", userID, tipes)
	if berjangka {
		q = q.Where("tanggal >= ? AND tanggal < ?", r.Start, r.End)
	}
	var out TotalArus
	err := q.Select("COUNT(*) AS jumlah_transaksi, COALESCE(SUM(total), 0) AS grand_total").Scan(&out).Error
	return out, err
}

func sumByTipe(userID, tipe string, r daterange.Range) (float64, error) {
	var total float64
	err := db.Model(&models.Transaksi{}).
		Where("user_id = ? AND tipe = ?", userID, tipe).
		Where("tanggal >= ? AND tanggal < ?", r.Start, r.End).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

// TotalPemasukan sums the income-like bucket, optionally windowed by year
// and month.
func TotalPemasukan(userID string, tahun, bulan int) (TotalArus, error) {
	r, ok := daterange.Resolve(tahun, bulan, 0)
	return totalArus(userID, tipePemasukan, r, ok)
}

// TotalPengeluaran sums the expense-like bucket, optionally windowed by
// year and month.
func TotalPengeluaran(userID string, tahun, bulan int) (TotalArus, error) {
	r, ok := daterange.Resolve(tahun, bulan, 0)
	return totalArus(userID, tipePengeluaran, r, ok)
}

// HitungRingkasanHutang sums HUTANG and PIUTANG separately over the year.
func HitungRingkasanHutang(userID string, tahun int) (*RingkasanHutang, error) {
	if tahun <= 0 {
		return nil, fmt.Errorf("%w: parameter tahun wajib diisi", ErrValidation)
	}
	r, _ := daterange.Resolve(tahun, 0, 0)
	hutang, err := sumByTipe(userID, models.TipeHutang, r)
	if err != nil {
		return nil, err
	}
	piutang, err := sumByTipe(userID, models.TipePiutang, r)
	if err != nil {
		return nil, err
	}
	return &RingkasanHutang{Tahun: tahun, GrandTotalHutang: hutang, GrandTotalPiutang: piutang}, nil
}

// HitungRingkasanPeriode reports both buckets over the resolved window.
func HitungRingkasanPeriode(userID string, tahun, bulan, hari int) (*RingkasanPeriode, error) {
	if tahun <= 0 {
		return nil, fmt.Errorf("%w: parameter tahun wajib diisi", ErrValidation)
	}
	r, _ := daterange.Resolve(tahun, bulan, hari)
	masuk, err := totalArus(userID, tipePemasukan, r, true)
	if err != nil {
		return nil, err
	}
	keluar, err := totalArus(userID, tipePengeluaran, r, true)
	if err != nil {
		return nil, err
	}
	out := RingkasanPeriode{
		Tahun:                 tahun,
		GrandTotalPemasukan:   masuk.GrandTotal,
		GrandTotalPengeluaran: keluar.GrandTotal,
	}
	if bulan > 0 {
		out.Bulan = &bulan
	}
	if hari > 0 {
		out.Hari = &hari
	}
	return &out, nil
}

// HitungRingkasanBulanan reports every month of the year in order, each
// month computed independently.
func HitungRingkasanBulanan(userID string, tahun int) ([]RingkasanBulan, error) {
	if tahun <= 0 {
		return nil, fmt.Errorf("%w: parameter tahun wajib diisi", ErrValidation)
	}
	out := make([]RingkasanBulan, 0, 12)
	for bulan := 1; bulan <= 12; bulan++ {
		r, _ := daterange.Resolve(tahun, bulan, 0)
		masuk, err := totalArus(userID, tipePemasukan, r, true)
		if err != nil {
			return nil, err
		}
		keluar, err := totalArus(userID, tipePengeluaran, r, true)
		if err != nil {
			return nil, err
		}
		out = append(out, RingkasanBulan{
			Bulan:                 bulan,
			GrandTotalPemasukan:   masuk.GrandTotal,
			GrandTotalPengeluaran: keluar.GrandTotal,
		})
	}
	return out, nil
}
