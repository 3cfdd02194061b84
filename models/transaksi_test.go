package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStatusForTipe(t *testing.T) {
	cases := map[string]string{
		TipePemasukan:   StatusTransaksi,
		TipePengeluaran: StatusTransaksi,
		TipeHutang:      StatusBelumLunas,
		TipePiutang:     StatusBelumLunas,
	}
	for tipe, want := range cases {
		if got := StatusForTipe(tipe); got != want {
			t.Fatalf("StatusForTipe(%s) = %s, want %s", tipe, got, want)
		}
	}
}

func TestValidTipe(t *testing.T) {
	for _, tipe := range []string{TipePemasukan, TipePengeluaran, TipeHutang, TipePiutang} {
		if !ValidTipe(tipe) {
			t.Fatalf("expected %s to be valid", tipe)
		}
	}
	if ValidTipe("TRANSFER") || ValidTipe("") || ValidTipe("pemasukan") {
		t.Fatal("unknown tipe must not validate")
	}
}

func TestTransaksiJSONAlwaysCarriesCatatan(t *testing.T) {
	b, err := json.Marshal(Transaksi{Tipe: TipePemasukan, Status: StatusTransaksi})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"catatan"`) {
		t.Fatalf("catatan key missing from response shape: %s", b)
	}
}
