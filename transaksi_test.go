package main

import (
	"testing"
	"time"
)

func TestHitungTotal(t *testing.T) {
	items := []TransaksiItemPayload{
		{NamaItem: "Kopi", Qty: 2, HargaSatuan: 15000, Diskon: 1000},
	}
	if got := hitungTotal(items); got != 29000 {
		t.Fatalf("expected 29000 got %v", got)
	}
}

func TestHitungTotalMultipleItems(t *testing.T) {
	items := []TransaksiItemPayload{
		{NamaItem: "Kopi", Qty: 2, HargaSatuan: 15000, Diskon: 1000},
		{NamaItem: "Gula", Qty: 1, HargaSatuan: 12000},
		{NamaItem: "Teh", Qty: 3, HargaSatuan: 5000, Diskon: 500},
	}
	// 29000 + 12000 + 14500
	if got := hitungTotal(items); got != 55500 {
		t.Fatalf("expected 55500 got %v", got)
	}
}

func TestHitungTotalEmpty(t *testing.T) {
	if got := hitungTotal(nil); got != 0 {
		t.Fatalf("expected 0 got %v", got)
	}
}

func TestParseTanggal(t *testing.T) {
	got, err := parseTanggal("2024-03-17")
	if err != nil {
		t.Fatalf("bare date rejected: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 17 {
		t.Fatalf("unexpected parse result %v", got)
	}

	got, err = parseTanggal("2024-03-17T08:30:00Z")
	if err != nil {
		t.Fatalf("RFC3339 rejected: %v", err)
	}
	if got.Hour() != 8 || got.Minute() != 30 {
		t.Fatalf("unexpected parse result %v", got)
	}

	if _, err := parseTanggal("17/03/2024"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
