package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"stoktakip-backend/internal/models"
)

func newSQLite(t *testing.T) *DurableStore {
	t.Helper()
	s, err := OpenDurable("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDurable: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDurableStockUpsert(t *testing.T) {
	s := newSQLite(t)

	if err := s.PutStockItem(models.StockItem{Name: "Cimento", Qty: 50, Cost: 8000, Sell: 10000}); err != nil {
		t.Fatalf("PutStockItem: %v", err)
	}
	// aynı isimle put üzerine yazar, ikinci kayıt açmaz
	if err := s.PutStockItem(models.StockItem{Name: "Cimento", Qty: 45, Cost: 8500, Sell: 11000}); err != nil {
		t.Fatalf("PutStockItem (overwrite): %v", err)
	}

	items, err := s.ListStockItems()
	if err != nil {
		t.Fatalf("ListStockItems: %v", err)
	}
	if len(items) != 1 || items[0].Qty != 45 || items[0].Cost != 8500 {
		t.Fatalf("üzerine yazma uygulanmadı: %+v", items)
	}

	if _, err := s.GetStockItem("Yok"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ErrNotFound bekleniyordu: %v", err)
	}
}

func TestDurableSaleIDsAndReplace(t *testing.T) {
	s := newSQLite(t)

	id1, err := s.AppendSale(models.SaleRecord{Staff: "Ali", Name: "A", Qty: 1})
	if err != nil {
		t.Fatalf("AppendSale: %v", err)
	}
	id2, err := s.AppendSale(models.SaleRecord{Staff: "Ayşe", Name: "B", Qty: 2})
	if err != nil {
		t.Fatalf("AppendSale: %v", err)
	}
	if id2 <= id1 {
		t.Fatalf("kimlikler artan olmalı: %d, %d", id1, id2)
	}

	if err := s.DeleteSale(id1); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}
	if err := s.DeleteSale(id1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ikinci silme ErrNotFound olmalıydı: %v", err)
	}

	// yedekten geri yükleme kimlikleri aynen korur
	recs := []models.SaleRecord{
		{ID: 4, Staff: "Ali", Name: "C", Qty: 1},
		{ID: 9, Staff: "Ayşe", Name: "D", Qty: 3},
	}
	if err := s.ReplaceSales(recs); err != nil {
		t.Fatalf("ReplaceSales: %v", err)
	}
	got, err := s.ListSales()
	if err != nil {
		t.Fatalf("ListSales: %v", err)
	}
	if len(got) != 2 || got[0].ID != 4 || got[1].ID != 9 {
		t.Fatalf("kimlikler korunmadı: %+v", got)
	}

	// sonraki ekleme mevcut kimliklerle çakışmaz
	next, err := s.AppendSale(models.SaleRecord{Staff: "Ali", Name: "E", Qty: 1})
	if err != nil {
		t.Fatalf("AppendSale (sonrası): %v", err)
	}
	if next <= 9 {
		t.Fatalf("yeni kimlik 9'dan büyük olmalı: %d", next)
	}
}
