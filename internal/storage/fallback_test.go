package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stoktakip-backend/internal/models"
)

func newFallback(t *testing.T, dir string) *FallbackStore {
	t.Helper()
	s, err := OpenFallback(dir)
	if err != nil {
		t.Fatalf("OpenFallback: %v", err)
	}
	return s
}

func TestFallbackStockCRUD(t *testing.T) {
	s := newFallback(t, t.TempDir())

	if _, err := s.GetStockItem("Cimento"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("olmayan kayıt için ErrNotFound bekleniyordu, geldi: %v", err)
	}

	item := models.StockItem{Name: "Cimento", Qty: 50, Cost: 8000, Sell: 10000}
	if err := s.PutStockItem(item); err != nil {
		t.Fatalf("PutStockItem: %v", err)
	}

	got, err := s.GetStockItem("Cimento")
	if err != nil {
		t.Fatalf("GetStockItem: %v", err)
	}
	if got.Qty != 50 || got.Cost != 8000 {
		t.Fatalf("beklenmeyen kayıt: %+v", got)
	}

	// üzerine yazma
	item.Qty = 45
	if err := s.PutStockItem(item); err != nil {
		t.Fatalf("PutStockItem (overwrite): %v", err)
	}
	got, _ = s.GetStockItem("Cimento")
	if got.Qty != 45 {
		t.Fatalf("üzerine yazma uygulanmadı: %+v", got)
	}

	if err := s.DeleteStockItem("Cimento"); err != nil {
		t.Fatalf("DeleteStockItem: %v", err)
	}
	if err := s.DeleteStockItem("Cimento"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ikinci silme ErrNotFound olmalıydı, geldi: %v", err)
	}
}

func TestFallbackPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s := newFallback(t, dir)
	if err := s.PutStockItem(models.StockItem{Name: "Demir", Qty: 10, Cost: 100, Sell: 120}); err != nil {
		t.Fatalf("PutStockItem: %v", err)
	}
	if _, err := s.AppendSale(models.SaleRecord{Staff: "Ayşe", Name: "Demir", Qty: 2}); err != nil {
		t.Fatalf("AppendSale: %v", err)
	}

	// dosya beklenen adla ve sürümlü formatta yazılmış olmalı
	data, err := os.ReadFile(filepath.Join(dir, SnapshotFile))
	if err != nil {
		t.Fatalf("snapshot dosyası okunamadı: %v", err)
	}
	for _, key := range []string{"stock", "sales", "nextSaleId", "lastSaved"} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("snapshot belgesinde %q alanı yok", key)
		}
	}

	reopened := newFallback(t, dir)
	items, err := reopened.ListStockItems()
	if err != nil {
		t.Fatalf("ListStockItems: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Demir" || items[0].Qty != 10 {
		t.Fatalf("stok geri yüklenemedi: %+v", items)
	}
	recs, err := reopened.ListSales()
	if err != nil {
		t.Fatalf("ListSales: %v", err)
	}
	if len(recs) != 1 || recs[0].Staff != "Ayşe" {
		t.Fatalf("satışlar geri yüklenemedi: %+v", recs)
	}
}

func TestFallbackSaleIDsNeverReused(t *testing.T) {
	dir := t.TempDir()
	s := newFallback(t, dir)

	id1, _ := s.AppendSale(models.SaleRecord{Name: "A", Qty: 1})
	id2, _ := s.AppendSale(models.SaleRecord{Name: "B", Qty: 1})
	if id1 != 1 || id2 != 2 {
		t.Fatalf("kimlikler sıralı atanmalı: %d, %d", id1, id2)
	}

	// eski kaydın silinmesi sonraki kimlikleri kaydırmamalı
	if err := s.DeleteSale(id1); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}
	id3, _ := s.AppendSale(models.SaleRecord{Name: "C", Qty: 1})
	if id3 != 3 {
		t.Fatalf("silinen kimlik tekrar kullanıldı: %d", id3)
	}

	// sayaç yeniden açılışta da korunur
	reopened := newFallback(t, dir)
	id4, _ := reopened.AppendSale(models.SaleRecord{Name: "D", Qty: 1})
	if id4 != 4 {
		t.Fatalf("sayaç yeniden açılışta korunmadı: %d", id4)
	}
}

func TestFallbackReplaceSalesKeepsIDs(t *testing.T) {
	s := newFallback(t, t.TempDir())

	recs := []models.SaleRecord{
		{ID: 3, Name: "A", Qty: 1},
		{ID: 7, Name: "B", Qty: 2},
	}
	if err := s.ReplaceSales(recs); err != nil {
		t.Fatalf("ReplaceSales: %v", err)
	}

	got, _ := s.ListSales()
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 7 {
		t.Fatalf("kimlikler korunmadı: %+v", got)
	}

	next, _ := s.AppendSale(models.SaleRecord{Name: "C", Qty: 1})
	if next != 8 {
		t.Fatalf("sayaç en büyük kimliğin üstünden devam etmeli, geldi: %d", next)
	}
}

func TestFallbackClear(t *testing.T) {
	s := newFallback(t, t.TempDir())

	_ = s.PutStockItem(models.StockItem{Name: "A", Qty: 1, Cost: 1, Sell: 2})
	_, _ = s.AppendSale(models.SaleRecord{Name: "A", Qty: 1})

	if err := s.ClearStock(); err != nil {
		t.Fatalf("ClearStock: %v", err)
	}
	if err := s.ClearSales(); err != nil {
		t.Fatalf("ClearSales: %v", err)
	}

	items, _ := s.ListStockItems()
	recs, _ := s.ListSales()
	if len(items) != 0 || len(recs) != 0 {
		t.Fatalf("koleksiyonlar boşalmadı: %d stok, %d satış", len(items), len(recs))
	}
}
