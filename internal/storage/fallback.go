package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"stoktakip-backend/internal/models"
)

// SnapshotFile: fallback dosyasının adı. Format değişirse dosya adındaki
// sürüm de değişir; eski kayıtlarla sessizce çakışmaz.
const SnapshotFile = "stoktakip-data-v2.json"

// snapshot: iki koleksiyonun tek JSON belgesi olarak diske yazılan hali.
type snapshot struct {
	Stock      []models.StockItem  `json:"stock"`
	Sales      []models.SaleRecord `json:"sales"`
	NextSaleID uint                `json:"nextSaleId"`
	LastSaved  time.Time           `json:"lastSaved"`
}

// FallbackStore: kalıcı veritabanı açılamadığında kullanılan senkron
// backend. Her mutasyondan sonra iki koleksiyon tek belge olarak dosyaya
// yazılır; koleksiyonlar tek yazmayı paylaştığı için ek atomiklik gerekmez.
//
// Satış kimlikleri kalıcı bir sayaçtan atanır ve asla tekrar kullanılmaz;
// listede konuma göre kimlik verilmez (silme sonrası kayma problemi yok).
type FallbackStore struct {
	path       string
	stock      map[string]models.StockItem
	sales      map[uint]models.SaleRecord
	nextSaleID uint
}

// OpenFallback: varsa mevcut snapshot dosyasını yükler, yoksa boş başlar.
func OpenFallback(dataDir string) (*FallbackStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("veri klasörü oluşturulamadı: %w", err)
	}

	s := &FallbackStore{
		path:       filepath.Join(dataDir, SnapshotFile),
		stock:      map[string]models.StockItem{},
		sales:      map[uint]models.SaleRecord{},
		nextSaleID: 1,
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot okunamadı: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("snapshot çözümlenemedi: %w", err)
	}
	for _, item := range snap.Stock {
		s.stock[item.Name] = item
	}
	for _, rec := range snap.Sales {
		s.sales[rec.ID] = rec
		if rec.ID >= s.nextSaleID {
			s.nextSaleID = rec.ID + 1
		}
	}
	if snap.NextSaleID > s.nextSaleID {
		s.nextSaleID = snap.NextSaleID
	}
	return s, nil
}

// save: mevcut durumu tek belge olarak diske yazar.
func (s *FallbackStore) save() error {
	snap := snapshot{
		Stock:      make([]models.StockItem, 0, len(s.stock)),
		Sales:      make([]models.SaleRecord, 0, len(s.sales)),
		NextSaleID: s.nextSaleID,
		LastSaved:  time.Now(),
	}
	for _, item := range s.stock {
		snap.Stock = append(snap.Stock, item)
	}
	for _, rec := range s.sales {
		snap.Sales = append(snap.Sales, rec)
	}
	sort.Slice(snap.Stock, func(i, j int) bool { return snap.Stock[i].Name < snap.Stock[j].Name })
	sort.Slice(snap.Sales, func(i, j int) bool { return snap.Sales[i].ID < snap.Sales[j].ID })

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot oluşturulamadı: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("snapshot yazılamadı: %w", err)
	}
	return nil
}

func (s *FallbackStore) GetStockItem(name string) (models.StockItem, error) {
	item, ok := s.stock[name]
	if !ok {
		return models.StockItem{}, ErrNotFound
	}
	return item, nil
}

func (s *FallbackStore) ListStockItems() ([]models.StockItem, error) {
	items := make([]models.StockItem, 0, len(s.stock))
	for _, item := range s.stock {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *FallbackStore) PutStockItem(item models.StockItem) error {
	s.stock[item.Name] = item
	return s.save()
}

func (s *FallbackStore) DeleteStockItem(name string) error {
	if _, ok := s.stock[name]; !ok {
		return ErrNotFound
	}
	delete(s.stock, name)
	return s.save()
}

func (s *FallbackStore) ClearStock() error {
	s.stock = map[string]models.StockItem{}
	return s.save()
}

func (s *FallbackStore) GetSale(id uint) (models.SaleRecord, error) {
	rec, ok := s.sales[id]
	if !ok {
		return models.SaleRecord{}, ErrNotFound
	}
	return rec, nil
}

func (s *FallbackStore) ListSales() ([]models.SaleRecord, error) {
	recs := make([]models.SaleRecord, 0, len(s.sales))
	for _, rec := range s.sales {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	return recs, nil
}

func (s *FallbackStore) AppendSale(rec models.SaleRecord) (uint, error) {
	rec.ID = s.nextSaleID
	s.nextSaleID++
	s.sales[rec.ID] = rec
	if err := s.save(); err != nil {
		// yazma başarısızsa bellekteki ekleme de geri alınır
		delete(s.sales, rec.ID)
		s.nextSaleID--
		return 0, err
	}
	return rec.ID, nil
}

func (s *FallbackStore) DeleteSale(id uint) error {
	if _, ok := s.sales[id]; !ok {
		return ErrNotFound
	}
	delete(s.sales, id)
	return s.save()
}

func (s *FallbackStore) ClearSales() error {
	s.sales = map[uint]models.SaleRecord{}
	return s.save()
}

func (s *FallbackStore) ReplaceSales(recs []models.SaleRecord) error {
	s.sales = map[uint]models.SaleRecord{}
	s.nextSaleID = 1
	for _, rec := range recs {
		s.sales[rec.ID] = rec
		if rec.ID >= s.nextSaleID {
			s.nextSaleID = rec.ID + 1
		}
	}
	return s.save()
}

func (s *FallbackStore) Mode() Mode { return ModeFallback }

func (s *FallbackStore) Close() error { return nil }
