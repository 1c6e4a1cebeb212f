package ledger

import (
	"strings"
	"sync"
	"time"

	"stoktakip-backend/internal/models"
	"stoktakip-backend/internal/storage"

	"go.uber.org/zap"
)

// BackupVersion: yedek belgesinin format sürümü.
const BackupVersion = "2.0"

// BackupDoc: dışa/içe aktarılan tam yedek belgesi. İçe aktarımda stock
// zorunludur, sales boş olabilir.
type BackupDoc struct {
	Stock        []models.StockItem  `json:"stock"`
	Sales        []models.SaleRecord `json:"sales"`
	ExportDate   time.Time           `json:"exportDate"`
	ExchangeRate float64             `json:"exchangeRate"`
	Version      string              `json:"version"`
}

// ImportRow: içe aktarım dosyasından çözümlenmiş tek satır.
type ImportRow struct {
	Name string
	Qty  int
	Cost float64
	Sell float64
}

// ImportResult: satır bazlı içe aktarımın özeti.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Coordinator: iki ledger'ın tek yazarı. Satış kaydı (stok düş + kayıt
// ekle) ve geri alma (stok geri ver + kayıt sil) çiftlerini tek birim
// olarak uygular; yarım kalan çiftte kalan yarıyı telafi eder.
//
// HTTP katmanı bu operasyonları eşzamanlı çağırabildiği için
// oku-değiştir-yaz dizileri mutex ile korunur.
type Coordinator struct {
	mu           sync.Mutex
	store        storage.Store
	stock        StockLedger
	sales        SalesLedger
	exchangeRate float64
}

func NewCoordinator(store storage.Store, exchangeRate float64) *Coordinator {
	return &Coordinator{
		store:        store,
		stock:        StockLedger{store: store},
		sales:        SalesLedger{store: store},
		exchangeRate: exchangeRate,
	}
}

// Mode: seçilmiş backend (durable/fallback).
func (c *Coordinator) Mode() storage.Mode { return c.store.Mode() }

// ExchangeRate: sabit USD kuru.
func (c *Coordinator) ExchangeRate() float64 { return c.exchangeRate }

// StockItems: stok koleksiyonunun anlık görüntüsü. Tüketiciler (rapor,
// export, UI) yalnızca bu tür okumaları kullanır, doğrudan yazamaz.
func (c *Coordinator) StockItems() ([]models.StockItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stock.List()
}

func (c *Coordinator) StockItem(name string) (models.StockItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stock.Get(name)
}

// Sales: satış koleksiyonunun anlık görüntüsü.
func (c *Coordinator) Sales() ([]models.SaleRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sales.List()
}

// UpsertShipment: manuel sevkiyat girişi (ekle-veya-birleştir).
func (c *Coordinator) UpsertShipment(name string, qty int, cost, sell float64) (models.StockItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, err := c.stock.UpsertShipment(name, qty, cost, sell)
	if err != nil {
		return models.StockItem{}, err
	}
	shipmentsRecorded.Inc()
	return item, nil
}

// DeleteStockItem: ürünü siler; geçmiş satışlar korunur.
func (c *Coordinator) DeleteStockItem(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stock.DeleteItem(name)
}

// RecordSale: satışı kaydeder. Doğrulama geçmeden hiçbir mutasyon
// yapılmaz; stok düşümü ve satış kaydı tek birim olarak uygulanır.
// Başarıda atanan satış kimliğini döner.
func (c *Coordinator) RecordSale(staff, itemName string, qty int, sellPrice float64) (models.SaleRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return models.SaleRecord{}, validationErr("ürün adı boş olamaz")
	}
	if qty <= 0 {
		return models.SaleRecord{}, validationErr("adet 0'dan büyük bir tamsayı olmalı")
	}
	if sellPrice <= 0 {
		return models.SaleRecord{}, validationErr("satış fiyatı 0'dan büyük olmalı")
	}

	item, err := c.stock.Get(itemName)
	if err != nil {
		return models.SaleRecord{}, err
	}
	if item.Qty < qty {
		return models.SaleRecord{}, &Error{
			Kind:    KindInsufficientStock,
			Message: "stok yetersiz: " + itemName,
		}
	}

	staff = strings.TrimSpace(staff)
	if staff == "" {
		staff = models.StaffUnknown
	}

	rec := models.SaleRecord{
		Staff:     staff,
		Name:      item.Name,
		Qty:       qty,
		SellPrice: sellPrice,
		Cost:      item.Cost, // satış anındaki alış fiyatı sabitlenir
		Date:      time.Now(),
		Revenue:   float64(qty) * sellPrice,
		Profit:    float64(qty) * (sellPrice - item.Cost),
	}

	// Uygula: stok düş + kayıt ekle. Ekleme başarısız olursa düşülen
	// adet telafi edilir ve hata PartialCommit olarak raporlanır.
	if err := c.stock.AdjustQuantity(item.Name, -qty); err != nil {
		return models.SaleRecord{}, err
	}
	id, err := c.sales.Append(rec)
	if err != nil {
		if rbErr := c.stock.AdjustQuantity(item.Name, qty); rbErr != nil {
			zap.S().Warnw("Satış telafisi de başarısız, stok tutarsız kalmış olabilir",
				"item", item.Name, "qty", qty, "error", rbErr)
		}
		return models.SaleRecord{}, &Error{Kind: KindPartialCommit, Message: "satış kaydedilemedi", Err: err}
	}
	rec.ID = id

	salesRecorded.Inc()
	return rec, nil
}

// UndoSale: satışı geri alır: stok adedi iade edilir, kayıt silinir.
// Ürün bu arada silindiyse adet iadesi sessizce atlanır. Aynı kimlik
// ikinci kez geri alınamaz; kayıt artık olmadığından NotFound döner.
func (c *Coordinator) UndoSale(id uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, err := c.sales.Get(id)
	if err != nil {
		return err
	}

	restored := false
	if err := c.stock.AdjustQuantity(rec.Name, rec.Qty); err != nil {
		if KindOf(err) != KindNotFound {
			return err
		}
		// ürün silinmiş; satış kaydı yine de kaldırılır
	} else {
		restored = true
	}

	if err := c.sales.Remove(id); err != nil {
		if restored {
			if rbErr := c.stock.AdjustQuantity(rec.Name, -rec.Qty); rbErr != nil {
				zap.S().Warnw("Geri alma telafisi de başarısız, stok tutarsız kalmış olabilir",
					"item", rec.Name, "qty", rec.Qty, "error", rbErr)
			}
		}
		return &Error{Kind: KindPartialCommit, Message: "satış geri alınamadı", Err: err}
	}

	salesUndone.Inc()
	return nil
}

// ImportStock: çözümlenmiş satırları tek tek upsert kuralıyla uygular.
// Doğrulamadan geçemeyen satır atlanır ve sayılır, içe aktarımı durdurmaz;
// her geçerli satır kendi başına atomiktir.
func (c *Coordinator) ImportStock(rows []ImportRow) (ImportResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var res ImportResult
	for _, row := range rows {
		if _, err := c.stock.UpsertShipment(row.Name, row.Qty, row.Cost, row.Sell); err != nil {
			if KindOf(err) == KindValidation {
				res.Skipped++
				importRowsSkipped.Inc()
				continue
			}
			return res, err
		}
		res.Imported++
	}
	return res, nil
}

// ExportBackup: iki ledger'ın tam yedeği.
func (c *Coordinator) ExportBackup() (BackupDoc, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stock, err := c.stock.List()
	if err != nil {
		return BackupDoc{}, err
	}
	sales, err := c.sales.List()
	if err != nil {
		return BackupDoc{}, err
	}
	return BackupDoc{
		Stock:        stock,
		Sales:        sales,
		ExportDate:   time.Now(),
		ExchangeRate: c.exchangeRate,
		Version:      BackupVersion,
	}, nil
}

// ImportBackup: iki ledger'ı toptan değiştirir (birleştirme değil).
// stock alanı zorunludur; sales verilmezse boş kabul edilir.
func (c *Coordinator) ImportBackup(doc BackupDoc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if doc.Stock == nil {
		return validationErr("yedek dosyasında 'stock' listesi zorunlu")
	}
	for _, item := range doc.Stock {
		if strings.TrimSpace(item.Name) == "" {
			return validationErr("yedekte adı boş stok kaydı var")
		}
	}

	if err := c.stock.replaceAll(doc.Stock); err != nil {
		return err
	}
	if doc.Sales == nil {
		doc.Sales = []models.SaleRecord{}
	}
	return c.sales.ReplaceAll(doc.Sales)
}
