package ledger

import (
	"errors"
	"strings"

	"stoktakip-backend/internal/models"
	"stoktakip-backend/internal/storage"
)

// StockLedger: stok koleksiyonunun sahibi. Koordinatör dışından yalnızca
// okunur; tüm yazmalar koordinatör üzerinden gelir.
type StockLedger struct {
	store storage.Store
}

// UpsertShipment: gelen sevkiyatı isimle birleştirir. Ürün varsa adet
// eklenir ve fiyatlar üzerine yazılır, yoksa yeni kayıt açılır.
// Satış fiyatının alış fiyatının altında olması burada engellenmez;
// uyarı verip vermemek çağıran katmanın işidir.
func (l *StockLedger) UpsertShipment(name string, qty int, cost, sell float64) (models.StockItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.StockItem{}, validationErr("ürün adı boş olamaz")
	}
	if qty <= 0 {
		return models.StockItem{}, validationErr("adet 0'dan büyük olmalı")
	}
	if cost <= 0 || sell <= 0 {
		return models.StockItem{}, validationErr("alış ve satış fiyatı 0'dan büyük olmalı")
	}

	item, err := l.store.GetStockItem(name)
	switch {
	case err == nil:
		item.Qty += qty
		item.Cost = cost
		item.Sell = sell
	case errors.Is(err, storage.ErrNotFound):
		item = models.StockItem{Name: name, Qty: qty, Cost: cost, Sell: sell}
	default:
		return models.StockItem{}, storageErr("stok okunamadı", err)
	}

	if err := l.store.PutStockItem(item); err != nil {
		return models.StockItem{}, storageErr("stok yazılamadı", err)
	}
	return item, nil
}

// DeleteItem: ürünü siler. Ürüne referans veren geçmiş satış kayıtları
// olduğu gibi kalır.
func (l *StockLedger) DeleteItem(name string) error {
	err := l.store.DeleteStockItem(name)
	if errors.Is(err, storage.ErrNotFound) {
		return notFoundErr("ürün bulunamadı: %s", name)
	}
	if err != nil {
		return storageErr("stok silinemedi", err)
	}
	return nil
}

// AdjustQuantity: satış/geri alma deltalarını uygular. Negatifliği
// denetlemez; çağıranın önceden kontrol etmesi beklenir.
func (l *StockLedger) AdjustQuantity(name string, delta int) error {
	item, err := l.store.GetStockItem(name)
	if errors.Is(err, storage.ErrNotFound) {
		return notFoundErr("ürün bulunamadı: %s", name)
	}
	if err != nil {
		return storageErr("stok okunamadı", err)
	}
	item.Qty += delta
	if err := l.store.PutStockItem(item); err != nil {
		return storageErr("stok yazılamadı", err)
	}
	return nil
}

func (l *StockLedger) Get(name string) (models.StockItem, error) {
	item, err := l.store.GetStockItem(name)
	if errors.Is(err, storage.ErrNotFound) {
		return models.StockItem{}, notFoundErr("ürün bulunamadı: %s", name)
	}
	if err != nil {
		return models.StockItem{}, storageErr("stok okunamadı", err)
	}
	return item, nil
}

func (l *StockLedger) List() ([]models.StockItem, error) {
	items, err := l.store.ListStockItems()
	if err != nil {
		return nil, storageErr("stok listelenemedi", err)
	}
	return items, nil
}

func (l *StockLedger) replaceAll(items []models.StockItem) error {
	if err := l.store.ClearStock(); err != nil {
		return storageErr("stok temizlenemedi", err)
	}
	for _, item := range items {
		if err := l.store.PutStockItem(item); err != nil {
			return storageErr("stok yazılamadı", err)
		}
	}
	return nil
}
