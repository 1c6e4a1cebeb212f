package ledger

import (
	"errors"

	"stoktakip-backend/internal/models"
	"stoktakip-backend/internal/storage"
)

// SalesLedger: satış koleksiyonunun sahibi. Kayıtlar eklenir, tek tek geri
// alınabilir (silinir) veya yedek içe aktarımında toptan değiştirilir.
type SalesLedger struct {
	store storage.Store
}

// Append: kaydı ekler, backend'in atadığı kimliği döner.
func (l *SalesLedger) Append(rec models.SaleRecord) (uint, error) {
	id, err := l.store.AppendSale(rec)
	if err != nil {
		return 0, storageErr("satış yazılamadı", err)
	}
	return id, nil
}

// Remove: kaydı kimliğiyle siler.
func (l *SalesLedger) Remove(id uint) error {
	err := l.store.DeleteSale(id)
	if errors.Is(err, storage.ErrNotFound) {
		return notFoundErr("satış bulunamadı: %d", id)
	}
	if err != nil {
		return storageErr("satış silinemedi", err)
	}
	return nil
}

func (l *SalesLedger) Get(id uint) (models.SaleRecord, error) {
	rec, err := l.store.GetSale(id)
	if errors.Is(err, storage.ErrNotFound) {
		return models.SaleRecord{}, notFoundErr("satış bulunamadı: %d", id)
	}
	if err != nil {
		return models.SaleRecord{}, storageErr("satış okunamadı", err)
	}
	return rec, nil
}

func (l *SalesLedger) List() ([]models.SaleRecord, error) {
	recs, err := l.store.ListSales()
	if err != nil {
		return nil, storageErr("satışlar listelenemedi", err)
	}
	return recs, nil
}

// ReplaceAll: koleksiyonu temizleyip verilen kayıtları kimlikleriyle
// birlikte ekler. Yalnızca tam yedek içe aktarımında kullanılır.
func (l *SalesLedger) ReplaceAll(recs []models.SaleRecord) error {
	if err := l.store.ReplaceSales(recs); err != nil {
		return storageErr("satışlar değiştirilemedi", err)
	}
	return nil
}
