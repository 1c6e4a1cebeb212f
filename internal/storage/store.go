package storage

import (
	"errors"

	"stoktakip-backend/internal/models"
)

// ErrNotFound: istenen anahtar koleksiyonda yok.
var ErrNotFound = errors.New("kayıt bulunamadı")

type Mode string

const (
	ModeDurable  Mode = "durable"  // gorm üzerinden kalıcı veritabanı
	ModeFallback Mode = "fallback" // tek JSON dosyasına yazılan senkron yedek
)

// Store: iki koleksiyon (stok ve satışlar) üzerinde get/list/put/delete/clear
// sözleşmesi. Stok, ürün adıyla; satışlar, backend'in atadığı ve asla tekrar
// kullanılmayan bir sıra numarasıyla anahtarlanır.
//
// Put ekle-veya-üzerine-yaz anlamındadır. Olmayan anahtar için Get ve Delete
// ErrNotFound döner; sürücü/işlem hataları sarmalanmış olarak döner.
type Store interface {
	GetStockItem(name string) (models.StockItem, error)
	ListStockItems() ([]models.StockItem, error)
	PutStockItem(item models.StockItem) error
	DeleteStockItem(name string) error
	ClearStock() error

	GetSale(id uint) (models.SaleRecord, error)
	ListSales() ([]models.SaleRecord, error)
	// AppendSale kaydı ekler ve atanan kimliği döner. Kimlikler artan
	// sırada atanır ve silinen kimlikler tekrar kullanılmaz.
	AppendSale(rec models.SaleRecord) (uint, error)
	DeleteSale(id uint) error
	ClearSales() error
	// ReplaceSales koleksiyonu temizleyip verilen kayıtları kimlikleri
	// korunarak ekler. Yalnızca tam yedek içe aktarımında kullanılır;
	// sonraki AppendSale çağrıları kaldığı yerden devam eder.
	ReplaceSales(recs []models.SaleRecord) error

	Mode() Mode
	Close() error
}
