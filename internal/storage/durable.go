package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stoktakip-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DurableStore: gorm üzerinden kalıcı veritabanı (sqlite veya postgres).
type DurableStore struct {
	db *gorm.DB
}

// OpenDurable: veritabanını açar ve şemayı migrate eder. Açılış veya
// migration hatası fallback'e geçiş sebebidir (bkz. Open).
func OpenDurable(driver, dsn string) (*DurableStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		// düz dosya yolu verildiyse klasörü hazırla, yoksa açılış
		// gereksiz yere fallback'e düşer
		if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("veritabanı klasörü oluşturulamadı: %w", err)
			}
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("bilinmeyen veritabanı sürücüsü: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	if err := db.AutoMigrate(&models.StockItem{}, &models.SaleRecord{}); err != nil {
		return nil, fmt.Errorf("migration başarısız: %w", err)
	}

	return &DurableStore{db: db}, nil
}

func (s *DurableStore) GetStockItem(name string) (models.StockItem, error) {
	var item models.StockItem
	err := s.db.First(&item, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.StockItem{}, ErrNotFound
	}
	if err != nil {
		return models.StockItem{}, fmt.Errorf("stok okunamadı: %w", err)
	}
	return item, nil
}

func (s *DurableStore) ListStockItems() ([]models.StockItem, error) {
	var items []models.StockItem
	if err := s.db.Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("stok listelenemedi: %w", err)
	}
	return items, nil
}

func (s *DurableStore) PutStockItem(item models.StockItem) error {
	// Ekle-veya-üzerine-yaz: aynı isim varsa tüm alanlar güncellenir
	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("stok yazılamadı: %w", err)
	}
	return nil
}

func (s *DurableStore) DeleteStockItem(name string) error {
	res := s.db.Delete(&models.StockItem{}, "name = ?", name)
	if res.Error != nil {
		return fmt.Errorf("stok silinemedi: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DurableStore) ClearStock() error {
	if err := s.db.Where("1 = 1").Delete(&models.StockItem{}).Error; err != nil {
		return fmt.Errorf("stok temizlenemedi: %w", err)
	}
	return nil
}

func (s *DurableStore) GetSale(id uint) (models.SaleRecord, error) {
	var rec models.SaleRecord
	err := s.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SaleRecord{}, ErrNotFound
	}
	if err != nil {
		return models.SaleRecord{}, fmt.Errorf("satış okunamadı: %w", err)
	}
	return rec, nil
}

func (s *DurableStore) ListSales() ([]models.SaleRecord, error) {
	var recs []models.SaleRecord
	if err := s.db.Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("satışlar listelenemedi: %w", err)
	}
	return recs, nil
}

func (s *DurableStore) AppendSale(rec models.SaleRecord) (uint, error) {
	rec.ID = 0 // kimliği her zaman veritabanı atar
	if err := s.db.Create(&rec).Error; err != nil {
		return 0, fmt.Errorf("satış yazılamadı: %w", err)
	}
	return rec.ID, nil
}

func (s *DurableStore) DeleteSale(id uint) error {
	res := s.db.Delete(&models.SaleRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("satış silinemedi: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DurableStore) ClearSales() error {
	if err := s.db.Where("1 = 1").Delete(&models.SaleRecord{}).Error; err != nil {
		return fmt.Errorf("satışlar temizlenemedi: %w", err)
	}
	return nil
}

func (s *DurableStore) ReplaceSales(recs []models.SaleRecord) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.SaleRecord{}).Error; err != nil {
			return err
		}
		for i := range recs {
			// kimlikler yedekten geldiği gibi korunur
			if err := tx.Create(&recs[i]).Error; err != nil {
				return err
			}
		}
		// postgres'te sequence açık kimlikli insert ile ilerlemez,
		// sonraki AppendSale'lerin çakışmaması için elle eşitlenir
		if tx.Dialector.Name() == "postgres" {
			return tx.Exec(
				"SELECT setval(pg_get_serial_sequence('sale_records','id'), (SELECT COALESCE(MAX(id),1) FROM sale_records))",
			).Error
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("satışlar değiştirilemedi: %w", err)
	}
	return nil
}

func (s *DurableStore) Mode() Mode { return ModeDurable }

func (s *DurableStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
