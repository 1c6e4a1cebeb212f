package models

import "time"

// StaffUnknown: personel alanı boş bırakıldığında kullanılan değer
const StaffUnknown = "bilinmiyor"

// SaleRecord: Tek bir satış işlemi. Revenue ve Profit satış anında
// hesaplanıp kaydedilir; hesaplama mantığı sonradan değişse bile
// geçmiş satışlar sabit kalır.
type SaleRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Staff     string    `gorm:"size:100;index" json:"staff"`
	Name      string    `gorm:"size:100;index;not null" json:"name"` // StockItem.Name referansı
	Qty       int       `gorm:"not null" json:"qty"`
	SellPrice float64   `gorm:"not null" json:"sellPrice"`
	Cost      float64   `gorm:"not null" json:"cost"` // satış anındaki alış fiyatı
	Date      time.Time `gorm:"index;not null" json:"date"`
	Revenue   float64   `gorm:"not null" json:"revenue"` // Qty * SellPrice
	Profit    float64   `gorm:"not null" json:"profit"`  // Qty * (SellPrice - Cost)
}
