package models

import "time"

// StockItem: Stoktaki bir ürün. İsim benzersiz anahtardır; satış kayıtları
// bu isme referans verir (silinen ürünün geçmiş satışları korunur).
type StockItem struct {
	Name      string    `gorm:"primaryKey;size:100" json:"name"`
	Qty       int       `gorm:"not null" json:"qty"`  // mevcut adet, negatif olamaz
	Cost      float64   `gorm:"not null" json:"cost"` // birim alış fiyatı
	Sell      float64   `gorm:"not null" json:"sell"` // birim satış fiyatı (son kullanılan)
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
