package sales

import (
	"fmt"
	"time"

	"stoktakip-backend/internal/httperr"
	"stoktakip-backend/internal/ledger"
	"stoktakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RecordSaleRequest: Satış girişi
type RecordSaleRequest struct {
	Staff     string  `json:"staff"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	SellPrice float64 `json:"sellPrice"`
}

// POST /api/sales
func RecordSaleHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		rec, err := co.RecordSale(body.Staff, body.Name, body.Qty, body.SellPrice)
		if err != nil {
			return httperr.From(err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// GET /api/sales?staff=...&name=...&from=2026-01-01&to=2026-01-31
// Raporlama ekranı için ikincil erişim yolları: personele, ürüne ve
// tarihe göre filtre. Filtreler snapshot üzerinde uygulanır.
func ListSalesHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recs, err := co.Sales()
		if err != nil {
			return httperr.From(err)
		}

		staff := c.Query("staff")
		name := c.Query("name")

		var from, to time.Time
		if s := c.Query("from"); s != "" {
			from, err = time.Parse("2006-01-02", s)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from tarihi 'YYYY-MM-DD' olmalı")
			}
		}
		if s := c.Query("to"); s != "" {
			to, err = time.Parse("2006-01-02", s)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to tarihi 'YYYY-MM-DD' olmalı")
			}
			to = to.AddDate(0, 0, 1) // gün sonuna kadar dahil
		}

		filtered := make([]models.SaleRecord, 0, len(recs))
		for _, rec := range recs {
			if staff != "" && rec.Staff != staff {
				continue
			}
			if name != "" && rec.Name != name {
				continue
			}
			if !from.IsZero() && rec.Date.Before(from) {
				continue
			}
			if !to.IsZero() && !rec.Date.Before(to) {
				continue
			}
			filtered = append(filtered, rec)
		}
		return c.JSON(filtered)
	}
}

// POST /api/sales/:id/undo
// Geri alma tekrarlanamaz: aynı kimlik ikinci kez geri alınırsa kayıt
// artık olmadığından 404 döner.
func UndoSaleHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := c.Params("id")
		var id uint
		if _, err := fmt.Sscan(idStr, &id); err != nil || id == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz satış ID")
		}

		if err := co.UndoSale(id); err != nil {
			return httperr.From(err)
		}
		return c.JSON(fiber.Map{"undone": id})
	}
}
