package inventory

import (
	"stoktakip-backend/internal/httperr"
	"stoktakip-backend/internal/ledger"
	"stoktakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateShipmentRequest: Sevkiyat girişi (ekle-veya-birleştir)
type CreateShipmentRequest struct {
	Name string  `json:"name"`
	Qty  int     `json:"qty"`
	Cost float64 `json:"cost"`
	Sell float64 `json:"sell"`
}

type ShipmentResponse struct {
	Item    models.StockItem `json:"item"`
	Warning string           `json:"warning,omitempty"`
}

// POST /api/stock
func CreateShipmentHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateShipmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		item, err := co.UpsertShipment(body.Name, body.Qty, body.Cost, body.Sell)
		if err != nil {
			return httperr.From(err)
		}

		resp := ShipmentResponse{Item: item}
		// Zararına satış engellenmez, sadece uyarılır
		if body.Sell < body.Cost {
			resp.Warning = "Satış fiyatı alış fiyatının altında"
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// GET /api/stock
func ListStockHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := co.StockItems()
		if err != nil {
			return httperr.From(err)
		}
		return c.JSON(items)
	}
}

// DELETE /api/stock/:name
func DeleteStockHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün adı zorunlu")
		}
		if err := co.DeleteStockItem(name); err != nil {
			return httperr.From(err)
		}
		return c.JSON(fiber.Map{"deleted": name})
	}
}
