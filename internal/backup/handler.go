package backup

import (
	"stoktakip-backend/internal/httperr"
	"stoktakip-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
)

// GET /api/backup
// İki ledger'ın tam yedeğini tek JSON belgesi olarak indirir.
func ExportHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := co.ExportBackup()
		if err != nil {
			return httperr.From(err)
		}
		c.Set("Content-Disposition", `attachment; filename="stoktakip-yedek.json"`)
		return c.JSON(doc)
	}
}

// POST /api/backup
// Yedeği toptan geri yükler: mevcut stok ve satışların TAMAMI silinir,
// yerine yedektekiler yazılır (birleştirme yapılmaz). stock alanı
// zorunludur, sales verilmezse boş kabul edilir.
func ImportHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var doc ledger.BackupDoc
		if err := c.BodyParser(&doc); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz yedek dosyası")
		}

		if err := co.ImportBackup(doc); err != nil {
			return httperr.From(err)
		}
		return c.JSON(fiber.Map{
			"stock": len(doc.Stock),
			"sales": len(doc.Sales),
		})
	}
}
