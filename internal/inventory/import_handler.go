package inventory

import (
	"path/filepath"
	"strings"

	"stoktakip-backend/internal/httperr"
	"stoktakip-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
)

// POST /api/stock/import (multipart, alan adı: file)
// CSV veya XLSX kabul edilir. Geçerli satırlar manuel sevkiyatla aynı
// upsert kuralıyla uygulanır; bozuk satırlar atlanıp sayılır.
func ImportStockHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenmedi ('file' alanı zorunlu)")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya açılamadı")
		}
		defer file.Close()

		var (
			rows       []ledger.ImportRow
			parseSkips int
			parseErr   error
		)
		switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
		case ".xlsx":
			rows, parseSkips, parseErr = ParseXLSX(file)
		case ".csv", ".txt":
			rows, parseSkips, parseErr = ParseCSV(file)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Desteklenmeyen dosya türü (csv veya xlsx olmalı)")
		}
		if parseErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, parseErr.Error())
		}

		res, err := co.ImportStock(rows)
		if err != nil {
			return httperr.From(err)
		}
		res.Skipped += parseSkips

		return c.JSON(res)
	}
}
