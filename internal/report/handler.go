package report

import (
	"bytes"

	"stoktakip-backend/internal/httperr"
	"stoktakip-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// SummaryResponse: Toplam ciro/kâr ve sabit kurla USD karşılıkları.
type SummaryResponse struct {
	SaleCount     int     `json:"sale_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalProfit   float64 `json:"total_profit"`
	StockValue    float64 `json:"stock_value"` // mevcut adet * alış fiyatı
	ExchangeRate  float64 `json:"exchange_rate"`
	RevenueUSD    float64 `json:"revenue_usd"`
	ProfitUSD     float64 `json:"profit_usd"`
	StockValueUSD float64 `json:"stock_value_usd"`
}

// GET /api/reports/summary
func SummaryHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := co.StockItems()
		if err != nil {
			return httperr.From(err)
		}
		recs, err := co.Sales()
		if err != nil {
			return httperr.From(err)
		}

		resp := SummaryResponse{
			SaleCount:    len(recs),
			ExchangeRate: co.ExchangeRate(),
		}
		for _, rec := range recs {
			resp.TotalRevenue += rec.Revenue
			resp.TotalProfit += rec.Profit
		}
		for _, item := range items {
			resp.StockValue += float64(item.Qty) * item.Cost
		}
		rate := co.ExchangeRate()
		resp.RevenueUSD = resp.TotalRevenue / rate
		resp.ProfitUSD = resp.TotalProfit / rate
		resp.StockValueUSD = resp.StockValue / rate

		return c.JSON(resp)
	}
}

// GET /api/reports/export
// Stok ve satışları iki sheet'li bir Excel dosyası olarak indirir.
func ExportHandler(co *ledger.Coordinator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := co.StockItems()
		if err != nil {
			return httperr.From(err)
		}
		recs, err := co.Sales()
		if err != nil {
			return httperr.From(err)
		}

		f := excelize.NewFile()
		defer func() { _ = f.Close() }()

		stockSheet := f.GetSheetName(f.GetActiveSheetIndex())
		if err := f.SetSheetName(stockSheet, "Stok"); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
		}
		stockSheet = "Stok"

		header := []interface{}{"name", "qty", "cost", "sell"}
		if err := f.SetSheetRow(stockSheet, "A1", &header); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı (başlık)")
		}
		row := 2
		for _, item := range items {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı (hücre)")
			}
			excelRow := []interface{}{item.Name, item.Qty, item.Cost, item.Sell}
			if err := f.SetSheetRow(stockSheet, cell, &excelRow); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı (satır)")
			}
			row++
		}

		salesSheet := "Satışlar"
		if _, err := f.NewSheet(salesSheet); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
		}
		salesHeader := []interface{}{"id", "date", "staff", "name", "qty", "sellPrice", "cost", "revenue", "profit"}
		if err := f.SetSheetRow(salesSheet, "A1", &salesHeader); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı (başlık)")
		}
		row = 2
		for _, rec := range recs {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı (hücre)")
			}
			excelRow := []interface{}{
				rec.ID,
				rec.Date.Format("2006-01-02 15:04:05"),
				rec.Staff,
				rec.Name,
				rec.Qty,
				rec.SellPrice,
				rec.Cost,
				rec.Revenue,
				rec.Profit,
			}
			if err := f.SetSheetRow(salesSheet, cell, &excelRow); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı (satır)")
			}
			row++
		}

		buf := &bytes.Buffer{}
		if err := f.Write(buf); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor dosyası yazılamadı")
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", `attachment; filename="stoktakip-rapor.xlsx"`)
		return c.Send(buf.Bytes())
	}
}
