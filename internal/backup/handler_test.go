package backup

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stoktakip-backend/internal/ledger"
	"stoktakip-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *ledger.Coordinator) {
	t.Helper()
	store, err := storage.OpenFallback(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFallback: %v", err)
	}
	co := ledger.NewCoordinator(store, 1500)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/api/backup", ExportHandler(co))
	app.Post("/api/backup", ImportHandler(co))
	return app, co
}

func TestBackupExportImportOverHTTP(t *testing.T) {
	app, co := newTestApp(t)
	if _, err := co.UpsertShipment("Cimento", 50, 8000, 10000); err != nil {
		t.Fatalf("UpsertShipment: %v", err)
	}
	if _, err := co.RecordSale("Ali", "Cimento", 5, 10000); err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/backup", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("export 200 olmalıydı: %d", resp.StatusCode)
	}

	var doc ledger.BackupDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("yedek çözümlenemedi: %v", err)
	}
	if len(doc.Stock) != 1 || len(doc.Sales) != 1 || doc.Version != ledger.BackupVersion {
		t.Fatalf("beklenmeyen yedek: %+v", doc)
	}

	// JSON üzerinden geri yükleme iki ledger'ı aynen kurar
	body, _ := json.Marshal(doc)
	req := httptest.NewRequest(http.MethodPost, "/api/backup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	importResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if importResp.StatusCode != fiber.StatusOK {
		t.Fatalf("import 200 olmalıydı: %d", importResp.StatusCode)
	}

	items, _ := co.StockItems()
	recs, _ := co.Sales()
	if len(items) != 1 || items[0].Qty != 45 {
		t.Fatalf("stok geri yüklenemedi: %+v", items)
	}
	if len(recs) != 1 || recs[0].ID != doc.Sales[0].ID {
		t.Fatalf("satış kimlikleri korunmadı: %+v", recs)
	}
}

func TestBackupImportWithoutStock(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/backup", bytes.NewReader([]byte(`{"sales":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("stock alanı olmadan 400 bekleniyordu: %d", resp.StatusCode)
	}
}
