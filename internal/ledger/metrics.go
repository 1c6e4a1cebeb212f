package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	salesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stoktakip_sales_recorded_total",
		Help: "Kaydedilen satış sayısı.",
	})
	salesUndone = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stoktakip_sales_undone_total",
		Help: "Geri alınan satış sayısı.",
	})
	shipmentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stoktakip_shipments_total",
		Help: "İşlenen sevkiyat (upsert) sayısı.",
	})
	importRowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stoktakip_import_rows_skipped_total",
		Help: "İçe aktarımda atlanan bozuk satır sayısı.",
	})
)
