package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"stoktakip-backend/internal/ledger"

	"github.com/xuri/excelize/v2"
)

// columnIndexes: başlık satırındaki sütun konumları.
type columnIndexes struct {
	name, qty, cost, sell int
}

// resolveColumns: başlık satırını büyük/küçük harf duyarsız, alt-dizgi
// eşleşmesiyle çözer: item/name, qty/quantity, cost, sell/price.
func resolveColumns(header []string) (columnIndexes, error) {
	cols := columnIndexes{name: -1, qty: -1, cost: -1, sell: -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case cols.name == -1 && (strings.Contains(h, "item") || strings.Contains(h, "name")):
			cols.name = i
		case cols.qty == -1 && (strings.Contains(h, "qty") || strings.Contains(h, "quantity")):
			cols.qty = i
		case cols.cost == -1 && strings.Contains(h, "cost"):
			cols.cost = i
		case cols.sell == -1 && (strings.Contains(h, "sell") || strings.Contains(h, "price")):
			cols.sell = i
		}
	}
	if cols.name == -1 || cols.qty == -1 || cols.cost == -1 || cols.sell == -1 {
		return cols, fmt.Errorf("başlık satırında item/name, qty, cost ve sell/price sütunları bulunmalı")
	}
	return cols, nil
}

// parseRow: tek veri satırını çözer. Eksik alan, sayısal olmayan değer
// veya pozitif olmayan adet/alış fiyatı satırın atlanma sebebidir.
func parseRow(cols columnIndexes, row []string) (ledger.ImportRow, bool) {
	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	name := cell(cols.name)
	if name == "" {
		return ledger.ImportRow{}, false
	}
	qty, err := strconv.Atoi(cell(cols.qty))
	if err != nil || qty <= 0 {
		return ledger.ImportRow{}, false
	}
	cost, err := strconv.ParseFloat(cell(cols.cost), 64)
	if err != nil || cost <= 0 {
		return ledger.ImportRow{}, false
	}
	sell, err := strconv.ParseFloat(cell(cols.sell), 64)
	if err != nil {
		return ledger.ImportRow{}, false
	}

	return ledger.ImportRow{Name: name, Qty: qty, Cost: cost, Sell: sell}, true
}

// parseTable: başlık + veri satırlarından içe aktarılabilir satırları
// çıkarır. Bozuk satırlar atlanır ve sayılır, tümünü iptal etmez.
func parseTable(rows [][]string) ([]ledger.ImportRow, int, error) {
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("dosya boş")
	}
	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, 0, err
	}

	var (
		parsed  []ledger.ImportRow
		skipped int
	)
	for _, row := range rows[1:] {
		r, ok := parseRow(cols, row)
		if !ok {
			skipped++
			continue
		}
		parsed = append(parsed, r)
	}
	return parsed, skipped, nil
}

// ParseCSV: virgülle ayrılmış içe aktarım dosyası.
func ParseCSV(r io.Reader) ([]ledger.ImportRow, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // eksik sütunlu satırlar okunur, satır bazında atlanır
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("CSV okunamadı: %v", err)
	}
	return parseTable(rows)
}

// ParseXLSX: Excel içe aktarım dosyası; ilk sheet okunur.
func ParseXLSX(r io.Reader) ([]ledger.ImportRow, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("Excel dosyası okunamadı: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, fmt.Errorf("Excel dosyasında sheet bulunamadı")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, fmt.Errorf("Sheet okunamadı: %v", err)
	}
	return parseTable(rows)
}
