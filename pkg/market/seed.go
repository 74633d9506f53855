package market

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"agribot/entities"
	"agribot/pkg/market/repository"
)

// LoadPricesXLSX reads a commodity price sheet. Expected header row:
// Crop | Date | Price | VolumeTons (volume optional). Rows with a bad crop,
// date or price are skipped; a sheet that yields nothing is an error.
func LoadPricesXLSX(path string) ([]entities.MarketPrice, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("price sheet has no data rows")
	}

	norm := func(s string) string {
		s = strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF")) // BOM
		return strings.ToLower(strings.ReplaceAll(s, " ", ""))
	}
	col := map[string]int{}
	for i, h := range rows[0] {
		col[norm(h)] = i
	}
	find := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := col[k]; ok {
				return idx
			}
		}
		return -1
	}
	cCrop := find("crop", "commodity", "name")
	cDate := find("date", "day")
	cPrice := find("price", "price_usd", "close")
	cVol := find("volumetons", "volume", "volume_tons")
	if cCrop == -1 || cDate == -1 || cPrice == -1 {
		return nil, errors.New("price sheet missing required columns: Crop, Date, Price")
	}

	get := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var out []entities.MarketPrice
	for _, row := range rows[1:] {
		crop := get(row, cCrop)
		date := get(row, cDate)
		price, err := strconv.ParseFloat(get(row, cPrice), 64)
		if crop == "" || err != nil {
			continue
		}
		if _, derr := time.Parse("2006-01-02", date); derr != nil {
			continue
		}
		p := entities.MarketPrice{Crop: crop, Date: date, Price: price}
		if cVol != -1 {
			if v, verr := strconv.ParseFloat(get(row, cVol), 64); verr == nil {
				p.VolumeTons = &v
			}
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.New("price sheet yielded no usable rows")
	}
	return out, nil
}

// Seed loads the sheet into an empty price table. A table that already has
// rows is left alone so restarts don't duplicate history.
func Seed(repo repository.MarketRepository, xlsxPath string) (int, error) {
	n, err := repo.Count()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	rows, err := LoadPricesXLSX(xlsxPath)
	if err != nil {
		return 0, err
	}
	if err := repo.BulkInsert(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
