package market

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"agribot/entities"
	"agribot/pkg/market/repositoryImp"
)

func writeSheet(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "prices.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadPricesXLSX(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"Crop", "Date", "Price", "VolumeTons"},
		{"Rice", "2024-02-01", 51.2, 1200},
		{"Rice", "2024-03-01", 52.75, 1245},
		{"Wheat", "2024-03-01", 45.5, 2180},
		{"Bad", "not-a-date", 10.0, 5}, // skipped
		{"", "2024-03-01", 9.0, 5},     // skipped
	})

	rows, err := LoadPricesXLSX(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Rice", rows[0].Crop)
	require.NotNil(t, rows[0].VolumeTons)
	assert.Equal(t, 1200.0, *rows[0].VolumeTons)
}

func TestLoadPricesXLSXMissingColumns(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"Commodity", "Close"},
		{"Rice", 51.2},
	})
	_, err := LoadPricesXLSX(path)
	assert.Error(t, err)
}

func TestSeedIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.MarketPrice{}))
	repo := repositoryImp.New(db)

	path := writeSheet(t, [][]any{
		{"Crop", "Date", "Price"},
		{"Rice", "2024-02-01", 51.2},
		{"Rice", "2024-03-01", 52.75},
		{"Corn", "2024-03-01", 38.2},
	})

	n, err := Seed(repo, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = Seed(repo, path)
	require.NoError(t, err)
	assert.Zero(t, n, "populated table is left alone")

	quotes, err := repo.Latest()
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	// crops come back sorted
	assert.Equal(t, "Corn", quotes[0].Crop)
	assert.Equal(t, "Rice", quotes[1].Crop)
	assert.Equal(t, 52.75, quotes[1].Price)
	assert.InDelta(t, (52.75-51.2)/51.2*100, quotes[1].ChangePct, 1e-9)
	assert.Zero(t, quotes[0].ChangePct, "single observation has no change")
}
