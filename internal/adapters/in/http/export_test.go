package http

import (
	"bytes"
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestUnitsWorkbook(t *testing.T) {
	// Given
	items := []queries.UnitListItem{
		{
			ID:              7,
			Serial:          "SN-7",
			ModelName:       "RB951",
			VendorName:      "MikroTik",
			Amount:          1,
			StatusLabel:     "Installed",
			OwnerName:       "Main Telecom",
			StockName:       "Van 3",
			ResponsibleName: "Petrov P. S.",
			CreatedAt:       time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{ID: 8, Amount: 250, ModelName: "Patch cord 1m", StatusLabel: "New equipment"},
	}

	// When
	raw, err := unitsWorkbook(items)

	// Then
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{exportSheet}, f.GetSheetList())
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Serial", rows[0][1])
	assert.Equal(t, []string{"7", "SN-7", "RB951", "MikroTik", "1", "Installed", "Main Telecom", "Van 3",
		"Petrov P. S.", "", "2024-03-01 10:30"}, rows[1])
	assert.Equal(t, "250", rows[2][4])
}

func TestUnitsWorkbook_Empty(t *testing.T) {
	raw, err := unitsWorkbook(nil)

	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
