package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

var sampleEntries = []entities.CatalogEntry{
	{
		Brand:                "ResMed",
		Model:                "AirFit P30i",
		Category:             entities.CategoryNasalPillows,
		TubeUp:               true,
		CushionMaterial:      entities.CushionSilicone,
		FacialHairCompatible: true,
		SkinFriendly:         true,
		Description:          "Tube-up nasal pillows, perfect for side/stomach sleepers",
		KeyFeatures:          []string{"Tube-up design", "Seal retention"},
		BestFor:              []string{"Side sleepers", "High movement"},
		AvoidIf:              []string{},
	},
	{
		Brand:           "ResMed",
		Model:           "AirTouch F20",
		Category:        entities.CategoryFullFace,
		CushionMaterial: entities.CushionMemoryFoam,
		SkinFriendly:    true,
		MagneticClips:   true,
		KeyFeatures:     []string{"Memory foam cushion"},
		BestFor:         []string{"Sensitive skin"},
		AvoidIf:         []string{"Facial hair (needs liners)"},
		ExternalLink:    "https://www.resmed.com",
	},
}

func TestReadCSV_FlexibleHeader(t *testing.T) {
	input := strings.Join([]string{
		"Brand,Model,Category,Tube Up,Skin-Friendly,Magnetic Clips,Best For",
		"Philips,DreamWear Nasal,nasal mask,yes,x,no,Side sleepers | Claustrophobic patients",
		",,,,,,",
		"ResMed,AirFit P10,Nasal Pillows,0,1,,",
	}, "\n")

	entries, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, entities.CategoryNasalMask, entries[0].Category)
	assert.True(t, entries[0].TubeUp)
	assert.True(t, entries[0].SkinFriendly)
	assert.False(t, entries[0].MagneticClips)
	assert.Equal(t, []string{"Side sleepers", "Claustrophobic patients"}, entries[0].BestFor)

	assert.Equal(t, entities.CategoryNasalPillows, entries[1].Category)
	assert.False(t, entries[1].TubeUp)
	assert.Empty(t, entries[1].BestFor)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "no header row"},
		{"missing category column", "brand,model\nResMed,AirFit N20", `missing the "category" column`},
		{"unknown category", "model,category\nAirFit N20,helmet", `row 2: model "AirFit N20": unknown category`},
		{"bad boolean", "model,category,tube_up\nAirFit N20,NASAL_MASK,maybe", "invalid boolean"},
		{"missing model", "model,category\n,FULL_FACE", "row 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestCSV_WriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "masks.csv")
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleEntries))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	entries, err := NewCSVRepository(path).LoadEntries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, entries)
}

func TestCSVRepository_MissingFile(t *testing.T) {
	_, err := NewCSVRepository(filepath.Join(t.TempDir(), "nope.csv")).LoadEntries(context.Background())
	assert.ErrorContains(t, err, "failed to open catalog")
}

func TestXLSX_WriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "masks.xlsx")
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleEntries))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	entries, err := NewXLSXRepository(path, DefaultSheet).LoadEntries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, entries)
}

func TestXLSX_FallsBackToFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]string{"Model", "Category", "Facial Hair Compatible"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]string{"FitLife Total Face", "FULL_FACE", "TRUE"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	entries, err := ReadXLSX(&buf, "Catalog")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].FacialHairCompatible)
	assert.Equal(t, entities.CategoryFullFace, entries[0].Category)
}

func TestStaticRepository_ReturnsCopy(t *testing.T) {
	repo := NewStaticRepository(sampleEntries)

	entries, err := repo.LoadEntries(context.Background())
	require.NoError(t, err)
	entries[0].Model = "changed"

	again, _ := repo.LoadEntries(context.Background())
	assert.Equal(t, "AirFit P30i", again[0].Model)
}
