package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsAllGroups(t *testing.T) {
	catalog, err := New()
	require.NoError(t, err)

	groups := catalog.Groups()
	require.Len(t, groups, 5)

	ids := make([]string, 0, len(groups))
	for _, group := range groups {
		ids = append(ids, group.ID)
		assert.NotEmpty(t, group.Name)
		assert.NotEmpty(t, group.Description)
	}
	assert.Equal(t, []string{"carports", "patio-covers", "gates", "fences", "entry-doors"}, ids)
}

func TestCatalog_Group(t *testing.T) {
	catalog, err := New()
	require.NoError(t, err)

	carports, ok := catalog.Group("carports")
	require.True(t, ok)
	assert.Equal(t, "Aluminum Carports", carports.Name)
	assert.NotEmpty(t, carports.SeriesDetails)

	_, ok = catalog.Group("sheds")
	assert.False(t, ok)
}

func TestCatalog_Summary(t *testing.T) {
	catalog, err := New()
	require.NoError(t, err)

	summary := catalog.Summary()
	assert.Contains(t, summary, "KunkelWorks")
	assert.Contains(t, summary, "## Aluminum Carports")
	assert.Contains(t, summary, "### U-Style Flat")
	assert.Contains(t, summary, "Price range:")
}

func TestCatalog_VisualizerCarports(t *testing.T) {
	catalog, err := New()
	require.NoError(t, err)

	options := catalog.VisualizerCarports()
	require.NotEmpty(t, options)

	for _, option := range options {
		assert.NotEmpty(t, option.Slug)
		assert.NotEmpty(t, option.Name)
	}
}

func TestCatalog_Customization(t *testing.T) {
	catalog, err := New()
	require.NoError(t, err)

	customization := catalog.Customization()
	assert.Contains(t, customization.HouseStyles, "Minimalist")
	assert.Contains(t, customization.MetalColors, "Urban Gray (UC)")
	assert.Contains(t, customization.RoofPanelTypes, "Polycarbonate (Lexan)")
	assert.NotEmpty(t, customization.Placements)
}
