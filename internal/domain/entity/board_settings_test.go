package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSharedBoardSettings_Pegboard(t *testing.T) {
	settings := DefaultSharedBoardSettings(ProductTypePegboard)

	assert.InDelta(t, 2450, settings.BoardWidthMm, 1e-9)
	assert.InDelta(t, 1240, settings.BoardHeightMm, 1e-9)
	assert.InDelta(t, 5, settings.MinGapMm, 1e-9)
	assert.InDelta(t, 1, settings.GroupFactor, 1e-9)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, settings.ThicknessOptions)
	assert.Equal(t, map[string]float64{
		"1": 780, "2": 1080, "3": 1380, "4": 1680, "5": 1980,
	}, settings.ThicknessPriceMap)
}

func TestDefaultSharedBoardSettings_CabinetDoor(t *testing.T) {
	settings := DefaultSharedBoardSettings(ProductTypeCabinetDoor)

	assert.InDelta(t, 2450, settings.BoardWidthMm, 1e-9)
	assert.InDelta(t, 1240, settings.BoardHeightMm, 1e-9)
	assert.Equal(t, []int{2}, settings.ThicknessOptions)
	assert.Equal(t, map[string]float64{"2": 700}, settings.ThicknessPriceMap)
}

func TestMergeSharedBoardSettings_EmptyPatchKeepsDefaults(t *testing.T) {
	defaults := DefaultSharedBoardSettings(ProductTypePegboard)

	merged := MergeSharedBoardSettings(defaults, SharedBoardSettingsPatch{})

	assert.Equal(t, defaults, merged)
}

func TestMergeSharedBoardSettings_OverridesReplaceFields(t *testing.T) {
	defaults := DefaultSharedBoardSettings(ProductTypePegboard)
	width := 3000.0
	gap := 10.0

	merged := MergeSharedBoardSettings(defaults, SharedBoardSettingsPatch{
		BoardWidthMm: &width,
		MinGapMm:     &gap,
	})

	assert.InDelta(t, 3000, merged.BoardWidthMm, 1e-9)
	assert.InDelta(t, 10, merged.MinGapMm, 1e-9)

	// Untouched fields keep their defaults.
	assert.InDelta(t, 1240, merged.BoardHeightMm, 1e-9)
	assert.Equal(t, defaults.ThicknessOptions, merged.ThicknessOptions)
	assert.Equal(t, defaults.ThicknessPriceMap, merged.ThicknessPriceMap)
}

func TestMergeSharedBoardSettings_PriceMapReplacedWholesale(t *testing.T) {
	defaults := DefaultSharedBoardSettings(ProductTypePegboard)

	merged := MergeSharedBoardSettings(defaults, SharedBoardSettingsPatch{
		ThicknessPriceMap: map[string]float64{"3": 999},
	})

	// The override replaces the whole map; default keys do not survive.
	assert.Equal(t, map[string]float64{"3": 999}, merged.ThicknessPriceMap)
}

func TestSharedBoardSettingsKey(t *testing.T) {
	assert.Equal(t, "shared_board_pegboard_settings", SharedBoardSettingsKey(ProductTypePegboard))
	assert.Equal(t, "shared_board_cabinet_door_settings", SharedBoardSettingsKey(ProductTypeCabinetDoor))
}
