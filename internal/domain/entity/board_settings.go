// Package entity contains the core business objects of the project.
package entity

import "strings"

// SharedBoardSettings describes the shared material sheet for a product
// type: its dimensions, the minimum gap between cut pieces, a grouping
// factor applied to pricing, and the allowed thicknesses with their
// per-square-meter prices.
type SharedBoardSettings struct {
	BoardWidthMm      float64            `json:"board_width_mm"`
	BoardHeightMm     float64            `json:"board_height_mm"`
	MinGapMm          float64            `json:"min_gap_mm"`
	GroupFactor       float64            `json:"group_factor"`
	ThicknessOptions  []int              `json:"thickness_options"`
	ThicknessPriceMap map[string]float64 `json:"thickness_price_map"`
}

// SharedBoardSettingsPatch is a partial override of SharedBoardSettings.
// Nil fields leave the default untouched; set fields replace the default
// wholesale, including the nested price map.
type SharedBoardSettingsPatch struct {
	BoardWidthMm      *float64           `json:"board_width_mm,omitempty"`
	BoardHeightMm     *float64           `json:"board_height_mm,omitempty"`
	MinGapMm          *float64           `json:"min_gap_mm,omitempty"`
	GroupFactor       *float64           `json:"group_factor,omitempty"`
	ThicknessOptions  []int              `json:"thickness_options,omitempty"`
	ThicknessPriceMap map[string]float64 `json:"thickness_price_map,omitempty"`
}

// BoardPiece is a rectangle reserved on the shared board by an order item.
type BoardPiece struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultSharedBoardSettings returns the hardcoded settings for a shared
// board product type. Unknown types fall back to the pegboard defaults.
func DefaultSharedBoardSettings(productType ProductType) SharedBoardSettings {
	if productType == ProductTypeCabinetDoor {
		return SharedBoardSettings{
			BoardWidthMm:      2450,
			BoardHeightMm:     1240,
			MinGapMm:          5,
			GroupFactor:       1,
			ThicknessOptions:  []int{2},
			ThicknessPriceMap: map[string]float64{"2": 700},
		}
	}

	return SharedBoardSettings{
		BoardWidthMm:      2450,
		BoardHeightMm:     1240,
		MinGapMm:          5,
		GroupFactor:       1,
		ThicknessOptions:  []int{1, 2, 3, 4, 5},
		ThicknessPriceMap: map[string]float64{"1": 780, "2": 1080, "3": 1380, "4": 1680, "5": 1980},
	}
}

// MergeSharedBoardSettings overlays a stored override on top of defaults.
// Each set field replaces the matching default field key-by-key; the
// thickness price map is replaced as a whole, never merged partially.
func MergeSharedBoardSettings(defaults SharedBoardSettings, patch SharedBoardSettingsPatch) SharedBoardSettings {
	merged := defaults

	if patch.BoardWidthMm != nil {
		merged.BoardWidthMm = *patch.BoardWidthMm
	}
	if patch.BoardHeightMm != nil {
		merged.BoardHeightMm = *patch.BoardHeightMm
	}
	if patch.MinGapMm != nil {
		merged.MinGapMm = *patch.MinGapMm
	}
	if patch.GroupFactor != nil {
		merged.GroupFactor = *patch.GroupFactor
	}
	if patch.ThicknessOptions != nil {
		merged.ThicknessOptions = patch.ThicknessOptions
	}
	if patch.ThicknessPriceMap != nil {
		merged.ThicknessPriceMap = patch.ThicknessPriceMap
	}

	return merged
}

// SharedBoardSettingsKey derives the system setting key for a product type,
// e.g. "shared_board_pegboard_settings".
func SharedBoardSettingsKey(productType ProductType) string {
	return "shared_board_" + strings.ToLower(productType.String()) + "_settings"
}
