// pkg/transform/layout.go
package transform

// The "EC DATA" sheet packs four logical datasets side by side in one
// wide layout, each block starting with its own "Date" column. None of
// this is self-describing, so the offsets below are a fixed contract
// with the workbook and must not be inferred dynamically.

// headerRow is the sheet row the column names are derived from; the
// two rows above the data are metadata and headers.
const (
	headerRow     = 1
	metadataRows  = 2
	keepColumnsLo = 1  // column 0 is a layout artifact
	keepColumnsHi = 50 // everything from column 50 on is layout padding
)

// datePositions are the sheet columns holding the repeated "Date"
// headers, one per sub-table block. They are force-renamed to
// date_1..date_5 before the sheet is truncated, so the offsets are
// relative to the full-width sheet.
var datePositions = []int{1, 18, 35, 47, 55}

// subTableSpec describes how one column block of the cleaned sheet
// becomes a normalized dataset. Lo/Hi index the cleaned (truncated,
// artifact-free) table; gaps between blocks are separator columns.
type subTableSpec struct {
	Name   string
	Lo, Hi int
	// Keep selects exactly these columns, in order. Nil keeps all.
	Keep []string
	// Drop removes these columns; used instead of Keep when the block
	// mostly survives.
	Drop []string
	// DateColumn is the block's date_N column, renamed to "date".
	DateColumn string
}

var subTables = []subTableSpec{
	{
		Name: "liquid_hydrocarbons_cached",
		Lo:   0, Hi: 11,
		Drop: []string{
			"eglng_propane_sales",
			"llc_share_of_secondary_condensate",
			"psc_share_of_secondary_condensate",
		},
		DateColumn: "date_1",
	},
	{
		Name: "gas_production",
		Lo:   12, Hi: 24,
		Keep: []string{
			"date_2",
			"ampco_gas_sales",
			"eglng_gas_sales",
			"gas_sales",
			"offshore_gas",
		},
		DateColumn: "date_2",
	},
	{
		Name: "tank_data",
		Lo:   27, Hi: 35,
		Keep: []string{
			"date_3",
			"tank_name",
			"standard_net_oil_volume_(bbls)",
		},
		DateColumn: "date_3",
	},
	{
		Name: "daily_lifting_data",
		Lo:   35, Hi: 38,
		DateColumn: "date_4",
	},
}

// textColumns are the only non-date columns left untouched by numeric
// coercion.
var textColumns = map[string]bool{
	"tank_name": true,
	"product":   true,
}
