package schedule

// Frozen identity columns, in fixed grid order, and the per-granularity
// width of the scrollable calendar columns. Pixel values mirror the
// frontend so exported reports and server-rendered layouts agree.
const (
	WidthIndex    = 50
	WidthCode     = 140
	WidthProduct  = 180
	WidthWorkshop = 90

	WidthDayColumn  = 50
	WidthWeekColumn = 80
)

// DefaultFrozenWidths is the standard index/code/product/workshop
// width table.
var DefaultFrozenWidths = []int{WidthIndex, WidthCode, WidthProduct, WidthWorkshop}

// Layout carries the computed sticky geometry for the frozen block.
type Layout struct {
	Offsets     []int `json:"offsets"`
	TotalFrozen int   `json:"totalFrozen"`
	ColumnWidth int   `json:"columnWidth"`
}

// FrozenLayout computes each frozen column's cumulative left offset
// (the sum of all preceding widths) and the total frozen width.
// Calendar columns flow after the frozen block with the uniform width
// for g; they get no precomputed offsets.
func FrozenLayout(widths []int, g Granularity) Layout {
	offsets := make([]int, len(widths))
	total := 0
	for i, w := range widths {
		offsets[i] = total
		total += w
	}
	return Layout{
		Offsets:     offsets,
		TotalFrozen: total,
		ColumnWidth: ColumnWidth(g),
	}
}

// ColumnWidth returns the scrollable column width for the granularity.
func ColumnWidth(g Granularity) int {
	if g == GranularityWeek {
		return WidthWeekColumn
	}
	return WidthDayColumn
}
