package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrozenLayout(t *testing.T) {
	l := FrozenLayout([]int{50, 140, 180, 90}, GranularityDay)

	assert.Equal(t, []int{0, 50, 190, 370}, l.Offsets)
	assert.Equal(t, 460, l.TotalFrozen)
	assert.Equal(t, WidthDayColumn, l.ColumnWidth)
}

func TestFrozenLayout_WeekWidth(t *testing.T) {
	l := FrozenLayout(DefaultFrozenWidths, GranularityWeek)
	assert.Equal(t, WidthWeekColumn, l.ColumnWidth)
	assert.Equal(t, 460, l.TotalFrozen)
}

func TestFrozenLayout_Stable(t *testing.T) {
	a := FrozenLayout(DefaultFrozenWidths, GranularityDay)
	b := FrozenLayout(DefaultFrozenWidths, GranularityDay)
	assert.Equal(t, a, b)
}

func TestFrozenLayout_Empty(t *testing.T) {
	l := FrozenLayout(nil, GranularityDay)
	assert.Empty(t, l.Offsets)
	assert.Equal(t, 0, l.TotalFrozen)
}
