package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStructuredRowShape(t *testing.T) {
	now := time.Date(2025, 11, 3, 14, 30, 5, 0, time.UTC)
	st := StructuredTask{
		Name:     "Заміна лампи",
		Tag:      "#246",
		Deadline: "не вказано",
		Priority: PriorityHigh,
		Desc:     "Замінити лампу у ліфті",
	}
	require.Equal(t, []string{
		"2025-11-03 14:30:05",
		"Заміна лампи",
		"#246",
		"не вказано",
		"високий",
		"Замінити лампу у ліфті",
	}, st.Row(now))
}

func TestFallbackRowShape(t *testing.T) {
	now := time.Date(2025, 11, 3, 14, 30, 5, 0, time.UTC)
	row := FallbackRow(now, "test note")
	require.Equal(t, []string{"2025-11-03 14:30:05", "", "", "", "", "test note"}, row)

	// both shapes must keep the same column count for the sheet
	require.Len(t, row, len(StructuredTask{}.Row(now)))
}

func TestPriorityDisplayValues(t *testing.T) {
	require.Equal(t, "високий", PriorityHigh.String())
	require.Equal(t, "середній", PriorityMedium.String())
	require.Equal(t, "звичайний", PriorityNormal.String())
}
