package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"todo/internal/task"
)

// pinPlainOutput strips styling for the duration of a test so rendered
// lines can be compared byte for byte.
func pinPlainOutput(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	DisableColor()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func testColumns() []TableColumn {
	return []TableColumn{
		{Name: "#", Width: 3, Align: AlignRight},
		{Name: "S", Width: 1},
		{Name: "TITLE", Width: 8},
		{Name: "PRIORITY"},
	}
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, testColumns())
	assert.NotNil(t, tbl)
	assert.NotNil(t, tbl.Styles())
}

func TestTable_Alignment(t *testing.T) {
	pinPlainOutput(t)

	var buf bytes.Buffer
	tbl := NewTable(&buf, testColumns())

	tbl.WriteHeader()
	tbl.WriteRow("1", "✓", "Buy milk", "High")
	tbl.WriteRow("2", "○", "Pay the electricity bill", "Low")
	tbl.WriteRow("3", "○", "買い物リスト", "Low")

	want := "" +
		"  #  S  TITLE     PRIORITY\n" +
		"  1  ✓  Buy milk  High\n" +
		"  2  ○  Pay the…  Low\n" +
		"  3  ○  買い物…   Low\n"
	assert.Equal(t, want, buf.String())
}

func TestTable_WriteRow(t *testing.T) {
	pinPlainOutput(t)

	t.Run("missing values render as empty cells", func(t *testing.T) {
		var buf bytes.Buffer
		tbl := NewTable(&buf, testColumns())
		tbl.WriteRow("10")
		assert.Equal(t, " 10\n", buf.String())
	})

	t.Run("right alignment pads on the left", func(t *testing.T) {
		var buf bytes.Buffer
		tbl := NewTable(&buf, []TableColumn{{Name: "#", Width: 4, Align: AlignRight}})
		tbl.WriteRow("7")
		assert.Equal(t, "   7\n", buf.String())
	})

	t.Run("zero width column keeps natural width", func(t *testing.T) {
		var buf bytes.Buffer
		tbl := NewTable(&buf, []TableColumn{{Name: "TITLE"}})
		tbl.WriteRow("a title longer than the header")
		assert.Equal(t, "a title longer than the header\n", buf.String())
	})
}

func TestTable_WriteStyledRow(t *testing.T) {
	t.Run("styles do not change layout when color is off", func(t *testing.T) {
		pinPlainOutput(t)

		var plain, styled bytes.Buffer

		NewTable(&plain, testColumns()).WriteRow("1", "✓", "Shop", "High")

		tbl := NewTable(&styled, testColumns())
		tbl.WriteStyledRow([]string{"1", "✓", "Shop", "High"}, map[int]lipgloss.Style{
			1: tbl.Styles().StatusStyle(true),
			3: PriorityStyle(task.PriorityHigh),
		})

		assert.Equal(t, plain.String(), styled.String())
	})

	t.Run("cells are padded before styling", func(t *testing.T) {
		prev := lipgloss.ColorProfile()
		ForceColor()
		t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

		var buf bytes.Buffer
		tbl := NewTable(&buf, testColumns())
		tbl.WriteStyledRow([]string{"1", "✓", "Shop", "High"}, map[int]lipgloss.Style{
			2: tbl.Styles().Done,
		})

		output := buf.String()
		assert.Contains(t, output, "\x1b[")
		// The styled TITLE cell keeps its padding inside the escape
		// sequence, so the columns after it stay aligned.
		assert.Contains(t, output, "Shop    ")
	})
}

func TestTable_Truncation(t *testing.T) {
	pinPlainOutput(t)

	tests := []struct {
		name  string
		width int
		value string
		want  string
	}{
		{name: "short value passes through", width: 8, value: "Shop", want: "Shop\n"},
		{name: "exact width passes through", width: 8, value: "Buy milk", want: "Buy milk\n"},
		{name: "long value gets ellipsis", width: 8, value: "Pay the electricity bill", want: "Pay the…\n"},
		{name: "wide runes count display cells", width: 8, value: "買い物リスト", want: "買い物…\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tbl := NewTable(&buf, []TableColumn{{Name: "TITLE", Width: tc.width}})
			tbl.WriteRow(tc.value)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}
