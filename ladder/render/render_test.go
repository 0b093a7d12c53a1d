package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/ladderlogic/ladder/dialect"
	"github.com/GDVFox/ladderlogic/ladder/parser"
	"github.com/GDVFox/ladderlogic/ladder/recognizer"
	"github.com/GDVFox/ladderlogic/ladder/rung"
)

func buildRule(t *testing.T, line string) *rung.Rung {
	t.Helper()

	analyzer := parser.NewSyntaxAnalyzer(recognizer.NewLexicalRecognizer(line))
	statement, err := analyzer.Parse()
	require.NoError(t, err)

	builtRung, err := rung.NewBuilder(statement).Build()
	require.NoError(t, err)
	return builtRung
}

func dialectByName(t *testing.T, name string) *dialect.Dialect {
	t.Helper()

	d, ok := dialect.ByName(name)
	require.True(t, ok)
	return d
}

func TestRenderSiemens(t *testing.T) {
	builtRung := buildRule(t, "IF Start AND NOT Stop THEN Motor")
	block := Render(builtRung, dialectByName(t, "siemens"))

	// Открытый контакт, закрытый контакт и катушка идут слева направо.
	openIndex := strings.Index(block, "[ ] Start")
	closedIndex := strings.Index(block, "[/] Stop")
	coilIndex := strings.Index(block, "( ) Motor")
	require.NotEqual(t, -1, openIndex)
	require.NotEqual(t, -1, closedIndex)
	require.NotEqual(t, -1, coilIndex)
	assert.Less(t, openIndex, closedIndex)
	assert.Less(t, closedIndex, coilIndex)

	assert.True(t, strings.HasPrefix(block, "// Network\n"))
	assert.True(t, strings.HasSuffix(block, "// End Network"))
}

func TestRenderParallelBranches(t *testing.T) {
	builtRung := buildRule(t, "IF (Start OR Reset) THEN TON Timer1, 5s")
	block := Render(builtRung, dialectByName(t, "siemens"))

	assert.EqualValues(t, "// Network\n"+
		"|----[ ] Start----|\n"+
		"+---+\n"+
		"|----[ ] Reset----|\n"+
		"     TON Timer1 Time: 5s\n"+
		"// End Network", block)
}

func TestRenderTimerTemplates(t *testing.T) {
	builtRung := buildRule(t, "IF Start THEN TON Timer1, 5s")

	cases := map[string]string{
		"siemens":       "TON Timer1 Time: 5s",
		"allen-bradley": "TON Timer1 Preset: 5s",
		"mitsubishi":    "TON Timer1 K5s",
		"omron":         "TON Timer1 5s",
	}
	for platform, expected := range cases {
		block := Render(builtRung, dialectByName(t, platform))
		assert.Contains(t, block, expected, platform)
	}
}

func TestRenderCounterTemplates(t *testing.T) {
	builtRung := buildRule(t, "IF CountBtn THEN CTU Counter1, 10")

	cases := map[string]string{
		"siemens":       "CTU Counter1 Count: 10",
		"allen-bradley": "CTU Counter1 Preset: 10",
		"mitsubishi":    "CTU Counter1 K10",
		"omron":         "CTU Counter1 10",
	}
	for platform, expected := range cases {
		block := Render(builtRung, dialectByName(t, platform))
		assert.Contains(t, block, expected, platform)
	}
}

func TestRenderAllenBradleyMnemonics(t *testing.T) {
	builtRung := buildRule(t, "IF Start AND NOT Stop THEN Motor")
	block := Render(builtRung, dialectByName(t, "allen-bradley"))

	assert.Contains(t, block, "XIC Start")
	assert.Contains(t, block, "XIO Stop")
	assert.Contains(t, block, "OTE Motor")
}

func TestRenderOmronNegatedContact(t *testing.T) {
	builtRung := buildRule(t, "IF NOT Stop THEN Motor")
	block := Render(builtRung, dialectByName(t, "omron"))

	assert.Contains(t, block, "LD NOT Stop")
}

func TestRenderComparisonTerm(t *testing.T) {
	builtRung := buildRule(t, "IF Counter1 > 5 THEN Alarm")
	block := Render(builtRung, dialectByName(t, "siemens"))

	assert.Contains(t, block, "[ ] Counter1 > 5")
}

func TestRenderActionOrder(t *testing.T) {
	builtRung := buildRule(t, "IF Start THEN Lamp, Buzzer")
	block := Render(builtRung, dialectByName(t, "siemens"))

	assert.Less(t, strings.Index(block, "( ) Lamp"), strings.Index(block, "( ) Buzzer"))
}

func TestRenderIdempotent(t *testing.T) {
	builtRung := buildRule(t, "IF (a OR b) AND NOT c THEN TOF Timer2, 200ms")
	d := dialectByName(t, "mitsubishi")

	assert.EqualValues(t, Render(builtRung, d), Render(builtRung, d))
}
