package parser

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/ladderlogic/ladder/recognizer"
)

func parseRule(t *testing.T, line string) *Statement {
	t.Helper()

	analyzer := NewSyntaxAnalyzer(recognizer.NewLexicalRecognizer(line))
	statement, err := analyzer.Parse()
	require.NoError(t, err)
	return statement
}

func parseRuleError(t *testing.T, line string) error {
	t.Helper()

	analyzer := NewSyntaxAnalyzer(recognizer.NewLexicalRecognizer(line))
	_, err := analyzer.Parse()
	require.Error(t, err)
	return err
}

func TestParseSimpleRule(t *testing.T) {
	statement := parseRule(t, "IF Start AND NOT Stop THEN Motor")

	and, ok := statement.Condition.(*OperationNode)
	require.True(t, ok)
	assert.EqualValues(t, AndOperation, and.Op)

	left, ok := and.Left.(*ReferenceNode)
	require.True(t, ok)
	assert.EqualValues(t, "Start", left.Name)

	not, ok := and.Right.(*NotNode)
	require.True(t, ok)
	ref, ok := not.Next.(*ReferenceNode)
	require.True(t, ok)
	assert.EqualValues(t, "Stop", ref.Name)

	require.Len(t, statement.Actions, 1)
	coil, ok := statement.Actions[0].(*CoilAction)
	require.True(t, ok)
	assert.EqualValues(t, "Motor", coil.Name)
}

func TestParsePrecedence(t *testing.T) {
	// OR ниже AND: a OR b AND c == a OR (b AND c).
	statement := parseRule(t, "IF a OR b AND c THEN Out")

	or, ok := statement.Condition.(*OperationNode)
	require.True(t, ok)
	require.EqualValues(t, OrOperation, or.Op)

	_, ok = or.Left.(*ReferenceNode)
	assert.True(t, ok)

	and, ok := or.Right.(*OperationNode)
	require.True(t, ok)
	assert.EqualValues(t, AndOperation, and.Op)
}

func TestParseParentheses(t *testing.T) {
	// Скобки перекрывают приоритет: (a OR b) AND c.
	statement := parseRule(t, "IF (a OR b) AND c THEN Out")

	and, ok := statement.Condition.(*OperationNode)
	require.True(t, ok)
	require.EqualValues(t, AndOperation, and.Op)

	or, ok := and.Left.(*OperationNode)
	require.True(t, ok)
	assert.EqualValues(t, OrOperation, or.Op)
}

func TestParseLeftAssociative(t *testing.T) {
	statement := parseRule(t, "IF a AND b AND c THEN Out")

	root, ok := statement.Condition.(*OperationNode)
	require.True(t, ok)

	inner, ok := root.Left.(*OperationNode)
	require.True(t, ok)

	left, ok := inner.Left.(*ReferenceNode)
	require.True(t, ok)
	assert.EqualValues(t, "a", left.Name)
}

func TestParseComparison(t *testing.T) {
	statement := parseRule(t, "IF Counter1 > 5 THEN Alarm")

	cmp, ok := statement.Condition.(*ComparisonNode)
	require.True(t, ok)
	assert.EqualValues(t, "Counter1", cmp.Name)
	assert.EqualValues(t, ">", cmp.Op)
	assert.EqualValues(t, "5", cmp.Literal)
}

func TestParseTimerAction(t *testing.T) {
	statement := parseRule(t, "IF (Start OR Reset) THEN TON Timer1, 5s")

	require.Len(t, statement.Actions, 1)
	timer, ok := statement.Actions[0].(*TimerAction)
	require.True(t, ok)
	assert.EqualValues(t, "TON", timer.Kind)
	assert.EqualValues(t, "Timer1", timer.Name)
	assert.EqualValues(t, "5s", timer.Duration)
}

func TestParseCounterAction(t *testing.T) {
	statement := parseRule(t, "IF CountBtn THEN CTU Counter1, 10")

	require.Len(t, statement.Actions, 1)
	counter, ok := statement.Actions[0].(*CounterAction)
	require.True(t, ok)
	assert.EqualValues(t, "CTU", counter.Kind)
	assert.EqualValues(t, "Counter1", counter.Name)
	assert.EqualValues(t, "10", counter.Threshold)
}

func TestParseActionOrder(t *testing.T) {
	statement := parseRule(t, "IF Start THEN Lamp, Buzzer, TOF Timer2, 200ms")

	require.Len(t, statement.Actions, 3)
	first, ok := statement.Actions[0].(*CoilAction)
	require.True(t, ok)
	assert.EqualValues(t, "Lamp", first.Name)

	second, ok := statement.Actions[1].(*CoilAction)
	require.True(t, ok)
	assert.EqualValues(t, "Buzzer", second.Name)

	third, ok := statement.Actions[2].(*TimerAction)
	require.True(t, ok)
	assert.EqualValues(t, "TOF", third.Kind)
}

func TestMissingOperand(t *testing.T) {
	err := parseRuleError(t, "IF Start AND THEN Motor")
	assert.EqualValues(t, ErrMissingOperand, errors.Cause(err))
	// Ошибка указывает на колонку токена THEN.
	assert.Contains(t, err.Error(), "(1 14)")
}

func TestMissingThen(t *testing.T) {
	err := parseRuleError(t, "IF Start Motor")
	assert.EqualValues(t, ErrUnexpectedToken, errors.Cause(err))
}

func TestMissingIf(t *testing.T) {
	err := parseRuleError(t, "Start THEN Motor")
	assert.EqualValues(t, ErrUnexpectedToken, errors.Cause(err))
}

func TestEmptyCondition(t *testing.T) {
	err := parseRuleError(t, "IF THEN Motor")
	assert.EqualValues(t, ErrMissingOperand, errors.Cause(err))
}

func TestEmptyActions(t *testing.T) {
	err := parseRuleError(t, "IF Start THEN")
	assert.EqualValues(t, ErrEmptyActions, errors.Cause(err))
}

func TestUnmatchedParen(t *testing.T) {
	err := parseRuleError(t, "IF (Start OR Reset THEN Motor")
	assert.EqualValues(t, ErrUnexpectedToken, errors.Cause(err))
}

func TestTrailingTokens(t *testing.T) {
	err := parseRuleError(t, "IF Start THEN Motor Extra")
	assert.EqualValues(t, ErrUnexpectedToken, errors.Cause(err))
}

func TestComparatorWithoutLiteral(t *testing.T) {
	err := parseRuleError(t, "IF Counter1 > Stop THEN Alarm")
	assert.EqualValues(t, ErrUnexpectedToken, errors.Cause(err))
}

func TestTimerWithoutUnit(t *testing.T) {
	err := parseRuleError(t, "IF Start THEN TON Timer1, 5")
	assert.EqualValues(t, ErrBadDuration, errors.Cause(err))
}

func TestTimerWithoutParameter(t *testing.T) {
	err := parseRuleError(t, "IF Start THEN TON Timer1")
	assert.EqualValues(t, ErrUnexpectedToken, errors.Cause(err))
}

func TestCounterWithDecimalThreshold(t *testing.T) {
	err := parseRuleError(t, "IF Start THEN CTU Counter1, 1.5")
	assert.EqualValues(t, ErrBadThreshold, errors.Cause(err))
}

func TestCounterWithTimeThreshold(t *testing.T) {
	err := parseRuleError(t, "IF Start THEN CTU Counter1, 10s")
	assert.EqualValues(t, ErrBadThreshold, errors.Cause(err))
}
