package recognizer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, line string) []Token {
	t.Helper()

	l := NewLexicalRecognizer(line)
	tokens := make([]Token, 0)
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)

		tokens = append(tokens, tok)
		if tok.Domain() == EndDomain {
			return tokens
		}
	}
}

func domains(tokens []Token) []Domain {
	ds := make([]Domain, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Domain() == WhitespaceDomain {
			continue
		}
		ds = append(ds, tok.Domain())
	}
	return ds
}

func TestSimpleRule(t *testing.T) {
	tokens := readAll(t, "IF Start AND NOT Stop THEN Motor")
	assert.EqualValues(t, []Domain{
		IfDomain, IdentifierDomain, AndDomain, NotDomain,
		IdentifierDomain, ThenDomain, IdentifierDomain, EndDomain,
	}, domains(tokens))
}

func TestKeywordsCaseInsensitive(t *testing.T) {
	tokens := readAll(t, "if Start and not Stop then Motor")
	assert.EqualValues(t, []Domain{
		IfDomain, IdentifierDomain, AndDomain, NotDomain,
		IdentifierDomain, ThenDomain, IdentifierDomain, EndDomain,
	}, domains(tokens))
}

func TestIdentifierKeepsCase(t *testing.T) {
	tokens := readAll(t, "MoTor_1")
	require.Len(t, tokens, 2)
	assert.EqualValues(t, IdentifierDomain, tokens[0].Domain())
	assert.EqualValues(t, "MoTor_1", tokens[0].Attr())
}

func TestComparators(t *testing.T) {
	for _, op := range []string{">", "<", ">=", "<=", "==", "!="} {
		tokens := readAll(t, "Counter1 "+op+" 5")
		require.EqualValues(t, []Domain{IdentifierDomain, ComparatorDomain, NumberDomain, EndDomain}, domains(tokens))
		assert.EqualValues(t, op, tokens[2].Attr())
	}
}

func TestNumbers(t *testing.T) {
	tokens := readAll(t, "5 123.45 10.")
	require.EqualValues(t, []Domain{NumberDomain, NumberDomain, NumberDomain, EndDomain}, domains(tokens))
}

func TestTimeLiterals(t *testing.T) {
	tokens := readAll(t, "5s 200ms")

	withoutSpaces := make([]Token, 0)
	for _, tok := range tokens {
		if tok.Domain() != WhitespaceDomain {
			withoutSpaces = append(withoutSpaces, tok)
		}
	}

	require.Len(t, withoutSpaces, 3)
	assert.EqualValues(t, TimeDomain, withoutSpaces[0].Domain())
	assert.EqualValues(t, "5s", withoutSpaces[0].Attr())
	assert.EqualValues(t, TimeDomain, withoutSpaces[1].Domain())
	assert.EqualValues(t, "200ms", withoutSpaces[1].Attr())
}

func TestActionKeywords(t *testing.T) {
	tokens := readAll(t, "TON tof CTU ctd")
	require.EqualValues(t, []Domain{ActionDomain, ActionDomain, ActionDomain, ActionDomain, EndDomain}, domains(tokens))
	assert.EqualValues(t, "TON", tokens[0].Attr())
}

func TestBracketsAndCommas(t *testing.T) {
	tokens := readAll(t, "(Start),Motor")
	assert.EqualValues(t, []Domain{
		LParenDomain, IdentifierDomain, RParenDomain,
		CommaDomain, IdentifierDomain, EndDomain,
	}, domains(tokens))
}

func TestAlwaysTerminates(t *testing.T) {
	// Распознаватель тотален на допустимом алфавите:
	// любая такая строка завершается токеном END без ошибок.
	lines := []string{
		"",
		"   ",
		"IF (a OR b) AND NOT c THEN Motor, TON t1, 5s",
		"x >= 10 y <= 2 z == 3 w != 4",
		"CTU Counter1, 10",
	}
	for _, line := range lines {
		tokens := readAll(t, line)
		assert.EqualValues(t, EndDomain, tokens[len(tokens)-1].Domain())
	}
}

func TestUnknownSymbol(t *testing.T) {
	l := NewLexicalRecognizer("Start & Stop")
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.EqualValues(t, IdentifierDomain, tok.Domain())

	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.EqualValues(t, WhitespaceDomain, tok.Domain())

	_, err = l.NextToken()
	require.Error(t, err)
	assert.EqualValues(t, ErrUnknownSymbol, errors.Cause(err))
	assert.Contains(t, err.Error(), "'&'")
}

func TestIncompleteComparator(t *testing.T) {
	l := NewLexicalRecognizer("=")
	_, err := l.NextToken()
	require.Error(t, err)
	assert.EqualValues(t, ErrUnknownSymbol, errors.Cause(err))
}

func TestCoords(t *testing.T) {
	l := NewLexicalRecognizer("IF Start")

	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.EqualValues(t, 1, tok.Coords().Starting.Pos)

	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.EqualValues(t, WhitespaceDomain, tok.Domain())

	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.EqualValues(t, 4, tok.Coords().Starting.Pos)
	assert.EqualValues(t, "Start", tok.Attr())
}
