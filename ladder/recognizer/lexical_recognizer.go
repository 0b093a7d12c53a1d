package recognizer

import (
	"strings"

	"github.com/pkg/errors"
)

// Возможные ошибки лексического анализа
var (
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrUnknownDomain = errors.New("unknown domain")
)

// LexicalRecognizer конечный автомат, который выделяет токены в строке правила
type LexicalRecognizer struct {
	state state
	table JumpTable
	final map[int]Domain

	text  string
	index int
	line  int
	pos   int
}

type state = int

// NewLexicalRecognizer создает LexicalRecognizer для одной строки правила
func NewLexicalRecognizer(rule string) *LexicalRecognizer {
	return newLexicalRecognizer(rule, NewJumpTable(jumpTable, factorization), finalStates)
}

func newLexicalRecognizer(rule string, table JumpTable, final map[int]Domain) *LexicalRecognizer {
	return &LexicalRecognizer{
		state: stateStart,
		table: table,
		text:  rule,
		final: final,
		index: 0,
		line:  1,
		pos:   1,
	}
}

func (l *LexicalRecognizer) constructToken(tag Domain, endLine, endPos, endIndex int) (Token, error) {
	var constructed Token

	abstractToken := newToken(tag,
		l.line, l.pos, l.index,
		endLine, endPos, endIndex)

	switch tag {
	case WhitespaceDomain:
		constructed = &WhitespaceToken{
			token: abstractToken,
		}
	case IdentifierDomain:
		ident := l.text[l.index:endIndex]
		upper := strings.ToUpper(ident)
		if keywordTag, ok := keywordDomains[upper]; ok {
			abstractToken.tag = keywordTag
			constructed = &KeywordToken{
				token: abstractToken,
			}
			break
		}
		if _, ok := actionKeywords[upper]; ok {
			abstractToken.tag = ActionDomain
			constructed = &ActionToken{
				token: abstractToken,
				kind:  upper,
			}
			break
		}
		constructed = &IdentifierToken{
			token: abstractToken,
			ident: ident,
		}
	case NumberDomain:
		constructed = &NumberToken{
			token: abstractToken,
			value: l.text[l.index:endIndex],
		}
	case TimeDomain:
		constructed = &TimeToken{
			token: abstractToken,
			value: l.text[l.index:endIndex],
		}
	case ComparatorDomain:
		constructed = &ComparatorToken{
			token: abstractToken,
			op:    l.text[l.index:endIndex],
		}
	case LParenDomain, RParenDomain:
		constructed = &BracketToken{
			token: abstractToken,
		}
	case CommaDomain:
		constructed = &CommaToken{
			token: abstractToken,
		}
	default:
		return nil, ErrUnknownDomain
	}

	return constructed, nil
}

func (l *LexicalRecognizer) resetState(newPos, newLine, newIndex int) {
	if newIndex == l.index {
		newIndex++
	}
	if newPos == l.pos {
		newPos++
	}

	l.index = newIndex
	l.pos = newPos
	l.line = newLine
	l.state = stateStart
}

// NextToken возвращает следующий токен или лексическую ошибку
func (l *LexicalRecognizer) NextToken() (Token, error) {
	if l.index >= len(l.text) {
		return &EndToken{
			token: newToken(EndDomain, l.line, l.pos, l.index, l.line, l.pos, l.index),
		}, nil
	}

	endIndex := l.index
	endLine := l.line
	endPos := l.pos
	for endIndex != len(l.text) {
		nextState := l.table.Next(l.state, l.text[endIndex])
		if nextState == -1 {
			break
		}

		l.state = nextState
		if l.text[endIndex] == '\n' {
			endLine++
			endPos = 0
		}
		endIndex++
		endPos++
	}

	// defer нужен чтобы сохранять координаты начала при конструировании токенов и ошибок
	// и при этом состояние в любом случае сбросилось для разбора следующей лексемы.
	defer l.resetState(endPos, endLine, endIndex)

	domainTag, ok := l.final[l.state]
	if !ok || domainTag == UnknownDomain {
		badIndex := endIndex
		if badIndex >= len(l.text) {
			badIndex = len(l.text) - 1
		}
		return nil, errors.Wrapf(ErrUnknownSymbol, "%q (%d %d)", l.text[badIndex], l.line, l.pos+(badIndex-l.index))
	}

	constructed, err := l.constructToken(domainTag, endLine, endPos, endIndex)
	if err != nil {
		return nil, errors.Wrapf(err, "(%d %d)", l.line, l.pos)
	}

	return constructed, err
}
