package parser

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/GDVFox/ladderlogic/ladder/recognizer"
)

// Возможные синтаксические ошибки
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrMissingOperand  = errors.New("missing operand")
	ErrEmptyActions    = errors.New("empty action list")
	ErrBadDuration     = errors.New("timer duration must be a time literal with unit")
	ErrBadThreshold    = errors.New("counter threshold must be a non-negative integer")
)

// SyntaxAnalyzer структура представляющая синтаксический анализатор правила
type SyntaxAnalyzer struct {
	tokens *recognizer.LexicalRecognizer
	sym    recognizer.Token
}

// NewSyntaxAnalyzer создает новый синтаксический анализатор, связанный с переданным лексическим распознавателем.
func NewSyntaxAnalyzer(r *recognizer.LexicalRecognizer) *SyntaxAnalyzer {
	return &SyntaxAnalyzer{
		tokens: r,
	}
}

// Parse выполняет построение Statement по грамматике
// IF <expr> THEN <action> (, <action>)*.
func (a *SyntaxAnalyzer) Parse() (*Statement, error) {
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	if a.sym.Domain() != recognizer.IfDomain {
		return nil, buildTokenError(a.sym, recognizer.IfDomain, ErrUnexpectedToken)
	}
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	condition, err := a.parseOr()
	if err != nil {
		return nil, err
	}

	if a.sym.Domain() != recognizer.ThenDomain {
		return nil, buildTokenError(a.sym, recognizer.ThenDomain, ErrUnexpectedToken)
	}
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	actions, err := a.parseActions()
	if err != nil {
		return nil, err
	}

	if a.sym.Domain() != recognizer.EndDomain {
		return nil, buildTokenError(a.sym, recognizer.EndDomain, ErrUnexpectedToken)
	}

	return &Statement{
		Condition: condition,
		Actions:   actions,
	}, nil
}

func (a *SyntaxAnalyzer) parseOr() (Node, error) {
	left, err := a.parseAnd()
	if err != nil {
		return nil, err
	}

	for a.sym.Domain() == recognizer.OrDomain {
		opCoords := a.sym.Coords()
		if err := a.nextToken(); err != nil {
			return nil, err
		}

		right, err := a.parseAnd()
		if err != nil {
			return nil, err
		}

		left = &OperationNode{
			abstractNode: abstractNode{coords: opCoords},
			Op:           OrOperation,
			Left:         left,
			Right:        right,
		}
	}

	return left, nil
}

func (a *SyntaxAnalyzer) parseAnd() (Node, error) {
	left, err := a.parseUnary()
	if err != nil {
		return nil, err
	}

	for a.sym.Domain() == recognizer.AndDomain {
		opCoords := a.sym.Coords()
		if err := a.nextToken(); err != nil {
			return nil, err
		}

		right, err := a.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &OperationNode{
			abstractNode: abstractNode{coords: opCoords},
			Op:           AndOperation,
			Left:         left,
			Right:        right,
		}
	}

	return left, nil
}

func (a *SyntaxAnalyzer) parseUnary() (Node, error) {
	if a.sym.Domain() != recognizer.NotDomain {
		return a.parseAtom()
	}

	notCoords := a.sym.Coords()
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	next, err := a.parseUnary()
	if err != nil {
		return nil, err
	}

	return &NotNode{
		abstractNode: abstractNode{coords: notCoords},
		Next:         next,
	}, nil
}

func (a *SyntaxAnalyzer) parseAtom() (Node, error) {
	if a.sym.Domain() == recognizer.LParenDomain {
		if err := a.nextToken(); err != nil {
			return nil, err
		}

		inner, err := a.parseOr()
		if err != nil {
			return nil, err
		}

		if a.sym.Domain() != recognizer.RParenDomain {
			return nil, buildTokenError(a.sym, recognizer.RParenDomain, ErrUnexpectedToken)
		}
		if err := a.nextToken(); err != nil {
			return nil, err
		}

		return inner, nil
	}

	if a.sym.Domain() != recognizer.IdentifierDomain {
		return nil, buildTokenError(a.sym, recognizer.IdentifierDomain, ErrMissingOperand)
	}

	ref := &ReferenceNode{
		abstractNode: abstractNode{coords: a.sym.Coords()},
		Name:         a.sym.Attr().(string),
	}
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	if a.sym.Domain() != recognizer.ComparatorDomain {
		return ref, nil
	}

	op := a.sym.Attr().(string)
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	if a.sym.Domain() != recognizer.NumberDomain {
		return nil, buildTokenError(a.sym, recognizer.NumberDomain, ErrUnexpectedToken)
	}
	literal := a.sym.Attr().(string)
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	return &ComparisonNode{
		abstractNode: abstractNode{coords: ref.Coords()},
		Name:         ref.Name,
		Op:           op,
		Literal:      literal,
	}, nil
}

func (a *SyntaxAnalyzer) parseActions() ([]Action, error) {
	actions := make([]Action, 0, 1)

	action, err := a.parseAction()
	if err != nil {
		return nil, err
	}
	actions = append(actions, action)

	for a.sym.Domain() == recognizer.CommaDomain {
		if err := a.nextToken(); err != nil {
			return nil, err
		}

		action, err := a.parseAction()
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}

	return actions, nil
}

func (a *SyntaxAnalyzer) parseAction() (Action, error) {
	switch a.sym.Domain() {
	case recognizer.IdentifierDomain:
		coil := &CoilAction{
			abstractNode: abstractNode{coords: a.sym.Coords()},
			Name:         a.sym.Attr().(string),
		}
		if err := a.nextToken(); err != nil {
			return nil, err
		}
		return coil, nil
	case recognizer.ActionDomain:
		return a.parseTimerOrCounter()
	case recognizer.EndDomain:
		return nil, buildTokenError(a.sym, recognizer.IdentifierDomain, ErrEmptyActions)
	default:
		return nil, buildTokenError(a.sym, recognizer.IdentifierDomain, ErrUnexpectedToken)
	}
}

func (a *SyntaxAnalyzer) parseTimerOrCounter() (Action, error) {
	actionCoords := a.sym.Coords()
	kind := a.sym.Attr().(string)
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	if a.sym.Domain() != recognizer.IdentifierDomain {
		return nil, buildTokenError(a.sym, recognizer.IdentifierDomain, ErrUnexpectedToken)
	}
	name := a.sym.Attr().(string)
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	if a.sym.Domain() != recognizer.CommaDomain {
		return nil, buildTokenError(a.sym, recognizer.CommaDomain, ErrUnexpectedToken)
	}
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	if kind == "TON" || kind == "TOF" {
		if a.sym.Domain() != recognizer.TimeDomain {
			return nil, buildTokenError(a.sym, recognizer.TimeDomain, ErrBadDuration)
		}
		duration := a.sym.Attr().(string)
		if err := a.nextToken(); err != nil {
			return nil, err
		}

		return &TimerAction{
			abstractNode: abstractNode{coords: actionCoords},
			Kind:         kind,
			Name:         name,
			Duration:     duration,
		}, nil
	}

	if a.sym.Domain() != recognizer.NumberDomain {
		return nil, buildTokenError(a.sym, recognizer.NumberDomain, ErrBadThreshold)
	}
	threshold := a.sym.Attr().(string)
	if strings.ContainsRune(threshold, '.') {
		return nil, buildTokenError(a.sym, recognizer.NumberDomain, ErrBadThreshold)
	}
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	return &CounterAction{
		abstractNode: abstractNode{coords: actionCoords},
		Kind:         kind,
		Name:         name,
		Threshold:    threshold,
	}, nil
}

func (a *SyntaxAnalyzer) nextToken() error {
	var err error
	a.sym, err = a.tokens.NextToken()
	if err != nil {
		return buildUnknownError(err)
	}

	for a.sym.Domain() == recognizer.WhitespaceDomain {
		a.sym, err = a.tokens.NextToken()
		if err != nil {
			return buildUnknownError(err)
		}
	}

	return nil
}

func buildTokenError(t recognizer.Token, expected recognizer.Domain, err error) error {
	return errors.Wrapf(err, "expected %s, found %s (%d %d)",
		expected, t.Domain(), t.Coords().Starting.Line, t.Coords().Starting.Pos)
}

func buildUnknownError(err error) error {
	return errors.Wrap(err, "lexical error")
}
