package rung

import (
	"github.com/pkg/errors"

	"github.com/GDVFox/ladderlogic/ladder/parser"
)

// Возможные ошибки построения звена
var (
	ErrUnknownNode     = errors.New("unknown condition node")
	ErrUnknownAction   = errors.New("unknown action")
	ErrUnknownOperator = errors.New("unknown comparison operator")
	ErrEmptyCondition  = errors.New("normalization produced no contact groups")
)

// complementOps соответствие оператора сравнения его дополнению.
// Отрицание не проходит сквозь лист-сравнение, а заменяет оператор.
var complementOps = map[string]string{
	">":  "<=",
	"<=": ">",
	"<":  ">=",
	">=": "<",
	"==": "!=",
	"!=": "==",
}

// Builder преобразует дерево условия правила
// в нормализованную структуру звена: сумму произведений.
type Builder struct {
	statement *parser.Statement
}

// NewBuilder создает новый объект Builder
func NewBuilder(s *parser.Statement) *Builder {
	return &Builder{statement: s}
}

// Build строит звено: нормализует условие и переносит действия без изменений.
func (b *Builder) Build() (*Rung, error) {
	groups, err := b.normalize(b.statement.Condition, false)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		// Недостижимо при корректной грамматике, проверка оставлена
		// чтобы поймать нарушение инварианта нормализации.
		return nil, ErrEmptyCondition
	}

	actions := make([]Action, 0, len(b.statement.Actions))
	for _, a := range b.statement.Actions {
		action, err := convertAction(a)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}

	return &Rung{
		Groups:  groups,
		Actions: actions,
	}, nil
}

// normalize возвращает представление вершины n в виде суммы произведений.
// Флаг negated означает, что вершина находится под нечетным числом отрицаний:
// NOT спускается вниз по законам де Моргана, двойное отрицание взаимно уничтожается.
func (b *Builder) normalize(n parser.Node, negated bool) ([]Group, error) {
	switch node := n.(type) {
	case *parser.ReferenceNode:
		return []Group{{Terms: []Term{{
			Name:    node.Name,
			Negated: negated,
		}}}}, nil
	case *parser.ComparisonNode:
		op := node.Op
		if negated {
			complement, ok := complementOps[op]
			if !ok {
				return nil, errors.Wrapf(ErrUnknownOperator, "%q", op)
			}
			op = complement
		}
		return []Group{{Terms: []Term{{
			Name:    node.Name,
			Op:      op,
			Literal: node.Literal,
		}}}}, nil
	case *parser.NotNode:
		return b.normalize(node.Next, !negated)
	case *parser.OperationNode:
		op := node.Op
		if negated {
			// Де Морган: отрицание меняет операцию на двойственную,
			// флаг negated уже передается операндам.
			if op == parser.AndOperation {
				op = parser.OrOperation
			} else {
				op = parser.AndOperation
			}
		}

		left, err := b.normalize(node.Left, negated)
		if err != nil {
			return nil, err
		}
		right, err := b.normalize(node.Right, negated)
		if err != nil {
			return nil, err
		}

		if op == parser.OrOperation {
			return append(left, right...), nil
		}
		return crossProduct(left, right), nil
	default:
		return nil, errors.Wrapf(ErrUnknownNode, "%T", n)
	}
}

// crossProduct объединяет AND двух сумм произведений: каждая ветвь left
// последовательно сцепляется с каждой ветвью right. Это единственный
// источник роста числа ветвей, глубина ограничена вложенностью правила.
func crossProduct(left, right []Group) []Group {
	product := make([]Group, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			terms := make([]Term, 0, len(l.Terms)+len(r.Terms))
			terms = append(terms, l.Terms...)
			terms = append(terms, r.Terms...)
			product = append(product, Group{Terms: terms})
		}
	}
	return product
}

func convertAction(a parser.Action) (Action, error) {
	switch action := a.(type) {
	case *parser.CoilAction:
		return Action{Kind: CoilKind, Name: action.Name}, nil
	case *parser.TimerAction:
		return Action{Kind: action.Kind, Name: action.Name, Param: action.Duration}, nil
	case *parser.CounterAction:
		return Action{Kind: action.Kind, Name: action.Name, Param: action.Threshold}, nil
	default:
		return Action{}, errors.Wrapf(ErrUnknownAction, "%T", a)
	}
}
