package parser

import "github.com/GDVFox/ladderlogic/ladder/recognizer"

// Node интерфейс для представления вершины дерева условия.
type Node interface {
	Coords() recognizer.Fragment
}

type abstractNode struct {
	coords recognizer.Fragment
}

func (n *abstractNode) Coords() recognizer.Fragment {
	return n.coords
}

// Operation алиас для определения типа логической операции
type Operation int

// Доступные виды операций
const (
	AndOperation Operation = iota
	OrOperation
)

func (o Operation) String() string {
	switch o {
	case AndOperation:
		return "AND"
	case OrOperation:
		return "OR"
	default:
		return "UNK"
	}
}

// OperationNode вершина дерева условия, представляющая собой бинарную операцию.
type OperationNode struct {
	abstractNode
	Op    Operation
	Left  Node
	Right Node
}

// NotNode вершина дерева условия, представляющая собой отрицание.
type NotNode struct {
	abstractNode
	Next Node
}

// ReferenceNode вершина дерева условия, представляющая собой дискретный вход.
type ReferenceNode struct {
	abstractNode
	Name string
}

// ComparisonNode вершина дерева условия, представляющая собой
// сравнение входа с числовым литералом. Сравнение является неделимым
// листом дерева и не раскладывается на составляющие.
type ComparisonNode struct {
	abstractNode
	Name    string
	Op      string
	Literal string
}

// Action интерфейс для представления действия из THEN-части правила.
type Action interface {
	Coords() recognizer.Fragment
}

// CoilAction действие установки выходной катушки.
type CoilAction struct {
	abstractNode
	Name string
}

// TimerAction действие запуска таймера TON или TOF.
// Duration хранит литерал времени в исходном виде вместе с единицей измерения.
type TimerAction struct {
	abstractNode
	Kind     string
	Name     string
	Duration string
}

// CounterAction действие запуска счетчика CTU или CTD.
type CounterAction struct {
	abstractNode
	Kind      string
	Name      string
	Threshold string
}

// Statement представляет одно разобранное правило:
// условие и упорядоченный список действий.
type Statement struct {
	Condition Node
	Actions   []Action
}
