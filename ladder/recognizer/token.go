package recognizer

// Position задает координаты кодовой точки
type Position struct {
	Line  int
	Pos   int
	Index int
}

// Fragment задает координаты фрагмента исходной строки
type Fragment struct {
	Starting Position
	Ending   Position
}

// Domain представляет лексический домен
type Domain int

const (
	// WhitespaceDomain представляет лексический домен пробельных символов.
	WhitespaceDomain Domain = iota
	// IdentifierDomain представляет лексический домен идентификаторов.
	IdentifierDomain
	// NumberDomain представляет домен числовых литералов.
	NumberDomain
	// TimeDomain представляет домен литералов времени с суффиксом s или ms.
	TimeDomain
	// ComparatorDomain представляет домен операторов сравнения.
	ComparatorDomain
	// LParenDomain представляет домен левой скобки.
	LParenDomain
	// RParenDomain представляет домен правой скобки.
	RParenDomain
	// CommaDomain представляет домен запятой.
	CommaDomain
	// IfDomain представляет ключевое слово IF.
	IfDomain
	// ThenDomain представляет ключевое слово THEN.
	ThenDomain
	// AndDomain представляет ключевое слово AND.
	AndDomain
	// OrDomain представляет ключевое слово OR.
	OrDomain
	// NotDomain представляет ключевое слово NOT.
	NotDomain
	// ActionDomain представляет ключевые слова таймеров и счетчиков: TON, TOF, CTU, CTD.
	ActionDomain
	// EndDomain представляет конец строки
	EndDomain
	// UnknownDomain представляет ошибочный домен
	UnknownDomain Domain = -1
)

func (d Domain) String() string {
	switch d {
	case WhitespaceDomain:
		return "SPC"
	case IdentifierDomain:
		return "IDN"
	case NumberDomain:
		return "NUM"
	case TimeDomain:
		return "TIM"
	case ComparatorDomain:
		return "CMP"
	case LParenDomain:
		return "LBR"
	case RParenDomain:
		return "RBR"
	case CommaDomain:
		return "COM"
	case IfDomain:
		return "IF"
	case ThenDomain:
		return "THEN"
	case AndDomain:
		return "AND"
	case OrDomain:
		return "OR"
	case NotDomain:
		return "NOT"
	case ActionDomain:
		return "ACT"
	case EndDomain:
		return "END"
	default:
		return "UNK"
	}
}

// keywordDomains соответствие между зарезервированными словами и доменами.
// Регистр ключевых слов не учитывается, поэтому ключи заданы в верхнем регистре.
var keywordDomains = map[string]Domain{
	"IF":   IfDomain,
	"THEN": ThenDomain,
	"AND":  AndDomain,
	"OR":   OrDomain,
	"NOT":  NotDomain,
}

// actionKeywords множество ключевых слов действий.
var actionKeywords = map[string]struct{}{
	"TON": {},
	"TOF": {},
	"CTU": {},
	"CTD": {},
}

// Token абстрактный токен, содержащий основные методы
type Token interface {
	Domain() Domain
	Coords() Fragment
	Attr() interface{}
}

type token struct {
	tag    Domain
	coords Fragment
}

func newToken(tag Domain, sLine, sPos, sIndex, eLine, ePos, eIndex int) token {
	return token{
		tag: tag,
		coords: Fragment{
			Starting: Position{
				Line:  sLine,
				Pos:   sPos,
				Index: sIndex,
			},
			Ending: Position{
				Line:  eLine,
				Pos:   ePos,
				Index: eIndex,
			},
		},
	}
}

func (t *token) Domain() Domain {
	return t.tag
}

func (t *token) Coords() Fragment {
	return t.coords
}

func (t *token) Attr() interface{} {
	return nil
}

// WhitespaceToken представляет пробельные символы
type WhitespaceToken struct {
	token
}

// IdentifierToken представляет идентификатор
type IdentifierToken struct {
	token
	ident string
}

// Attr возвращает имя идентификатора с сохранением исходного регистра
func (t *IdentifierToken) Attr() interface{} {
	return t.ident
}

// KeywordToken представляет зарезервированное слово языка правил
type KeywordToken struct {
	token
}

// ActionToken представляет ключевое слово таймера или счетчика
type ActionToken struct {
	token
	kind string
}

// Attr возвращает вид действия: TON, TOF, CTU или CTD
func (t *ActionToken) Attr() interface{} {
	return t.kind
}

// NumberToken представляет числовой литерал
type NumberToken struct {
	token
	value string
}

// Attr возвращает текст числового литерала
func (t *NumberToken) Attr() interface{} {
	return t.value
}

// TimeToken представляет литерал времени, например 5s или 200ms
type TimeToken struct {
	token
	value string
}

// Attr возвращает текст литерала времени вместе с единицей измерения
func (t *TimeToken) Attr() interface{} {
	return t.value
}

// ComparatorToken представляет оператор сравнения
type ComparatorToken struct {
	token
	op string
}

// Attr возвращает символ оператора сравнения
func (t *ComparatorToken) Attr() interface{} {
	return t.op
}

// BracketToken представляет скобку
type BracketToken struct {
	token
}

// CommaToken представляет запятую
type CommaToken struct {
	token
}

// EndToken представляет конец строки
type EndToken struct {
	token
}
