package recognizer

// JumpTable задает функцию переходов лексического распознавателя в виде таблицы
type JumpTable struct {
	table         [][]int
	factorization map[byte]int
}

// NewJumpTable создает JumpTable
func NewJumpTable(table [][]int, factorization map[byte]int) JumpTable {
	return JumpTable{
		table:         table,
		factorization: factorization,
	}
}

// Next возвращает состояние, в которое осуществляется
// переход из state по символу symbol
func (t *JumpTable) Next(state int, symbol byte) int {
	return t.table[state][t.factorization[symbol]]
}

// Классы символов, по которым факторизован алфавит.
// Буквы s и m выделены отдельно, так как участвуют
// в суффиксах единиц времени.
const (
	classOther = iota
	classSpace
	classLetter
	classS
	classM
	classUnderscore
	classDigit
	classDot
	classGreater
	classLess
	classEqual
	classBang
	classLParen
	classRParen
	classComma

	classCount
)

// Состояния автомата.
const (
	stateStart = iota
	stateWhitespace
	stateIdentifier
	stateNumber
	stateTimeM
	stateTime
	stateGreater
	stateLess
	stateComparator
	stateEqual
	stateBang
	stateLParen
	stateRParen
	stateComma
	stateDecimal

	stateCount
)

// factorization отображает байты входной строки в классы символов.
var factorization = buildFactorization()

func buildFactorization() map[byte]int {
	f := make(map[byte]int, 96)
	for c := byte('a'); c <= 'z'; c++ {
		f[c] = classLetter
	}
	for c := byte('A'); c <= 'Z'; c++ {
		f[c] = classLetter
	}
	f['s'], f['S'] = classS, classS
	f['m'], f['M'] = classM, classM
	for c := byte('0'); c <= '9'; c++ {
		f[c] = classDigit
	}
	f[' '], f['\t'], f['\r'] = classSpace, classSpace, classSpace
	f['_'] = classUnderscore
	f['.'] = classDot
	f['>'] = classGreater
	f['<'] = classLess
	f['='] = classEqual
	f['!'] = classBang
	f['('] = classLParen
	f[')'] = classRParen
	f[','] = classComma
	return f
}

// jumpTable таблица переходов: строка — состояние, столбец — класс символа,
// -1 означает отсутствие перехода.
var jumpTable = buildJumpTable()

func buildJumpTable() [][]int {
	t := make([][]int, stateCount)
	for i := range t {
		t[i] = make([]int, classCount)
		for j := range t[i] {
			t[i][j] = -1
		}
	}

	t[stateStart][classSpace] = stateWhitespace
	t[stateStart][classLetter] = stateIdentifier
	t[stateStart][classS] = stateIdentifier
	t[stateStart][classM] = stateIdentifier
	t[stateStart][classUnderscore] = stateIdentifier
	t[stateStart][classDigit] = stateNumber
	t[stateStart][classGreater] = stateGreater
	t[stateStart][classLess] = stateLess
	t[stateStart][classEqual] = stateEqual
	t[stateStart][classBang] = stateBang
	t[stateStart][classLParen] = stateLParen
	t[stateStart][classRParen] = stateRParen
	t[stateStart][classComma] = stateComma

	t[stateWhitespace][classSpace] = stateWhitespace

	for _, class := range []int{classLetter, classS, classM, classUnderscore, classDigit} {
		t[stateIdentifier][class] = stateIdentifier
	}

	t[stateNumber][classDigit] = stateNumber
	t[stateNumber][classDot] = stateDecimal
	t[stateNumber][classS] = stateTime
	t[stateNumber][classM] = stateTimeM

	t[stateDecimal][classDigit] = stateDecimal

	t[stateTimeM][classS] = stateTime

	t[stateGreater][classEqual] = stateComparator
	t[stateLess][classEqual] = stateComparator
	t[stateEqual][classEqual] = stateComparator
	t[stateBang][classEqual] = stateComparator

	return t
}

// finalStates задает принимающие состояния автомата и их домены.
// Состояния stateTimeM, stateEqual и stateBang не являются принимающими:
// одиночные '5m', '=' и '!' лексемами языка не являются.
var finalStates = map[int]Domain{
	stateWhitespace: WhitespaceDomain,
	stateIdentifier: IdentifierDomain,
	stateNumber:     NumberDomain,
	stateDecimal:    NumberDomain,
	stateTime:       TimeDomain,
	stateGreater:    ComparatorDomain,
	stateLess:       ComparatorDomain,
	stateComparator: ComparatorDomain,
	stateLParen:     LParenDomain,
	stateRParen:     RParenDomain,
	stateComma:      CommaDomain,
}
