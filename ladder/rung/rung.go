package rung

// Виды действий звена.
const (
	CoilKind = "COIL"
	TONKind  = "TON"
	TOFKind  = "TOF"
	CTUKind  = "CTU"
	CTDKind  = "CTD"
)

// Term контакт в последовательной цепи: нормально открытый,
// нормально закрытый или непрозрачный лист-сравнение.
type Term struct {
	Name    string `json:"name"`
	Negated bool   `json:"negated,omitempty"`
	Op      string `json:"op,omitempty"`
	Literal string `json:"literal,omitempty"`
}

// IsComparison возвращает true, если контакт представляет сравнение.
func (t *Term) IsComparison() bool {
	return t.Op != ""
}

// Label возвращает текстовую метку контакта без маркеров диалекта.
func (t *Term) Label() string {
	if t.IsComparison() {
		return t.Name + " " + t.Op + " " + t.Literal
	}
	return t.Name
}

// Group параллельная ветвь звена: упорядоченная последовательная цепь контактов.
type Group struct {
	Terms []Term `json:"terms"`
}

// Action выходное действие звена. Param хранит литерал времени для таймеров
// и порог для счетчиков в исходном виде; для катушек Param пуст.
type Action struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Param string `json:"param,omitempty"`
}

// Rung нормализованное звено: упорядоченный список параллельных ветвей
// и список выходных действий в порядке появления в правиле.
// Инвариант: список ветвей не пуст, вложенность ветвей не превышает двух уровней.
type Rung struct {
	Groups  []Group  `json:"groups"`
	Actions []Action `json:"actions"`
}
