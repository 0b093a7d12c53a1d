package render

import (
	"fmt"
	"strings"

	"github.com/GDVFox/ladderlogic/ladder/dialect"
	"github.com/GDVFox/ladderlogic/ladder/rung"
)

// actionIndent отступ строк действий от шины питания.
const actionIndent = "     "

// Render возвращает текстовый блок звена в мнемонике переданного диалекта.
// Функция тотальна на корректных звеньях: на этом уровне ошибок нет,
// имена контактов переносятся в вывод без экранирования.
func Render(r *rung.Rung, d *dialect.Dialect) string {
	b := &strings.Builder{}

	b.WriteString(d.RungStart)
	b.WriteByte('\n')

	for i, group := range r.Groups {
		if i > 0 {
			b.WriteString(d.Branch)
			b.WriteByte('\n')
		}

		b.WriteString(d.RailOpen)
		for j := range group.Terms {
			if j > 0 {
				b.WriteString(d.Series)
			}
			writeTerm(b, &group.Terms[j], d)
		}
		b.WriteString(d.RailClose)
		b.WriteByte('\n')
	}

	for _, action := range r.Actions {
		b.WriteString(actionIndent)
		switch action.Kind {
		case rung.CoilKind:
			b.WriteString(d.Coil)
			b.WriteByte(' ')
			b.WriteString(action.Name)
		case rung.TONKind, rung.TOFKind:
			fmt.Fprintf(b, d.Timer, action.Kind, action.Name, action.Param)
		default:
			fmt.Fprintf(b, d.Counter, action.Kind, action.Name, action.Param)
		}
		b.WriteByte('\n')
	}

	b.WriteString(d.RungEnd)
	return b.String()
}

func writeTerm(b *strings.Builder, t *rung.Term, d *dialect.Dialect) {
	marker := d.OpenContact
	if t.Negated {
		marker = d.ClosedContact
	}

	b.WriteString(marker)
	b.WriteByte(' ')
	b.WriteString(t.Label())
}
