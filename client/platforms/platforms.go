package platforms

import (
	"github.com/pterm/pterm"

	"github.com/GDVFox/ladderlogic/ladder/dialect"
)

// HandlePlatforms выводит таблицу поддерживаемых платформ.
func HandlePlatforms() {
	data := pterm.TableData{
		{"Platform", "Open contact", "Closed contact", "Coil"},
	}
	for _, name := range dialect.Names() {
		d, ok := dialect.ByName(name)
		if !ok {
			continue
		}
		data = append(data, []string{d.Name, d.OpenContact, d.ClosedContact, d.Coil})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
