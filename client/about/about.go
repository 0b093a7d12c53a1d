package about

import "github.com/pterm/pterm"

// HandleAbout выводит сведения об утилите.
func HandleAbout() {
	title, _ := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("Ladder", pterm.NewStyle(pterm.FgLightMagenta)),
		pterm.NewLettersFromStringWithStyle("Logic", pterm.NewStyle(pterm.FgCyan))).
		Srender()

	pterm.DefaultCenter.Println(title)
	pterm.DefaultCenter.WithCenterEachLineSeparately().Println(
		"Ladder logic generator for PLCs\n" +
			"Siemens, Allen-Bradley, Mitsubishi, Omron\n" +
			"GitHub repo: 'https://github.com/GDVFox/ladderlogic'")
}
