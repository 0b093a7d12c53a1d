package help

import "github.com/pterm/pterm"

// HandleHelp выводит сообщение с помощью.
func HandleHelp() {
	pterm.DisableColor()
	pterm.DefaultBasicText.Printfln("Usage: ladderlogic CATEGORY [OPTIONS]")
	pterm.Println()
	pterm.DefaultBasicText.Printfln("Ladder logic generator for PLCs")
	pterm.Println()

	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"CATEGORY", "Description"},
		{"convert", "Converts a rule file into ladder logic text for the chosen platform"},
		{"platforms", "Prints the list of supported PLC platforms"},
		{"help", "Prints help message"},
		{"about", "Prints information about the tool"},
	}).Render()
	pterm.Println()
	pterm.DefaultBasicText.Printfln("Use 'ladderlogic convert --help' to see convert [OPTIONS]")

	pterm.EnableColor()
}
