package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/GDVFox/ladderlogic/client/about"
	"github.com/GDVFox/ladderlogic/client/convert"
	"github.com/GDVFox/ladderlogic/client/help"
	"github.com/GDVFox/ladderlogic/client/platforms"
)

// Category категория команд
type Category string

// Список возможных категорий.
const (
	ConvertCategory   Category = "convert"
	PlatformsCategory Category = "platforms"
	HelpCategory      Category = "help"
	AboutCategory     Category = "about"
)

func main() {
	pterm.DisableDebugMessages()
	pterm.Error.ShowLineNumber = false

	if len(os.Args) < 2 {
		help.HandleHelp()
		return
	}

	args := os.Args[1:]
	switch Category(args[0]) {
	case ConvertCategory:
		convert.HandleConvert(args)
	case PlatformsCategory:
		platforms.HandlePlatforms()
	case HelpCategory:
		help.HandleHelp()
	case AboutCategory:
		about.HandleAbout()
	default:
		pterm.Error.Printfln("Unknown category '%s', run 'ladderlogic help' for more information", args[0])
	}
}
