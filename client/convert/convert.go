package convert

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/ladderlogic/client/nodeclient"
	"github.com/GDVFox/ladderlogic/ladder"
	"github.com/GDVFox/ladderlogic/ladder/dialect"
	"github.com/GDVFox/ladderlogic/util"
)

// HandleConvert запускает команду преобразования файла правил.
func HandleConvert(args []string) {
	c := NewConvertCommandHelper()
	if err := c.Init(args[1:]); err != nil {
		pterm.Error.Printfln("Can not init convert command: %s", err)
		return
	}
	c.Run()
}

// ConvertCommandHelper преобразование файла правил в файл релейной логики.
type ConvertCommandHelper struct {
	fs *flag.FlagSet

	help        bool
	input       string
	platform    string
	output      string
	dialectFile string
	server      string
	jobs        int
}

// NewConvertCommandHelper создает новый ConvertCommandHelper
func NewConvertCommandHelper() *ConvertCommandHelper {
	c := &ConvertCommandHelper{
		fs: flag.NewFlagSet("convert", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.input, "input", "i", "", "Input file with logic rules")
	c.fs.StringVarP(&c.platform, "platform", "p", "", "Target PLC platform")
	c.fs.StringVarP(&c.output, "output", "o", "", "Output ladder logic file")
	c.fs.StringVarP(&c.dialectFile, "dialect", "d", "", "File with custom dialect description in yaml format")
	c.fs.StringVarP(&c.server, "server", "s", "", "Address of ladder_node for remote conversion in format <host>:<port>")
	c.fs.IntVarP(&c.jobs, "jobs", "j", 1, "Number of lines converted in parallel")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *ConvertCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'ladderlogic convert' converts a rule file into ladder logic text.")
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *ConvertCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if c.input == "" {
		return errors.New("input can not be empty")
	}
	if c.output == "" {
		return errors.New("output can not be empty")
	}
	if c.platform == "" && c.dialectFile == "" {
		return errors.New("platform or dialect file must be set")
	}
	if c.server != "" && c.dialectFile != "" {
		return errors.New("custom dialect file can not be used with remote conversion")
	}
	if c.jobs < 1 {
		return errors.New("jobs must be positive")
	}

	// Неизвестная платформа обнаруживается до начала преобразования.
	if c.platform != "" && util.FindStringIndex(dialect.Names(), strings.ToLower(c.platform)) == -1 {
		return errors.Errorf("unknown platform %s, supported: %s", c.platform, strings.Join(dialect.Names(), ", "))
	}

	return nil
}

// Run запускает команду
func (c *ConvertCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	rulesData, err := os.ReadFile(c.input)
	if err != nil {
		pterm.Error.Printfln("Can not read rules from file %s: %s", c.input, err)
		return
	}
	lines := strings.Split(string(rulesData), "\n")

	convertSpinner, _ := pterm.DefaultSpinner.Start("Converting rules...")
	text, lineErrors, err := c.convert(lines)
	if err != nil {
		convertSpinner.Fail("Can not convert rules: ", err)
		return
	}

	if err := os.WriteFile(c.output, []byte(text+"\n"), 0644); err != nil {
		convertSpinner.Fail("Can not write ladder logic file: ", err)
		return
	}

	if len(lineErrors) == 0 {
		convertSpinner.Success("Ladder logic saved to ", c.output)
	} else {
		convertSpinner.Warning("Ladder logic saved to ", c.output, ", some lines were skipped:")
		for _, lineError := range lineErrors {
			pterm.Error.Printfln("line %d: %s", lineError.line, lineError.message)
		}
	}
}

type lineError struct {
	line    int
	message string
}

func (c *ConvertCommandHelper) convert(lines []string) (string, []lineError, error) {
	if c.server != "" {
		return c.convertRemote(lines)
	}
	return c.convertLocal(lines)
}

func (c *ConvertCommandHelper) convertLocal(lines []string) (string, []lineError, error) {
	var d *dialect.Dialect
	if c.dialectFile != "" {
		loaded, err := dialect.FromFile(c.dialectFile)
		if err != nil {
			return "", nil, err
		}
		d = loaded
	} else {
		found, ok := dialect.ByName(c.platform)
		if !ok {
			return "", nil, errors.Errorf("unknown platform %s", c.platform)
		}
		d = found
	}

	results, err := ladder.ConvertContext(context.Background(), lines, d, c.jobs)
	if err != nil {
		return "", nil, err
	}

	blocks := make([]string, 0, len(results))
	lineErrors := make([]lineError, 0)
	for _, res := range results {
		if res.Err != nil {
			lineErrors = append(lineErrors, lineError{line: res.Line, message: res.Err.Error()})
			continue
		}
		blocks = append(blocks, res.Block)
	}

	return strings.Join(blocks, "\n\n"), lineErrors, nil
}

func (c *ConvertCommandHelper) convertRemote(lines []string) (string, []lineError, error) {
	client := nodeclient.NewNodeClient(nodeclient.NewNodeClientConfig(c.server))
	resp, err := client.Convert(context.Background(), c.platform, lines)
	if err != nil {
		return "", nil, err
	}

	lineErrors := make([]lineError, 0)
	for _, outcome := range resp.Results {
		if outcome.Error != "" {
			lineErrors = append(lineErrors, lineError{line: outcome.Line, message: outcome.Error})
		}
	}

	return resp.Text, lineErrors, nil
}
