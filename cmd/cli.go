package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fzft/go-capset/deps/linenoise"
	"github.com/fzft/go-capset/log"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

var (
	CapsetCliHisFileEnv     = "CAPSETCLI_HISTFILE"
	CapsetCliHisFileDefault = ".capsetcli_history"

	defaultCapacity = 128
)

// container is the operation surface every set variant exposes.
// Both set.StringSet and set.SortedStringSet satisfy it.
type container interface {
	Add(elt string) error
	Remove(elt string)
	Find(elt string) (string, bool)
	Len() int
	Cap() int
	Elements() []string
	Reset()
}

type CliCfg struct {
	interactive bool
	prompt      string
}

type Cli struct {
	config *CliCfg
	sets   map[string]container
}

func NewCli() *Cli {
	return &Cli{
		config: &CliCfg{prompt: "capset> "},
		sets:   make(map[string]container),
	}
}

// Run starts the driver: an interactive prompt when stdin is a terminal,
// line-at-a-time script mode otherwise.
func Run() {
	cli := NewCli()
	if isatty.IsTerminal(os.Stdin.Fd()) {
		cli.repl()
		return
	}
	if err := cli.script(os.Stdin); err != nil {
		log.Logger.Warn("script finished with errors", zap.Error(err))
		os.Exit(1)
	}
}

func (cli *Cli) repl() {
	var (
		history     bool
		historyFile string
	)

	cli.config.interactive = true
	historyFile = getDotfilePath(CapsetCliHisFileEnv, CapsetCliHisFileDefault)
	// keep in-memory history always regardless if history file can be determined
	history = true
	if historyFile != "" {
		linenoise.Line.HistoryLoad(historyFile)
	}

	for {
		line, err := linenoise.Line.Prompt(cli.config.prompt)
		if err != nil {
			break
		}

		argv := strings.Fields(line)
		if len(argv) == 0 {
			continue
		}
		if history {
			linenoise.Line.AppendHistory(line)
		}
		if historyFile != "" {
			linenoise.Line.HistorySave(historyFile)
		}

		if strings.EqualFold(argv[0], "quit") || strings.EqualFold(argv[0], "exit") {
			return
		} else if strings.EqualFold(argv[0], "clear") {
			linenoise.Line.ClearScreen()
			continue
		}

		if err := cli.execute(argv); err != nil {
			fmt.Printf("(error) %v\n", err)
		}
	}
}

// script executes one command per line, continuing past failures and
// reporting them together at the end.
func (cli *Cli) script(r io.Reader) error {
	var errs MultiError
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		argv := strings.Fields(scanner.Text())
		if len(argv) == 0 || strings.HasPrefix(argv[0], "#") {
			continue
		}
		if strings.EqualFold(argv[0], "quit") || strings.EqualFold(argv[0], "exit") {
			break
		}
		if err := cli.execute(argv); err != nil {
			errs = append(errs, err)
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (cli *Cli) execute(argv []string) error {
	name := strings.ToLower(argv[0])
	args := argv[1:]
	for _, c := range cliCommandTable {
		if c.name != name {
			continue
		}
		if !c.arityOk(len(args)) {
			return fmt.Errorf("wrong number of arguments for '%s'", name)
		}
		return c.proc(cli, args)
	}
	return fmt.Errorf("unknown command '%s', try help", name)
}

// set returns the named container or an error naming the miss.
func (cli *Cli) set(name string) (container, error) {
	s, ok := cli.sets[name]
	if !ok {
		return nil, fmt.Errorf("no such set '%s'", name)
	}
	return s, nil
}

func getDotfilePath(envOverride, dotFilename string) string {
	var dotPath string

	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		dotPath = path
	} else {
		home := os.Getenv("HOME")
		if home != "" {
			dotPath = fmt.Sprintf("%s/%s", home, dotFilename)
		}
	}
	return dotPath
}
