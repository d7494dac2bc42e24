package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fzft/go-capset/set"
)

// cliCommand describes one driver command: its fixed arity (a negative
// value means "at least -arity" arguments) and handler.
type cliCommand struct {
	name    string
	arity   int
	summary string
	proc    func(cli *Cli, args []string) error
}

func (c cliCommand) arityOk(n int) bool {
	if c.arity < 0 {
		return n >= -c.arity
	}
	return n == c.arity
}

var cliCommandTable []cliCommand

func init() {
	cliCommandTable = []cliCommand{
		{"create", -1, "create NAME [CAPACITY] [sorted] - new fixed-capacity set", createCommand},
		{"add", 2, "add NAME ELT - insert ELT", addCommand},
		{"rem", 2, "rem NAME ELT - remove ELT", remCommand},
		{"find", 2, "find NAME ELT - look ELT up", findCommand},
		{"card", 1, "card NAME - number of elements", cardCommand},
		{"members", 1, "members NAME - list all elements", membersCommand},
		{"reset", 1, "reset NAME - drop every element", resetCommand},
		{"memory", 0, "memory - bytes held by set elements", memoryCommand},
		{"help", 0, "help - this text", helpCommand},
	}
}

func createCommand(cli *Cli, args []string) error {
	name := args[0]
	if _, ok := cli.sets[name]; ok {
		return fmt.Errorf("set '%s' already exists", name)
	}

	capacity := defaultCapacity
	sorted := false
	for _, arg := range args[1:] {
		if strings.EqualFold(arg, "sorted") {
			sorted = true
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid capacity '%s'", arg)
		}
		capacity = n
	}

	var (
		s   container
		err error
	)
	if sorted {
		s, err = set.NewSortedStringSet(capacity)
	} else {
		s, err = set.NewStringSet(capacity)
	}
	if err != nil {
		return err
	}
	cli.sets[name] = s
	fmt.Println("OK")
	return nil
}

func addCommand(cli *Cli, args []string) error {
	s, err := cli.set(args[0])
	if err != nil {
		return err
	}
	if err := s.Add(args[1]); err != nil {
		return err
	}
	fmt.Println("OK")
	return nil
}

func remCommand(cli *Cli, args []string) error {
	s, err := cli.set(args[0])
	if err != nil {
		return err
	}
	s.Remove(args[1])
	fmt.Println("OK")
	return nil
}

func findCommand(cli *Cli, args []string) error {
	s, err := cli.set(args[0])
	if err != nil {
		return err
	}
	if elt, found := s.Find(args[1]); found {
		fmt.Printf("\"%s\"\n", elt)
	} else {
		fmt.Println("(nil)")
	}
	return nil
}

func cardCommand(cli *Cli, args []string) error {
	s, err := cli.set(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("(integer) %d\n", s.Len())
	return nil
}

func membersCommand(cli *Cli, args []string) error {
	s, err := cli.set(args[0])
	if err != nil {
		return err
	}
	elems := s.Elements()
	if len(elems) == 0 {
		fmt.Println("(empty set)")
		return nil
	}
	for i, elt := range elems {
		fmt.Printf("%d) \"%s\"\n", i+1, elt)
	}
	return nil
}

func resetCommand(cli *Cli, args []string) error {
	s, err := cli.set(args[0])
	if err != nil {
		return err
	}
	s.Reset()
	fmt.Println("OK")
	return nil
}

func memoryCommand(cli *Cli, args []string) error {
	fmt.Printf("(integer) %d\n", set.UsedMemory())
	return nil
}

func helpCommand(cli *Cli, args []string) error {
	for _, c := range cliCommandTable {
		fmt.Println(c.summary)
	}
	fmt.Println("clear - clear the screen")
	fmt.Println("quit - exit")
	return nil
}
