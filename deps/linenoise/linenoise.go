package linenoise

import (
	"bytes"
	"fmt"
	"github.com/peterh/liner"
	"os"
)

var Line *LineNoise

type LineNoise struct {
	*liner.State
}

func (ln *LineNoise) HistoryLoad(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	_, err = ln.ReadHistory(bytes.NewReader(content))
	return err
}

func (ln *LineNoise) HistorySave(filepath string) error {
	var buf bytes.Buffer
	_, err := ln.WriteHistory(&buf)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}

func (ln *LineNoise) ClearScreen() error {
	clearSeq := "\x1b[H\x1b[2J"
	_, err := fmt.Fprint(os.Stdout, clearSeq)
	return err
}

func init() {
	Line = &LineNoise{liner.NewLiner()}
	Line.SetCtrlCAborts(true)
}
