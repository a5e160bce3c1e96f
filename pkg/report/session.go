package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kristinawk/bicimad-nearest/pkg"

	"github.com/peterh/liner"
	"go.uber.org/zap"
)

const (
	PromptText     = "Enter a Place of Interest: "
	NoMatchMessage = "Wrong monument name. Please, try again."
)

// Prompter reads one line of user input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Session is the interactive single place lookup.
type Session struct {
	table    Table
	prompter Prompter
	out      io.Writer
	log      *zap.Logger
}

func NewSession(table Table, prompter Prompter, out io.Writer, log *zap.Logger) *Session {
	return &Session{
		table:    table,
		prompter: prompter,
		out:      out,
		log:      log,
	}
}

// Run prompts until a title matches, then prints its rows. An unknown title is reported and asked
// again. End of input or an aborted prompt ends the session without error.
func (s *Session) Run() error {
	for {
		query, err := s.prompter.Prompt(PromptText)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			s.log.Debug("lookup session closed by user")
			return nil
		}
		if err != nil {
			return err
		}

		query = strings.TrimSpace(query)
		rows, err := s.table.Lookup(query)
		if errors.Is(err, pkg.ErrNoMatch) {
			s.log.Debug("no place matched", zap.String("query", query))
			fmt.Fprintln(s.out, NoMatchMessage)
			continue
		}
		if err != nil {
			return err
		}

		if h, ok := s.prompter.(interface{ AppendHistory(string) }); ok {
			h.AppendHistory(query)
		}
		return s.table.Print(s.out, rows)
	}
}
