package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// prompter reads answers from the app's Reader. Secrets are read without
// echo when stdin is a terminal, and as plain lines otherwise.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(c *cli.Context) *prompter {
	return &prompter{in: bufio.NewReader(c.App.Reader), out: c.App.ErrWriter}
}

func (p *prompter) line(prompt string) (string, error) {
	line, err := p.lineRaw(prompt)
	return strings.TrimSpace(line), err
}

func (p *prompter) secret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return p.lineRaw(prompt)
	}

	if _, err := fmt.Fprint(p.out, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// lineRaw is line without trimming inner spaces, which are valid in
// passwords; only the line ending is dropped.
func (p *prompter) lineRaw(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt+": "); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// flagOrPrompt returns the flag value when set, otherwise asks for it.
func flagOrPrompt(c *cli.Context, p *prompter, name, prompt string, secret bool) (string, error) {
	if v := c.String(name); v != "" {
		return v, nil
	}
	if secret {
		return p.secret(prompt)
	}
	return p.line(prompt)
}
