// Package repl implements the interactive scicalc prompt.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/zephyrtronium/scicalc"
)

const prompt = "> "

// REPL reads expressions a line at a time and prints their values.
type REPL struct {
	format string
	echo   bool
	opts   []scicalc.Option
}

// New creates a REPL printing results with the given printf verb. If echo is
// true, the nested structure of each expression is printed before its value.
func New(format string, echo bool, opts ...scicalc.Option) *REPL {
	if format == "" {
		format = "%g"
	}
	return &REPL{format: format, echo: echo, opts: opts}
}

// styles are the lipgloss styles for one output stream.
type styles struct {
	result lipgloss.Style
	err    lipgloss.Style
	faint  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		result: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		err:    r.NewStyle().Foreground(lipgloss.Color("196")),
		faint:  r.NewStyle().Faint(true),
	}
}

// Run reads lines from in until EOF or a :quit command, writing prompts and
// results to out.
func (r *REPL) Run(in io.Reader, out io.Writer) error {
	st := newStyles(out)
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		if !r.line(out, st, sc.Text(), false) {
			return nil
		}
	}
}

// RunTerminal runs the REPL on stdin and stdout. When stdin is a terminal, it
// is put in raw mode to provide line editing and history.
func (r *REPL) RunTerminal(stdin, stdout *os.File) error {
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return r.Run(stdin, stdout)
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, old)

	rw := struct {
		io.Reader
		io.Writer
	}{stdin, stdout}
	t := term.NewTerminal(rw, prompt)
	st := newStyles(stdout)
	for {
		src, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !r.line(t, st, src, true) {
			return nil
		}
	}
}

// line handles one line of input. It returns false if the REPL should stop.
// If caret is true, a marker is drawn under the position of an error.
func (r *REPL) line(w io.Writer, st styles, src string, caret bool) bool {
	cmd := strings.TrimSpace(src)
	switch cmd {
	case "":
		return true
	case ":q", ":quit", ":exit":
		return false
	case ":h", ":help":
		fmt.Fprintln(w, st.faint.Render("enter an expression, :builtins to list names, or :quit"))
		return true
	case ":builtins":
		for _, b := range scicalc.Builtins() {
			fmt.Fprintf(w, "%-6s %-9s %s\n", b.Kind, b.Name, strings.Join(b.Spellings, " "))
		}
		return true
	}

	e, err := scicalc.Parse(src, r.opts...)
	var v float64
	if err == nil {
		if r.echo {
			fmt.Fprintln(w, st.faint.Render(e.String()))
		}
		v, err = e.Eval()
	}
	if err != nil {
		var ie scicalc.InputError
		if caret && errors.As(err, &ie) {
			fmt.Fprintln(w, st.err.Render(strings.Repeat(" ", len(prompt)+ie.Pos()-1)+"^"))
		}
		fmt.Fprintln(w, st.err.Render("error: "+err.Error()))
		return true
	}
	fmt.Fprintln(w, st.result.Render(fmt.Sprintf(r.format, v)))
	return true
}
