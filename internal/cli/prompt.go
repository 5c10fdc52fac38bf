package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/watchfire-io/logaudit/internal/config"
)

// prompter asks line-oriented questions. End of input counts as an empty
// answer, so defaults apply.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// errInputClosed is returned when input ends before a question is answered.
var errInputClosed = errors.New("input closed before an answer was given")

// readLine returns the next trimmed line. A final line without a newline is
// still an answer; io.EOF is returned only when nothing was read.
func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ask prints question and reads an answer, returning def for empty input.
func (p *prompter) ask(question, def string) (string, error) {
	fmt.Fprintln(p.out, question)
	fmt.Fprint(p.out, "> ")
	answer, err := p.readLine()
	if err == io.EOF {
		return "", errInputClosed
	}
	if err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	if answer != "" {
		return answer, nil
	}
	return def, nil
}

// confirm asks a y/n question; only "y" confirms. End of input declines.
func (p *prompter) confirm(question string) bool {
	fmt.Fprintf(p.out, "%s (y/n): ", question)
	answer, _ := p.readLine()
	return strings.ToLower(answer) == "y"
}

// askPattern asks for a regular expression until one compiles. def must
// compile.
func (p *prompter) askPattern(what, def string) (string, error) {
	for {
		pattern, err := p.ask(fmt.Sprintf("Enter the regular expression for %s (default: %s):", what, def), def)
		if err != nil {
			return "", err
		}
		if _, err := regexp.Compile(pattern); err != nil {
			fmt.Fprintln(p.out, styleError.Render(fmt.Sprintf("Invalid expression: %v", err)))
			continue
		}
		return pattern, nil
	}
}

// resolveSource returns the CSV path to analyze. arg is used as-is when it
// names an existing .csv file; otherwise the user is asked. ok is false when
// the user declined to continue with a file lacking the .csv extension.
func (p *prompter) resolveSource(arg string, interactive bool) (path string, ok bool, err error) {
	if arg != "" && config.IsFile(arg) && config.HasSourceExt(arg) {
		return arg, true, nil
	}

	path = arg
	if interactive {
		if path, err = p.ask("\nPlease enter the path to your CSV file:", ""); err != nil {
			return "", false, err
		}
	}
	if path == "" {
		return "", false, fmt.Errorf("no CSV file given")
	}
	if !config.IsFile(path) {
		return "", false, fmt.Errorf("file not found: %s", path)
	}

	if !config.HasSourceExt(path) {
		fmt.Fprintln(p.out, styleWarning.Render("Warning: File does not have .csv extension"))
		if interactive && !p.confirm("Continue anyway?") {
			return "", false, nil
		}
	}
	return path, true, nil
}
