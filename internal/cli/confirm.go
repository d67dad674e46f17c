package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// confirm prints question followed by " [y/N] " and reports whether the
// answer was yes. Anything else, including no input at all, is no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	if out != nil {
		fmt.Fprint(out, question+" [y/N] ")
	}
	switch strings.ToLower(strings.TrimSpace(readAnswer(in))) {
	case "y", "yes":
		return true
	}
	return false
}

// readAnswer returns the first line of in. Lines end at LF or CR, so Enter
// works whether or not the terminal is in raw mode.
func readAnswer(in io.Reader) string {
	if in == nil {
		return ""
	}
	sc := bufio.NewScanner(in)
	sc.Split(scanAnswerLine)
	if sc.Scan() {
		return sc.Text()
	}
	return ""
}

func scanAnswerLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}
