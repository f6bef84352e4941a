package tzif

import (
	"bufio"
	"fmt"
	"io"
)

// readFooter reads the version 2+ footer: a newline, the TZ string (which
// may be empty), and a closing newline. off is only used to annotate
// errors.
func readFooter(r io.Reader, off int64) (string, error) {
	br := bufio.NewReader(r)

	nl, err := br.ReadByte()
	if err != nil {
		return "", fmt.Errorf("tzif: read footer at offset %d: %w: %v", off, ErrShortRead, err)
	}
	if nl != '\n' {
		return "", fmt.Errorf("tzif: at offset %d: %w: footer does not start with newline", off, ErrMalformedBody)
	}

	line, err := br.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("tzif: read footer TZ string at offset %d: %w: %v", off+1, ErrShortRead, err)
	}

	return line[:len(line)-1], nil
}
