package tokenstore

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCorpus consumes the ingestion protocol from r: a line beginning
// with 'F' introduces a new file named by the remainder of the line;
// every other line belongs to the current file — blank lines record an
// empty line, otherwise the line holds whitespace-separated decimal
// token values. The corpus returned has every file compacted.
func ReadCorpus(r io.Reader) (*Corpus, error) {
	corpus := &Corpus{}
	var current *File

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.HasPrefix(line, "F") {
			current = &File{Name: line[1:]}
			corpus.Files = append(corpus.Files, current)
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("tokenstore: line %d: token data before any file header", lineNo)
		}

		current.addLine()
		fields := strings.Fields(line)
		for _, field := range fields {
			v, err := strconv.ParseInt(field, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("tokenstore: line %d: invalid token %q: %w", lineNo, field, err)
			}
			current.addToken(Token(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tokenstore: reading input: %w", err)
	}

	for _, f := range corpus.Files {
		f.compact()
	}
	return corpus, nil
}
