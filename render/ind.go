package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteIndices writes one index per line.
func WriteIndices(w io.Writer, sol []int) error {
	bw := bufio.NewWriter(w)
	for _, i := range sol {
		bw.WriteString(strconv.Itoa(i))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadIndices parses the ".ind" format. Surrounding whitespace and blank
// lines are ignored. Indices are returned in file order, duplicates included.
func ReadIndices(r io.Reader) ([]int, error) {
	var out []int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		i, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("render: line %d: invalid index %q", line, text)
		}
		out = append(out, i)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []int{}
	}
	return out, nil
}
