package main

import (
	"bufio"
	"os"
	"strings"
	"unicode"

	"github.com/ansel1/merry"
)

// ReadLines returns the lines of the file at path with trailing white space
// removed, skipping lines that are left empty.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, merry.Prepend(err, "open word list").WithValue("path", path)
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if l := strings.TrimRightFunc(sc.Text(), unicode.IsSpace); len(l) > 0 {
			lines = append(lines, l)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, merry.Prepend(err, "read word list").WithValue("path", path)
	}
	return lines, nil
}
