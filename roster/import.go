// Package roster parses and normalizes the student name list.
package roster

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ImportErrorKind distinguishes the three ways a roster import can fail.
type ImportErrorKind int

const (
	// UnsupportedFormat means the file extension is a binary spreadsheet
	// format this launcher deliberately does not parse.
	UnsupportedFormat ImportErrorKind = iota
	// Unreadable means the file could not be opened.
	Unreadable
	// Empty means parsing yielded zero names.
	Empty
)

// ImportError describes a rejected roster import. The existing roster is
// left untouched whenever one is returned.
type ImportError struct {
	Kind    ImportErrorKind
	Message string
	Err     error
}

func (e *ImportError) Error() string { return e.Message }

func (e *ImportError) Unwrap() error { return e.Err }

// ImportFromText reads a plain-text roster file: one or more
// comma/semicolon-delimited names per line. Tokens are trimmed, empty tokens
// dropped, and duplicates removed preserving first-seen order.
func ImportFromText(filePath string) ([]string, *ImportError) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
	if ext == "xls" || ext == "xlsx" {
		return nil, &ImportError{
			Kind:    UnsupportedFormat,
			Message: "Excel files are not supported; save the sheet as CSV or TXT and import that instead",
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, &ImportError{
			Kind:    Unreadable,
			Message: fmt.Sprintf("could not read roster file: %v", err),
			Err:     err,
		}
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		line = strings.ReplaceAll(line, ";", ",")
		for _, part := range strings.Split(line, ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ImportError{
			Kind:    Unreadable,
			Message: fmt.Sprintf("could not read roster file: %v", err),
			Err:     err,
		}
	}

	names = Normalize(names)
	if len(names) == 0 {
		return nil, &ImportError{
			Kind:    Empty,
			Message: "no usable student names found in the file",
		}
	}
	return names, nil
}

// Normalize trims names, drops empty ones, and removes duplicates while
// preserving first-seen order.
func Normalize(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// DefaultStudents returns the compiled-in sample roster
func DefaultStudents() []string {
	return []string{"张三", "李四", "王五", "赵六", "示例学生"}
}
