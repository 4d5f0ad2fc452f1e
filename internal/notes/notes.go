// Copyright Brightwork Labs Inc., 2026. All rights reserved.

// Package notes handles notes-document intake: reading from a file, from an
// interactive terminal session, or from the built-in example document.
package notes

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed example.txt
var exampleNotes string

// Example returns the built-in photosynthesis example notes.
func Example() string {
	return exampleNotes
}

// ReadFile loads a notes document from disk. An empty or whitespace-only
// file is an error: there is nothing to generate material from.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading notes file %s: %w", path, err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("notes file %s is empty", path)
	}
	return text, nil
}

// ReadInteractive collects notes typed line by line. Input ends at EOF or
// after two consecutive blank lines. Returns an error when nothing was
// entered.
func ReadInteractive(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines []string
	blanks := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks >= 2 {
				break
			}
		} else {
			blanks = 0
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading notes: %w", err)
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		return "", fmt.Errorf("no notes provided")
	}
	return text, nil
}

// Preview returns the first n characters of text, marking truncation.
func Preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
