package discovery

import (
	"bufio"
	"fmt"
	"os"

	"ngrun/internal/detection"
	"ngrun/internal/domain"
)

// Parser finds test declarations in Java test files, one line at a time
type Parser struct {
	detector *detection.Detector
}

// NewParser creates a new Parser
func NewParser(detector *detection.Detector) *Parser {
	return &Parser{detector: detector}
}

// FindTestCases returns the test class and test method declarations of a file
// in source order
func (p *Parser) FindTestCases(filePath string) ([]domain.TestCase, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	defer file.Close()

	var testCases []domain.TestCase
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		match := p.detector.Classify(line)
		if !match.Matched() {
			continue
		}
		testCases = append(testCases, domain.TestCase{
			Name:     match.Identifier,
			Kind:     match.Kind,
			FilePath: filePath,
			Line:     lineNo,
			LineText: line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	return testCases, nil
}

// ReadLine returns the text of a 1-based line of a file
func ReadLine(filePath string, lineNo int) (string, error) {
	if lineNo < 1 {
		return "", fmt.Errorf("line must be >= 1, got %d", lineNo)
	}
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		if n == lineNo {
			return scanner.Text(), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return "", fmt.Errorf("%s has fewer than %d lines", filePath, lineNo)
}
