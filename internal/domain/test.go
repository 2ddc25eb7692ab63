package domain

// TestCase represents a test class or test method declared in a file
type TestCase struct {
	Name     string    // Class or method identifier
	Kind     MatchKind // ClassMatch or MethodMatch
	FilePath string    // Path to the file containing the declaration
	Line     int       // 1-based line number of the declaration
	LineText string    // Raw text of the declaration line
}
