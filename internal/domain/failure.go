package domain

// TestFailure represents a failed or skipped test method reported by the runner
type TestFailure struct {
	TestName   string   `json:"test_name"`
	Status     string   `json:"status"`
	Message    string   `json:"message"`
	StackTrace []string `json:"stack_trace"`
}
