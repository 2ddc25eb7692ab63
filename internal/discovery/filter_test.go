package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		tests    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			tests:    []string{"UserTest.java", "PaymentTest.java", "OrderTest.java"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			tests:    []string{"UserTest.java", "PaymentTest.java", "OrderTest.java"},
			pattern:  "*UserTest.java",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			tests:    []string{"UserTest.java", "PaymentTest.java", "OrderTest.java", "PaymentServiceTest.java"},
			pattern:  "*Payment*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			tests:    []string{"UserTest.java", "PaymentTest.java", "OrderTest.java"},
			pattern:  "Payment",
			expected: 1,
		},
		{
			name:     "no matches",
			tests:    []string{"UserTest.java", "PaymentTest.java"},
			pattern:  "*NonExistent*",
			expected: 0,
		},
		{
			name:     "full path with wildcard",
			tests:    []string{"/path/to/UserTest.java", "/path/to/PaymentTest.java"},
			pattern:  "*UserTest.java",
			expected: 1,
		},
		{
			name:     "double star path pattern",
			tests:    []string{"src/test/java/com/x/payment/CardTest.java", "src/test/java/com/x/user/UserTest.java"},
			pattern:  "**/payment/*Test.java",
			expected: 1,
		},
		{
			name:     "brace alternatives",
			tests:    []string{"UserTest.java", "PaymentTest.java", "OrderTest.java"},
			pattern:  "{User,Order}Test.java",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.tests, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty test list", func(t *testing.T) {
		result := filter.FilterByName([]string{}, "*Test.java")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		tests := []string{"UserServiceTest.java", "UserControllerTest.java", "PaymentTest.java"}
		result := filter.FilterByName(tests, "*User*Test.java")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})
}
