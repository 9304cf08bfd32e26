package cache

import "testing"

func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"3f2a9c1e-7b0d-4e8a-9b1c-2d3e4f5a6b7c", "3f2a9c1e-7b0d-4e8a-9b1c-2d3e4f5a6b7c"},
		{"a b", "a_b"},
		{"key:value", "key_value"},
		{"a b:c", "a_b_c"},
		{"", ""},
		{"::", "__"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if result := safe(tt.input); result != tt.expected {
				t.Errorf("safe(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
