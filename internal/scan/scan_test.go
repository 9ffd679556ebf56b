package scan

import (
	"strings"
	"testing"
)

func TestFindMatchingBrace(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		openIdx int
		want    int
	}{
		{"simple", "{}", 0, 2},
		{"nested", "{ { } }", 0, 7},
		{"inner", "{ { } }", 2, 5},
		{"trailing text", "{ a }b", 0, 5},
		{"unclosed", "{ {", 0, NotFound},
		{"brace in string", `{ "}" }`, 0, 7},
		{"brace in char literal", "{ '}' }", 0, 7},
		{"escaped quote in string", `{ "\"}" }`, 0, 9},
		{"escaped backslash before quote", `{ "\\" }`, 0, 8},
		{"brace in line comment", "{ // }\n}", 0, 8},
		{"brace in block comment", "{ /* } */ }", 0, 11},
		{"line comment unterminated", "{ // }", 0, NotFound},
		{"not a brace", "a{}", 0, NotFound},
		{"out of range", "{}", 5, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMatchingBrace(tt.src, tt.openIdx)
			if got != tt.want {
				t.Errorf("FindMatchingBrace(%q, %d) = %d, want %d", tt.src, tt.openIdx, got, tt.want)
			}
		})
	}
}

func TestFindMatchingBrace_MethodBody(t *testing.T) {
	src := `public int add(int a, int b) {
		// sum of both { not a block }
		String s = "}";
		return a + b;
	}
	public void other() {}`

	open := strings.IndexByte(src, '{')
	end := FindMatchingBrace(src, open)
	if end == NotFound {
		t.Fatal("expected to find matching brace")
	}
	body := src[open:end]
	if !strings.Contains(body, "return a + b;") {
		t.Errorf("body does not contain method statement: %q", body)
	}
	if strings.Contains(body, "other") {
		t.Errorf("body leaked past close: %q", body)
	}
}
