package testutil

import "testing"

func TestFixedRunIDGenerator(t *testing.T) {
	g := NewFixedRunIDGenerator("run-42")
	for i := 0; i < 3; i++ {
		if got := g.Generate(); got != "run-42" {
			t.Fatalf("Generate() = %q, want %q", got, "run-42")
		}
	}

	if got := NewFixedRunIDGenerator("").Generate(); got != "test-run-default" {
		t.Errorf("default Generate() = %q, want %q", got, "test-run-default")
	}
}
