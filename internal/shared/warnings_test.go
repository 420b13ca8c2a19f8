package shared

import "testing"

func TestWarnOnceEmitsOncePerKey(t *testing.T) {
	var emitted []string
	w := NewWarnOnceWithPrinter(func(format string, args ...interface{}) {
		emitted = append(emitted, format)
	})

	w.Warnf("schema", "structure changed")
	w.Warnf("schema", "structure changed")
	w.Warnf("schema", "structure changed")
	w.Warnf("api-key", "key not set")

	if len(emitted) != 2 {
		t.Fatalf("expected 2 emitted warnings, got %d: %v", len(emitted), emitted)
	}
	if !w.Warned("schema") || !w.Warned("api-key") {
		t.Error("expected both keys to be marked as warned")
	}
	if w.Warned("other") {
		t.Error("unseen key should not be marked as warned")
	}
}
