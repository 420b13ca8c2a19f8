package shared

import "sync"

// WarnOnce emits each keyed warning at most once per process. The genre
// resolvers use it so a broken scrape target or a missing API key warns on
// the first track instead of flooding the output on every lookup.
type WarnOnce struct {
	mu    sync.Mutex
	seen  map[string]bool
	print func(format string, args ...interface{})
}

// NewWarnOnce creates a warner that prints through ColorWarning.
func NewWarnOnce() *WarnOnce {
	return NewWarnOnceWithPrinter(func(format string, args ...interface{}) {
		ColorWarning.Printf(format+"\n", args...)
	})
}

// NewWarnOnceWithPrinter creates a warner with a custom output function.
func NewWarnOnceWithPrinter(print func(format string, args ...interface{})) *WarnOnce {
	return &WarnOnce{
		seen:  make(map[string]bool),
		print: print,
	}
}

// Warnf prints the formatted warning the first time key is seen.
func (w *WarnOnce) Warnf(key string, format string, args ...interface{}) {
	w.mu.Lock()
	already := w.seen[key]
	w.seen[key] = true
	w.mu.Unlock()

	if !already {
		w.print(format, args...)
	}
}

// Warned reports whether a warning for key was already emitted.
func (w *WarnOnce) Warned(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.seen[key]
}
