package mcp

import "sync"

// traceRing keeps the most recent dispatch outcomes so the health
// endpoint can show what the server has been doing without anyone
// tailing logs.
type traceRing struct {
	mu    sync.Mutex
	lines []string
	next  int
	count int
}

func newTraceRing(size int) *traceRing {
	if size <= 0 {
		size = 64
	}
	return &traceRing{lines: make([]string, size)}
}

func (r *traceRing) Add(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines[r.next] = line
	r.next = (r.next + 1) % len(r.lines)
	if r.count < len(r.lines) {
		r.count++
	}
}

func (r *traceRing) Tail(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 || r.count == 0 {
		return nil
	}

	if n > r.count {
		n = r.count
	}

	start := (r.next - n + len(r.lines)) % len(r.lines)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = r.lines[(start+i)%len(r.lines)]
	}

	return out
}
