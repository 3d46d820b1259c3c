package state

// RequestTracker tags asynchronous loads with increasing sequence numbers.
// Only the response to the latest issued request is current; older
// responses are dropped on arrival so a slow reply never overwrites a newer one.
type RequestTracker struct {
	seq uint64
}

// Next issues a new tag and makes it the current one.
func (t *RequestTracker) Next() uint64 {
	t.seq++
	return t.seq
}

// Invalidate makes every outstanding tag stale without issuing a request.
func (t *RequestTracker) Invalidate() {
	t.seq++
}

// IsCurrent reports whether seq is the latest issued tag.
func (t *RequestTracker) IsCurrent(seq uint64) bool {
	return seq != 0 && seq == t.seq
}
