package clock

import (
	"sort"
	"sync"
	"time"
)

// entry is a pending frame or timer callback.
type entry struct {
	owner *sync.Mutex
	due   time.Time
	seq   uint64
	timer func()
	frame func(time.Time)
	done  bool
}

// Cancel marks the entry so it never runs.
func (e *entry) Cancel() {
	e.owner.Lock()
	e.done = true
	e.owner.Unlock()
}

func (e *entry) run(now time.Time) {
	if e.frame != nil {
		e.frame(now)
		return
	}
	e.timer()
}

// queue orders entries by due time, then by scheduling order.
// Callers hold the owner mutex.
type queue struct {
	entries []*entry
	seq     uint64
}

func (q *queue) push(e *entry) {
	q.seq++
	e.seq = q.seq
	q.entries = append(q.entries, e)
}

// popDue removes and returns the earliest live entry due at or before t.
func (q *queue) popDue(t time.Time) *entry {
	q.compact()
	if len(q.entries) == 0 {
		return nil
	}
	sort.Slice(q.entries, func(i, j int) bool {
		a, b := q.entries[i], q.entries[j]
		if !a.due.Equal(b.due) {
			return a.due.Before(b.due)
		}
		return a.seq < b.seq
	})
	head := q.entries[0]
	if head.due.After(t) {
		return nil
	}
	q.entries = q.entries[1:]
	head.done = true
	return head
}

// next returns the earliest live due time.
func (q *queue) next() (time.Time, bool) {
	q.compact()
	var earliest time.Time
	for i, e := range q.entries {
		if i == 0 || e.due.Before(earliest) {
			earliest = e.due
		}
	}
	return earliest, len(q.entries) > 0
}

func (q *queue) len() int {
	q.compact()
	return len(q.entries)
}

func (q *queue) compact() {
	live := q.entries[:0]
	for _, e := range q.entries {
		if !e.done {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(q.entries); i++ {
		q.entries[i] = nil
	}
	q.entries = live
}
