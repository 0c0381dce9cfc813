// Package intern deduplicates owned strings by content. Boundary call
// sites that keep receiving the same byte ranges can intern them once and
// reuse the canonical owned copy instead of re-copying per call.
package intern

import (
	"container/list"
	"sync"
	"sync/atomic"

	strview "StrView"

	"github.com/sirupsen/logrus"
)

type Table struct {
	mutex     sync.Mutex
	list      *list.List
	items     map[string]*list.Element
	maxBytes  int64
	usedBytes int64
	hits      atomic.Int64
	misses    atomic.Int64
	closed    atomic.Bool
}

type entry struct {
	key   string
	value *strview.Owned
}

type Options struct {
	MaxBytes int64
}

var DefaultOptions = Options{
	MaxBytes: 8 * 1024 * 1024, // 8MB
}

func New(opts Options) *Table {
	return &Table{
		list:     list.New(),
		items:    make(map[string]*list.Element),
		maxBytes: opts.MaxBytes,
	}
}

// Intern returns the canonical owned string for the content of b, copying
// only the first time a content is seen. Least recently interned contents
// are evicted once the table exceeds its byte budget.
func (t *Table) Intern(b []byte) *strview.Owned {
	if t.closed.Load() {
		return strview.OwnedBytes(b)
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if ele, ok := t.items[string(b)]; ok {
		t.hits.Add(1)
		t.list.MoveToFront(ele)
		return ele.Value.(*entry).value
	}
	t.misses.Add(1)

	cost := 2 * int64(len(b)) // key copy plus owned copy
	if t.maxBytes > 0 && cost > t.maxBytes {
		logrus.Warnf("intern: value of %d bytes exceeds table budget, not interned", len(b))
		return strview.OwnedBytes(b)
	}

	e := &entry{key: string(b), value: strview.OwnedBytes(b)}
	ele := t.list.PushFront(e)
	t.items[e.key] = ele
	t.usedBytes += cost

	t.evict()
	return e.value
}

// InternString is Intern for string content.
func (t *Table) InternString(s string) *strview.Owned {
	return t.Intern([]byte(s))
}

// InternView interns the bytes a view currently sees, giving them a
// lifetime independent of the view's backing buffer.
func (t *Table) InternView(v strview.View) *strview.Owned {
	return t.Intern(v.Bytes())
}

func (t *Table) Len() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.list.Len()
}

func (t *Table) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.list.Init()
	t.items = make(map[string]*list.Element)
	t.usedBytes = 0
	t.hits.Store(0)
	t.misses.Store(0)
}

func (t *Table) Close() {
	if !t.closed.CompareAndSwap(false, true) {
		return
	}
	t.Clear()
}

func (t *Table) Stats() map[string]any {
	t.mutex.Lock()
	size := t.list.Len()
	used := t.usedBytes
	t.mutex.Unlock()

	stats := map[string]any{
		"size":       size,
		"used_bytes": used,
		"hits":       t.hits.Load(),
		"misses":     t.misses.Load(),
	}

	totalRequests := stats["hits"].(int64) + stats["misses"].(int64)
	if totalRequests > 0 {
		stats["hit_rate"] = float64(stats["hits"].(int64)) / float64(totalRequests)
	} else {
		stats["hit_rate"] = 0.0
	}

	return stats
}

func (t *Table) evict() {
	for t.maxBytes > 0 && t.usedBytes > t.maxBytes && t.list.Len() > 0 {
		ele := t.list.Back()
		e := ele.Value.(*entry)
		t.list.Remove(ele)
		delete(t.items, e.key)
		t.usedBytes -= 2 * int64(len(e.key))
	}
}
