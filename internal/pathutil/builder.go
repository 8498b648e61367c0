package pathutil

import (
	"strconv"
	"strings"
	"sync"
)

const (
	defaultPathCap = 8
	maxPathCap     = 64
)

// PathBuilder records the location of a document walk as a stack of
// segments. Sequence indexes are kept apart from keys so the location can
// be rendered for display (String) or for lookup (Dotted).
type PathBuilder struct {
	segments []segment
}

type segment struct {
	key   string
	index int
	isIdx bool
}

// Push adds a mapping key.
func (p *PathBuilder) Push(key string) {
	p.segments = append(p.segments, segment{key: key})
}

// PushIndex adds a sequence index.
func (p *PathBuilder) PushIndex(i int) {
	p.segments = append(p.segments, segment{index: i, isIdx: true})
}

// Pop removes the last segment. It is a no-op on an empty path.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	p.segments = p.segments[:len(p.segments)-1]
}

// Depth returns the number of segments.
func (p *PathBuilder) Depth() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
}

// String renders the path for messages: keys joined by dots, indexes in
// brackets, as in "functions[0].name".
func (p *PathBuilder) String() string {
	var b strings.Builder
	for i, seg := range p.segments {
		if seg.isIdx {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.key)
	}
	return b.String()
}

// Dotted renders the path in lookup form, as in "functions.0.name".
func (p *PathBuilder) Dotted() string {
	parts := make([]string, len(p.segments))
	for i, seg := range p.segments {
		if seg.isIdx {
			parts[i] = strconv.Itoa(seg.index)
		} else {
			parts[i] = seg.key
		}
	}
	return strings.Join(parts, ".")
}

var pool = sync.Pool{
	New: func() any {
		return &PathBuilder{segments: make([]segment, 0, defaultPathCap)}
	},
}

// Get returns an empty PathBuilder from the pool.
func Get() *PathBuilder {
	p := pool.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns p to the pool. Builders grown past maxPathCap are dropped.
func Put(p *PathBuilder) {
	if p == nil || cap(p.segments) > maxPathCap {
		return
	}
	pool.Put(p)
}
