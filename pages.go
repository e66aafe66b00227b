package rtui

type page[T any] struct {
	value T
	ok    bool
}

// Pages is an indexed collection whose first entry always exists. Entry k > 0
// exists only if it was added; adding k reserves the slots 1..k.
type Pages[T any] struct {
	first T
	pages []page[T]
}

func NewPages[T any](first T) *Pages[T] {
	return &Pages[T]{first: first}
}

// Add stores value at idx, which must not be 0.
func (p *Pages[T]) Add(value T, idx int) {
	if idx <= 0 {
		panic("rtui: page index must be positive")
	}
	for len(p.pages) < idx {
		p.pages = append(p.pages, page[T]{})
	}
	p.pages[idx-1] = page[T]{value: value, ok: true}
}

func (p *Pages[T]) Get(idx int) (T, bool) {
	if idx == 0 {
		return p.first, true
	}
	if idx < 0 || idx > len(p.pages) {
		var zero T
		return zero, false
	}
	pg := p.pages[idx-1]
	return pg.value, pg.ok
}

// GetOrFirst returns the entry at idx or the first one if it's absent.
func (p *Pages[T]) GetOrFirst(idx int) T {
	if v, ok := p.Get(idx); ok {
		return v
	}
	return p.first
}

func (p *Pages[T]) First() T { return p.first }

// Len returns the number of slots, present or not, including the first.
func (p *Pages[T]) Len() int { return len(p.pages) + 1 }

// Each calls fn for every present entry in index order.
func (p *Pages[T]) Each(fn func(idx int, value T)) {
	fn(0, p.first)
	for i, pg := range p.pages {
		if pg.ok {
			fn(i+1, pg.value)
		}
	}
}
