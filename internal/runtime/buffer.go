package runtime

import "github.com/aretw0/samuel/pkg/domain"

// rotate returns s rotated right by n positions. Negative n rotates left.
// n is taken modulo len(s).
func rotate[T any](s []T, n int) []T {
	length := len(s)
	if length == 0 {
		return s
	}
	n %= length
	if n < 0 {
		n += length
	}
	out := make([]T, 0, length)
	out = append(out, s[length-n:]...)
	out = append(out, s[:length-n]...)
	return out
}

// reverse flips s in place.
func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func removeAt[T any](s []T, idx int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:idx]...)
	return append(out, s[idx+1:]...)
}

func insertAt[T any](s []T, idx int, v T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:idx]...)
	out = append(out, v)
	return append(out, s[idx:]...)
}

// dupThenDelete inserts a copy of s[src] at index at and then deletes the
// element that was pushed to at+1. The length is unchanged.
func dupThenDelete[T any](s []T, src, at int) []T {
	v := s[src]
	s = insertAt(s, at, v)
	return removeAt(s, at+1)
}

func countSymbol(symbols []domain.Symbol, want domain.Symbol) int {
	n := 0
	for _, s := range symbols {
		if s == want {
			n++
		}
	}
	return n
}

// invertSymbols swaps every dot for a dash and vice versa.
func (st *stage) invertSymbols() {
	for i, s := range st.symbols {
		st.symbols[i] = s.Invert()
	}
}

func (st *stage) setAllColours(c domain.Colour) {
	for i := range st.colours {
		st.colours[i] = c
	}
}

// shiftBoth rotates symbols and colours together.
func (st *stage) shiftBoth(n int) {
	st.symbols = rotate(st.symbols, n)
	st.colours = rotate(st.colours, n)
}

func (st *stage) mapColours(m map[domain.Colour]domain.Colour) {
	for i, c := range st.colours {
		st.colours[i] = m[c]
	}
}

func (st *stage) dupThenDeleteBoth(src, at int) {
	st.symbols = dupThenDelete(st.symbols, src, at)
	st.colours = dupThenDelete(st.colours, src, at)
}

func (st *stage) removeBoth(idx int) {
	st.symbols = removeAt(st.symbols, idx)
	st.colours = removeAt(st.colours, idx)
}

func (st *stage) insertBoth(idx int, s domain.Symbol, c domain.Colour) {
	st.symbols = insertAt(st.symbols, idx, s)
	st.colours = insertAt(st.colours, idx, c)
}
