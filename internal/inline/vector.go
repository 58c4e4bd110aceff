// Package inline provides a small-vector container for the per-pixel sprite
// lists maintained by the rasterizer.
//
// Most framebuffer columns host only a handful of sprite activations per
// frame, so the vector stores its first few elements inside the struct and
// only spills to a heap slice past that. Clearing returns the vector to
// inline storage without freeing it, so a steady-state frame performs no
// per-pixel allocation.
//
// Thread safety: Vector is not safe for concurrent use. The rasterizer
// guarantees each vector is touched by one worker at a time.
package inline

// capInline is the number of elements stored without heap allocation.
// Columns rarely see more than a few sprite activations on one scanline.
const capInline = 4

// Vector is a growable homogeneous list with inline storage for its first
// capInline elements. The zero value is an empty vector ready for use.
type Vector[T any] struct {
	n      int
	inline [capInline]T
	spill  []T
}

// Put appends an element.
func (v *Vector[T]) Put(elem T) {
	if v.spill == nil {
		if v.n < capInline {
			v.inline[v.n] = elem
			v.n++
			return
		}
		// Inline storage is full; move everything to a heap slice.
		v.spill = make([]T, 0, 2*capInline)
		v.spill = append(v.spill, v.inline[:v.n]...)
	}
	v.spill = append(v.spill, elem)
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v.spill != nil {
		return len(v.spill)
	}
	return v.n
}

// At returns the i-th element. i must be within bounds.
func (v *Vector[T]) At(i int) T {
	if v.spill != nil {
		return v.spill[i]
	}
	return v.inline[i]
}

// Clear empties the vector and returns it to inline storage. Stored
// elements are zeroed so the vector does not retain references between
// frames.
func (v *Vector[T]) Clear() {
	clear(v.inline[:v.n])
	v.n = 0
	v.spill = nil
}
