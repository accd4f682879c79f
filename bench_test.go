package stateptr

import (
	"testing"

	"github.com/pavanmanishd/stateptr/internal/slab"
)

// taggedSlot pairs a pointer with a separate state, the layout a tagged
// pointer replaces.
type taggedSlot struct {
	p     *node
	state uint8
}

func BenchmarkAccess(b *testing.B) {
	nodes := slab.New[node](1024).AllocSlice(1024)

	b.Run("Ptr", func(b *testing.B) {
		ps := make([]Ptr[node, uint8], len(nodes))
		for i := range nodes {
			ps[i] = New(&nodes[i], uint8(i&1))
		}
		b.ResetTimer()
		sum := 0
		for i := 0; i < b.N; i++ {
			p := ps[i%len(ps)]
			if p.State() == 1 {
				sum += p.Get().key
			}
		}
		_ = sum
	})

	b.Run("Struct", func(b *testing.B) {
		slots := make([]taggedSlot, len(nodes))
		for i := range nodes {
			slots[i] = taggedSlot{p: &nodes[i], state: uint8(i & 1)}
		}
		b.ResetTimer()
		sum := 0
		for i := 0; i < b.N; i++ {
			s := slots[i%len(slots)]
			if s.state == 1 {
				sum += s.p.key
			}
		}
		_ = sum
	})
}

func BenchmarkSetState(b *testing.B) {
	n := &node{}
	p := New(n, uint8(0))
	limit := uint8(p.StateMax())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.SetState(uint8(i) & limit)
	}
}

func BenchmarkCompare(b *testing.B) {
	nodes := slab.New[node](2).AllocSlice(2)
	p, q := New(&nodes[0], 1), New(&nodes[1], 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Compare(q)
	}
}

func BenchmarkHash(b *testing.B) {
	p := New(&node{}, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Hash()
	}
}
