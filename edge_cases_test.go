package stateptr_test

import (
	"runtime"
	"sync"
	"testing"
	"unsafe"

	"github.com/pavanmanishd/stateptr"
	"github.com/pavanmanishd/stateptr/internal/slab"
)

// roundTrip tags a freshly allocated T with every state it can hold.
func roundTrip[T any](t *testing.T, name string) {
	t.Helper()
	s := slab.New[T](8)
	defer s.Release()

	l := stateptr.LayoutOf[T]()
	for i := 0; i < 8; i++ {
		p := s.Alloc()
		for st := uint64(0); st <= l.StateMax; st++ {
			tp := stateptr.New(p, st)
			if tp.Get() != p {
				t.Errorf("%s: Get() = %p, want %p", name, tp.Get(), p)
			}
			if tp.State() != st {
				t.Errorf("%s: State() = %d, want %d", name, tp.State(), st)
			}
		}
	}
}

func TestTypeSpecificLayouts(t *testing.T) {
	t.Run("BasicTypes", func(t *testing.T) {
		roundTrip[bool](t, "bool")
		roundTrip[int8](t, "int8")
		roundTrip[int16](t, "int16")
		roundTrip[int32](t, "int32")
		roundTrip[int64](t, "int64")
		roundTrip[float32](t, "float32")
		roundTrip[float64](t, "float64")
		roundTrip[complex128](t, "complex128")
		roundTrip[string](t, "string")
		roundTrip[uintptr](t, "uintptr")
	})

	t.Run("ComplexTypes", func(t *testing.T) {
		type AlignTest1 struct{ a int8 }
		type AlignTest2 struct{ a int64 }
		type AlignTest3 struct {
			a int8
			b int64
		}
		roundTrip[AlignTest1](t, "AlignTest1")
		roundTrip[AlignTest2](t, "AlignTest2")
		roundTrip[AlignTest3](t, "AlignTest3")
		roundTrip[map[string]int](t, "map")
		roundTrip[[]byte](t, "slice")
		roundTrip[any](t, "interface")
	})

	t.Run("StateBitsFollowAlignment", func(t *testing.T) {
		type AlignTest3 struct {
			a int8
			b int64
		}
		want := stateptr.Log2(unsafe.Alignof(AlignTest3{}))
		if got := stateptr.StateBits[AlignTest3](); got != want {
			t.Errorf("StateBits[AlignTest3] = %d, want %d", got, want)
		}
		if got := stateptr.StateBits[struct{ a int8 }](); got != 0 {
			t.Errorf("StateBits[struct{int8}] = %d, want 0", got)
		}
	})
}

func TestPointeeWritesDoNotTouchState(t *testing.T) {
	type Record struct {
		ID   int64
		Name string
	}
	s := slab.New[Record](4)
	defer s.Release()

	r := s.Alloc()
	limit := stateptr.StateMax[Record]()
	p := stateptr.New(r, limit)

	for i := 0; i < 100; i++ {
		p.Get().ID = int64(i)
		p.Get().Name = "record"
	}
	if p.State() != limit {
		t.Errorf("State() = %d after writes, want %d", p.State(), limit)
	}
	if r.ID != 99 {
		t.Errorf("pointee ID = %d, want 99", r.ID)
	}
}

func TestConcurrentReaders(t *testing.T) {
	nodes := slab.NewSafe[int64](64)
	defer nodes.Release()

	v := nodes.Alloc()
	*v = 77
	shared := stateptr.New(v, 1)

	const numReaders = 16
	var wg sync.WaitGroup
	errs := make(chan string, numReaders)
	for i := 0; i < numReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if shared.Value() != 77 || shared.State() != 1 {
					errs <- "shared tagged pointer changed under readers"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestConcurrentOwnedPointers(t *testing.T) {
	nodes := slab.NewSafe[int64](64)
	defer nodes.Release()

	const numWorkers = 8
	limit := int(stateptr.StateMax[int64]())
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			// Each goroutine mutates only its own tagged pointer.
			v := nodes.Alloc()
			*v = int64(id)
			p := stateptr.New(v, 0)
			for j := 0; j < 1000; j++ {
				p.SetState(j % (limit + 1))
				if p.Get() != v {
					t.Errorf("worker %d: pointer changed by SetState", id)
					return
				}
			}
			runtime.Gosched()
			if p.Value() != int64(id) {
				t.Errorf("worker %d: value = %d", id, p.Value())
			}
		}(w)
	}
	wg.Wait()
}
