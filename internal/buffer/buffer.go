package buffer

import (
	"fmt"
	"iter"
	"math"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Buffer is a fixed-capacity append buffer backed by anonymous,
// process-private, memory-locked pages. The region is mapped and locked
// once at construction, so appends during a measurement loop never
// allocate, fault, or enter the kernel.
//
// The element type T must not contain pointers: the mapped region is
// outside the Go heap and is never scanned by the garbage collector.
//
// A Buffer is not safe for concurrent use. The intended owner is a
// single measurement loop on one goroutine.
type Buffer[T any] struct {
	region  []byte
	elems   []T
	len     int
	cap     int
	release func(T)
	closed  bool
}

// Option configures a Buffer at construction time.
type Option[T any] func(*Buffer[T])

// WithRelease registers a hook that Close invokes exactly once for each
// element that was pushed. Use it when elements own resources that must
// be released before the region is unmapped.
func WithRelease[T any](fn func(T)) Option[T] {
	return func(b *Buffer[T]) {
		b.release = fn
	}
}

// New maps, prefaults, and locks a region large enough for capacity
// elements of type T and returns an empty buffer over it.
//
// New panics if capacity*sizeof(T) is not a positive multiple of the
// platform page size, if the byte size would overflow a signed offset,
// or if the mmap or mlock system call fails. All of these are fatal: a
// benchmarking run cannot proceed with a partially usable buffer, and
// recovering gracefully would itself disturb the measurement
// environment.
func New[T any](capacity int, opts ...Option[T]) *Buffer[T] {
	elemSize := int(unsafe.Sizeof(*new(T)))
	pageSize := os.Getpagesize()

	if capacity <= 0 {
		panic(fmt.Sprintf("buffer: capacity must be positive, got %d", capacity))
	}
	if elemSize == 0 || capacity > math.MaxInt/elemSize {
		panic(fmt.Sprintf("buffer: %d elements of %d bytes cannot be addressed", capacity, elemSize))
	}

	size := capacity * elemSize
	if size%pageSize != 0 {
		panic(fmt.Sprintf("buffer: %d elements of %d bytes is %d bytes, not a multiple of the %d-byte page size",
			capacity, elemSize, size, pageSize))
	}

	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		panic(fmt.Sprintf("buffer: mmap of %d bytes failed: %v", size, err))
	}

	// Mlock faults every page in and pins it resident, so the hot path
	// never takes a page fault or a swap-in stall.
	if err := unix.Mlock(region); err != nil {
		_ = unix.Munmap(region)
		panic(fmt.Sprintf("buffer: mlock of %d bytes failed: %v (check RLIMIT_MEMLOCK)", size, err))
	}

	b := &Buffer[T]{
		region: region,
		elems:  unsafe.Slice((*T)(unsafe.Pointer(&region[0])), capacity),
		cap:    capacity,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Len returns the number of elements pushed so far.
func (b *Buffer[T]) Len() int { return b.len }

// Cap returns the fixed element capacity chosen at construction.
func (b *Buffer[T]) Cap() int { return b.cap }

// Push appends item to the buffer. Capacity is deliberately fixed ahead
// of time so that no growth or system call can occur on the hot path;
// pushing past it is a programmer error and panics.
func (b *Buffer[T]) Push(item T) {
	if b.closed {
		panic("buffer: push on closed buffer")
	}
	if b.len == b.cap {
		panic(fmt.Sprintf("buffer: capacity exceeded (%d)", b.cap))
	}
	b.elems[b.len] = item
	b.len++
}

// All returns a lazy, restartable sequence over exactly the elements
// pushed so far, in insertion order. Slots past the logical length are
// uninitialized memory and are never exposed.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if b.closed {
			panic("buffer: iterate on closed buffer")
		}
		for i := 0; i < b.len; i++ {
			if !yield(b.elems[i]) {
				return
			}
		}
	}
}

// Slice returns a view over exactly the elements pushed so far. The
// view is valid only until Close; callers that need the data afterwards
// must copy it out first.
func (b *Buffer[T]) Slice() []T {
	if b.closed {
		panic("buffer: slice of closed buffer")
	}
	return b.elems[:b.len:b.len]
}

// Close runs the release hook once per pushed element, then unlocks and
// unmaps the region, returning it to the operating system. Close is
// idempotent; the region is released exactly once. A failed munmap
// panics, since the process would otherwise leak locked pages for its
// remaining lifetime.
func (b *Buffer[T]) Close() {
	if b.closed {
		return
	}
	b.closed = true

	if b.release != nil {
		for i := 0; i < b.len; i++ {
			b.release(b.elems[i])
		}
	}
	b.elems = nil

	region := b.region
	b.region = nil
	_ = unix.Munlock(region)
	if err := unix.Munmap(region); err != nil {
		panic(fmt.Sprintf("buffer: munmap failed: %v", err))
	}
}

// AlignedCapacity returns the smallest capacity >= n for which a
// Buffer[T] satisfies the page-multiple size requirement. Callers that
// know only how many samples they intend to record can round up with
// this before calling New.
func AlignedCapacity[T any](n int) int {
	elemSize := int(unsafe.Sizeof(*new(T)))
	pageSize := os.Getpagesize()
	if n < 1 {
		n = 1
	}
	// capacity must be a multiple of pageSize / gcd(pageSize, elemSize)
	// for capacity*elemSize to land on a page boundary.
	step := pageSize / gcd(pageSize, elemSize)
	return (n + step - 1) / step * step
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
