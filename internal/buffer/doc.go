// Package buffer provides a fixed-capacity, memory-locked sample buffer
// for use inside measurement loops.
//
// Recording a sample must not perturb the operation being measured. A
// plain slice can reallocate on append, and cold pages can fault or be
// swapped in mid-loop; either shows up as a latency spike in the data.
// Buffer avoids both by mapping the whole region up front with mmap,
// forcing it resident with mlock, and refusing to ever grow.
//
// # Basic Usage
//
//	buf := buffer.New[uint64](buffer.AlignedCapacity[uint64](10000))
//	defer buf.Close()
//
//	for i := 0; i < 10000; i++ {
//	    start := clk.Now()
//	    op()
//	    buf.Push(uint64(clk.Duration(start, clk.Now())))
//	}
//
//	for sample := range buf.All() {
//	    // exactly the pushed samples, in insertion order
//	}
//
// # Sizing
//
// The byte size of the buffer (capacity times element size) must be a
// positive multiple of the platform page size. AlignedCapacity rounds a
// desired element count up to the nearest valid capacity.
//
// # Failure Policy
//
// Construction and capacity violations panic rather than return errors:
// a run whose buffer cannot be locked, or whose loop outruns the
// capacity chosen for it, has no meaningful way to continue.
//
// # Thread Safety
//
// Buffer is not safe for concurrent use. It is owned by a single
// measurement loop on one goroutine.
package buffer
