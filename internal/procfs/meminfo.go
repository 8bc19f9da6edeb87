package procfs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// meminfoPath is the kernel's system-wide memory accounting file.
const meminfoPath = "/proc/meminfo"

// readBufferSize bounds every procfs read buffer to one page, to limit
// how much the read itself disturbs the measurement environment.
const readBufferSize = 4096

// Kilobytes is a memory quantity in kilobyte units, as /proc/meminfo
// reports them.
type Kilobytes uint64

// Kilobytes returns the quantity as a plain count of kilobytes.
func (k Kilobytes) Kilobytes() uint64 { return uint64(k) }

// Bytes returns the quantity in bytes.
func (k Kilobytes) Bytes() uint64 { return uint64(k) * 1024 }

// String formats the quantity the way /proc/meminfo prints it.
func (k Kilobytes) String() string { return fmt.Sprintf("%d kB", uint64(k)) }

// parseKilobytes parses a value like "93 kB". The kernel always emits
// kB, but larger units are accepted for robustness.
func parseKilobytes(s string) (Kilobytes, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("procfs: empty memory quantity")
	}

	value, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("procfs: bad memory quantity %q: %w", s, err)
	}

	if len(fields) == 1 {
		// Bare counts (e.g. HugePages_Total) are unit-free.
		return Kilobytes(value), nil
	}

	switch strings.ToLower(fields[1]) {
	case "kb":
		return Kilobytes(value), nil
	case "mb":
		return Kilobytes(value * 1024), nil
	case "gb":
		return Kilobytes(value * 1024 * 1024), nil
	case "tb":
		return Kilobytes(value * 1024 * 1024 * 1024), nil
	default:
		return 0, fmt.Errorf("procfs: unexpected unit %q in %q", fields[1], s)
	}
}

// Meminfo is a typed record of /proc/meminfo. Quantities are in
// kilobytes except the HugePages_* counts, which are bare page counts.
type Meminfo struct {
	MemTotal          Kilobytes
	MemFree           Kilobytes
	MemAvailable      Kilobytes
	Buffers           Kilobytes
	Cached            Kilobytes
	SwapCached        Kilobytes
	Active            Kilobytes
	Inactive          Kilobytes
	ActiveAnon        Kilobytes
	InactiveAnon      Kilobytes
	ActiveFile        Kilobytes
	InactiveFile      Kilobytes
	Unevictable       Kilobytes
	Mlocked           Kilobytes
	SwapTotal         Kilobytes
	SwapFree          Kilobytes
	Dirty             Kilobytes
	Writeback         Kilobytes
	AnonPages         Kilobytes
	Mapped            Kilobytes
	Shmem             Kilobytes
	Slab              Kilobytes
	SReclaimable      Kilobytes
	SUnreclaim        Kilobytes
	KernelStack       Kilobytes
	PageTables        Kilobytes
	CommitLimit       Kilobytes
	CommittedAS       Kilobytes
	VmallocTotal      Kilobytes
	VmallocUsed       Kilobytes
	AnonHugePages     Kilobytes
	HugePagesTotal    uint64
	HugePagesFree     uint64
	HugepageSize      Kilobytes
	HardwareCorrupted Kilobytes
}

// requiredMeminfoFields must be present in every kernel this code
// targets; their absence means the file is not what we think it is.
var requiredMeminfoFields = []string{"MemTotal", "MemFree"}

// ReadMeminfo reads and parses /proc/meminfo. I/O and parse failures
// are recoverable and returned as errors.
func ReadMeminfo() (*Meminfo, error) {
	f, err := os.Open(meminfoPath)
	if err != nil {
		return nil, fmt.Errorf("procfs: open %s: %w", meminfoPath, err)
	}
	defer f.Close()

	return ParseMeminfo(f)
}

// ParseMeminfo parses meminfo-format text ("Key:   value kB" lines)
// from r. Fields the kernel does not report are left zero; only the
// required core fields cause an error when missing.
func ParseMeminfo(r io.Reader) (*Meminfo, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(bufio.NewReaderSize(r, readBufferSize))
	for scanner.Scan() {
		line := scanner.Text()
		name, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("procfs: malformed meminfo line %q", line)
		}
		values[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("procfs: read meminfo: %w", err)
	}

	for _, name := range requiredMeminfoFields {
		if _, ok := values[name]; !ok {
			return nil, fmt.Errorf("procfs: meminfo field %q not found", name)
		}
	}

	var m Meminfo
	fields := []struct {
		key string
		dst *Kilobytes
	}{
		{"MemTotal", &m.MemTotal},
		{"MemFree", &m.MemFree},
		{"MemAvailable", &m.MemAvailable},
		{"Buffers", &m.Buffers},
		{"Cached", &m.Cached},
		{"SwapCached", &m.SwapCached},
		{"Active", &m.Active},
		{"Inactive", &m.Inactive},
		{"Active(anon)", &m.ActiveAnon},
		{"Inactive(anon)", &m.InactiveAnon},
		{"Active(file)", &m.ActiveFile},
		{"Inactive(file)", &m.InactiveFile},
		{"Unevictable", &m.Unevictable},
		{"Mlocked", &m.Mlocked},
		{"SwapTotal", &m.SwapTotal},
		{"SwapFree", &m.SwapFree},
		{"Dirty", &m.Dirty},
		{"Writeback", &m.Writeback},
		{"AnonPages", &m.AnonPages},
		{"Mapped", &m.Mapped},
		{"Shmem", &m.Shmem},
		{"Slab", &m.Slab},
		{"SReclaimable", &m.SReclaimable},
		{"SUnreclaim", &m.SUnreclaim},
		{"KernelStack", &m.KernelStack},
		{"PageTables", &m.PageTables},
		{"CommitLimit", &m.CommitLimit},
		{"Committed_AS", &m.CommittedAS},
		{"VmallocTotal", &m.VmallocTotal},
		{"VmallocUsed", &m.VmallocUsed},
		{"AnonHugePages", &m.AnonHugePages},
		{"Hugepagesize", &m.HugepageSize},
		{"HardwareCorrupted", &m.HardwareCorrupted},
	}

	for _, f := range fields {
		raw, ok := values[f.key]
		if !ok {
			continue
		}
		kb, err := parseKilobytes(raw)
		if err != nil {
			return nil, fmt.Errorf("procfs: meminfo field %q: %w", f.key, err)
		}
		*f.dst = kb
	}

	counts := []struct {
		key string
		dst *uint64
	}{
		{"HugePages_Total", &m.HugePagesTotal},
		{"HugePages_Free", &m.HugePagesFree},
	}
	for _, c := range counts {
		raw, ok := values[c.key]
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("procfs: meminfo field %q: %w", c.key, err)
		}
		*c.dst = n
	}

	return &m, nil
}
