package procfs

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMeminfo = `MemTotal:       16325548 kB
MemFree:         8112340 kB
MemAvailable:   12154320 kB
Buffers:          312460 kB
Cached:          3278212 kB
SwapCached:            0 kB
Active:          4786072 kB
Inactive:        2510480 kB
Active(anon):    3710644 kB
Inactive(anon):   421184 kB
Active(file):    1075428 kB
Inactive(file):  2089296 kB
Unevictable:          32 kB
Mlocked:              32 kB
SwapTotal:       2097148 kB
SwapFree:        2097148 kB
Dirty:               220 kB
Writeback:             0 kB
AnonPages:       3706040 kB
Mapped:           812312 kB
Shmem:            428172 kB
Slab:             418294 kB
SReclaimable:     301548 kB
SUnreclaim:       116746 kB
KernelStack:       14128 kB
PageTables:        38216 kB
CommitLimit:    10259920 kB
Committed_AS:    9733016 kB
VmallocTotal:   34359738367 kB
VmallocUsed:           0 kB
AnonHugePages:    577536 kB
HardwareCorrupted:     0 kB
HugePages_Total:       0
HugePages_Free:        0
Hugepagesize:       2048 kB
`

func TestParseMeminfo(t *testing.T) {
	m, err := ParseMeminfo(strings.NewReader(sampleMeminfo))
	require.NoError(t, err)

	assert.Equal(t, Kilobytes(16325548), m.MemTotal)
	assert.Equal(t, Kilobytes(8112340), m.MemFree)
	assert.Equal(t, Kilobytes(12154320), m.MemAvailable)
	assert.Equal(t, Kilobytes(3710644), m.ActiveAnon)
	assert.Equal(t, Kilobytes(2089296), m.InactiveFile)
	assert.Equal(t, Kilobytes(34359738367), m.VmallocTotal)
	assert.Equal(t, Kilobytes(2048), m.HugepageSize)
	assert.Equal(t, uint64(0), m.HugePagesTotal)
}

func TestParseMeminfo_OptionalFieldsMayBeAbsent(t *testing.T) {
	m, err := ParseMeminfo(strings.NewReader("MemTotal: 1024 kB\nMemFree: 512 kB\n"))
	require.NoError(t, err)
	assert.Equal(t, Kilobytes(1024), m.MemTotal)
	assert.Equal(t, Kilobytes(0), m.Cached, "absent fields default to zero")
}

func TestParseMeminfo_MissingRequiredField(t *testing.T) {
	_, err := ParseMeminfo(strings.NewReader("MemFree: 512 kB\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MemTotal")
}

func TestParseMeminfo_MalformedLine(t *testing.T) {
	_, err := ParseMeminfo(strings.NewReader("MemTotal 1024 kB\n"))
	assert.Error(t, err)
}

func TestParseKilobytes(t *testing.T) {
	tests := []struct {
		in      string
		want    Kilobytes
		wantErr bool
	}{
		{"93 kB", 93, false},
		{"93 KB", 93, false},
		{"2 mB", 2048, false},
		{"1 gB", 1024 * 1024, false},
		{"1 tB", 1024 * 1024 * 1024, false},
		{"42", 42, false}, // bare count
		{"", 0, true},
		{"abc kB", 0, true},
		{"93 pages", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseKilobytes(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKilobytes(t *testing.T) {
	k := Kilobytes(93)
	assert.Equal(t, uint64(93), k.Kilobytes())
	assert.Equal(t, uint64(93*1024), k.Bytes())
	assert.Equal(t, "93 kB", k.String())
}

func TestReadMeminfo(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("requires /proc")
	}

	m, err := ReadMeminfo()
	require.NoError(t, err)
	assert.Greater(t, m.MemTotal.Kilobytes(), uint64(0))
}
