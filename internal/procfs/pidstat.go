package procfs

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// PidStat is a typed record of /proc/[pid]/stat: one line of
// space-separated fields, in kernel order. Times are in clock ticks,
// sizes in bytes or pages as noted by proc(5).
type PidStat struct {
	Pid                 int64
	Comm                string
	State               byte
	PPid                int64
	PGrp                int64
	Session             int64
	TTYNr               int64
	TPGid               int64
	Flags               uint64
	MinFlt              uint64
	CMinFlt             uint64
	MajFlt              uint64
	CMajFlt             uint64
	UTime               uint64
	STime               uint64
	CUTime              int64
	CSTime              int64
	Priority            int64
	Nice                int64
	NumThreads          int64
	ItRealValue         int64
	StartTime           uint64
	VSize               uint64
	RSS                 int64
	RSSLim              uint64
	StartCode           uint64
	EndCode             uint64
	StartStack          uint64
	KStkESP             uint64
	KStkEIP             uint64
	Signal              uint64
	Blocked             uint64
	SigIgnore           uint64
	SigCatch            uint64
	WChan               uint64
	NSwap               uint64
	CNSwap              uint64
	ExitSignal          int64
	Processor           int64
	RTPriority          uint64
	Policy              uint64
	DelayAcctBlkIOTicks uint64
	GuestTime           uint64
	CGuestTime          int64
	StartData           uint64
	EndData             uint64
	StartBrk            uint64
	ArgStart            uint64
	ArgEnd              uint64
	EnvStart            uint64
	EnvEnd              uint64
	ExitCode            int64
}

// fieldsAfterComm is how many fields follow the comm field in kernels
// new enough to report exit_code (3.5+).
const fieldsAfterComm = 50

// ReadSelfStat reads the stat record of the calling process.
func ReadSelfStat() (*PidStat, error) {
	return readStatFile("/proc/self/stat")
}

// ReadPidStat reads the stat record of the process with the given pid.
// Reading another user's process may require elevated privileges.
func ReadPidStat(pid int) (*PidStat, error) {
	return readStatFile(fmt.Sprintf("/proc/%d/stat", pid))
}

func readStatFile(path string) (*PidStat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("procfs: open %s: %w", path, err)
	}
	defer f.Close()

	// One bounded read; the kernel hands the whole line back at once.
	buf := make([]byte, readBufferSize)
	n, err := f.Read(buf)
	if n == 0 && err != nil && err != io.EOF {
		return nil, fmt.Errorf("procfs: read %s: %w", path, err)
	}

	stat, err := ParsePidStat(string(buf[:n]))
	if err != nil {
		return nil, fmt.Errorf("procfs: %s: %w", path, err)
	}
	return stat, nil
}

// ParsePidStat parses one /proc/[pid]/stat line. The comm field is the
// text between the first '(' and the last ')': comm itself may contain
// spaces and parentheses, so splitting the whole line on spaces is not
// safe.
func ParsePidStat(line string) (*PidStat, error) {
	line = strings.TrimSpace(line)

	open := strings.IndexByte(line, '(')
	closing := strings.LastIndexByte(line, ')')
	if open < 0 || closing < 0 || closing < open {
		return nil, fmt.Errorf("malformed stat line: no comm field")
	}

	pid, err := strconv.ParseInt(strings.TrimSpace(line[:open]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed stat line: bad pid: %w", err)
	}

	fields := strings.Fields(line[closing+1:])
	if len(fields) < fieldsAfterComm {
		return nil, fmt.Errorf("malformed stat line: %d fields after comm, want %d", len(fields), fieldsAfterComm)
	}

	s := &PidStat{
		Pid:  pid,
		Comm: line[open+1 : closing],
	}
	if len(fields[0]) != 1 {
		return nil, fmt.Errorf("malformed stat line: bad state %q", fields[0])
	}
	s.State = fields[0][0]

	p := fieldParser{fields: fields[1:]}
	s.PPid = p.int64()
	s.PGrp = p.int64()
	s.Session = p.int64()
	s.TTYNr = p.int64()
	s.TPGid = p.int64()
	s.Flags = p.uint64()
	s.MinFlt = p.uint64()
	s.CMinFlt = p.uint64()
	s.MajFlt = p.uint64()
	s.CMajFlt = p.uint64()
	s.UTime = p.uint64()
	s.STime = p.uint64()
	s.CUTime = p.int64()
	s.CSTime = p.int64()
	s.Priority = p.int64()
	s.Nice = p.int64()
	s.NumThreads = p.int64()
	s.ItRealValue = p.int64()
	s.StartTime = p.uint64()
	s.VSize = p.uint64()
	s.RSS = p.int64()
	s.RSSLim = p.uint64()
	s.StartCode = p.uint64()
	s.EndCode = p.uint64()
	s.StartStack = p.uint64()
	s.KStkESP = p.uint64()
	s.KStkEIP = p.uint64()
	s.Signal = p.uint64()
	s.Blocked = p.uint64()
	s.SigIgnore = p.uint64()
	s.SigCatch = p.uint64()
	s.WChan = p.uint64()
	s.NSwap = p.uint64()
	s.CNSwap = p.uint64()
	s.ExitSignal = p.int64()
	s.Processor = p.int64()
	s.RTPriority = p.uint64()
	s.Policy = p.uint64()
	s.DelayAcctBlkIOTicks = p.uint64()
	s.GuestTime = p.uint64()
	s.CGuestTime = p.int64()
	s.StartData = p.uint64()
	s.EndData = p.uint64()
	s.StartBrk = p.uint64()
	s.ArgStart = p.uint64()
	s.ArgEnd = p.uint64()
	s.EnvStart = p.uint64()
	s.EnvEnd = p.uint64()
	s.ExitCode = p.int64()

	if p.err != nil {
		return nil, fmt.Errorf("malformed stat line: %w", p.err)
	}
	return s, nil
}

// fieldParser walks the space-split fields, remembering the first
// conversion error instead of forcing a check per field.
type fieldParser struct {
	fields []string
	idx    int
	err    error
}

func (p *fieldParser) next() string {
	f := p.fields[p.idx]
	p.idx++
	return f
}

func (p *fieldParser) int64() int64 {
	f := p.next()
	v, err := strconv.ParseInt(f, 10, 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("field %d: %w", p.idx+3, err)
	}
	return v
}

func (p *fieldParser) uint64() uint64 {
	f := p.next()
	v, err := strconv.ParseUint(f, 10, 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("field %d: %w", p.idx+3, err)
	}
	return v
}
