package spaceweather

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/pgzip"
)

const (
	fieldCount = 31
	dateLayout = "2006-01-02"
)

// Load reads a CelesTrak space-weather CSV from path. Files ending in .gz
// are decompressed on the fly.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	return Parse(r)
}

// Parse reads one record per line. The header and any line that does not
// parse are skipped and counted; parsing continues.
func Parse(r io.Reader) (*Table, error) {
	var (
		records []Record
		skipped int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read space weather: %w", err)
	}

	t := NewTable(records)
	t.skipped = skipped
	return t, nil
}

// ParseLine decodes a single CSV line.
func ParseLine(line string) (Record, error) {
	var rec Record
	fields := strings.Split(line, ",")
	if len(fields) < fieldCount {
		return rec, fmt.Errorf("want %d fields, got %d", fieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	date := fields[0]
	if len(date) < len(dateLayout) {
		return rec, fmt.Errorf("short date %q", date)
	}
	d, err := time.Parse(dateLayout, date[:len(dateLayout)])
	if err != nil {
		return rec, fmt.Errorf("date: %w", err)
	}
	rec.Date = d

	p := fieldParser{fields: fields}
	rec.BSRN = p.atoi(1)
	rec.ND = p.atoi(2)
	for i := 0; i < 8; i++ {
		rec.Kp[i] = p.atoi(3 + i)
	}
	rec.KpSum = p.atoi(11)
	for i := 0; i < 8; i++ {
		rec.Ap[i] = p.atoi(12 + i)
	}
	rec.ApAvg = p.atoi(20)
	rec.Cp = p.number(21)
	rec.C9 = p.atoi(22)
	rec.ISN = p.atoi(23)
	rec.F107Obs = p.number(24)
	rec.F107Adj = p.number(25)
	rec.F107Type = ParseF107Type(fields[26])
	rec.F107ObsCenter81 = p.number(27)
	rec.F107ObsLast81 = p.number(28)
	rec.F107AdjCenter81 = p.number(29)
	rec.F107AdjLast81 = p.number(30)

	if p.err != nil {
		return rec, p.err
	}
	return rec, nil
}

// fieldParser keeps the first conversion error so a line can be decoded
// without checking every field.
type fieldParser struct {
	fields []string
	err    error
}

func (p *fieldParser) atoi(i int) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(p.fields[i])
	if err != nil {
		p.err = fmt.Errorf("field %d: %w", i, err)
	}
	return v
}

// number accepts a leading number followed by trailing junk, and an empty
// field as zero.
func (p *fieldParser) number(i int) float64 {
	if p.err != nil {
		return 0
	}
	s := p.fields[i]
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	end := 0
	for end < len(s) && strings.ContainsRune("+-.0123456789eE", rune(s[end])) {
		end++
	}
	for ; end > 0; end-- {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v
		}
	}
	p.err = fmt.Errorf("field %d: invalid number %q", i, s)
	return 0
}
