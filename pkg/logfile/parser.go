package logfile

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const maxLineSize = 1024 * 1024

// Option configures parsing behavior.
type Option func(*parser)

// WithSkipMalformedRows drops sample rows holding a non-numeric value or
// the wrong number of values instead of failing the parse. Dropped rows are counted in
// Dataset.SkippedRows.
func WithSkipMalformedRows() Option {
	return func(p *parser) {
		p.skipMalformed = true
	}
}

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *parser) {
		if l != nil {
			p.logger = l
		}
	}
}

type parser struct {
	skipMalformed bool
	logger        *slog.Logger

	scanner *bufio.Scanner
	lineNum int
}

// Parse reads the log file at path. The file is decoded as ISO-8859-1.
func Parse(ctx context.Context, path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer f.Close()

	return ParseReader(ctx, f, path, opts...)
}

// ParseReader reads a log from r. source names the input in the returned
// dataset and in error messages.
func ParseReader(ctx context.Context, r io.Reader, source string, opts ...Option) (*Dataset, error) {
	p := &parser{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.scanner = bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(r))
	p.scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	p.scanner.Split(scanRawLines)

	ds, err := p.parse(ctx)
	if err != nil {
		return nil, err
	}
	ds.Source = source

	p.logger.Debug("log parsed",
		"source", source,
		"device", ds.DeviceName,
		"declared", ds.MeasurementCount,
		"blocks", len(ds.Measurements),
		"samples", ds.SampleCount(),
		"skipped_rows", ds.SkippedRows)
	if ds.MeasurementCount != len(ds.Measurements) {
		p.logger.Warn("measurement count mismatch",
			"source", source,
			"declared", ds.MeasurementCount,
			"blocks", len(ds.Measurements))
	}

	return ds, nil
}

func (p *parser) parse(ctx context.Context) (*Dataset, error) {
	ds := &Dataset{MeasurementCount: -1}

	device, err := p.header("device name")
	if err != nil {
		return nil, err
	}
	ds.DeviceName = strings.TrimRight(device, " \t\r\n")

	if _, err := p.header("separator"); err != nil {
		return nil, err
	}

	countLine, err := p.header("measurement count")
	if err != nil {
		return nil, err
	}
	ds.MeasurementCount, err = parseMeasurementCount(countLine)
	if err != nil {
		return nil, &FormatError{Line: p.lineNum, Field: "measurement count", Err: err}
	}

	sentinel, err := p.header("legend")
	if err != nil {
		return nil, err
	}
	ds.Legend, err = parseLegend(sentinel)
	if err != nil {
		return nil, &FormatError{Line: p.lineNum, Field: "legend", Err: err}
	}

	width := len(ds.Legend) - 1
	var current Measurement
	for p.scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		p.lineNum++
		line := p.scanner.Text()

		if line == sentinel {
			ds.Measurements = append(ds.Measurements, current)
			current = nil
			continue
		}

		sample, err := parseRow(line, p.lineNum)
		if err == nil && len(sample) == 0 {
			continue
		}
		if err == nil && len(sample) != width {
			err = &RowWidthError{Line: p.lineNum, Got: len(sample), Want: width}
		}
		if err != nil {
			if p.skipMalformed {
				ds.SkippedRows++
				p.logger.Debug("skipping malformed row", "line", p.lineNum, "err", err)
				continue
			}
			return nil, err
		}
		current = append(current, sample)
	}
	if err := p.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", p.lineNum+1, err)
	}

	// The last block has no trailing sentinel.
	ds.Measurements = append(ds.Measurements, current)

	return ds, nil
}

// header returns the next header line with its terminator.
func (p *parser) header(field string) (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading header line %d: %w", p.lineNum+1, err)
		}
		return "", &FormatError{Line: p.lineNum + 1, Field: field, Err: ErrTruncatedHeader}
	}
	p.lineNum++
	return p.scanner.Text(), nil
}

func parseMeasurementCount(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, ErrMeasurementCount
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMeasurementCount, fields[0])
	}
	return n, nil
}

// parseLegend splits the fixed-width legend template on 'I'. The first and
// last fragments are template borders. Names end at the first double space.
func parseLegend(line string) ([]string, error) {
	fragments := strings.Split(line, "I")
	if len(fragments) < 3 {
		return nil, ErrMalformedLegend
	}

	legend := make([]string, 0, len(fragments)-1)
	legend = append(legend, TimeLabel)
	for _, name := range fragments[1 : len(fragments)-1] {
		if i := strings.Index(name, "  "); i >= 0 {
			name = name[:i]
		}
		legend = append(legend, name)
	}
	return legend, nil
}

// parseRow converts one space-separated sample row. Rows end with a space
// before the terminator, which leaves a whitespace-only last token; that
// token is dropped. A value glued to the terminator is kept.
func parseRow(line string, lineNum int) (Sample, error) {
	var tokens []string
	for _, tok := range strings.Split(line, " ") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	if last := strings.TrimSpace(tokens[len(tokens)-1]); last == "" {
		tokens = tokens[:len(tokens)-1]
	} else {
		tokens[len(tokens)-1] = last
	}

	sample := make(Sample, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &NumericParseError{Line: lineNum, Column: i + 1, Token: tok, Err: err}
		}
		sample = append(sample, v)
	}
	return sample, nil
}

// scanRawLines is bufio.ScanLines without stripping the terminator, so the
// legend sentinel can be compared byte for byte.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
