// Package csvdec decodes delimited product files into header-keyed records.
package csvdec

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Record maps a header column name to the row's string value.
type Record map[string]string

// Decoder produces a lazy, finite, non-restartable sequence of Records from a
// byte stream. The first line defines the field names for all following
// lines. Any parse error is sticky: once observed, the remainder of the
// stream is abandoned and every later call returns the same error.
type Decoder struct {
	r      *csv.Reader
	header []string
	err    error
}

// New creates a Decoder reading from r. The header line is consumed lazily on
// the first call to Next or ReadAll.
func New(r io.Reader) *Decoder {
	cr := csv.NewReader(r)
	// Column-count mismatches must fail the row, not get padded.
	cr.FieldsPerRecord = 0
	return &Decoder{r: cr}
}

// Next returns the next record in row order, or io.EOF when the stream is
// exhausted. After a parse error, Next keeps returning that error.
func (d *Decoder) Next() (Record, error) {
	if d.err != nil {
		return nil, d.err
	}

	if d.header == nil {
		header, err := d.r.Read()
		if err == io.EOF {
			d.err = io.EOF
			return nil, io.EOF
		}
		if err != nil {
			d.err = fmt.Errorf("failed to read header: %w", err)
			return nil, d.err
		}
		d.header = header
	}

	row, err := d.r.Read()
	if err == io.EOF {
		d.err = io.EOF
		return nil, io.EOF
	}
	if err != nil {
		d.err = fmt.Errorf("failed to parse row: %w", err)
		return nil, d.err
	}

	rec := make(Record, len(d.header))
	for i, name := range d.header {
		rec[name] = row[i]
	}
	return rec, nil
}

// ReadAll buffers every remaining record in memory. The contract is
// all-or-nothing for the file: any parse error discards rows read so far and
// returns only the error. An empty or header-only stream yields zero records.
func (d *Decoder) ReadAll() ([]Record, error) {
	records := make([]Record, 0)
	for {
		rec, err := d.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
