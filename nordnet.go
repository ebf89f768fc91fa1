package bilag

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/jszwec/csvutil"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadNordnetFile reads a Nordnet export file, see DecodeNordnet.
func ReadNordnetFile(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFileOpen, path, err)
	}
	defer f.Close()

	txs, err := DecodeNordnet(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return txs, nil
}

// DecodeNordnet decodes a Nordnet transaction export: UTF-16LE text, tab
// separated, with a header row naming the columns.
//
// Nordnet exports the newest transaction first, transactions are returned
// oldest first. Every column of Transaction must be in the header, but rows
// may be shorter or longer than the header: missing trailing cells are empty,
// extra ones are ignored. An empty export has no transactions.
func DecodeNordnet(r io.Reader) ([]Transaction, error) {
	src := &sourceReader{r: r}
	utf16 := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	reader := csv.NewReader(transform.NewReader(src, utf16.NewDecoder()))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(reader)
	if errors.Is(err, io.EOF) && src.err == nil {
		return nil, nil // empty export
	}
	if err != nil {
		return nil, decodeError(src, fmt.Errorf("header: %w", err))
	}
	dec.DisallowMissingColumns = true
	dec.AlignRecord = true

	var txs []Transaction
	for {
		var tx Transaction
		if err := dec.Decode(&tx); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, decodeError(src, fmt.Errorf("row %d: %w", len(txs)+1, err))
		}
		txs = append(txs, tx)
	}
	slices.Reverse(txs)
	return txs, nil
}

// decodeError classifies err: failures of the underlying stream or of the
// delimited syntax are decoding errors, everything else is a schema error.
func decodeError(src *sourceReader, err error) error {
	var perr *csv.ParseError
	switch {
	case src.err != nil:
		return fmt.Errorf("%w: %w", ErrDecode, src.err)
	case errors.As(err, &perr):
		return fmt.Errorf("%w: %w", ErrDecode, err)
	case errors.Is(err, ErrSchema):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
}

// sourceReader remembers the first read failure of the raw input.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF && s.err == nil {
		s.err = err
	}
	return n, err
}
