package domain

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const maxSequenceLine = 64 << 20

var errStopScan = errors.New("stop scan")

// scanRecords calls fn for every record of a FASTA stream. Multi-line
// sequences are joined. Input that does not start with a header is read as a
// single headerless record, which is how raw genome text files are stored.
func scanRecords(r io.Reader, fn func(header string, seq []byte) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxSequenceLine)

	var (
		header  string
		seq     []byte
		started bool
	)

	flush := func() error {
		if !started {
			return nil
		}

		return fn(header, seq)
	}

	for sc.Scan() {
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}

			header = string(line[1:])
			seq = nil
			started = true

			continue
		}

		started = true
		seq = append(seq, line...)
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read sequences: %w", err)
	}

	return flush()
}

// firstRecord returns the sequence of the first record in r.
func firstRecord(r io.Reader) ([]byte, error) {
	var (
		first []byte
		found bool
	)

	err := scanRecords(r, func(_ string, seq []byte) error {
		first = append([]byte{}, seq...)
		found = true

		return errStopScan
	})
	if err != nil && !errors.Is(err, errStopScan) {
		return nil, err
	}

	if !found {
		return nil, errors.New("no sequence records")
	}

	return first, nil
}

// countRecords returns the number of records in r.
func countRecords(r io.Reader) (int, error) {
	n := 0
	err := scanRecords(r, func(string, []byte) error {
		n++
		return nil
	})

	return n, err
}
