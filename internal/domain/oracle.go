package domain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"kmeroracle.dev/pkg/kmeroracle/internal/adapter"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const ctxCheckInterval = 4096

// Oracle decides whether a subject dump is equivalent to a reference dump.
type Oracle interface {
	// Compare streams both dumps and reports the first violation under mode.
	// The error return is reserved for I/O failures.
	Compare(ctx context.Context, subject, reference m.DumpArtifact, mode m.CompareMode) (m.ComparisonResult, error)
}

type oracle struct {
	fs adapter.CorpusFSAdapter
}

// NewOracle returns an Oracle reading dumps through fs.
func NewOracle(fs adapter.CorpusFSAdapter) Oracle {
	return &oracle{fs: fs}
}

func (o *oracle) Compare(ctx context.Context, subject, reference m.DumpArtifact, mode m.CompareMode) (m.ComparisonResult, error) {
	var (
		result m.ComparisonResult
		err    error
	)

	if originErr := m.SameOrigin(subject, reference); originErr != nil {
		result = m.FailResult(mode, m.SchemaMismatch, -1, "artifacts are not comparable: "+originErr.Error())
	} else {
		result, err = compareDumps(ctx, o.opener(ctx, subject.Path), o.opener(ctx, reference.Path), mode)
		if err != nil {
			return m.ComparisonResult{}, err
		}
	}

	result.Subject = subject.Path
	result.Reference = reference.Path

	return result, nil
}

func (o *oracle) opener(ctx context.Context, path m.Path) opener {
	return func() (io.ReadCloser, error) {
		r, err := o.fs.OpenSequences(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("open dump %s: %w", path, err)
		}

		return r, nil
	}
}

type opener func() (io.ReadCloser, error)

// CompareReaders compares two in-memory dumps. It exists for callers that
// already hold the dump contents.
func CompareReaders(ctx context.Context, subject, reference string, mode m.CompareMode) (m.ComparisonResult, error) {
	return compareDumps(ctx, stringOpener(subject), stringOpener(reference), mode)
}

func stringOpener(s string) opener {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(s)), nil
	}
}

func compareDumps(ctx context.Context, subject, reference opener, mode m.CompareMode) (m.ComparisonResult, error) {
	mode, err := m.ParseCompareMode(string(mode))
	if err != nil {
		return m.ComparisonResult{}, err
	}

	withKeys := mode == m.CompareSorted

	subj, err := surveyDump(ctx, subject, withKeys)
	if err != nil {
		return m.ComparisonResult{}, err
	}

	ref, err := surveyDump(ctx, reference, withKeys)
	if err != nil {
		return m.ComparisonResult{}, err
	}

	if subj.lines != ref.lines {
		return m.FailResult(mode, m.SchemaMismatch, min(subj.lines, ref.lines),
			fmt.Sprintf("line count %d vs reference %d", subj.lines, ref.lines)), nil
	}

	if mode == m.CompareUnorderedLines || mode == m.CompareSortedHits {
		return compareUnordered(ctx, subject, reference, mode)
	}

	var check func(i int, s, r string) m.ComparisonResult

	switch mode {
	case m.CompareMultiset:
		check = func(i int, s, r string) m.ComparisonResult { return checkMultiset(mode, i, s, r) }
	case m.CompareSorted:
		sameKeys := maps.Equal(subj.keys, ref.keys)
		check = func(i int, s, r string) m.ComparisonResult { return checkSorted(mode, i, s, r, sameKeys) }
	case m.CompareExact:
		check = func(i int, s, r string) m.ComparisonResult { return checkExact(mode, i, s, r) }
	case m.CompareUnorderedLines, m.CompareSortedHits:
	}

	return lockstep(ctx, subject, reference, mode, check)
}

type dumpSurvey struct {
	lines int
	keys  map[string]int
}

func surveyDump(ctx context.Context, open opener, withKeys bool) (dumpSurvey, error) {
	r, err := open()
	if err != nil {
		return dumpSurvey{}, err
	}

	defer func() { _ = r.Close() }()

	var survey dumpSurvey
	if withKeys {
		survey.keys = make(map[string]int)
	}

	sc := newLineScanner(r)
	for sc.Scan() {
		if survey.lines%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return dumpSurvey{}, err
			}
		}

		if withKeys {
			survey.keys[lineKey(sc.Text())]++
		}

		survey.lines++
	}

	if err := sc.Err(); err != nil {
		return dumpSurvey{}, fmt.Errorf("read dump: %w", err)
	}

	return survey, nil
}

func lockstep(ctx context.Context, subject, reference opener, mode m.CompareMode, check func(int, string, string) m.ComparisonResult) (m.ComparisonResult, error) {
	sr, err := subject()
	if err != nil {
		return m.ComparisonResult{}, err
	}

	defer func() { _ = sr.Close() }()

	rr, err := reference()
	if err != nil {
		return m.ComparisonResult{}, err
	}

	defer func() { _ = rr.Close() }()

	ss, rs := newLineScanner(sr), newLineScanner(rr)

	for i := 0; ; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return m.ComparisonResult{}, err
			}
		}

		more, refMore := ss.Scan(), rs.Scan()
		if !more || !refMore {
			if more != refMore {
				return m.FailResult(mode, m.SchemaMismatch, i, "dump changed length while being compared"), nil
			}

			break
		}

		if res := check(i, ss.Text(), rs.Text()); !res.Pass {
			return res, nil
		}
	}

	if err := ss.Err(); err != nil {
		return m.ComparisonResult{}, fmt.Errorf("read subject dump: %w", err)
	}

	if err := rs.Err(); err != nil {
		return m.ComparisonResult{}, fmt.Errorf("read reference dump: %w", err)
	}

	return m.PassResult(mode, "", ""), nil
}

func checkMultiset(mode m.CompareMode, i int, s, r string) m.ComparisonResult {
	subj, ref, res, ok := parsePair(mode, i, s, r)
	if !ok {
		return res
	}

	if subj.key != ref.key {
		return m.FailResult(mode, m.SchemaMismatch, i, fmt.Sprintf("key %q vs reference %q", subj.key, ref.key))
	}

	if !slices.Equal(subj.sorted(), ref.sorted()) {
		return setMismatch(mode, i, subj, ref)
	}

	return m.PassResult(mode, "", "")
}

func checkSorted(mode m.CompareMode, i int, s, r string, sameKeys bool) m.ComparisonResult {
	subj, ref, res, ok := parsePair(mode, i, s, r)
	if !ok {
		return res
	}

	if !slices.IsSorted(subj.ints) {
		return m.FailResult(mode, m.OrderViolation, i, fmt.Sprintf("integers of %q are not sorted: %v", subj.key, subj.ints))
	}

	if subj.key != ref.key {
		violation := m.SchemaMismatch
		if sameKeys {
			violation = m.OrderViolation
		}

		return m.FailResult(mode, violation, i, fmt.Sprintf("key %q where reference has %q", subj.key, ref.key))
	}

	if !slices.Equal(subj.ints, ref.sorted()) {
		return setMismatch(mode, i, subj, ref)
	}

	return m.PassResult(mode, "", "")
}

func checkExact(mode m.CompareMode, i int, s, r string) m.ComparisonResult {
	if s == r {
		return m.PassResult(mode, "", "")
	}

	diff := lineDiff(i, s, r)

	subj, ref, res, ok := parsePair(mode, i, s, r)
	if !ok {
		res.Detail += "\n" + diff
		return res
	}

	violation := m.SetMismatch

	switch {
	case subj.key != ref.key:
		violation = m.SchemaMismatch
	case slices.Equal(subj.sorted(), ref.sorted()):
		violation = m.OrderViolation
	}

	return m.FailResult(mode, violation, i, fmt.Sprintf("line %d differs\n%s", i, diff))
}

// compareUnordered matches lines by key. In sorted-hits mode each subject
// line must also list its integers in non-decreasing order.
func compareUnordered(ctx context.Context, subject, reference opener, mode m.CompareMode) (m.ComparisonResult, error) {

	rr, err := reference()
	if err != nil {
		return m.ComparisonResult{}, err
	}

	defer func() { _ = rr.Close() }()

	want := make(map[string][]int64)

	rs := newLineScanner(rr)
	for i := 0; rs.Scan(); i++ {
		line, err := parseLine(rs.Text())
		if err != nil {
			return m.FailResult(mode, m.SchemaMismatch, i, "reference: "+err.Error()), nil
		}

		if _, dup := want[line.key]; dup {
			return m.FailResult(mode, m.SchemaMismatch, i, fmt.Sprintf("reference repeats key %q", line.key)), nil
		}

		want[line.key] = line.sorted()
	}

	if err := rs.Err(); err != nil {
		return m.ComparisonResult{}, fmt.Errorf("read reference dump: %w", err)
	}

	sr, err := subject()
	if err != nil {
		return m.ComparisonResult{}, err
	}

	defer func() { _ = sr.Close() }()

	seen := make(map[string]struct{}, len(want))

	ss := newLineScanner(sr)
	for i := 0; ss.Scan(); i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return m.ComparisonResult{}, err
			}
		}

		line, err := parseLine(ss.Text())
		if err != nil {
			return m.FailResult(mode, m.SchemaMismatch, i, err.Error()), nil
		}

		ints, ok := want[line.key]
		if !ok {
			return m.FailResult(mode, m.SchemaMismatch, i, fmt.Sprintf("key %q missing from reference", line.key)), nil
		}

		if _, dup := seen[line.key]; dup {
			return m.FailResult(mode, m.SchemaMismatch, i, fmt.Sprintf("key %q repeated", line.key)), nil
		}

		seen[line.key] = struct{}{}

		if mode == m.CompareSortedHits && !slices.IsSorted(line.ints) {
			return m.FailResult(mode, m.OrderViolation, i, fmt.Sprintf("integers of %q are not sorted: %v", line.key, line.ints)), nil
		}

		if !slices.Equal(line.sorted(), ints) {
			return setMismatch(mode, i, line, dumpLine{key: line.key, ints: ints}), nil
		}
	}

	if err := ss.Err(); err != nil {
		return m.ComparisonResult{}, fmt.Errorf("read subject dump: %w", err)
	}

	return m.PassResult(mode, "", ""), nil
}

type dumpLine struct {
	key  string
	ints []int64
}

func (l dumpLine) sorted() []int64 {
	ints := slices.Clone(l.ints)
	slices.Sort(ints)

	return ints
}

// parseLine splits "<key> <int> <int> ..." into its key and integers.
func parseLine(text string) (dumpLine, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return dumpLine{}, nil
	}

	line := dumpLine{key: fields[0], ints: make([]int64, 0, len(fields)-1)}

	for _, field := range fields[1:] {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return dumpLine{}, fmt.Errorf("non-integer token %q after key %q", field, line.key)
		}

		line.ints = append(line.ints, v)
	}

	return line, nil
}

func lineKey(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

func parsePair(mode m.CompareMode, i int, s, r string) (dumpLine, dumpLine, m.ComparisonResult, bool) {
	subj, err := parseLine(s)
	if err != nil {
		return dumpLine{}, dumpLine{}, m.FailResult(mode, m.SchemaMismatch, i, err.Error()), false
	}

	ref, err := parseLine(r)
	if err != nil {
		return dumpLine{}, dumpLine{}, m.FailResult(mode, m.SchemaMismatch, i, "reference: "+err.Error()), false
	}

	return subj, ref, m.ComparisonResult{}, true
}

func setMismatch(mode m.CompareMode, i int, subj, ref dumpLine) m.ComparisonResult {
	return m.FailResult(mode, m.SetMismatch, i,
		fmt.Sprintf("key %q: integers %v vs reference %v", subj.key, subj.sorted(), ref.sorted()))
}

func lineDiff(i int, s, r string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        []string{r + "\n"},
		B:        []string{s + "\n"},
		FromFile: "reference",
		ToFile:   "subject",
		Context:  0,
	})
	if err != nil {
		return fmt.Sprintf("- %s\n+ %s", r, s)
	}

	return fmt.Sprintf("@ line %d\n%s", i, strings.TrimRight(diff, "\n"))
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxSequenceLine)

	return sc
}
