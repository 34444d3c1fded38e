package textfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/record"
)

// ParseFulgorLine parses one Fulgor pseudoalignment line: tab-separated
// query name, target count, and target indices, e.g.
// "ERR4035126.651965\t2\t0\t1".
func ParseFulgorLine(line string) (record.PseudoAln, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) < 2 {
		return record.PseudoAln{}, fmt.Errorf("%w: fulgor line missing fields", errs.ErrMalformedLine)
	}

	name := fields[0]
	if _, err := strconv.ParseUint(fields[1], 10, 32); err != nil {
		return record.PseudoAln{}, fmt.Errorf("%w: fulgor target count: %v", errs.ErrMalformedLine, err)
	}

	ones := make([]uint32, 0, len(fields)-2)
	for _, f := range fields[2:] {
		t64, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return record.PseudoAln{}, fmt.Errorf("%w: fulgor target index: %v", errs.ErrMalformedLine, err)
		}
		ones = append(ones, uint32(t64))
	}

	return record.PseudoAln{QueryName: &name, Ones: ones}, nil
}

// FormatFulgorLine writes aln as a Fulgor pseudoalignment line.
func FormatFulgorLine(aln record.PseudoAln) (string, error) {
	if aln.QueryName == nil {
		return "", fmt.Errorf("%w: fulgor output requires a query name", errs.ErrMalformedLine)
	}

	var b strings.Builder
	b.WriteString(*aln.QueryName)
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(len(aln.Ones)))
	for _, t := range aln.Ones {
		b.WriteByte('\t')
		b.WriteString(strconv.FormatUint(uint64(t), 10))
	}
	b.WriteByte('\n')

	return b.String(), nil
}
