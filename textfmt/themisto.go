package textfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/record"
)

// ParseThemistoLine parses one Themisto pseudoalignment line: a
// space-separated query id followed by the target indices it hit, e.g.
// "128 0 7 11 3".
func ParseThemistoLine(line string) (record.PseudoAln, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), " ")
	if len(fields) == 0 || fields[0] == "" {
		return record.PseudoAln{}, fmt.Errorf("%w: empty themisto line", errs.ErrMalformedLine)
	}

	id64, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return record.PseudoAln{}, fmt.Errorf("%w: themisto query id: %v", errs.ErrMalformedLine, err)
	}
	id := uint32(id64)

	ones := make([]uint32, 0, len(fields)-1)
	for _, f := range fields[1:] {
		t64, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return record.PseudoAln{}, fmt.Errorf("%w: themisto target index: %v", errs.ErrMalformedLine, err)
		}
		ones = append(ones, uint32(t64))
	}

	return record.PseudoAln{QueryID: &id, Ones: ones}, nil
}

// FormatThemistoLine writes aln as a Themisto pseudoalignment line.
func FormatThemistoLine(aln record.PseudoAln) (string, error) {
	if aln.QueryID == nil {
		return "", fmt.Errorf("%w: themisto output requires a query id", errs.ErrMalformedLine)
	}

	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(*aln.QueryID), 10))
	for _, t := range aln.Ones {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(uint64(t), 10))
	}
	b.WriteByte('\n')

	return b.String(), nil
}
