package textfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/record"
)

// ParseBifrostHeader parses a Bifrost header line, "query_name\t<target>*",
// and returns the target names in index order.
func ParseBifrostHeader(line string) ([]string, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) == 0 || fields[0] != "query_name" {
		return nil, fmt.Errorf("%w: bifrost header must start with \"query_name\"", errs.ErrMalformedLine)
	}

	return fields[1:], nil
}

// ParseBifrostLine parses one Bifrost record line: tab-separated query name
// followed by one per-target count, e.g. "ERR4035126.1\t121\t0". A count
// greater than zero marks a hit. Returns ErrBifrostHeaderNotConsumed if line
// is itself the header (the caller must call ParseBifrostHeader first).
func ParseBifrostLine(line string) (record.PseudoAln, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) == 0 {
		return record.PseudoAln{}, fmt.Errorf("%w: empty bifrost line", errs.ErrMalformedLine)
	}
	if fields[0] == "query_name" {
		return record.PseudoAln{}, errs.ErrBifrostHeaderNotConsumed
	}

	name := fields[0]
	ones := make([]uint32, 0, len(fields)-1)
	for idx, f := range fields[1:] {
		count, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return record.PseudoAln{}, fmt.Errorf("%w: bifrost target count: %v", errs.ErrMalformedLine, err)
		}
		if count > 0 {
			ones = append(ones, uint32(idx))
		}
	}

	return record.PseudoAln{QueryName: &name, Ones: ones}, nil
}

// FormatBifrostHeader writes the Bifrost header line for targetNames.
func FormatBifrostHeader(targetNames []string) string {
	return "query_name\t" + strings.Join(targetNames, "\t") + "\n"
}

// FormatBifrostLine writes aln as a Bifrost record line covering nTargets
// columns.
func FormatBifrostLine(aln record.PseudoAln, nTargets uint32) (string, error) {
	if aln.QueryName == nil || aln.Ones == nil {
		return "", fmt.Errorf("%w: bifrost output requires a query name and resolved targets", errs.ErrMalformedLine)
	}

	hit := make([]bool, nTargets)
	for _, t := range aln.Ones {
		if t < nTargets {
			hit[t] = true
		}
	}

	var b strings.Builder
	b.WriteString(*aln.QueryName)
	for _, h := range hit {
		b.WriteByte('\t')
		if h {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte('\n')

	return b.String(), nil
}
