package textfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/record"
)

const samFlagUnmapped = 0x4

// ParseSAMLine parses one SAM alignment record's tab-separated mandatory
// columns (QNAME, FLAG, RNAME, ...). Only QNAME, FLAG, and RNAME are
// consumed; an unmapped record (FLAG & 0x4 set) yields an unresolved
// record (no Ones/OnesNames) since it hit nothing.
func ParseSAMLine(line string) (record.PseudoAln, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) < 11 {
		return record.PseudoAln{}, fmt.Errorf("%w: sam record has fewer than 11 mandatory fields", errs.ErrMalformedLine)
	}

	name := fields[0]
	flag, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return record.PseudoAln{}, fmt.Errorf("%w: sam FLAG: %v", errs.ErrMalformedLine, err)
	}

	if flag&samFlagUnmapped != 0 {
		return record.PseudoAln{QueryName: &name}, nil
	}

	rname := fields[2]

	return record.PseudoAln{QueryName: &name, OnesNames: []string{rname}}, nil
}

// FormatSAMLine writes aln as one (or, if it hit more than one target,
// several) minimal SAM alignment line(s): QNAME, FLAG, RNAME and the
// remaining mandatory columns filled with SAM's "unavailable" placeholders.
// aln.OnesNames must be resolved; a target-less record is written as
// unmapped.
func FormatSAMLine(aln record.PseudoAln) (string, error) {
	if aln.QueryName == nil || aln.OnesNames == nil {
		return "", fmt.Errorf("%w: sam output requires a query name and resolved target names", errs.ErrMalformedLine)
	}

	if len(aln.OnesNames) == 0 {
		return fmt.Sprintf("%s\t4\t*\t0\t0\t*\t*\t0\t0\t*\t*\n", *aln.QueryName), nil
	}

	var b strings.Builder
	for _, target := range aln.OnesNames {
		fmt.Fprintf(&b, "%s\t0\t%s\t1\t0\t*\t*\t0\t0\t*\t*\n", *aln.QueryName, target)
	}

	return b.String(), nil
}

// FormatSAMHeader builds the @HD/@SQ/@RG header block that precedes SAM
// alignment lines, listing targetNames as reference sequences and
// queryName as the read group.
func FormatSAMHeader(targetNames []string, queryName string) []byte {
	var b strings.Builder
	b.WriteString("@HD\tVN:1.6\tSO:unsorted\n")
	for _, name := range targetNames {
		fmt.Fprintf(&b, "@SQ\tSN:%s\tLN:1\n", name)
	}
	if queryName != "" {
		fmt.Fprintf(&b, "@RG\tID:%s\n", queryName)
	}

	return []byte(b.String())
}
