package textfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/record"
)

// ParseMetagraphLine parses one Metagraph pseudoalignment line:
// "query_id\tquery_name\t<target-name>(:<target-name>)*", e.g.
// "1303804\tERR4035126.651903\tchr.fasta:plasmid.fasta". An empty third
// field means no hits.
func ParseMetagraphLine(line string) (record.PseudoAln, error) {
	fields := strings.SplitN(strings.TrimRight(line, "\r\n"), "\t", 3)
	if len(fields) < 3 {
		return record.PseudoAln{}, fmt.Errorf("%w: metagraph line missing fields", errs.ErrMalformedLine)
	}

	id64, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return record.PseudoAln{}, fmt.Errorf("%w: metagraph query id: %v", errs.ErrMalformedLine, err)
	}
	id := uint32(id64)
	name := fields[1]

	onesNames := []string{}
	if fields[2] != "" {
		onesNames = strings.Split(fields[2], ":")
	}

	return record.PseudoAln{QueryID: &id, QueryName: &name, OnesNames: onesNames}, nil
}

// FormatMetagraphLine writes aln as a Metagraph pseudoalignment line.
func FormatMetagraphLine(aln record.PseudoAln) (string, error) {
	if aln.QueryID == nil || aln.QueryName == nil || aln.OnesNames == nil {
		return "", fmt.Errorf("%w: metagraph output requires a query id, name, and resolved target names", errs.ErrMalformedLine)
	}

	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(*aln.QueryID), 10))
	b.WriteByte('\t')
	b.WriteString(*aln.QueryName)
	b.WriteByte('\t')
	b.WriteString(strings.Join(aln.OnesNames, ":"))
	b.WriteByte('\n')

	return b.String(), nil
}
