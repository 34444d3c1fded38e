package textfmt

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/section"
)

// DetectFormat guesses the textual pseudoalignment format of firstLine, the
// first line of an input stream (without its trailing newline).
//
// The rule, ported from the reference decoder: a line with no tab is
// Themisto. Otherwise split on tabs; "query_name" as the first field is
// Bifrost (and, per the Non-goals, Metagraph is never auto-detected since
// its first field is numeric just like Fulgor's second field — callers must
// request Metagraph explicitly). If the second field parses as an unsigned
// integer, the line is Fulgor.
func DetectFormat(firstLine []byte) (section.Format, error) {
	if i := bytes.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}

	if !bytes.ContainsRune(firstLine, '\t') {
		return section.FormatThemisto, nil
	}

	fields := strings.Split(string(firstLine), "\t")
	if len(fields) == 0 {
		return section.FormatUnknown, errs.ErrUnsupportedFormat
	}

	if fields[0] == "query_name" {
		return section.FormatBifrost, nil
	}

	if len(fields) >= 2 {
		if _, err := strconv.ParseUint(fields[1], 10, 32); err == nil {
			return section.FormatFulgor, nil
		}
	}

	return section.FormatUnknown, errs.ErrUnsupportedFormat
}
