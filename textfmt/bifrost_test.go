package textfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/record"
)

func TestParseBifrostHeader(t *testing.T) {
	names, err := ParseBifrostHeader("query_name\tchr.fasta\tplasmid.fasta")
	require.NoError(t, err)
	require.Equal(t, []string{"chr.fasta", "plasmid.fasta"}, names)
}

func TestParseBifrostHeader_NotAHeader(t *testing.T) {
	_, err := ParseBifrostHeader("ERR4035126.1\t121\t0")
	require.Error(t, err)
}

func TestParseBifrostLine_ErrorsIfHeaderNotConsumed(t *testing.T) {
	_, err := ParseBifrostLine("query_name\tchr.fasta\tplasmid.fasta")
	require.ErrorIs(t, err, errs.ErrBifrostHeaderNotConsumed)
}

func TestParseBifrostLine(t *testing.T) {
	cases := []struct {
		line string
		ones []uint32
	}{
		{"ERR4035126.1\t121\t0", []uint32{0}},
		{"ERR4035126.1262938\t0\t121", []uint32{1}},
		{"ERR4035126.1262955\t0\t0", []uint32{}},
		{"ERR4035126.651994\t67\t121", []uint32{0, 1}},
	}

	for _, c := range cases {
		got, err := ParseBifrostLine(c.line)
		require.NoError(t, err)
		require.Equal(t, c.ones, got.Ones)
	}
}

func TestFormatBifrostLine(t *testing.T) {
	name := "ERR4035126.1262940"
	line, err := FormatBifrostLine(record.PseudoAln{QueryName: &name, Ones: []uint32{0}}, 2)
	require.NoError(t, err)
	require.Equal(t, "ERR4035126.1262940\t1\t0\n", line)
}

func TestFormatBifrostLine_BothAligned(t *testing.T) {
	name := "ERR4035126.1262940"
	line, err := FormatBifrostLine(record.PseudoAln{QueryName: &name, Ones: []uint32{0, 1}}, 2)
	require.NoError(t, err)
	require.Equal(t, "ERR4035126.1262940\t1\t1\n", line)
}

func TestFormatBifrostLine_RequiresResolvedFields(t *testing.T) {
	_, err := FormatBifrostLine(record.PseudoAln{}, 2)
	require.Error(t, err)
}
