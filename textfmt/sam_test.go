package textfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const samLine = "ERR4035126.1\t16\tOZ038621.1\t4541508\t60\t151M\t*\t0\t0\tAGTATT\tFJ<<JJ\tNM:i:0"

func TestParseSAMLine_Mapped(t *testing.T) {
	got, err := ParseSAMLine(samLine)
	require.NoError(t, err)
	require.Equal(t, "ERR4035126.1", *got.QueryName)
	require.Equal(t, []string{"OZ038621.1"}, got.OnesNames)
}

func TestParseSAMLine_Unmapped(t *testing.T) {
	line := "ERR4035126.2\t4\t*\t0\t0\t*\t*\t0\t0\t*\t*"
	got, err := ParseSAMLine(line)
	require.NoError(t, err)
	require.Equal(t, "ERR4035126.2", *got.QueryName)
	require.Nil(t, got.OnesNames)
}

func TestParseSAMLine_TooFewFields(t *testing.T) {
	_, err := ParseSAMLine("ERR4035126.1\t16\tOZ038621.1")
	require.Error(t, err)
}

func TestFormatSAMHeader(t *testing.T) {
	header := FormatSAMHeader([]string{"chr.fasta", "plasmid.fasta"}, "ERR4035126")
	require.Contains(t, string(header), "@SQ\tSN:chr.fasta\tLN:1\n")
	require.Contains(t, string(header), "@RG\tID:ERR4035126\n")
}
