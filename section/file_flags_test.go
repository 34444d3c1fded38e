package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileFlags_BytesRoundTrip(t *testing.T) {
	f := FileFlags{
		QueryName:   "ERR4035126",
		TargetNames: []string{"chr.fasta", "plasmid.fasta"},
	}
	b := f.Bytes()
	require.Len(t, b, 36)

	got, err := ParseFileFlags(b)
	require.NoError(t, err)
	require.Equal(t, f, got)
}

func TestFileFlags_Empty(t *testing.T) {
	f := FileFlags{}
	b := f.Bytes()

	got, err := ParseFileFlags(b)
	require.NoError(t, err)
	require.Equal(t, f.QueryName, got.QueryName)
	require.Empty(t, got.TargetNames)
}

func TestFileFlags_Fingerprint_Deterministic(t *testing.T) {
	f := FileFlags{QueryName: "sample", TargetNames: []string{"a", "b", "c"}}
	require.Equal(t, f.Fingerprint(), f.Fingerprint())

	other := FileFlags{QueryName: "sample", TargetNames: []string{"a", "b", "d"}}
	require.NotEqual(t, f.Fingerprint(), other.Fingerprint())
}

func TestParseFileFlags_Corrupt(t *testing.T) {
	_, err := ParseFileFlags([]byte{0xFF})
	require.Error(t, err)
}
