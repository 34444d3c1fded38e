package textfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmaklin/ahda-sub000/record"
)

func TestParseFulgorLine(t *testing.T) {
	got, err := ParseFulgorLine("ERR4035126.651965\t2\t0\t1")
	require.NoError(t, err)
	require.NotNil(t, got.QueryName)
	require.Equal(t, "ERR4035126.651965", *got.QueryName)
	require.Equal(t, []uint32{0, 1}, got.Ones)
}

func TestParseFulgorLine_SingleHit(t *testing.T) {
	got, err := ParseFulgorLine("ERR4035126.1262953\t1\t0")
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, got.Ones)
}

func TestParseFulgorLine_Malformed(t *testing.T) {
	_, err := ParseFulgorLine("ERR4035126.1\t")
	require.Error(t, err)
}

func TestFormatFulgorLine(t *testing.T) {
	name := "ERR4035126.651965"
	line, err := FormatFulgorLine(record.PseudoAln{QueryName: &name, Ones: []uint32{0, 1}})
	require.NoError(t, err)
	require.Equal(t, "ERR4035126.651965\t2\t0\t1\n", line)
}
