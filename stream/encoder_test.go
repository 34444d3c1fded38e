package stream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/record"
	"github.com/tmaklin/ahda-sub000/section"
)

func u32(v uint32) *uint32 { return &v }
func str(s string) *string { return &s }

func TestNewEncoder_WritesHeaderAndFlags(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, []string{"chr.fasta", "plasmid.fasta"}, "ERR4035126",
		[]string{"ERR4035126.1", "ERR4035126.2"})
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	require.GreaterOrEqual(t, buf.Len(), section.HeaderSize)

	header, err := section.ParseFileHeader(buf.Bytes()[:section.HeaderSize])
	require.NoError(t, err)
	require.Equal(t, uint32(2), header.NTargets)
	require.Equal(t, uint32(2), header.NQueries)
}

func TestEncoder_Write_ResolvesFromCatalogue(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, []string{"a", "b"}, "", []string{"q0", "q1"})
	require.NoError(t, err)

	require.NoError(t, enc.Write(record.PseudoAln{QueryID: u32(0), Ones: []uint32{1}}))
	require.NoError(t, enc.Write(record.PseudoAln{QueryName: str("q1"), Ones: []uint32{0}}))
	require.NoError(t, enc.Close())

	dec, err := NewDecoder(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	rec1, ok, err := dec.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "q0", *rec1.QueryName)
	require.Equal(t, []uint32{1}, rec1.Ones)

	rec2, ok, err := dec.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(1), *rec2.QueryID)
	require.Equal(t, []uint32{0}, rec2.Ones)

	_, ok, err = dec.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEncoder_Write_ResolvesOnesNamesFromTargetCatalogue(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, []string{"chr.fasta", "plasmid.fasta"}, "", []string{"q0"})
	require.NoError(t, err)

	require.NoError(t, enc.Write(record.PseudoAln{QueryID: u32(0), OnesNames: []string{"plasmid.fasta"}}))
	require.NoError(t, enc.Close())

	dec, err := NewDecoder(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	rec, ok, err := dec.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []uint32{1}, rec.Ones)
}

func TestEncoder_Write_MissingIdentifierErrors(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, []string{"a"}, "", nil)
	require.NoError(t, err)

	err = enc.Write(record.PseudoAln{Ones: []uint32{0}})
	require.Error(t, err)
}

func TestEncoder_Write_IndexOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, []string{"a"}, "", []string{"q0"})
	require.NoError(t, err)

	err = enc.Write(record.PseudoAln{QueryID: u32(0), Ones: []uint32{5}})
	require.Error(t, err)
}

func TestEncoder_Write_AfterClose(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, []string{"a"}, "", []string{"q0"})
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	err = enc.Write(record.PseudoAln{QueryID: u32(0), Ones: []uint32{0}})
	require.ErrorIs(t, err, errs.ErrEncoderClosed)
}

func TestEncoder_SealsMultipleBlocks(t *testing.T) {
	var buf bytes.Buffer
	queries := make([]string, 10)
	for i := range queries {
		queries[i] = "q"
	}
	enc, err := NewEncoder(&buf, []string{"a", "b"}, "", queries, WithBlockSize(2))
	require.NoError(t, err)

	for i := uint32(0); i < 10; i++ {
		require.NoError(t, enc.Write(record.PseudoAln{QueryID: u32(i), Ones: []uint32{0}}))
	}
	require.NoError(t, enc.Close())

	dec, err := NewDecoder(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	count := 0
	for {
		_, ok, err := dec.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, 10, count)
}

func TestEncoder_WithFormat(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, []string{"a"}, "", []string{"q0"}, WithFormat(section.FormatFulgor))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	header, err := section.ParseFileHeader(buf.Bytes()[:section.HeaderSize])
	require.NoError(t, err)
	require.Equal(t, section.FormatFulgor, header.Format)
}
