package bitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_AddSortedAndIterate(t *testing.T) {
	s := New()
	for _, v := range []uint32{0, 2, 4, 5, 7} {
		s.AddSorted(v)
	}

	var got []uint32
	s.Iterate(func(idx uint32) bool {
		got = append(got, idx)
		return true
	})
	require.Equal(t, []uint32{0, 2, 4, 5, 7}, got)
	require.Equal(t, 5, s.Len())
}

func TestSet_Build_SortsAndDedups(t *testing.T) {
	s := New()
	for _, v := range []uint32{5, 1, 1, 3, 5, 2} {
		s.Add(v)
	}
	s.Build()

	var got []uint32
	s.Iterate(func(idx uint32) bool {
		got = append(got, idx)
		return true
	})
	require.Equal(t, []uint32{1, 2, 3, 5}, got)
}

func TestSet_Iterate_StopsEarly(t *testing.T) {
	s := New()
	for _, v := range []uint32{1, 2, 3, 4, 5} {
		s.AddSorted(v)
	}

	var got []uint32
	s.Iterate(func(idx uint32) bool {
		got = append(got, idx)
		return idx < 3
	})
	require.Equal(t, []uint32{1, 2, 3}, got)
}

// TestSet_SerializeRoundTrip exercises spec scenario 3's bit-index input
// against this bitmap codec's own run/array span wire form (not a
// byte-for-byte reproduction of the DEFLATE output of the original
// implementation's roaring-bitmap serializer, which is implementation
// specific to its gzip encoder).
func TestSet_SerializeRoundTrip(t *testing.T) {
	s := New()
	for _, v := range []uint32{0, 2, 4, 5, 7} {
		s.AddSorted(v)
	}

	data := s.Serialize()

	got, err := Deserialize(data)
	require.NoError(t, err)

	var values []uint32
	got.Iterate(func(idx uint32) bool {
		values = append(values, idx)
		return true
	})
	require.Equal(t, []uint32{0, 2, 4, 5, 7}, values)
}

func TestSet_Optimize_PromotesRuns(t *testing.T) {
	s := New()
	for v := uint32(10); v < 20; v++ {
		s.AddSorted(v)
	}
	s.AddSorted(100)
	s.Optimize()

	data := s.Serialize()
	got, err := Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, 11, got.Len())

	// A 10-long run plus one literal should serialize far smaller than 11
	// separate uvarint-encoded literals (>= 11 bytes alone).
	require.Less(t, len(data), 20)
}

func TestSet_Serialize_EmptySet(t *testing.T) {
	s := New()
	data := s.Serialize()

	got, err := Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
}

func TestSet_Serialize_LargeSparseSet(t *testing.T) {
	s := New()
	for i := uint32(0); i < 1000; i++ {
		s.AddSorted(i * 97)
	}
	s.Optimize()

	data := s.Serialize()
	got, err := Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, 1000, got.Len())
}

func TestDeserialize_RejectsUnsortedSpans(t *testing.T) {
	// A hand-built array span with a descending second value violates the
	// ascending invariant Deserialize enforces.
	data := []byte{
		1,    // 1 span
		0,    // spanArray
		2,    // 2 values
		10,   // value 10
		5,    // value 5 (out of order)
	}
	_, err := Deserialize(data)
	require.Error(t, err)
}

func TestDeserialize_CorruptData(t *testing.T) {
	_, err := Deserialize([]byte{0xFF})
	require.Error(t, err)
}

func TestSet_RoundTrip_SingleValue(t *testing.T) {
	s := New()
	s.AddSorted(42)

	got, err := Deserialize(s.Serialize())
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())

	var values []uint32
	got.Iterate(func(idx uint32) bool {
		values = append(values, idx)
		return true
	})
	require.Equal(t, []uint32{42}, values)
}
