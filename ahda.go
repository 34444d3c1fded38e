// Package ahda provides convenience wrappers over the AHDA streaming
// encoder/decoder for callers who want to encode or decode a full file in
// one call rather than drive stream.Encoder/stream.Decoder directly.
package ahda

import (
	"fmt"
	"io"

	"github.com/tmaklin/ahda-sub000/bitmap"
	"github.com/tmaklin/ahda-sub000/container"
	"github.com/tmaklin/ahda-sub000/record"
	"github.com/tmaklin/ahda-sub000/section"
	"github.com/tmaklin/ahda-sub000/stream"
)

// Encode writes recs to w as an AHDA file, using the given target catalogue
// and query catalogue.
func Encode(w io.Writer, targetNames []string, sampleName string, queries []string, recs []record.PseudoAln, opts ...stream.Option) error {
	enc, err := stream.NewEncoder(w, targetNames, sampleName, queries, opts...)
	if err != nil {
		return err
	}

	for _, rec := range recs {
		if err := enc.Write(rec); err != nil {
			return err
		}
	}

	return enc.Close()
}

// Decode reads an entire AHDA file from r and returns its header, flags,
// and all decoded records in query-id order.
func Decode(r io.Reader) (section.FileHeader, section.FileFlags, []record.PseudoAln, error) {
	dec, err := stream.NewDecoder(r)
	if err != nil {
		return section.FileHeader{}, section.FileFlags{}, nil, err
	}

	var recs []record.PseudoAln
	for {
		rec, ok, err := dec.Next()
		if err != nil {
			return dec.Header, dec.Flags, recs, err
		}
		if !ok {
			break
		}
		recs = append(recs, rec)
	}

	return dec.Header, dec.Flags, recs, nil
}

// Convert reads an AHDA file from r and re-encodes it into w, applying fn to
// every decoded record before it's re-written. A nil fn performs an
// identity re-encode (useful for recompacting a file written with a
// different block size via opts).
func Convert(w io.Writer, r io.Reader, fn func(record.PseudoAln) record.PseudoAln, opts ...stream.Option) error {
	header, flags, recs, err := Decode(r)
	if err != nil {
		return err
	}

	if fn != nil {
		for i := range recs {
			recs[i] = fn(recs[i])
		}
	}

	queries := make([]string, header.NQueries)
	for _, rec := range recs {
		if rec.QueryID != nil && rec.QueryName != nil && *rec.QueryID < header.NQueries {
			queries[*rec.QueryID] = *rec.QueryName
		}
	}

	return Encode(w, flags.TargetNames, flags.QueryName, queries, recs, opts...)
}

// EncodeHeaderAndFlags returns the concatenated FileHeader+FileFlags bytes
// for the given catalogue, without opening a streaming encoder. Mirrors
// original_source/src/cxx_api/mod.rs's encode_file_header_and_flags for
// callers that want to assemble an AHDA file by hand.
func EncodeHeaderAndFlags(targetNames []string, sampleName string, nQueries uint32, format section.Format) []byte {
	header := section.NewFileHeader(uint32(len(targetNames)), nQueries, format)
	flags := section.FileFlags{QueryName: sampleName, TargetNames: targetNames}
	flagsBytes := flags.Bytes()
	header.FlagsLen = uint32(len(flagsBytes))

	return append(header.Bytes(), flagsBytes...)
}

// EncodeBlock packs one block's worth of records into AHDA's
// BlockHeader+payload bytes, without opening a streaming encoder.
func EncodeBlock(queries []string, queryIDs []uint32, nTargets uint32, ones [][]uint32) ([]byte, error) {
	if len(queries) != len(queryIDs) || len(queries) != len(ones) {
		return nil, fmt.Errorf("ahda: EncodeBlock: queries, queryIDs, and ones must have equal length")
	}

	bits := bitmap.New()
	for i, id := range queryIDs {
		for _, t := range ones[i] {
			bits.AddSorted(id*nTargets + t)
		}
	}

	return container.PackBlock(queries, queryIDs, bits)
}

// EncodeBitmap serializes the flattened (query_id, target_idx) pairs in
// idx (global indices, query_id*n_targets+target_idx) into the bitmap
// codec's wire format, without any surrounding block framing.
func EncodeBitmap(idx []uint32) []byte {
	bits := bitmap.New()
	for _, i := range idx {
		bits.Add(i)
	}
	bits.Build()
	bits.Optimize()

	return bits.Serialize()
}
