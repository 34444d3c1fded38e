package section

import (
	"github.com/tmaklin/ahda-sub000/encoding"
	"github.com/tmaklin/ahda-sub000/internal/hash"
)

// FileFlags is the variable-length metadata section immediately following
// the FileHeader, exactly FileHeader.FlagsLen bytes on the wire.
type FileFlags struct {
	// QueryName is the sample identifier shared by every query in the file.
	QueryName string
	// TargetNames is the catalogue of target names in target-index order;
	// its length must equal FileHeader.NTargets.
	TargetNames []string
}

// Bytes serializes the FileFlags.
func (f FileFlags) Bytes() []byte {
	enc := encoding.NewVarStringEncoder()
	enc.WriteString(f.QueryName)
	enc.WriteStrings(f.TargetNames)

	out := make([]byte, enc.Len())
	copy(out, enc.Bytes())
	enc.Reset()

	return out
}

// ParseFileFlags decodes a FileFlags from exactly data's length, which must
// equal the FileHeader's declared FlagsLen.
func ParseFileFlags(data []byte) (FileFlags, error) {
	dec := encoding.NewVarStringDecoder(data)

	queryName, err := dec.ReadString()
	if err != nil {
		return FileFlags{}, err
	}

	targetNames, err := dec.ReadStrings()
	if err != nil {
		return FileFlags{}, err
	}

	return FileFlags{QueryName: queryName, TargetNames: targetNames}, nil
}

// Fingerprint returns a content hash of the sample name (QueryName) and the
// target catalogue, useful for a cheap equality check between two files
// claiming the same sample and catalogue without comparing every name.
func (f FileFlags) Fingerprint() uint64 {
	h := hash.ID(f.QueryName)
	for _, name := range f.TargetNames {
		h ^= hash.ID(name) + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	}

	return h
}
