// Package record defines the in-memory pseudoalignment record shared by the
// streaming encoder/decoder and the textual format adapters.
package record

// PseudoAln is one query and the targets it aligns to.
//
// At least one of QueryID/QueryName must be set for a record to be
// encodable; see errs.ErrMissingQueryIdentifier. A record with neither Ones
// nor OnesNames is encoded with no hits.
// QueryID and QueryName are pointers because 0 is a valid id and "" a valid
// name, so a nil field unambiguously means "not yet known" rather than
// "known and zero".
type PseudoAln struct {
	// QueryID is the dense, file-unique index of this query, assigned by
	// the producer. Nil until resolved from the queries catalogue.
	QueryID *uint32
	// QueryName is the read/sample identifier. Nil until resolved.
	QueryName *string
	// Ones is the ascending, duplicate-free list of target indices this
	// query aligns to. Nil means "not yet resolved from OnesNames";
	// non-nil-but-empty means "resolved, no hits".
	Ones []uint32
	// OnesNames lists the hit targets by name. When Ones is nil the encoder
	// resolves Ones from OnesNames through the target catalogue; OnesNames
	// itself is never filled in from Ones.
	OnesNames []string
}

// HasIdentifier reports whether the record carries enough information to
// be placed in a file: a query id or a query name.
func (p PseudoAln) HasIdentifier() bool {
	return p.QueryID != nil || p.QueryName != nil
}

// HasTargets reports whether the record carries a resolved hit list, in
// either index or name form.
func (p PseudoAln) HasTargets() bool {
	return p.Ones != nil || p.OnesNames != nil
}
