// Package encoding implements the variable-length-integer string and
// ordered-sequence codec used by the AHDA FileFlags and BlockFlags
// trailing metadata sections.
package encoding
