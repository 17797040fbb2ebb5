// Package constraints holds type constraints shared across the module.
package constraints

// Byteseq is satisfied by string-like and byte-slice-like types.
type Byteseq interface {
	~string | ~[]byte
}
