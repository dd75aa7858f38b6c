// Package constraints provides type constraints shared by the parsing helpers.
package constraints

// Byteseq is a string or a byte slice holding URI text.
type Byteseq interface {
	~string | ~[]byte
}
