package analyzer

// Fingerprint is a depth-weighted frequency vector over structural node
// types. Keys are node type labels, values are accumulated weights.
// Fingerprints are compared by value and never mutated after construction.
type Fingerprint map[string]float64

// Vectorize folds a token sequence into a fingerprint. Every occurrence of a
// type contributes 1/(depth+1), so root-level and shallow structure dominate
// the vector: two samples sharing a skeleton score close even when their
// nested statement detail differs, while samples with different top-level
// shape score low regardless of inner similarity. An empty sequence yields
// an empty, non-nil fingerprint.
func Vectorize(tokens []Token) Fingerprint {
	fingerprint := make(Fingerprint, len(tokens))
	for _, tok := range tokens {
		fingerprint[tok.Type] += 1.0 / float64(tok.Depth+1)
	}
	return fingerprint
}

// FingerprintString vectorizes a canonical token string, typically one read
// back from corpus storage. The second return value is the number of
// malformed fields that were skipped during decoding.
func FingerprintString(s string) (Fingerprint, int) {
	tokens, skipped := ParseTokenString(s)
	return Vectorize(tokens), skipped
}
