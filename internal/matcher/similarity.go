package matcher

// MinTokenLength is the shortest token the scorer considers meaningful.
// Shorter tokens score 0 and are dropped during normalization upstream.
const MinTokenLength = 3

// Blend weights for the three similarity components.
const (
	prefixWeight  = 0.4
	suffixWeight  = 0.3
	overlapWeight = 0.3
)

// WordSimilarity computes a 0-1 similarity between two lowercase tokens as a
// weighted blend of common-prefix length, common-suffix length, and character
// set overlap. Deterministic and symmetric; identical tokens score exactly 1.
func WordSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < MinTokenLength || len(rb) < MinTokenLength {
		return 0
	}
	if a == b {
		return 1
	}

	shorter := len(ra)
	if len(rb) < shorter {
		shorter = len(rb)
	}

	prefix := 0
	for prefix < shorter && ra[prefix] == rb[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < shorter && ra[len(ra)-1-suffix] == rb[len(rb)-1-suffix] {
		suffix++
	}

	return prefixWeight*float64(prefix)/float64(shorter) +
		suffixWeight*float64(suffix)/float64(shorter) +
		overlapWeight*charSetJaccard(ra, rb)
}

// charSetJaccard is the Jaccard similarity of the two tokens' character sets.
func charSetJaccard(a, b []rune) float64 {
	setA := make(map[rune]struct{}, len(a))
	for _, r := range a {
		setA[r] = struct{}{}
	}
	setB := make(map[rune]struct{}, len(b))
	for _, r := range b {
		setB[r] = struct{}{}
	}

	intersection := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
