package similarity

// Ratio computes a character-level edit similarity between two strings:
// 1.0 for identical input, 0.0 for maximally dissimilar input. Substitutions
// are weighted as one deletion plus one insertion so the distance never
// exceeds len(a)+len(b) and the ratio stays within [0,1].
func Ratio(a, b string) float64 {
	return indelRatio([]rune(a), []rune(b))
}

// SeqRatio computes the same edit similarity over token sequences, treating
// each token as an atomic symbol. Token order matters: swapping two tokens
// lowers the score just like swapping two characters would in Ratio.
func SeqRatio(a, b []string) float64 {
	return indelRatio(a, b)
}

func indelRatio[T comparable](a, b []T) float64 {
	lensum := len(a) + len(b)
	if lensum == 0 {
		return 1.0
	}
	return float64(lensum-weightedDistance(a, b)) / float64(lensum)
}

// weightedDistance fills the standard dynamic-programming matrix with
// insertion and deletion at cost 1 and substitution at cost 2.
func weightedDistance[T comparable](a, b []T) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 2
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := prev[j] + 1
			insertion := curr[j-1] + 1
			substitution := prev[j-1] + cost

			curr[j] = min(deletion, min(insertion, substitution))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
