// internal/solver/score.go
//
// Heuristic guess scorer. This is an explicit proxy for information gain, not
// an entropy calculation: early guesses are rewarded for covering many common
// distinct letters; once some structure is known (guess 3 onward), repeated
// common letters are allowed to count again.

package solver

// Score rates a word against a normalized letter-score table.
// For guessIndex <= 2 each distinct letter counts once; for guessIndex > 2
// every occurrence counts, repeats included.
func Score(word string, letterScores map[byte]float64, guessIndex int) float64 {
	sum := 0.0
	if guessIndex > 2 {
		for i := 0; i < len(word); i++ {
			sum += letterScores[word[i]]
		}
		return sum
	}
	var seen [26]bool
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' || seen[c-'a'] {
			continue
		}
		seen[c-'a'] = true
		sum += letterScores[c]
	}
	return sum
}
