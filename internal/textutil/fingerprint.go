package textutil

import (
	"math"
	"regexp"
	"strings"
)

var tokenSplitPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Fingerprint is a term-frequency vector used to rank search matches.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// NewFingerprint creates a fingerprint from the provided text. Returns nil
// when the text has no tokens.
func NewFingerprint(text string) *Fingerprint {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{tokens: counts, norm: math.Sqrt(norm)}
}

// Tokenize lowercases text and splits it on anything that is not a letter or
// digit. Single-character tokens are dropped; two-letter surnames survive.
func Tokenize(text string) []string {
	raw := tokenSplitPattern.Split(strings.ToLower(text), -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		if len([]rune(token)) < 2 {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either is nil.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	return dot / (a.norm * b.norm)
}

// MatchScore scores document against a query with cosine similarity, where a
// query token that only prefixes a document token ("smi" for "smith") counts
// as half a match so partial typing still ranks.
func MatchScore(query, document string) float64 {
	q := NewFingerprint(query)
	d := NewFingerprint(document)
	if q == nil || d == nil {
		return 0
	}
	var dot float64
	for token, count := range q.tokens {
		if other, ok := d.tokens[token]; ok {
			dot += count * other
			continue
		}
		for candidate, other := range d.tokens {
			if strings.HasPrefix(candidate, token) {
				dot += 0.5 * count * other
				break
			}
		}
	}
	return dot / (q.norm * d.norm)
}
