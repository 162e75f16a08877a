package services

import (
	"strings"
	"unicode/utf8"

	"pricing-dashboard/models"
)

const (
	// similarityThreshold is the minimum share of the shorter key's words
	// that must appear in the longer key.
	similarityThreshold = 0.8
	// minSharedWords is the number of shared words required, capped by the
	// size of the shorter key.
	minSharedWords = 2
)

// Cluster is a set of observations considered the same product. Key is the
// normalized description of the anchor bucket.
type Cluster struct {
	Key     string
	Members []*models.ProductObservation
}

// Grouper clusters observations by normalized description.
type Grouper struct {
	normalizer *Normalizer
}

// NewGrouper creates a Grouper using the given normalizer.
func NewGrouper(normalizer *Normalizer) *Grouper {
	return &Grouper{normalizer: normalizer}
}

// Group clusters observations in two phases.
//
// Phase 1 buckets observations by exact normalized key, keeping keys in
// first-seen order. Phase 2 walks the buckets in that order; each bucket not
// yet absorbed becomes an anchor and absorbs every remaining bucket whose
// key is Similar to the anchor key. An absorbed bucket never becomes an
// anchor itself and its key is retired. The merge is
// single-pass and not transitive, so the result depends on input order: the
// caller must pass a stably ordered slice.
func (g *Grouper) Group(observations []*models.ProductObservation) []Cluster {
	if len(observations) == 0 {
		return nil
	}

	var keys []string
	buckets := make(map[string][]*models.ProductObservation)
	for _, obs := range observations {
		key := g.normalizer.Normalize(obs.Description)
		if _, ok := buckets[key]; !ok {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], obs)
	}

	merged := make([]bool, len(keys))
	clusters := make([]Cluster, 0, len(keys))

	for i, anchor := range keys {
		if merged[i] {
			continue
		}
		merged[i] = true

		members := append([]*models.ProductObservation(nil), buckets[anchor]...)
		for j, other := range keys {
			if merged[j] {
				continue
			}
			if Similar(anchor, other) {
				members = append(members, buckets[other]...)
				merged[j] = true
			}
		}

		clusters = append(clusters, Cluster{Key: anchor, Members: members})
	}

	return clusters
}

// Similar reports whether two normalized keys describe the same product:
// at least 80% of the shorter key's words (ignoring one-letter words) appear
// in the longer key, and at least min(2, len(shorter)) words are shared.
// When both keys have the same number of words, a is treated as the shorter.
func Similar(a, b string) bool {
	wa := significantWords(a)
	wb := significantWords(b)
	if len(wa) == 0 || len(wb) == 0 {
		return false
	}

	shorter, longer := wa, wb
	if len(wb) < len(wa) {
		shorter, longer = wb, wa
	}

	inLonger := make(map[string]struct{}, len(longer))
	for _, w := range longer {
		inLonger[w] = struct{}{}
	}

	matching := 0
	for _, w := range shorter {
		if _, ok := inLonger[w]; ok {
			matching++
		}
	}

	similarity := float64(matching) / float64(len(shorter))
	return similarity >= similarityThreshold && matching >= min(minSharedWords, len(shorter))
}

func significantWords(key string) []string {
	var words []string
	for _, w := range strings.Split(key, " ") {
		if utf8.RuneCountInString(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}
