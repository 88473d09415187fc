package highlight

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxFeatures caps the vocabulary at the most frequent terms so pathological
// documents cannot blow up vector dimensionality.
const maxFeatures = 5000

// vectorizer is a TF-IDF vectorizer over unigrams and bigrams with English
// stopword removal. It builds a vocabulary from a corpus and produces
// L2-normalized vectors, so cosine similarity reduces to a dot product.
type vectorizer struct {
	vocabulary   map[string]int
	idf          []float64
	dimension    int
	prepared     bool
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

func newVectorizer() *vectorizer {
	return &vectorizer{
		vocabulary:   make(map[string]int),
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords:    englishStopwords(),
	}
}

// fit builds the vocabulary and IDF values from the provided corpus.
func (v *vectorizer) fit(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus for tf-idf fit")
	}

	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, term := range v.terms(text) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	if len(df) == 0 {
		return errors.New("no terms found in corpus")
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	// Keep the most document-frequent terms, alphabetical within ties,
	// then restore alphabetical order for stable vector positions.
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.dimension = len(terms)
	v.prepared = true
	return nil
}

// transform computes the L2-normalized TF-IDF vector for the given text.
func (v *vectorizer) transform(text string) ([]float64, error) {
	if !v.prepared {
		return nil, errors.New("vectorizer not fitted")
	}

	vec := make([]float64, v.dimension)
	tf := make(map[int]int)
	total := 0
	for _, term := range v.terms(text) {
		if idx, ok := v.vocabulary[term]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}

	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}

	norm := 0.0
	for _, val := range vec {
		norm += val * val
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// terms tokenizes text into lowercase unigrams plus adjacent bigrams,
// with stopwords removed before bigram formation.
func (v *vectorizer) terms(text string) []string {
	lower := strings.ToLower(text)
	raw := v.tokenPattern.FindAllString(lower, -1)

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, isStop := v.stopwords[tok]; isStop {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// dot returns the dot product of two equal-length vectors. Inputs here
// are already L2-normalized, so this is their cosine similarity.
func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func englishStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that",
		"these", "those", "from", "up", "down", "over", "under", "again",
		"further", "than", "so", "such", "into", "about", "between",
		"through", "during", "before", "after", "above", "below", "out",
		"off", "own", "same", "too", "very", "can", "will", "just",
		"don", "should", "now", "he", "she", "they", "we", "you", "i",
		"his", "her", "their", "our", "your", "its", "not", "no", "nor",
		"do", "does", "did", "has", "have", "had", "what", "which",
		"who", "whom", "when", "where", "why", "how", "all", "any",
		"both", "each", "few", "more", "most", "other", "some",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
