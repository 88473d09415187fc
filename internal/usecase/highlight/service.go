// Package highlight selects the sentences of a document most relevant to
// its generated summary using TF-IDF similarity with position weighting.
// Scoring failures degrade to a neutral leading-sentence selection so the
// overall request never fails for lack of highlights.
package highlight

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"docsum/internal/domain/entity"
	"docsum/internal/observability/metrics"
)

// fallbackScore marks highlights chosen positionally after a scoring failure.
const fallbackScore = 0.5

// Position weights decay linearly from weightFirst for the first sentence
// to weightLast for the final one. Earlier sentences tend to matter more.
const (
	weightFirst = 1.0
	weightLast  = 0.7
)

// SentenceSplitter splits text into sentences.
type SentenceSplitter interface {
	Split(text string) []string
}

// Service ranks document sentences by relevance to a summary.
type Service struct {
	Splitter SentenceSplitter
}

// NewService creates a highlight service using the given sentence splitter.
func NewService(splitter SentenceSplitter) Service {
	return Service{Splitter: splitter}
}

// TopK returns up to k sentences of originalText ranked by similarity to
// summaryText, highest first. When the document has k sentences or fewer,
// all of them are returned with a full score. Scoring errors fall back to
// the first k sentences with a neutral score; the method never fails.
func (s Service) TopK(originalText, summaryText string, k int) []entity.Highlight {
	sentences := s.sentences(originalText)
	if len(sentences) == 0 || k <= 0 {
		return []entity.Highlight{}
	}

	if len(sentences) <= k {
		highlights := make([]entity.Highlight, len(sentences))
		for i, sentence := range sentences {
			highlights[i] = entity.Highlight{Index: i, Sentence: sentence, Score: 1.0}
		}
		return highlights
	}

	start := time.Now()
	highlights, err := rank(sentences, summaryText, k)
	metrics.RecordHighlightDuration(time.Since(start))

	if err != nil {
		slog.Warn("highlight scoring failed, returning leading sentences",
			slog.Int("sentence_count", len(sentences)),
			slog.String("error", err.Error()))
		metrics.RecordHighlightFallback()
		return leading(sentences, k)
	}
	return highlights
}

// sentences splits and cleans the document text.
func (s Service) sentences(text string) []string {
	raw := s.Splitter.Split(text)
	sentences := make([]string, 0, len(raw))
	for _, sentence := range raw {
		trimmed := strings.TrimSpace(sentence)
		if trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// rank scores every sentence against the summary and returns the top k.
func rank(sentences []string, summaryText string, k int) ([]entity.Highlight, error) {
	v := newVectorizer()

	corpus := make([]string, 0, len(sentences)+1)
	corpus = append(corpus, sentences...)
	corpus = append(corpus, summaryText)
	if err := v.fit(corpus); err != nil {
		return nil, err
	}

	summaryVec, err := v.transform(summaryText)
	if err != nil {
		return nil, err
	}

	n := len(sentences)
	scored := make([]entity.Highlight, n)
	for i, sentence := range sentences {
		vec, err := v.transform(sentence)
		if err != nil {
			return nil, err
		}
		weight := weightFirst
		if n > 1 {
			weight = weightFirst - (weightFirst-weightLast)*float64(i)/float64(n-1)
		}
		scored[i] = entity.Highlight{
			Index:    i,
			Sentence: sentence,
			Score:    dot(vec, summaryVec) * weight,
		}
	}

	// Highest score first; equal scores keep document order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k > n {
		k = n
	}
	return scored[:k], nil
}

// leading returns the first k sentences with a neutral score.
func leading(sentences []string, k int) []entity.Highlight {
	if k > len(sentences) {
		k = len(sentences)
	}
	highlights := make([]entity.Highlight, k)
	for i := 0; i < k; i++ {
		highlights[i] = entity.Highlight{Index: i, Sentence: sentences[i], Score: fallbackScore}
	}
	return highlights
}
