package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsum/internal/infra/tokenizer"
)

func newService(t *testing.T) Service {
	t.Helper()
	return NewService(tokenizer.Select())
}

func TestTopK_EmptyText(t *testing.T) {
	// Arrange
	svc := newService(t)

	// Act
	highlights := svc.TopK("", "any summary", 5)

	// Assert
	assert.Empty(t, highlights)
}

func TestTopK_FewerSentencesThanK(t *testing.T) {
	// Arrange
	svc := newService(t)
	original := "The cat sat on the mat. The dog barked loudly."

	// Act
	highlights := svc.TopK(original, "animals at home", 5)

	// Assert: every sentence comes back with a full score in order
	require.Len(t, highlights, 2)
	for i, h := range highlights {
		assert.Equal(t, i, h.Index)
		assert.Equal(t, 1.0, h.Score)
		assert.NotEmpty(t, h.Sentence)
	}
}

func TestTopK_RanksRelevantSentencesFirst(t *testing.T) {
	// Arrange
	svc := newService(t)
	original := "Solar panels convert sunlight into electricity. " +
		"My neighbour repainted a wooden fence last weekend. " +
		"Photovoltaic cells generate electricity from sunlight efficiently. " +
		"The bakery downtown sells excellent sourdough bread. " +
		"Renewable electricity from solar installations keeps growing worldwide. " +
		"A stray cat wandered through the garden yesterday. " +
		"Grid operators integrate solar electricity with battery storage."
	summary := "Solar panels and photovoltaic cells produce renewable electricity from sunlight."

	// Act
	highlights := svc.TopK(original, summary, 3)

	// Assert
	require.Len(t, highlights, 3)

	// Scores are sorted descending.
	for i := 1; i < len(highlights); i++ {
		assert.GreaterOrEqual(t, highlights[i-1].Score, highlights[i].Score)
	}

	// Off-topic sentences must not outrank the solar ones.
	for _, h := range highlights {
		assert.NotContains(t, h.Sentence, "sourdough")
		assert.NotContains(t, h.Sentence, "stray cat")
	}
}

func TestTopK_CountNeverExceedsK(t *testing.T) {
	// Arrange
	svc := newService(t)
	original := "One fact here. Another fact there. A third observation follows. " +
		"Then a fourth statement. And a fifth remark. Finally a sixth note. " +
		"Plus a seventh aside. Ending with an eighth thought."

	// Act
	highlights := svc.TopK(original, "facts and observations", 3)

	// Assert
	assert.Len(t, highlights, 3)
}

func TestTopK_NonPositiveK(t *testing.T) {
	// Arrange
	svc := newService(t)

	// Act
	highlights := svc.TopK("Some sentence here. Another one there.", "summary", 0)

	// Assert
	assert.Empty(t, highlights)
}

// fixedSplitter returns a predetermined sentence list regardless of input.
type fixedSplitter struct {
	sentences []string
}

func (s fixedSplitter) Split(string) []string { return s.sentences }

func TestTopK_FallsBackToLeadingSentencesOnScoringFailure(t *testing.T) {
	// Arrange: more sentences than k, but none contains a letter token, so
	// TF-IDF fitting finds no terms and scoring fails.
	svc := NewService(fixedSplitter{sentences: []string{
		"101 202 303",
		"404 505 606",
		"707 808 909",
		"111 222 333",
	}})

	// Act
	highlights := svc.TopK("4 8 15 16 23 42", "99 100", 2)

	// Assert: the first k sentences come back with the neutral score
	require.Len(t, highlights, 2)
	assert.Equal(t, 0, highlights[0].Index)
	assert.Equal(t, "101 202 303", highlights[0].Sentence)
	assert.Equal(t, fallbackScore, highlights[0].Score)
	assert.Equal(t, 1, highlights[1].Index)
	assert.Equal(t, fallbackScore, highlights[1].Score)
}

func TestLeading_FallbackShape(t *testing.T) {
	// Arrange
	sentences := []string{"first", "second", "third", "fourth"}

	// Act
	highlights := leading(sentences, 2)

	// Assert
	require.Len(t, highlights, 2)
	assert.Equal(t, 0, highlights[0].Index)
	assert.Equal(t, "first", highlights[0].Sentence)
	assert.Equal(t, fallbackScore, highlights[0].Score)
	assert.Equal(t, 1, highlights[1].Index)
}

func TestRank_PositionWeightFavorsEarlierOnTies(t *testing.T) {
	// Arrange: identical sentences differ only by position weight
	sentences := []string{
		"Gophers enjoy writing concurrent network services.",
		"Gophers enjoy writing concurrent network services.",
		"Gophers enjoy writing concurrent network services.",
		"Completely unrelated filler about gardening tools.",
	}

	// Act
	highlights, err := rank(sentences, "gophers write concurrent services", 3)

	// Assert: the earlier duplicate wins through its higher weight
	require.NoError(t, err)
	require.Len(t, highlights, 3)
	assert.Equal(t, 0, highlights[0].Index)
	assert.Equal(t, 1, highlights[1].Index)
}
