package matching

import (
	"testing"

	"matchmaker-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(name string, score int) domain.ScoredProject {
	return domain.ScoredProject{Project: domain.Project{Name: name}, MatchScore: score}
}

func TestRank_TruncatesAndSorts(t *testing.T) {
	in := []domain.ScoredProject{
		scored("a", 50), scored("b", 90), scored("c", 70), scored("d", 90),
		scored("e", 10), scored("f", 85), scored("g", 60), scored("h", 100),
	}
	out := Rank(in, MaxResults)
	require.Len(t, out, MaxResults)

	names := make([]string, len(out))
	for i, p := range out {
		names[i] = p.Name
		if i > 0 {
			assert.GreaterOrEqual(t, out[i-1].MatchScore, p.MatchScore)
		}
	}
	// b and d tie at 90 and keep their input order
	assert.Equal(t, []string{"h", "b", "d", "f", "c", "g"}, names)
}

func TestRank_FewerThanLimit(t *testing.T) {
	out := Rank([]domain.ScoredProject{scored("a", 10), scored("b", 20)}, MaxResults)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].Name)
	assert.Equal(t, "a", out[1].Name)

	assert.Empty(t, Rank(nil, MaxResults))
}
