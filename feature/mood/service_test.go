package mood

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func entry(mood string, emotions ...string) Entry {
	return Entry{Mood: mood, Emotions: emotions}
}

func TestAnalyze(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, Analyze(nil))
	})

	t.Run("DominantValues", func(t *testing.T) {
		p := Analyze([]Entry{
			entry("sad", "sadness", "anxiety"),
			entry("happy", "joy"),
			entry("sad", "anxiety", "stress"),
			entry("sad", "anxiety"),
			entry("calm", "stress", "joy"),
		})
		require.NotNil(t, p)
		assert.Equal(t, "sad", p.DominantMood)
		assert.Equal(t, []string{"anxiety", "joy", "stress"}, p.DominantEmotions)
		assert.Equal(t, 5, p.TotalEntries)
		assert.Equal(t, map[string]int{"sad": 3, "happy": 1, "calm": 1}, p.MoodDistribution)
	})

	t.Run("TiesGoToMostRecent", func(t *testing.T) {
		p := Analyze([]Entry{
			entry("happy", "joy"),
			entry("sad", "sadness"),
		})
		assert.Equal(t, "happy", p.DominantMood)
		assert.Equal(t, []string{"joy", "sadness"}, p.DominantEmotions)
	})

	t.Run("OnlyLatestSeven", func(t *testing.T) {
		entries := make([]Entry, 0, 10)
		for i := 0; i < 7; i++ {
			entries = append(entries, entry("calm"))
		}
		for i := 0; i < 3; i++ {
			entries = append(entries, entry("angry", "anger"))
		}

		p := Analyze(entries)
		assert.Equal(t, 7, p.TotalEntries)
		assert.Equal(t, map[string]int{"calm": 7}, p.MoodDistribution)
		assert.Empty(t, p.DominantEmotions)
	})
}

type memoryRepo struct {
	entries []Entry
	err     error
}

func (m *memoryRepo) Save(_ context.Context, e *Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append([]Entry{*e}, m.entries...)
	return nil
}

func (m *memoryRepo) ListByUser(_ context.Context, userID string, limit int) ([]Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []Entry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestService_Record(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, nil)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	svc.now = func() time.Time { return fixed }

	e, err := svc.Record(context.Background(), "u1", Input{
		Mood:      " anxious ",
		Emotions:  []string{"anxiety", " ", "stress"},
		Intensity: intPtr(7),
		Notes:     "exam week",
	})
	require.NoError(t, err)

	assert.Len(t, e.ID, 36)
	assert.Equal(t, "u1", e.UserID)
	assert.Equal(t, "anxious", e.Mood)
	assert.Equal(t, []string{"anxiety", "stress"}, e.Emotions)
	assert.Equal(t, 7, e.Intensity)
	assert.Equal(t, fixed.UTC(), e.Timestamp)
	assert.Len(t, repo.entries, 1)
}

func TestService_RecordInvalid(t *testing.T) {
	svc := NewService(&memoryRepo{}, nil)

	_, err := svc.Record(context.Background(), "u1", Input{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, []string{"mood is required", "emotions is required", "intensity is required"}, inputErr.Problems)
}

func TestService_ListAndInsights(t *testing.T) {
	svc := NewService(&memoryRepo{}, nil)
	ctx := context.Background()

	list, err := svc.List(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	p, err := svc.Insights(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, p)

	for _, m := range []string{"sad", "sad", "happy"} {
		_, err := svc.Record(ctx, "u1", Input{Mood: m, Emotions: []string{"sadness"}, Intensity: intPtr(3)})
		require.NoError(t, err)
	}
	_, err = svc.Record(ctx, "u2", Input{Mood: "calm", Emotions: []string{}, Intensity: intPtr(1)})
	require.NoError(t, err)

	list, err = svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, "happy", list[0].Mood)

	p, err = svc.Insights(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "sad", p.DominantMood)
	assert.Equal(t, 3, p.TotalEntries)
}

func TestService_RepositoryErrors(t *testing.T) {
	svc := NewService(&memoryRepo{err: assert.AnError}, nil)
	ctx := context.Background()

	_, err := svc.Record(ctx, "u1", Input{Mood: "ok", Emotions: []string{}, Intensity: intPtr(1)})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = svc.List(ctx, "u1")
	assert.ErrorIs(t, err, assert.AnError)

	_, err = svc.Insights(ctx, "u1")
	assert.ErrorIs(t, err, assert.AnError)
}
