package mood

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecentWindow is how many of the latest entries an insight looks at.
const RecentWindow = 7

// ErrInvalidInput wraps every validation failure of a new entry.
var ErrInvalidInput = errors.New("invalid mood entry")

// Service records entries and derives insights.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new mood service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Record validates in and stores it for userID, returning the new entry.
func (s *Service) Record(ctx context.Context, userID string, in Input) (*Entry, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	emotions := make([]string, 0, len(in.Emotions))
	for _, e := range in.Emotions {
		if e = strings.TrimSpace(e); e != "" {
			emotions = append(emotions, e)
		}
	}

	entry := &Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mood:      strings.TrimSpace(in.Mood),
		Emotions:  emotions,
		Intensity: *in.Intensity,
		Notes:     in.Notes,
		Timestamp: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Debug("Recorded mood entry", zap.String("id", entry.ID), zap.String("mood", entry.Mood))
	return entry, nil
}

// List returns every entry of userID, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	entries, err := s.repo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Insights analyzes the latest entries of userID. It returns nil when the
// visitor has none.
func (s *Service) Insights(ctx context.Context, userID string) (*Pattern, error) {
	entries, err := s.repo.ListByUser(ctx, userID, RecentWindow)
	if err != nil {
		return nil, err
	}
	return Analyze(entries), nil
}

// Analyze summarizes entries, which must be ordered newest first; only the
// first RecentWindow are considered. Count ties are broken by first
// appearance, so the most recent mood or emotion wins.
func Analyze(entries []Entry) *Pattern {
	if len(entries) == 0 {
		return nil
	}
	if len(entries) > RecentWindow {
		entries = entries[:RecentWindow]
	}

	moods := newCounter()
	emotions := newCounter()
	for _, e := range entries {
		moods.add(e.Mood)
		for _, em := range e.Emotions {
			emotions.add(em)
		}
	}

	dominant := moods.ranked()
	top := emotions.ranked()
	if len(top) > 3 {
		top = top[:3]
	}

	return &Pattern{
		DominantMood:     dominant[0],
		DominantEmotions: top,
		TotalEntries:     len(entries),
		MoodDistribution: moods.counts,
	}
}

func validate(in Input) error {
	var problems []string
	if strings.TrimSpace(in.Mood) == "" {
		problems = append(problems, "mood is required")
	}
	if in.Emotions == nil {
		problems = append(problems, "emotions is required")
	}
	if in.Intensity == nil {
		problems = append(problems, "intensity is required")
	}
	if len(problems) > 0 {
		return &InputError{Problems: problems}
	}
	return nil
}

// InputError lists what is wrong with a new entry.
type InputError struct {
	Problems []string
}

func (e *InputError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Problems, ", ")
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// counter counts keys and remembers their first appearance.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns keys by descending count, ties in first-appearance order.
func (c *counter) ranked() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	sort.SliceStable(out, func(i, j int) bool {
		return c.counts[out[i]] > c.counts[out[j]]
	})
	return out
}
