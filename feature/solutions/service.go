package solutions

import (
	"slices"
	"strings"
)

// PerEmotion is how many strategies of each kind one emotion contributes.
const PerEmotion = 2

// Service builds personalized strategy lists from a catalog.
type Service struct {
	catalog Catalog
}

// NewService creates a service over catalog.
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Emotions returns the emotions the catalog covers, sorted.
func (s *Service) Emotions() []string {
	out := make([]string, 0, len(s.catalog))
	for e := range s.catalog {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// Personalized takes the first PerEmotion strategies of each kind for every
// known emotion, in request order, dropping duplicates. Unknown emotions are
// ignored.
func (s *Service) Personalized(emotions []string) Strategies {
	out := Strategies{
		Techniques:   []string{},
		Affirmations: []string{},
		Activities:   []string{},
	}
	for _, emotion := range emotions {
		st, ok := s.catalog[strings.TrimSpace(emotion)]
		if !ok {
			continue
		}
		out.Techniques = appendUnique(out.Techniques, head(st.Techniques)...)
		out.Affirmations = appendUnique(out.Affirmations, head(st.Affirmations)...)
		out.Activities = appendUnique(out.Activities, head(st.Activities)...)
	}
	return out
}

func head(items []string) []string {
	if len(items) > PerEmotion {
		return items[:PerEmotion]
	}
	return items
}

func appendUnique(dst []string, items ...string) []string {
	for _, it := range items {
		if !slices.Contains(dst, it) {
			dst = append(dst, it)
		}
	}
	return dst
}
