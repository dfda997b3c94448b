package menu

import (
	"math/rand"
)

// Sampler abstracts the randomness that varies prompts across requests
// (daily vibe, favorites subset), so generation is seedable in tests.
type Sampler interface {
	PickOne(options []string) string
	PickSample(options []string, k int) []string
}

type randSampler struct {
	r *rand.Rand
}

// NewSampler wraps a rand.Rand as a Sampler.
func NewSampler(r *rand.Rand) Sampler {
	return &randSampler{r: r}
}

func (s *randSampler) PickOne(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[s.r.Intn(len(options))]
}

// PickSample returns k distinct elements chosen uniformly at random. When
// the list has k elements or fewer, all of them are returned.
func (s *randSampler) PickSample(options []string, k int) []string {
	if k >= len(options) {
		out := make([]string, len(options))
		copy(out, options)
		return out
	}

	picked := make([]string, 0, k)
	for _, i := range s.r.Perm(len(options))[:k] {
		picked = append(picked, options[i])
	}
	return picked
}
