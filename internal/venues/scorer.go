package venues

import (
	"github.com/Black-Room-Studios/livevibe-server/internal/geo"
	"github.com/Black-Room-Studios/livevibe-server/internal/models"
)

const (
	// proximityMiles is how close a post must be to count toward a venue's
	// vibe score, roughly 100 meters.
	proximityMiles = 0.06

	// vibeWeight scales the nearby post count into a score.
	vibeWeight = 2
)

// PostProvider is the slice of the post store the scorer reads from.
type PostProvider interface {
	Active() []models.Post
}

// Scorer computes per-request vibe scores for a static venue registry.
type Scorer struct {
	posts    PostProvider
	registry Registry
}

// NewScorer creates a Scorer over the given registry.
func NewScorer(posts PostProvider, registry Registry) *Scorer {
	return &Scorer{posts: posts, registry: registry}
}

// ScoreVenues returns every venue in registry order with its vibe score:
// the number of active posts within the proximity threshold, weighted.
func (s *Scorer) ScoreVenues() []models.ScoredVenue {
	active := s.posts.Active()

	scored := make([]models.ScoredVenue, 0, len(s.registry))
	for _, v := range s.registry {
		count := 0
		for _, p := range active {
			if geo.DistanceMiles(v.Lat, v.Lng, p.Lat, p.Lng) <= proximityMiles {
				count++
			}
		}
		scored = append(scored, models.ScoredVenue{Venue: v, VibeScore: count * vibeWeight})
	}
	return scored
}
