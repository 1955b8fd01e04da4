package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Black-Room-Studios/livevibe-server/internal/geo"
	"github.com/Black-Room-Studios/livevibe-server/internal/models"
	"github.com/Black-Room-Studios/livevibe-server/pkg/logger"
	"github.com/google/uuid"
)

// DefaultLifetime is how long a post stays visible after creation.
const DefaultLifetime = 4 * time.Hour

// DefaultRadiusMiles is applied when a nearby query does not specify a radius.
const DefaultRadiusMiles = 2.0

// InsertRequest carries the fields needed to create a post.
type InsertRequest struct {
	Caption     string
	AnonID      string
	DisplayName string
	Lat         float64
	Lng         float64
	ImageURL    string
}

// PostStore owns the live collection of ephemeral posts. A single mutex
// serializes every operation that touches the collection, so a query's
// sweep-then-filter always observes a consistent snapshot.
type PostStore struct {
	mu       sync.Mutex
	posts    map[string]*models.Post
	lifetime time.Duration
	expiry   *ExpiryScheduler
	assets   AssetDeleter
	log      logger.Logger

	now func() time.Time
}

// NewPostStore creates an empty store. Every inserted post is handed to the
// expiry scheduler so it is removed no later than lifetime after creation.
func NewPostStore(lifetime time.Duration, expiry *ExpiryScheduler, assets AssetDeleter, log logger.Logger) *PostStore {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &PostStore{
		posts:    make(map[string]*models.Post),
		lifetime: lifetime,
		expiry:   expiry,
		assets:   assets,
		log:      log,
		now:      time.Now,
	}
}

// Insert validates the request, creates the post and registers it for
// expiry. The returned post is a copy.
func (s *PostStore) Insert(req InsertRequest) (models.Post, error) {
	if req.AnonID == "" || req.ImageURL == "" {
		return models.Post{}, fmt.Errorf("%w: anon_id and image are required", ErrMissingField)
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return models.Post{}, fmt.Errorf("%w: lat=%v lng=%v", ErrInvalidCoordinates, req.Lat, req.Lng)
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = models.AnonymousName
	}

	now := s.now().UnixMilli()
	post := &models.Post{
		// Timestamp plus submitter mirrors the original id scheme; the uuid
		// suffix keeps ids unique even for same-millisecond bursts.
		ID:          fmt.Sprintf("%d-%s-%s", now, req.AnonID, uuid.NewString()),
		Caption:     req.Caption,
		AnonID:      req.AnonID,
		DisplayName: displayName,
		Lat:         req.Lat,
		Lng:         req.Lng,
		ImageURL:    req.ImageURL,
		Timestamp:   now,
		Likes:       0,
		LikedBy:     []string{},
	}

	s.mu.Lock()
	s.posts[post.ID] = post
	out := post.Clone()
	s.mu.Unlock()

	s.expiry.Watch(s, post.ID, s.lifetime)

	return out, nil
}

// Query sweeps out expired posts, then returns copies of the remaining posts
// within radiusMiles of (lat, lng), ordered by creation time then id. Assets
// of swept posts are reclaimed best-effort after the lock is released.
func (s *PostStore) Query(lat, lng, radiusMiles float64) []models.Post {
	now := s.now().UnixMilli()

	s.mu.Lock()
	staleRefs := s.sweepLocked(now)

	nearby := make([]models.Post, 0)
	for _, p := range s.posts {
		if geo.DistanceMiles(lat, lng, p.Lat, p.Lng) <= radiusMiles {
			nearby = append(nearby, p.Clone())
		}
	}
	s.mu.Unlock()

	s.reclaim(staleRefs)

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].Timestamp != nearby[j].Timestamp {
			return nearby[i].Timestamp < nearby[j].Timestamp
		}
		return nearby[i].ID < nearby[j].ID
	})
	return nearby
}

// Like records that anonID liked the post. A second like by the same
// submitter is rejected with ErrAlreadyLiked and leaves the count unchanged.
// An expired post counts as absent even before any sweep or timer has
// removed it. Returns the new like count.
func (s *PostStore) Like(postID, anonID string) (int, error) {
	if anonID == "" {
		return 0, fmt.Errorf("%w: anon_id is required", ErrMissingField)
	}

	now := s.now().UnixMilli()

	s.mu.Lock()
	p, ok := s.posts[postID]
	if !ok {
		s.mu.Unlock()
		return 0, ErrPostNotFound
	}
	if !s.fresh(p, now) {
		delete(s.posts, postID)
		s.mu.Unlock()
		s.reclaim([]string{p.ImageURL})
		return 0, ErrPostNotFound
	}
	if p.LikedByContains(anonID) {
		likes := p.Likes
		s.mu.Unlock()
		return likes, ErrAlreadyLiked
	}

	p.LikedBy = append(p.LikedBy, anonID)
	p.Likes = len(p.LikedBy)
	likes := p.Likes
	s.mu.Unlock()
	return likes, nil
}

// Remove deletes the post from the collection. Removing an absent id is a
// no-op. The asset reference is returned only on the first successful
// removal so the caller can issue exactly one delete request.
func (s *PostStore) Remove(postID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return "", false
	}
	delete(s.posts, postID)
	return p.ImageURL, true
}

// Active returns copies of all non-expired posts without sweeping. Read path
// for the venue scorer.
func (s *PostStore) Active() []models.Post {
	now := s.now().UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if s.fresh(p, now) {
			active = append(active, p.Clone())
		}
	}
	return active
}

// fresh is the single freshness predicate: a post is visible while its age
// is strictly under the lifetime.
func (s *PostStore) fresh(p *models.Post, nowMillis int64) bool {
	return nowMillis-p.Timestamp < s.lifetime.Milliseconds()
}

// sweepLocked removes every expired post and returns their asset references.
// Callers must hold s.mu.
func (s *PostStore) sweepLocked(nowMillis int64) []string {
	var refs []string
	for id, p := range s.posts {
		if !s.fresh(p, nowMillis) {
			delete(s.posts, id)
			refs = append(refs, p.ImageURL)
		}
	}
	return refs
}

// reclaim requests best-effort deletion of swept assets. Failures are logged
// and discarded; cleanup never fails the owning operation.
func (s *PostStore) reclaim(refs []string) {
	for _, ref := range refs {
		if err := s.assets.Delete(ref); err != nil {
			s.log.Warn("failed to delete expired asset", "ref", ref, "err", err)
		}
	}
}
