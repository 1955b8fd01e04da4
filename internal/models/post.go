package models

// AnonymousName is used when a submitter does not provide a display name.
const AnonymousName = "Anonymous"

// Post represents a single ephemeral submission: an image plus caption pinned
// to a location. Posts live in memory only and disappear after their lifetime.
type Post struct {
	ID          string   `json:"id"`
	Caption     string   `json:"caption"`
	AnonID      string   `json:"anon_id"`
	DisplayName string   `json:"display_name"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	ImageURL    string   `json:"imageUrl"`
	Timestamp   int64    `json:"timestamp"` // unix milliseconds
	Likes       int      `json:"likes"`
	LikedBy     []string `json:"likedBy"`
}

// LikedByContains reports whether anonID has already liked the post.
func (p *Post) LikedByContains(anonID string) bool {
	for _, id := range p.LikedBy {
		if id == anonID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never share the store's mutable state.
func (p *Post) Clone() Post {
	out := *p
	out.LikedBy = make([]string, len(p.LikedBy))
	copy(out.LikedBy, p.LikedBy)
	return out
}

// CreatePostRequest defines the multipart form fields for creating a post.
// The image file itself travels as a separate multipart part.
type CreatePostRequest struct {
	Caption     string  `form:"caption"`
	AnonID      string  `form:"anon_id" validate:"required"`
	DisplayName string  `form:"display_name"`
	Lat         float64 `form:"lat" validate:"latitude"`
	Lng         float64 `form:"lng" validate:"longitude"`
}

// LikePostRequest defines the request body for liking a post.
type LikePostRequest struct {
	AnonID string `json:"anon_id" validate:"required"`
}
