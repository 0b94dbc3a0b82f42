package posts

import "time"

// LikeSet is the set of user ids that have liked a post.
// It serializes as a {userId: true} mapping so clients can test membership
// with their own id and derive the like count from its size.
type LikeSet map[string]bool

// NewLikeSet returns an empty like set
func NewLikeSet() LikeSet {
	return make(LikeSet)
}

// Has reports whether userID is in the set
func (s LikeSet) Has(userID string) bool {
	return s[userID]
}

// Add inserts userID into the set. Adding an existing member is a no-op.
func (s LikeSet) Add(userID string) {
	s[userID] = true
}

// Remove deletes userID from the set
func (s LikeSet) Remove(userID string) {
	delete(s, userID)
}

// Count returns the number of users in the set
func (s LikeSet) Count() int {
	return len(s)
}

// Comment is one entry in a post's comment sequence.
// Comments are addressed by their immutable ID, not by position: deleting a
// comment shifts later entries down one slot, so positions are never stable.
// Author fields are hydrated from the users table at read time.
type Comment struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Comment         string    `json:"comment"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	UserPicturePath string    `json:"userPicturePath,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Post is a shareable content unit with its full interaction state.
// The like set and comment sequence are only ever mutated through the
// store's atomic operations, never rewritten wholesale.
type Post struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	PicturePath     *string   `json:"picturePath,omitempty"`
	UserPicturePath string    `json:"userPicturePath,omitempty"`
	Likes           LikeSet   `json:"likes"`
	Comments        []Comment `json:"comments"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreatePostRequest contains parameters for creating a post.
// The picture path references media already stored by the upload service.
type CreatePostRequest struct {
	Description string  `json:"description"`
	PicturePath *string `json:"picturePath,omitempty"`
}
