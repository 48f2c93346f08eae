package entity

import "time"

// Category groups blogs and holds the back-references to its members.
type Category struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Blogs     []string  `bson:"blogs" json:"blogs"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CategoryRef is the slim projection of a category embedded in blog views.
type CategoryRef struct {
	ID    string `bson:"_id" json:"id"`
	Title string `bson:"title" json:"title"`
}

// CategoryView is a category with its member blogs resolved.
type CategoryView struct {
	ID        string     `bson:"_id" json:"id"`
	Title     string     `bson:"title" json:"title"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	Blogs     []BlogView `bson:"blogs" json:"blogs"`
}

// CategoryDeletePolicy selects how deleting a referenced category is handled.
type CategoryDeletePolicy string

const (
	CategoryDeleteDetach CategoryDeletePolicy = "detach"
	CategoryDeleteReject CategoryDeletePolicy = "reject"
)

// DedupeIDs returns ids with blanks and repeats removed, keeping first-seen order.
func DedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
