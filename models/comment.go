// ABOUTME: Comment entity with one-level threading, reactions, and mentions
// ABOUTME: Reactions map emoji to the user ids who reacted
package models

type Comment struct {
	Meta
	EntityType string              `json:"entityType"`
	EntityID   string              `json:"entityId"`
	ParentID   string              `json:"parentId,omitempty"`
	AuthorID   string              `json:"authorId"`
	Content    string              `json:"content"`
	Mentions   []string            `json:"mentions,omitempty"`
	Reactions  map[string][]string `json:"reactions,omitempty"`
	Edited     bool                `json:"edited,omitempty"`
}

// ReactionCounts tallies reactions per emoji.
func (c *Comment) ReactionCounts() map[string]int {
	if len(c.Reactions) == 0 {
		return map[string]int{}
	}
	counts := make(map[string]int, len(c.Reactions))
	for emoji, users := range c.Reactions {
		counts[emoji] = len(users)
	}
	return counts
}

// HasReacted reports whether the user already reacted with the emoji.
func (c *Comment) HasReacted(emoji, userID string) bool {
	for _, id := range c.Reactions[emoji] {
		if id == userID {
			return true
		}
	}
	return false
}
