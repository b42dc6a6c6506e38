// ABOUTME: Repository for comments with one-level threads and reactions
// ABOUTME: Mentions are resolved against the team roster on every write
package db

import (
	"github.com/harperreed/refit/mention"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func comments(s *store.Store) *store.Collection[*models.Comment] {
	return store.NewCollection[*models.Comment](s, store.KeyComments)
}

// AddComment persists a comment, resolving @mentions in its content against
// the team roster. A reply to a reply is flattened to the root comment so
// threads stay one level deep. Each mentioned member gets a
// comment_mention notification.
func AddComment(s *store.Store, c *models.Comment) bool {
	if c.ParentID != "" {
		if parent, ok := comments(s).Find(c.ParentID); ok && parent.ParentID != "" {
			c.ParentID = parent.ParentID
		}
	}
	c.Mentions = mention.Extract(c.Content, AllTeamMembers(s))
	if !comments(s).Append(c) {
		return false
	}

	for _, userID := range c.Mentions {
		AddNotification(s, &models.Notification{
			Type:     models.NotifyCommentMention,
			Priority: models.NotifyPriorityMedium,
			Message:  "You were mentioned in a comment",
			Metadata: &models.NotificationMeta{UserID: userID},
		})
	}
	return true
}

// GetComment returns the comment with the given id.
func GetComment(s *store.Store, id string) (*models.Comment, bool) {
	return comments(s).Find(id)
}

// EditComment replaces a comment's content, re-resolving its mentions and
// marking it edited.
func EditComment(s *store.Store, id, content string) bool {
	roster := AllTeamMembers(s)
	return comments(s).Update(id, func(c *models.Comment) {
		c.Content = content
		c.Mentions = mention.Extract(content, roster)
		c.Edited = true
	})
}

// DeleteComment removes a comment and all of its replies.
func DeleteComment(s *store.Store, id string) bool {
	if !comments(s).Delete(id) {
		return false
	}
	for _, reply := range comments(s).Filter(func(c *models.Comment) bool { return c.ParentID == id }) {
		comments(s).Delete(reply.ID)
	}
	return true
}

// CommentsForEntity returns the flat list of comments on an entity, replies
// included, in insertion order.
func CommentsForEntity(s *store.Store, entityType, entityID string) []*models.Comment {
	return comments(s).Filter(func(c *models.Comment) bool {
		return c.EntityType == entityType && c.EntityID == entityID
	})
}

// Thread is a root comment with its direct replies.
type Thread struct {
	Root    *models.Comment
	Replies []*models.Comment
}

// ThreadsForEntity groups an entity's comments into root-plus-replies
// threads, roots in insertion order.
func ThreadsForEntity(s *store.Store, entityType, entityID string) []Thread {
	flat := CommentsForEntity(s, entityType, entityID)
	byRoot := make(map[string]int)
	var threads []Thread
	for _, c := range flat {
		if c.ParentID == "" {
			byRoot[c.ID] = len(threads)
			threads = append(threads, Thread{Root: c})
		}
	}
	for _, c := range flat {
		if c.ParentID == "" {
			continue
		}
		if i, ok := byRoot[c.ParentID]; ok {
			threads[i].Replies = append(threads[i].Replies, c)
		}
	}
	return threads
}

// AddReaction records a user's emoji reaction on a comment. Reacting twice
// with the same emoji is a no-op.
func AddReaction(s *store.Store, commentID, emoji, userID string) bool {
	return comments(s).Update(commentID, func(c *models.Comment) {
		if c.HasReacted(emoji, userID) {
			return
		}
		if c.Reactions == nil {
			c.Reactions = make(map[string][]string)
		}
		c.Reactions[emoji] = append(c.Reactions[emoji], userID)
	})
}

// RemoveReaction withdraws a user's emoji reaction. Emptied emoji buckets
// are dropped.
func RemoveReaction(s *store.Store, commentID, emoji, userID string) bool {
	return comments(s).Update(commentID, func(c *models.Comment) {
		users := c.Reactions[emoji]
		for i, id := range users {
			if id == userID {
				users = append(users[:i], users[i+1:]...)
				break
			}
		}
		if len(users) == 0 {
			delete(c.Reactions, emoji)
		} else {
			c.Reactions[emoji] = users
		}
	})
}
