// ABOUTME: Tests for comments, threading, reactions, and mention side effects
// ABOUTME: Mentions resolve against the stored roster and notify the target
package db

import (
	"testing"
	"time"

	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func addMember(t *testing.T, s *store.Store, name string) *models.TeamMember {
	t.Helper()
	m := &models.TeamMember{Name: name}
	if !CreateTeamMember(s, m) {
		t.Fatalf("CreateTeamMember(%s) failed", name)
	}
	return m
}

func TestAddCommentExtractsMentionsAndNotifies(t *testing.T) {
	s := setupTestStore(t)
	sam := addMember(t, s, "Samantha Reyes")
	addMember(t, s, "Sam")

	c := &models.Comment{
		EntityType: "task",
		EntityID:   "task-1",
		AuthorID:   "author",
		Content:    "ask @Samantha Reyes to check the wiring",
	}
	if !AddComment(s, c) {
		t.Fatal("AddComment failed")
	}

	got, _ := GetComment(s, c.ID)
	if len(got.Mentions) != 1 || got.Mentions[0] != sam.ID {
		t.Errorf("Expected mention of %s, got %v", sam.ID, got.Mentions)
	}

	mentions := NotificationsByType(s, models.NotifyCommentMention)
	if len(mentions) != 1 {
		t.Fatalf("Expected 1 mention notification, got %d", len(mentions))
	}
	if kind, id, ok := mentions[0].RelatedEntity(); !ok || kind != "user" || id != sam.ID {
		t.Errorf("Notification related entity = %s/%s", kind, id)
	}
}

func TestReplyToReplyFlattensToRoot(t *testing.T) {
	s := setupTestStore(t)

	root := &models.Comment{EntityType: "task", EntityID: "t1", AuthorID: "a", Content: "root"}
	AddComment(s, root)
	reply := &models.Comment{EntityType: "task", EntityID: "t1", AuthorID: "b", Content: "reply", ParentID: root.ID}
	AddComment(s, reply)
	nested := &models.Comment{EntityType: "task", EntityID: "t1", AuthorID: "c", Content: "nested", ParentID: reply.ID}
	AddComment(s, nested)

	got, _ := GetComment(s, nested.ID)
	if got.ParentID != root.ID {
		t.Errorf("Expected nested reply to attach to root %s, got %s", root.ID, got.ParentID)
	}

	threads := ThreadsForEntity(s, "task", "t1")
	if len(threads) != 1 {
		t.Fatalf("Expected 1 thread, got %d", len(threads))
	}
	if len(threads[0].Replies) != 2 {
		t.Errorf("Expected 2 replies under root, got %d", len(threads[0].Replies))
	}
}

func TestReactionsAddRemove(t *testing.T) {
	s := setupTestStore(t)

	c := &models.Comment{EntityType: "task", EntityID: "t1", AuthorID: "a", Content: "done"}
	AddComment(s, c)

	AddReaction(s, c.ID, "👍", "u1")
	AddReaction(s, c.ID, "👍", "u1") // repeat is a no-op
	AddReaction(s, c.ID, "👍", "u2")

	got, _ := GetComment(s, c.ID)
	if got.ReactionCounts()["👍"] != 2 {
		t.Errorf("Expected 2 reactions, got %d", got.ReactionCounts()["👍"])
	}

	RemoveReaction(s, c.ID, "👍", "u1")
	RemoveReaction(s, c.ID, "👍", "u2")
	got, _ = GetComment(s, c.ID)
	if _, present := got.Reactions["👍"]; present {
		t.Error("Expected emptied emoji bucket to be dropped")
	}
}

func TestDeleteCommentRemovesReplies(t *testing.T) {
	s := setupTestStore(t)

	root := &models.Comment{EntityType: "task", EntityID: "t1", AuthorID: "a", Content: "root"}
	AddComment(s, root)
	reply := &models.Comment{EntityType: "task", EntityID: "t1", AuthorID: "b", Content: "reply", ParentID: root.ID}
	AddComment(s, reply)

	if !DeleteComment(s, root.ID) {
		t.Fatal("DeleteComment failed")
	}
	if rest := CommentsForEntity(s, "task", "t1"); len(rest) != 0 {
		t.Errorf("Expected no comments left, got %d", len(rest))
	}
}

func TestEditCommentReResolvesMentions(t *testing.T) {
	s := setupTestStore(t)
	sam := addMember(t, s, "Samantha Reyes")
	jo := addMember(t, s, "Jo")

	c := &models.Comment{EntityType: "task", EntityID: "t1", AuthorID: "a", Content: "cc @Samantha Reyes"}
	AddComment(s, c)

	if !EditComment(s, c.ID, "cc @Jo instead") {
		t.Fatal("EditComment failed")
	}
	got, _ := GetComment(s, c.ID)
	if !got.Edited {
		t.Error("Expected comment marked edited")
	}
	if len(got.Mentions) != 1 || got.Mentions[0] != jo.ID {
		t.Errorf("Expected mention of %s only, got %v (was %s)", jo.ID, got.Mentions, sam.ID)
	}
	if got.UpdatedAt.Equal(time.Time{}) {
		t.Error("Expected UpdatedAt stamped")
	}
}
