// ABOUTME: Comment MCP tool handlers
// ABOUTME: Implements add_comment and list_comments tools with mention resolution
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

type CommentHandlers struct {
	store *store.Store
}

func NewCommentHandlers(s *store.Store) *CommentHandlers {
	return &CommentHandlers{store: s}
}

type AddCommentInput struct {
	EntityType string `json:"entity_type" jsonschema:"Entity kind being commented on (task, project, quote...)"`
	EntityID   string `json:"entity_id" jsonschema:"Entity ID (required)"`
	ParentID   string `json:"parent_id,omitempty" jsonschema:"Comment being replied to"`
	AuthorID   string `json:"author_id" jsonschema:"Comment author's member ID (required)"`
	Content    string `json:"content" jsonschema:"Comment text; @Name mentions are resolved against the roster"`
}

type CommentOutput struct {
	ID       string   `json:"id"`
	ParentID string   `json:"parent_id,omitempty"`
	AuthorID string   `json:"author_id"`
	Content  string   `json:"content"`
	Mentions []string `json:"mentions,omitempty"`
}

func commentToOutput(c *models.Comment) CommentOutput {
	return CommentOutput{
		ID:       c.ID,
		ParentID: c.ParentID,
		AuthorID: c.AuthorID,
		Content:  c.Content,
		Mentions: c.Mentions,
	}
}

func (h *CommentHandlers) AddComment(_ context.Context, request *mcp.CallToolRequest, input AddCommentInput) (*mcp.CallToolResult, CommentOutput, error) {
	if input.EntityType == "" || input.EntityID == "" {
		return nil, CommentOutput{}, fmt.Errorf("entity_type and entity_id are required")
	}
	if input.AuthorID == "" {
		return nil, CommentOutput{}, fmt.Errorf("author_id is required")
	}
	if input.Content == "" {
		return nil, CommentOutput{}, fmt.Errorf("content is required")
	}

	c := &models.Comment{
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		ParentID:   input.ParentID,
		AuthorID:   input.AuthorID,
		Content:    input.Content,
	}
	if !db.AddComment(h.store, c) {
		return nil, CommentOutput{}, fmt.Errorf("failed to add comment")
	}

	db.LogActivity(h.store, &models.TeamActivity{
		Type:       models.ActivityCommentAdded,
		UserID:     input.AuthorID,
		Action:     "commented",
		TargetType: input.EntityType,
		TargetID:   input.EntityID,
	})
	return nil, commentToOutput(c), nil
}

type ListCommentsInput struct {
	EntityType string `json:"entity_type" jsonschema:"Entity kind (required)"`
	EntityID   string `json:"entity_id" jsonschema:"Entity ID (required)"`
}

type ThreadOutput struct {
	Root    CommentOutput   `json:"root"`
	Replies []CommentOutput `json:"replies,omitempty"`
}

type ListCommentsOutput struct {
	Threads []ThreadOutput `json:"threads"`
}

func (h *CommentHandlers) ListComments(_ context.Context, request *mcp.CallToolRequest, input ListCommentsInput) (*mcp.CallToolResult, ListCommentsOutput, error) {
	if input.EntityType == "" || input.EntityID == "" {
		return nil, ListCommentsOutput{}, fmt.Errorf("entity_type and entity_id are required")
	}

	var out ListCommentsOutput
	for _, thread := range db.ThreadsForEntity(h.store, input.EntityType, input.EntityID) {
		to := ThreadOutput{Root: commentToOutput(thread.Root)}
		for _, reply := range thread.Replies {
			to.Replies = append(to.Replies, commentToOutput(reply))
		}
		out.Threads = append(out.Threads, to)
	}
	return nil, out, nil
}
