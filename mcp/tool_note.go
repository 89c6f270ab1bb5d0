package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool: Create Note
func (a *Adapter) toolCreateNote() (mcp.Tool, toolHandler) {
	return mcp.Tool{
		Name:        ToolCreateNote,
		Description: "Create a new note",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title of the note",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Text content of the note",
				},
			},
			Required: []string{"title", "content"},
		},
	}, a.handleCreateNote
}

func (a *Adapter) handleCreateNote(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	title, _ := getStringArg(args, "title")
	content, _ := getStringArg(args, "content")

	note, err := a.CreateNote(ctx, title, content)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Created note %d: %s", note.ID, note.Title)), nil
}
