package mcp

import (
	"context"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRoundTrip(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()

	for _, content := range []string{
		"plain",
		"multi\nline\n\ttext",
		"unicode: café ☕ 日本語",
		"quotes ' \" ` and ; DROP TABLE notes; --",
	} {
		note, err := a.CreateNote(ctx, "title", content)
		require.NoError(t, err)
		assert.Positive(t, note.ID)

		got, err := a.GetNote(ctx, note.ID)
		require.NoError(t, err)
		assert.Equal(t, content, got.Content)

		contents, err := a.ReadResource(ctx, note.URI())
		require.NoError(t, err)
		require.Len(t, contents, 1)
		assert.Equal(t, content, contents[0].(mcp.TextResourceContents).Text)
	}
}

func TestCreateNoteAssignsIncreasingIDs(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()

	first, err := a.CreateNote(ctx, "a", "1")
	require.NoError(t, err)
	second, err := a.CreateNote(ctx, "b", "2")
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestListResources(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()

	resources, err := a.ListResources(ctx)
	require.NoError(t, err)
	assert.Empty(t, resources)

	_, err = a.CreateNote(ctx, "zeta", "last by name, first by id")
	require.NoError(t, err)
	_, err = a.CreateNote(ctx, "alpha", "second")
	require.NoError(t, err)

	resources, err = a.ListResources(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 2)

	assert.Equal(t, "note:///1", resources[0].URI)
	assert.Equal(t, "zeta", resources[0].Name)
	assert.Equal(t, "A text note: zeta", resources[0].Description)
	assert.Equal(t, NoteMIMEType, resources[0].MIMEType)

	assert.Equal(t, "note:///2", resources[1].URI)
	assert.Equal(t, "alpha", resources[1].Name)
}

func TestListResourcesSeesExternalWrites(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()

	mustExec(t, a, "INSERT INTO notes (title, content) VALUES ('external', 'written elsewhere')")

	resources, err := a.ListResources(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "external", resources[0].Name)
}

func TestReadResourceNotFound(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()

	_, err := a.ReadResource(ctx, "note:///999")
	require.ErrorIs(t, err, ErrNoteNotFound)
	assert.Equal(t, "note 999 not found", err.Error())

	_, err = a.ReadResource(ctx, "note:///abc")
	require.ErrorIs(t, err, ErrNoteNotFound)
	assert.Equal(t, "note abc not found", err.Error())
}

func TestReadResourceInvalidURI(t *testing.T) {
	a, _ := newTestAdapter(t)

	for _, uri := range []string{"file:///1", "http://example.com/1", "::"} {
		_, err := a.ReadResource(context.Background(), uri)
		require.ErrorIs(t, err, ErrInvalidResourceURI, uri)
	}
}

func TestNoteURI(t *testing.T) {
	n := Note{ID: 42, Title: "t"}
	assert.Equal(t, "note:///42", n.URI())

	id, err := parseNoteURI(n.URI())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(n.ID), id)
}
