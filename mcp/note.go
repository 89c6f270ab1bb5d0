package mcp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Note is one row of the notes table.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// URI returns the resource reference of the note.
func (n Note) URI() string {
	return NoteURIPrefix + strconv.FormatInt(n.ID, 10)
}

// Resource returns the MCP resource descriptor of the note.
func (n Note) Resource() mcp.Resource {
	return mcp.NewResource(
		n.URI(),
		n.Title,
		mcp.WithResourceDescription("A text note: "+n.Title),
		mcp.WithMIMEType(NoteMIMEType),
	)
}

// CreateNote inserts a note and returns it with the id the database
// assigned. Empty fields are rejected before any SQL is issued.
func (a *Adapter) CreateNote(ctx context.Context, title, content string) (Note, error) {
	if title == "" || content == "" {
		return Note{}, ErrTitleContentRequired
	}

	ctx, cancel := context.WithTimeout(ctx, ShortQueryTimeout)
	defer cancel()

	query, args, strategy := a.qb.InsertNoteQuery(title, content)

	var id int64
	switch strategy {
	case InsertIDReturning:
		if err := a.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return Note{}, fmt.Errorf("%w: %v", ErrCreatingNote, err)
		}
	case InsertIDOutBind:
		args = append(args, sql.Out{Dest: &id})
		if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
			return Note{}, fmt.Errorf("%w: %v", ErrCreatingNote, err)
		}
	default:
		res, err := a.db.ExecContext(ctx, query, args...)
		if err != nil {
			return Note{}, fmt.Errorf("%w: %v", ErrCreatingNote, err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return Note{}, fmt.Errorf("%w: %v", ErrCreatingNote, err)
		}
	}

	return Note{ID: id, Title: title, Content: content}, nil
}

// ListNotes returns id and title of every note, ordered by id.
func (a *Adapter) ListNotes(ctx context.Context) ([]Note, error) {
	ctx, cancel := context.WithTimeout(ctx, ShortQueryTimeout)
	defer cancel()

	rows, err := a.db.QueryContext(ctx, a.qb.ListNotesQuery())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListingNotes, err)
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		var n Note
		if err = rows.Scan(&n.ID, &n.Title); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadingRow, err)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListingNotes, err)
	}
	return notes, nil
}

// GetNote loads one note. A missing row wraps ErrNoteNotFound.
func (a *Adapter) GetNote(ctx context.Context, id int64) (Note, error) {
	ctx, cancel := context.WithTimeout(ctx, ShortQueryTimeout)
	defer cancel()

	query, args := a.qb.GetNoteQuery(id)

	var n Note
	err := a.db.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.Title, &n.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return Note{}, fmt.Errorf("note %d %w", id, ErrNoteNotFound)
	}
	if err != nil {
		return Note{}, fmt.Errorf("%w: %v", ErrReadingNote, err)
	}
	return n, nil
}

// parseNoteURI extracts the id segment of note:///<id>.
func parseNoteURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != NoteURIScheme {
		return "", fmt.Errorf("%w: %s", ErrInvalidResourceURI, uri)
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}

// ListResources returns one text/plain resource per note. The table is
// queried on every call.
func (a *Adapter) ListResources(ctx context.Context) ([]mcp.Resource, error) {
	notes, err := a.ListNotes(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]mcp.Resource, 0, len(notes))
	for _, n := range notes {
		resources = append(resources, n.Resource())
	}
	return resources, nil
}

// ReadResource returns the content of the note addressed by uri. Ids that
// are not integers cannot match a row and are reported as not found.
func (a *Adapter) ReadResource(ctx context.Context, uri string) ([]mcp.ResourceContents, error) {
	rawID, err := parseNoteURI(uri)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("note %s %w", rawID, ErrNoteNotFound)
	}

	note, err := a.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: NoteMIMEType,
			Text:     note.Content,
		},
	}, nil
}
