package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "mysql-mcp/mcp"

// Server exposes an Adapter over MCP. mcp-go answers resources/list from
// its own registry, so the server mirrors the notes table into it before
// every listing and after every note it creates.
type Server struct {
	server  *server.MCPServer
	adapter *Adapter
	logger  *slog.Logger
	tracer  trace.Tracer
	// ready receives the readiness line, unfiltered by log level
	ready   io.Writer

	mu       sync.Mutex
	mirrored map[string]string // uri -> registered name
}

// NewMcpServer creates a new MCP server instance around adapter.
func NewMcpServer(adapter *Adapter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		adapter:  adapter,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
		ready:    os.Stderr,
		mirrored: make(map[string]string),
	}

	hooks := &server.Hooks{}
	hooks.AddBeforeListResources(func(ctx context.Context, id any, message *mcp.ListResourcesRequest) {
		if err := s.SyncResources(ctx); err != nil {
			s.logger.Warn("resource sync failed", "error", err)
		}
	})

	s.server = server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, true),
		server.WithHooks(hooks),
		server.WithToolHandlerMiddleware(s.traceTool),
		server.WithRecovery(),
	)

	// Register tools and resources
	s.registerCapabilities()

	return s
}

func (s *Server) registerCapabilities() {
	for _, tool := range s.adapter.ListTools() {
		s.server.AddTool(tool, s.handleCallTool)
	}

	s.server.AddResourceTemplate(
		mcp.NewResourceTemplate(
			NoteURITemplate,
			"note",
			mcp.WithTemplateDescription("A text note"),
			mcp.WithTemplateMIMEType(NoteMIMEType),
		),
		s.handleReadResource,
	)
}

// Close closes the database connection pool.
func (s *Server) Close() error {
	return s.adapter.Close()
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.server
}

// SyncResources reconciles the mcp-go resource registry with the notes
// table: new or renamed notes are (re)registered, vanished ones removed.
func (s *Server) SyncResources(ctx context.Context) error {
	resources, err := s.adapter.ListResources(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(resources))
	for _, res := range resources {
		seen[res.URI] = struct{}{}
		if name, ok := s.mirrored[res.URI]; ok && name == res.Name {
			continue
		}
		s.server.AddResource(res, s.handleReadResource)
		s.mirrored[res.URI] = res.Name
	}

	for uri := range s.mirrored {
		if _, ok := seen[uri]; !ok {
			s.server.RemoveResource(uri)
			delete(s.mirrored, uri)
		}
	}
	return nil
}

func (s *Server) handleCallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.adapter.CallTool(ctx, request.Params.Name, request.Params.Arguments)
	if err != nil || result == nil || result.IsError {
		return result, err
	}

	if request.Params.Name == ToolCreateNote {
		if err := s.SyncResources(ctx); err != nil {
			s.logger.Warn("resource sync failed", "error", err)
		}
	}
	return result, nil
}

func (s *Server) handleReadResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	ctx, span := s.tracer.Start(ctx, "resources/read",
		trace.WithAttributes(attribute.String("mcp.resource.uri", request.Params.URI)),
	)
	defer span.End()

	contents, err := s.adapter.ReadResource(ctx, request.Params.URI)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("resource read failed", "uri", request.Params.URI, "error", err)
		return nil, err
	}
	return contents, nil
}

// traceTool wraps every tool call in a span and logs its outcome.
func (s *Server) traceTool(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.Params.Name
		ctx, span := s.tracer.Start(ctx, "tools/call "+name,
			trace.WithAttributes(attribute.String("mcp.tool.name", name)),
		)
		defer span.End()

		start := time.Now()
		result, err := next(ctx, request)
		elapsed := time.Since(start)

		switch {
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.logger.Warn("tool call failed", "tool", name, "duration", elapsed, "error", err)
		case result != nil && result.IsError:
			msg := resultText(result)
			span.SetStatus(codes.Error, msg)
			s.logger.Warn("tool call failed", "tool", name, "duration", elapsed, "error", msg)
		default:
			s.logger.Debug("tool call", "tool", name, "duration", elapsed)
		}
		return result, err
	}
}

// resultText joins the text blocks of a tool result.
func resultText(result *mcp.CallToolResult) string {
	var text string
	for _, content := range result.Content {
		switch c := content.(type) {
		case mcp.TextContent:
			text += c.Text
		case *mcp.TextContent:
			text += c.Text
		}
	}
	return text
}

// ServeStdio serves MCP over the given streams until the input closes or
// ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.server)
	stdio.SetErrorLogger(errorLogger(s.logger))

	s.announce(TransportStdio)
	return stdio.Listen(ctx, in, out)
}

// ServeHTTP serves MCP over streamable HTTP on addr until ctx is cancelled.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpServer := server.NewStreamableHTTPServer(s.server)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(addr)
	}()

	s.announce(TransportHTTP)
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// announce writes the readiness line hosts wait for on stderr.
func (s *Server) announce(transport string) {
	fmt.Fprintf(s.ready, "MySQL MCP server running on %s\n", transport)
}

// errorLogger bridges a slog handler for libraries that want *log.Logger.
func errorLogger(logger *slog.Logger) *log.Logger {
	return slog.NewLogLogger(logger.Handler(), slog.LevelError)
}
