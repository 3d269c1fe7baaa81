// Package mcpserver exposes the catalog as MCP tools. Handlers never
// surface protocol-level errors for domain failures: a missing API key, a
// not-found, or an upstream outage all come back as descriptive text
// content so the conversation can continue.
package mcpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/screenscout/screenscout/internal/catalog/omdb"
	"github.com/screenscout/screenscout/internal/catalog/tmdb"
	"github.com/screenscout/screenscout/internal/config"
)

// Server wires the catalog service into an MCP server.
type Server struct {
	mcp     *mcp.Server
	catalog CatalogService
	logger  zerolog.Logger
}

// NewServer creates the MCP server and registers all tools.
func NewServer(catalog CatalogService, logger zerolog.Logger) *Server {
	s := &Server{
		catalog: catalog,
		logger:  logger.With().Str("component", "mcp").Logger(),
	}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    "screenscout",
		Version: config.Version,
	}, nil)

	s.registerTools()

	return s
}

// ServeStdio runs the server over stdin/stdout until the client
// disconnects or ctx is canceled.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info().Msg("Serving MCP over stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns the Streamable HTTP transport handler for mounting
// into an HTTP server.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}

// requestLogger returns a logger scoped to one tool invocation with a
// correlation id.
func (s *Server) requestLogger(tool string) zerolog.Logger {
	return s.logger.With().
		Str("tool", tool).
		Str("requestId", uuid.NewString()).
		Logger()
}

// textResult wraps a string as MCP text content.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorText renders a domain error as user-facing text. Configuration
// errors get fixed messages so the operator knows which key to set.
func errorText(log zerolog.Logger, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, tmdb.ErrAPIKeyMissing):
		log.Warn().Msg("TMDB API key missing")
		return textResult("Error: TMDB API key is not configured. Set TMDB_API_KEY and restart the server.")
	case errors.Is(err, omdb.ErrAPIKeyMissing):
		log.Warn().Msg("OMDb API key missing")
		return textResult("Error: OMDb API key is not configured. Set OMDB_API_KEY and restart the server.")
	default:
		log.Error().Err(err).Msg("Tool call failed")
		return textResult("Error: " + err.Error())
	}
}
