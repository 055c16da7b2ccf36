package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Hybrid", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Hybrid training-load server. Query weekly training summaries, per-muscle ACWR and fatigue readings, and log sessions. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWeekSummary, Handler: h.getWeekSummary},
		server.ServerTool{Tool: toolGetPeriodSummary, Handler: h.getPeriodSummary},
		server.ServerTool{Tool: toolGetMuscleLoad, Handler: h.getMuscleLoad},
		server.ServerTool{Tool: toolLogSession, Handler: h.logSession},
		server.ServerTool{Tool: toolListSports, Handler: h.listSports},
		server.ServerTool{Tool: toolListMuscles, Handler: h.listMuscles},
		server.ServerTool{Tool: toolRebuildDailyLoads, Handler: h.rebuildDailyLoads},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWeeklyDashboard, Handler: h.weeklyDashboard},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

var resWeeklyDashboard = mcp.NewResource(
	"hybrid://weekly_dashboard",
	"Weekly Dashboard",
	mcp.WithResourceDescription("Current week's training summary plus per-muscle ACWR and fatigue readings"),
	mcp.WithMIMEType("application/json"),
)
