package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) weeklyDashboard(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)
	now := time.Now().UTC()

	summary, err := h.ds.ComputeWeekSummary(ctx, uid, now)
	if err != nil {
		return nil, err
	}

	var muscleLoad any
	resp, err := h.ds.ComputeMuscleLoad(ctx, uid, now)
	if err != nil {
		h.log.Warn("weekly_dashboard: muscle load failed", "error", err)
	} else {
		muscleLoad = resp
	}

	dashboard := map[string]any{
		"week_summary": summary,
		"muscle_load":  muscleLoad,
	}

	data, err := json.Marshal(dashboard)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
