package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/hybrid/internal/models"
)

func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// weekStartOrToday parses an optional week date, defaulting to today.
func weekStartOrToday(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	return parseDay(s)
}

// --- Tool definitions ---

var toolGetWeekSummary = mcp.NewTool("get_week_summary",
	mcp.WithDescription("Training summary for one calendar week (Monday-anchored): total minutes, session count, average RPE, per-sport breakdown, and every logged session."),
	mcp.WithString("week", mcp.Description("Any date inside the week (YYYY-MM-DD). Defaults to the current week.")),
)

var toolGetPeriodSummary = mcp.NewTool("get_period_summary",
	mcp.WithDescription("Aggregate training stats over an arbitrary date range, or the whole logged history with lifetime=true."),
	mcp.WithString("start", mcp.Description("Inclusive start date (YYYY-MM-DD). Required unless lifetime is true.")),
	mcp.WithString("end", mcp.Description("Inclusive end date (YYYY-MM-DD). Required unless lifetime is true.")),
	mcp.WithBoolean("lifetime", mcp.Description("Aggregate over the whole history instead of a date range.")),
)

var toolGetMuscleLoad = mcp.NewTool("get_muscle_load",
	mcp.WithDescription("Per-muscle training load for one week: ACWR ratio with tier-specific color bucket plus linear fatigue score and bucket. White means no recorded load for the week."),
	mcp.WithString("week", mcp.Description("Any date inside the week (YYYY-MM-DD). Defaults to the current week.")),
)

var toolLogSession = mcp.NewTool("log_session",
	mcp.WithDescription("Log one training session. Duration must be positive and RPE between 1 and 10; invalid input is rejected, never corrected."),
	mcp.WithNumber("sport_id", mcp.Required(), mcp.Description("Sport identifier (see list_sports)")),
	mcp.WithString("date", mcp.Required(), mcp.Description("Session date (YYYY-MM-DD)")),
	mcp.WithNumber("duration_minutes", mcp.Required(), mcp.Description("Session duration in minutes")),
	mcp.WithNumber("intensity_rpe", mcp.Required(), mcp.Description("Rate of Perceived Exertion, 1-10")),
	mcp.WithString("notes", mcp.Description("Free-text notes")),
	mcp.WithString("focus", mcp.Description("Optional focus label")),
)

var toolListSports = mcp.NewTool("list_sports",
	mcp.WithDescription("List all sports with their focuses."),
)

var toolListMuscles = mcp.NewTool("list_muscles",
	mcp.WithDescription("List all tracked muscle groups with their sensitivity tiers."),
)

var toolRebuildDailyLoads = mcp.NewTool("rebuild_daily_loads",
	mcp.WithDescription("Replay sessions in a date range and rebuild the materialized daily muscle load cache. Safe to re-run."),
	mcp.WithString("start", mcp.Required(), mcp.Description("Inclusive start date (YYYY-MM-DD)")),
	mcp.WithString("end", mcp.Description("Inclusive end date (YYYY-MM-DD). Defaults to start.")),
)

// --- Tool handlers ---

func (h *handlers) getWeekSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := weekStartOrToday(req.GetString("week", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	summary, err := h.ds.ComputeWeekSummary(ctx, uid, week)
	if err != nil {
		h.log.Error("mcp get_week_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summary)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPeriodSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	if req.GetBool("lifetime", false) {
		summary, err := h.ds.ComputePeriodSummary(ctx, uid, time.Time{}, time.Time{}, true)
		if err != nil {
			h.log.Error("mcp get_period_summary", "error", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		result, err := mcp.NewToolResultJSON(summary)
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}

	start, err := parseDay(req.GetString("start", ""))
	if err != nil {
		return mcp.NewToolResultError("start is required (YYYY-MM-DD) unless lifetime is true"), nil
	}
	end, err := parseDay(req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("end is required (YYYY-MM-DD) unless lifetime is true"), nil
	}

	summary, err := h.ds.ComputePeriodSummary(ctx, uid, start, end, false)
	if err != nil {
		h.log.Error("mcp get_period_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summary)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getMuscleLoad(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := weekStartOrToday(req.GetString("week", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	resp, err := h.ds.ComputeMuscleLoad(ctx, uid, week)
	if err != nil {
		h.log.Error("mcp get_muscle_load", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sportID, err := req.RequireInt("sport_id")
	if err != nil {
		return mcp.NewToolResultError("sport_id parameter is required"), nil
	}
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError("date parameter is required"), nil
	}
	duration, err := req.RequireInt("duration_minutes")
	if err != nil {
		return mcp.NewToolResultError("duration_minutes parameter is required"), nil
	}
	rpe, err := req.RequireInt("intensity_rpe")
	if err != nil {
		return mcp.NewToolResultError("intensity_rpe parameter is required"), nil
	}

	in := models.SessionInput{
		SportID:         sportID,
		Date:            date,
		DurationMinutes: duration,
		IntensityRPE:    rpe,
	}
	if notes := req.GetString("notes", ""); notes != "" {
		in.Notes = &notes
	}
	if focus := req.GetString("focus", ""); focus != "" {
		in.Focus = &focus
	}

	uid := UserIDFromContext(ctx)
	session, err := h.ds.LogSession(ctx, uid, in)
	if err != nil {
		return mcp.NewToolResultError("session rejected: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(session)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listSports(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sports, err := h.ds.ListSports(ctx)
	if err != nil {
		h.log.Error("mcp list_sports", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sports)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listMuscles(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	muscles, err := h.ds.MuscleGroups(ctx)
	if err != nil {
		h.log.Error("mcp list_muscles", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(muscles)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) rebuildDailyLoads(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	startStr, err := req.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError("start parameter is required"), nil
	}
	start, err := parseDay(startStr)
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}
	end := start
	if e := req.GetString("end", ""); e != "" {
		end, err = parseDay(e)
		if err != nil {
			return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
		}
	}

	uid := UserIDFromContext(ctx)
	n, err := h.ds.RebuildDailyLoads(ctx, uid, start, end)
	if err != nil {
		h.log.Error("mcp rebuild_daily_loads", "error", err)
		return mcp.NewToolResultError("rebuild failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"rows_written": n,
		"start":        start.Format("2006-01-02"),
		"end":          end.Format("2006-01-02"),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
