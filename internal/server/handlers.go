package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/meltforce/hybrid/internal/models"
	"github.com/meltforce/hybrid/internal/storage"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var in models.SessionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	session, err := s.svc.LogSession(r.Context(), s.userID, in)
	if err != nil {
		s.log.Error("create session error", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return
	}

	var in models.SessionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	session, err := s.svc.UpdateSession(r.Context(), s.userID, id, in)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return
	}

	if err := s.svc.DeleteSession(r.Context(), s.userID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWeekSummary(w http.ResponseWriter, r *http.Request) {
	date, err := parseDay(chi.URLParam(r, "date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	summary, err := s.svc.ComputeWeekSummary(r.Context(), s.userID, date)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handlePeriodSummary(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("lifetime") == "true" {
		summary, err := s.svc.ComputePeriodSummary(r.Context(), s.userID, time.Time{}, time.Time{}, true)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, summary)
		return
	}

	start, err := parseDay(r.URL.Query().Get("start"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "start: " + err.Error()})
		return
	}
	end, err := parseDay(r.URL.Query().Get("end"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "end: " + err.Error()})
		return
	}
	if end.Before(start) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "end must not precede start"})
		return
	}

	summary, err := s.svc.ComputePeriodSummary(r.Context(), s.userID, start, end, false)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleMuscleLoad(w http.ResponseWriter, r *http.Request) {
	date, err := parseDay(chi.URLParam(r, "date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := s.svc.ComputeMuscleLoad(r.Context(), s.userID, date)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := s.svc.ListSports(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sports)
}

func (s *Server) handleListMuscles(w http.ResponseWriter, r *http.Request) {
	muscles, err := s.svc.MuscleGroups(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, muscles)
}

func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	start, err := parseDay(r.URL.Query().Get("start"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "start: " + err.Error()})
		return
	}
	end := start
	if e := r.URL.Query().Get("end"); e != "" {
		end, err = parseDay(e)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "end: " + err.Error()})
			return
		}
	}

	n, err := s.svc.RebuildDailyLoads(r.Context(), s.userID, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rows_written": n,
		"start":        start.Format("2006-01-02"),
		"end":          end.Format("2006-01-02"),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
