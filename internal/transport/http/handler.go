package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/avatarmeet/backend/internal/domain"
	"github.com/avatarmeet/backend/internal/service"

	"github.com/go-chi/chi/v5"
)

// maxErrDetail caps error text echoed to clients so internal store errors
// never leak in full.
const maxErrDetail = 80

// RoomRegistry is what the handler needs from the registry service.
type RoomRegistry interface {
	CreateRoom(ctx context.Context, scene string, maxParticipants int) (*domain.Room, error)
	JoinRoom(ctx context.Context, code string, name *string) (*domain.Room, error)
	GetRoom(ctx context.Context, code string) (*domain.Room, error)
	Status(ctx context.Context) service.Status
}

type Handler struct {
	registry RoomRegistry
	dbURLSet bool
	dbName   string
}

func NewHandler(registry RoomRegistry, dbURLSet bool, dbName string) *Handler {
	return &Handler{
		registry: registry,
		dbURLSet: dbURLSet,
		dbName:   dbName,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func truncate(s string) string {
	if len(s) > maxErrDetail {
		return s[:maxErrDetail]
	}
	return s
}

// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "AvatarMeet backend running"})
}

// GET /test
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	st := h.registry.Status(r.Context())

	resp := DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		DatabaseName:     h.dbName,
		ConnectionStatus: "not connected",
		Collections:      []string{},
		FallbackActive:   st.FallbackActive,
	}
	if h.dbURLSet {
		resp.DatabaseURL = "set"
	}
	if resp.DatabaseName == "" {
		resp.DatabaseName = "not set"
	}

	switch {
	case !st.Configured:
	case !st.Connected:
		resp.Database = "error: " + truncate(st.ConnError)
	case st.ConnError != "":
		resp.Database = "connected but error: " + truncate(st.ConnError)
		resp.ConnectionStatus = "connected"
	default:
		resp.Database = "connected"
		resp.ConnectionStatus = "connected"
		resp.Collections = st.Collections
	}

	writeJSON(w, http.StatusOK, resp)
}

// POST /rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}
	if req.MaxParticipants != 0 &&
		(req.MaxParticipants < domain.MinMaxParticipants || req.MaxParticipants > domain.MaxMaxParticipants) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("max_participants must be between %d and %d",
				domain.MinMaxParticipants, domain.MaxMaxParticipants),
		})
		return
	}

	room, err := h.registry.CreateRoom(r.Context(), req.Scene, req.MaxParticipants)
	if err != nil {
		slog.Error("handler.CreateRoom:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "create room failed: " + truncate(err.Error()),
		})
		return
	}

	writeJSON(w, http.StatusOK, CreateRoomResponse{Code: room.Code, Scene: room.Scene})
}

// POST /rooms/join
func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	var req JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "code is required"})
		return
	}

	room, err := h.registry.JoinRoom(r.Context(), req.Code, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "room not found"})
			return
		}
		slog.Error("handler.JoinRoom:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "join failed: " + truncate(err.Error()),
		})
		return
	}

	writeJSON(w, http.StatusOK, JoinRoomResponse{Code: room.Code, Scene: room.Scene})
}

// GET /rooms/{code}
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	room, err := h.registry.GetRoom(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "room not found"})
			return
		}
		slog.Error("handler.GetRoom:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "fetch room failed: " + truncate(err.Error()),
		})
		return
	}

	writeJSON(w, http.StatusOK, room)
}
