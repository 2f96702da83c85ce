package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kerstenremco/tic-tac-toe/internal/apperror"
	"github.com/kerstenremco/tic-tac-toe/internal/entity"
	"github.com/kerstenremco/tic-tac-toe/internal/tictactoe"
)

var errBadRequest = errors.New("bad request")

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	StartSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	AttemptMove(w http.ResponseWriter, r *http.Request)
	ResetSession(w http.ResponseWriter, r *http.Request)
	EndSession(w http.ResponseWriter, r *http.Request)
}

type gameManager interface {
	StartSession(ctx context.Context, mode entity.Mode) (tictactoe.View, error)
	GetSession(ctx context.Context, id string) (tictactoe.View, error)
	AttemptMove(ctx context.Context, id string, row, col int) (tictactoe.View, error)
	ResetSession(ctx context.Context, id string, mode entity.Mode) (tictactoe.View, error)
	EndSession(ctx context.Context, id string) error
}

type handlers struct {
	logger      *slog.Logger
	gameManager gameManager
}

func NewHandlers(logger *slog.Logger, gameManager gameManager) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameManager: gameManager,
	}
}

type startRequest struct {
	Mode string `json:"mode"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	mode, err := entity.ParseMode(req.Mode)
	if err != nil {
		that.writeError(w, err)
		return
	}

	view, err := that.gameManager.StartSession(r.Context(), mode)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, view)
}

func (that *handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := that.gameManager.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) AttemptMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Row == nil || req.Col == nil {
		that.writeError(w, errBadRequest)
		return
	}

	view, err := that.gameManager.AttemptMove(r.Context(), chi.URLParam(r, "id"), *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) ResetSession(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	var mode entity.Mode
	if req.Mode != "" {
		var err error
		if mode, err = entity.ParseMode(req.Mode); err != nil {
			that.writeError(w, err)
			return
		}
	}

	view, err := that.gameManager.ResetSession(r.Context(), chi.URLParam(r, "id"), mode)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := that.gameManager.EndSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody accepts an empty body as the zero request.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(errBadRequest, err)
	}

	return nil
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errBadRequest), errors.Is(err, entity.ErrUnknownMode):
		status = http.StatusBadRequest
	default:
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}
