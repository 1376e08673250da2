// Package server exposes the engine over HTTP. It is a thin surface:
// all semantics live in the engine; handlers only decode, delegate and
// map errors to status codes.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/adaptic/internal/coordinator"
	"github.com/abhisek/adaptic/internal/engine"
	"github.com/abhisek/adaptic/internal/progress"
	"github.com/abhisek/adaptic/internal/session"
)

// Handler holds the engine behind the HTTP routes.
type Handler struct {
	Engine *engine.Engine
	Log    *slog.Logger
}

// Router builds the gin engine with all routes mounted.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", h.Health)

	v1 := r.Group("/v1")
	{
		v1.POST("/events", h.SubmitEvent)
		v1.POST("/learners/:learner/sessions", h.StartSession)
		v1.POST("/sessions/:session/end", h.EndSession)
		v1.GET("/learners/:learner/progress", h.LearnerProgress)
		v1.GET("/learners/:learner/progress/:unit", h.UnitProgress)
		v1.GET("/learners/:learner/mastery/:objective", h.LatestMastery)
		v1.GET("/learners/:learner/mastery/:objective/history", h.MasteryHistory)
		v1.DELETE("/learners/:learner", h.ResetLearner)
	}
	return r
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type submitRequest struct {
	EventID       string   `json:"eventId" binding:"required"`
	LearnerID     string   `json:"learnerId" binding:"required"`
	SessionID     string   `json:"sessionId"`
	UnitID        string   `json:"unitId" binding:"required"`
	Fraction      *float64 `json:"fraction"`
	TimeSpentSecs int64    `json:"timeSpentSecs"`
	MarkComplete  bool     `json:"markComplete"`
	Override      bool     `json:"override"`
	Answered      bool     `json:"answered"`
	Correct       bool     `json:"correct"`
	ResponseMs    int64    `json:"responseMs"`
	ExpectedMs    int64    `json:"expectedMs"`
	Confidence    *float64 `json:"confidence"`
	ObjectiveID   string   `json:"objectiveId"`
	Score         *float64 `json:"score"`
	SubSkillID    string   `json:"subSkillId"`
}

// SubmitEvent runs one interaction event through the engine pipeline.
func (h *Handler) SubmitEvent(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Engine.Submit(c.Request.Context(), engine.InteractionEvent{
		EventID:       req.EventID,
		LearnerID:     req.LearnerID,
		SessionID:     req.SessionID,
		UnitID:        req.UnitID,
		Fraction:      req.Fraction,
		TimeSpentSecs: req.TimeSpentSecs,
		MarkComplete:  req.MarkComplete,
		Override:      req.Override,
		Answered:      req.Answered,
		Correct:       req.Correct,
		ResponseMs:    req.ResponseMs,
		ExpectedMs:    req.ExpectedMs,
		Confidence:    req.Confidence,
		ObjectiveID:   req.ObjectiveID,
		Score:         req.Score,
		SubSkillID:    req.SubSkillID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// StartSession returns the learner's live session, creating one if
// needed.
func (h *Handler) StartSession(c *gin.Context) {
	id, err := h.Engine.StartSession(c.Request.Context(), c.Param("learner"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": id})
}

// EndSession finalizes a session and returns its summary.
func (h *Handler) EndSession(c *gin.Context) {
	sum, err := h.Engine.EndSession(c.Request.Context(), c.Param("session"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// LearnerProgress returns all progress records for a learner.
func (h *Handler) LearnerProgress(c *gin.Context) {
	recs, err := h.Engine.Progress(c.Request.Context(), c.Param("learner"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// UnitProgress returns the record for one unit, 404 if none exists.
func (h *Handler) UnitProgress(c *gin.Context) {
	rec, err := h.Engine.UnitProgress(c.Request.Context(), c.Param("learner"), c.Param("unit"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no progress recorded"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// LatestMastery returns the current decision for an objective.
func (h *Handler) LatestMastery(c *gin.Context) {
	d, err := h.Engine.LatestMastery(c.Request.Context(), c.Param("learner"), c.Param("objective"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if d == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no decision recorded"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// MasteryHistory returns the full decision log for an objective.
func (h *Handler) MasteryHistory(c *gin.Context) {
	ds, err := h.Engine.MasteryHistory(c.Request.Context(), c.Param("learner"), c.Param("objective"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

// ResetLearner wipes all engine state for a learner.
func (h *Handler) ResetLearner(c *gin.Context) {
	if err := h.Engine.ResetLearner(c.Request.Context(), c.Param("learner")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// writeError maps the engine's error taxonomy to HTTP status codes.
func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		validation *progress.ValidationError
		unmet      *progress.PrerequisiteUnmetError
		closed     *session.ClosedError
		failed     *coordinator.CommitFailedError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": validation.Field})
	case errors.As(err, &unmet):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "missing": unmet.Missing})
	case errors.As(err, &closed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &failed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.Log.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Server wraps the HTTP listener with graceful shutdown.
type Server struct {
	http *http.Server
	log  *slog.Logger
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, h *Handler) *Server {
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           h.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: h.Log,
	}
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.log.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
