package gateway

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chat-service/internal/chat"
	"chat-service/internal/diagnosis"
	"chat-service/internal/logger"
)

// Handler is the external chat surface. Chat-send and comment-summary always
// answer HTTP 200 with a domain-level type field; upstream and cache
// failures surface as an error-typed payload so the client always has a
// renderable bubble.
type Handler struct {
	coordinator *chat.Coordinator
	diagnoses   diagnosis.Resolver
}

func NewHandler(coordinator *chat.Coordinator, diagnoses diagnosis.Resolver) *Handler {
	return &Handler{
		coordinator: coordinator,
		diagnoses:   diagnoses,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/chat/message", h.sendMessage)
	r.POST("/chat/comment-summary", h.commentSummary)
	r.GET("/chat/history", h.getHistory)
	r.GET("/chat/sessions", h.listSessions)
	r.GET("/chat/session/active", h.getActiveSession)
	r.POST("/chat/session/new", h.startNewSession)
	r.DELETE("/chat/session", h.deleteSession)
}

type sendMessageRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	HistoryID int64  `json:"history_id"`
	Type      string `json:"type"`
	Message   string `json:"message" binding:"required"`
}

type chatResponse struct {
	Type       string `json:"type"`
	Response   string `json:"response"`
	SessionID  string `json:"session_id"`
	VideoURL   string `json:"video_url,omitempty"`
	VideoTitle string `json:"video_title,omitempty"`
}

func (h *Handler) sendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	diagCtx, ok := h.resolveDiagnosis(c, req.UserID, req.HistoryID)
	if !ok {
		return
	}

	out, err := h.coordinator.Send(c.Request.Context(), chat.SendInput{
		UserID:              req.UserID,
		Type:                req.Type,
		Message:             req.Message,
		Diagnosis:           diagCtx.Diagnosis,
		RecommendedExercise: diagCtx.RecommendedExercise,
	})
	if err != nil {
		logger.Error("send failed", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusOK, errorPayload("chat is temporarily unavailable"))
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Type:       out.Response.Type,
		Response:   out.Response.Response,
		SessionID:  out.SessionID,
		VideoURL:   out.Response.VideoURL,
		VideoTitle: out.Response.VideoTitle,
	})
}

type commentSummaryRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	HistoryID int64  `json:"history_id"`
	Message   string `json:"message" binding:"required"`
}

// commentSummary deliberately mirrors sendMessage without sharing its body:
// the operation has its own request shape and outbound field names.
func (h *Handler) commentSummary(c *gin.Context) {
	var req commentSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	out, err := h.coordinator.SendCommentSummary(c.Request.Context(), chat.CommentSummaryInput{
		UserID:   req.UserID,
		Comments: req.Message,
	})
	if err != nil {
		logger.Error("comment summary failed", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusOK, errorPayload("chat is temporarily unavailable"))
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Type:      out.Response.Type,
		Response:  out.Response.Response,
		SessionID: out.SessionID,
	})
}

func (h *Handler) getHistory(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	sessionID := c.Query("session_id")
	entries := h.coordinator.History(c.Request.Context(), userID, sessionID)
	if entries == nil {
		entries = []chat.Entry{}
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *Handler) listSessions(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	sessions := h.coordinator.Sessions(c.Request.Context(), userID)
	if sessions == nil {
		sessions = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) getActiveSession(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": h.coordinator.ActiveSession(c.Request.Context(), userID),
	})
}

type newSessionRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

func (h *Handler) startNewSession(c *gin.Context) {
	var req newSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.coordinator.StartNewSession(c.Request.Context(), req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": id})
}

func (h *Handler) deleteSession(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	h.coordinator.DeleteSession(c.Request.Context(), userID, sessionID)
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// resolveDiagnosis fetches the diagnosis snapshot for the request. A missing
// record answers an error-typed 200; any other resolver failure degrades to
// an empty context so the exchange still goes through.
func (h *Handler) resolveDiagnosis(c *gin.Context, userID, historyID int64) (diagnosis.Context, bool) {
	if historyID == 0 {
		return diagnosis.Context{}, true
	}

	diagCtx, err := h.diagnoses.Resolve(c.Request.Context(), historyID)
	if errors.Is(err, diagnosis.ErrNotFound) {
		c.JSON(http.StatusOK, errorPayload("posture analysis record not found"))
		return diagnosis.Context{}, false
	}
	if err != nil {
		logger.Error("diagnosis lookup failed, using empty context",
			"user_id", userID, "history_id", historyID, "error", err)
		return diagnosis.Context{}, true
	}
	return diagCtx, true
}

func userIDQuery(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return 0, false
	}
	return userID, true
}

func errorPayload(msg string) chatResponse {
	return chatResponse{
		Type:     "error",
		Response: msg,
	}
}
