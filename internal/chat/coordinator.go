package chat

import (
	"context"
	"strings"
	"time"

	"chat-service/internal/ai"
	"chat-service/internal/cache"
	"chat-service/internal/logger"
)

// AIClient is what the coordinator needs from the AI router.
type AIClient interface {
	Dispatch(ctx context.Context, req ai.Request) ai.Response
	SummarizeComments(ctx context.Context, req ai.CommentRequest) ai.Response
}

// Coordinator owns session-id issuance and reuse, invokes the AI router,
// and persists successful exchanges into the conversation log.
//
// The active-session pointer is written with its TTL only on creation; it is
// not refreshed by message traffic, so a session can expire mid-conversation
// after activeTTL. That behavior is intentional pending product review.
type Coordinator struct {
	store     cache.Store
	log       *Log
	aiClient  AIClient
	activeTTL time.Duration

	now   func() time.Time
	newID func() (string, error)
}

func NewCoordinator(store cache.Store, log *Log, aiClient AIClient, activeTTL time.Duration) *Coordinator {
	return &Coordinator{
		store:     store,
		log:       log,
		aiClient:  aiClient,
		activeTTL: activeTTL,
		now:       time.Now,
		newID:     NewSessionID,
	}
}

// ActiveSession returns the user's current session id, or "" when no
// pointer exists. Absence is a valid state, not an error.
func (c *Coordinator) ActiveSession(ctx context.Context, userID int64) string {
	id, _ := c.store.Get(ctx, activeKey(userID))
	return id
}

// StartNewSession mints a fresh session id and unconditionally overwrites
// the user's active-session pointer with it.
func (c *Coordinator) StartNewSession(ctx context.Context, userID int64) (string, error) {
	id, err := c.newID()
	if err != nil {
		return "", err
	}

	c.store.Set(ctx, activeKey(userID), id, c.activeTTL)
	logger.Info("started new session", "user_id", userID, "session_id", id)
	return id, nil
}

// resolveSession reuses the active pointer when present, otherwise starts a
// new session.
func (c *Coordinator) resolveSession(ctx context.Context, userID int64) (string, error) {
	if id := c.ActiveSession(ctx, userID); strings.TrimSpace(id) != "" {
		return id, nil
	}
	return c.StartNewSession(ctx, userID)
}

// History returns a session's entries. With an empty sessionID it resolves
// the user's active session first; no active session reads as empty history.
func (c *Coordinator) History(ctx context.Context, userID int64, sessionID string) []Entry {
	if sessionID == "" {
		sessionID = c.ActiveSession(ctx, userID)
		if sessionID == "" {
			return nil
		}
	}
	return c.log.Read(ctx, userID, sessionID)
}

// Sessions lists the session ids that still have a live conversation log.
func (c *Coordinator) Sessions(ctx context.Context, userID int64) []string {
	keys := c.store.Keys(ctx, sessionKeyPattern(userID))

	prefix := sessionKey(userID, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids
}

// DeleteSession removes a session's conversation log immediately.
func (c *Coordinator) DeleteSession(ctx context.Context, userID int64, sessionID string) {
	c.log.Delete(ctx, userID, sessionID)
	logger.Info("deleted session", "user_id", userID, "session_id", sessionID)
}

type SendInput struct {
	UserID              int64
	Type                string
	Message             string
	Diagnosis           string
	RecommendedExercise string
}

type SendOutput struct {
	SessionID string
	Response  ai.Response
}

// Send resolves the session, dispatches to the AI backend, and appends the
// exchange to the log when the backend produced usable text. Error-typed
// responses are returned to the caller but never persisted.
func (c *Coordinator) Send(ctx context.Context, in SendInput) (SendOutput, error) {
	sessionID, err := c.resolveSession(ctx, in.UserID)
	if err != nil {
		return SendOutput{}, err
	}

	resp := c.aiClient.Dispatch(ctx, ai.Request{
		UserID:              in.UserID,
		Type:                in.Type,
		Message:             in.Message,
		Diagnosis:           in.Diagnosis,
		RecommendedExercise: in.RecommendedExercise,
	})

	c.persistExchange(ctx, in.UserID, sessionID, in.Message, resp)

	return SendOutput{SessionID: sessionID, Response: resp}, nil
}

type CommentSummaryInput struct {
	UserID   int64
	Comments string
}

// SendCommentSummary mirrors Send for the comment-summary operation. The
// two paths stay separate on purpose: they carry different outbound shapes.
func (c *Coordinator) SendCommentSummary(ctx context.Context, in CommentSummaryInput) (SendOutput, error) {
	sessionID, err := c.resolveSession(ctx, in.UserID)
	if err != nil {
		return SendOutput{}, err
	}

	resp := c.aiClient.SummarizeComments(ctx, ai.CommentRequest{
		UserID:   in.UserID,
		Comments: in.Comments,
	})

	c.persistExchange(ctx, in.UserID, sessionID, in.Comments, resp)

	return SendOutput{SessionID: sessionID, Response: resp}, nil
}

func (c *Coordinator) persistExchange(ctx context.Context, userID int64, sessionID, userText string, resp ai.Response) {
	if resp.IsError() || strings.TrimSpace(resp.Response) == "" {
		return
	}

	now := c.now()
	c.log.Append(ctx, userID, sessionID,
		Entry{Role: RoleUser, Text: userText, Timestamp: now},
		Entry{Role: RoleAssistant, Text: resp.Response, VideoURL: resp.VideoURL, Timestamp: now},
	)
}
