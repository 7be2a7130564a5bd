package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chat-service/internal/logger"
)

// Router dispatches one normalized request to exactly one external AI
// backend and normalizes every failure mode (network error, non-2xx,
// undecodable body) into an error-typed Response. Transport problems never
// escape this layer as Go errors.
type Router struct {
	client   *http.Client
	coachURL string
	videoURL string
}

func NewRouter(coachURL, videoURL string, timeout time.Duration) *Router {
	return &Router{
		client:   &http.Client{Timeout: timeout},
		coachURL: coachURL,
		videoURL: videoURL,
	}
}

// isVideoType reports whether a request type is served by the shared
// video-recommendation/summarization backend.
func isVideoType(t string) bool {
	switch t {
	case TypeRecommend, TypeSummary, TypeCommentSummary:
		return true
	}
	return false
}

// Dispatch routes by the declared request type: recommend/summary/
// comment_summary go to the video backend with the type tag attached,
// everything else goes to the general coach backend.
func (r *Router) Dispatch(ctx context.Context, req Request) Response {
	if isVideoType(req.Type) {
		return r.post(ctx, r.videoURL, videoPayload{
			UserID:    req.UserID,
			Type:      req.Type,
			Message:   req.Message,
			Diagnosis: req.Diagnosis,
		})
	}

	return r.post(ctx, r.coachURL, coachPayload{
		UserID:              req.UserID,
		Message:             req.Message,
		Diagnosis:           req.Diagnosis,
		RecommendedExercise: req.RecommendedExercise,
	})
}

// SummarizeComments is the comment-summary path. It always targets the
// video backend and uses that operation's own outbound field names.
func (r *Router) SummarizeComments(ctx context.Context, req CommentRequest) Response {
	return r.post(ctx, r.videoURL, commentPayload{
		UserID:   req.UserID,
		Type:     TypeCommentSummary,
		Comments: req.Comments,
	})
}

func (r *Router) post(ctx context.Context, url string, payload any) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return r.failure(url, "failed to encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return r.failure(url, "failed to build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return r.failure(url, "AI service is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return r.failure(url, "AI service returned an error",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return r.failure(url, "AI service returned an unreadable response", err)
	}

	return out
}

// failure is the single logging point for upstream problems.
func (r *Router) failure(url, msg string, err error) Response {
	logger.Error("ai backend call failed", "url", url, "reason", msg, "error", err)
	return Response{
		Type:     TypeError,
		Response: msg,
	}
}
