package ai

// Request types understood by the router. Anything else falls through to the
// general coach backend.
const (
	TypeRecommend      = "recommend"
	TypeSummary        = "summary"
	TypeCommentSummary = "comment_summary"
	TypeError          = "error"
)

// Request is the normalized internal request handed to the router.
type Request struct {
	UserID              int64
	Type                string
	Message             string
	Diagnosis           string
	RecommendedExercise string
}

// CommentRequest is the comment-summary variant. It is deliberately a
// separate type with its own outbound field names, not a Request in disguise.
type CommentRequest struct {
	UserID   int64
	Comments string
}

// Response is the uniform result shape for every backend call. Failures are
// represented with Type == TypeError, never as an error return.
type Response struct {
	Type       string `json:"type"`
	Response   string `json:"response"`
	VideoURL   string `json:"video_url,omitempty"`
	VideoTitle string `json:"video_title,omitempty"`
}

// IsError reports whether the response represents a failed exchange.
func (r Response) IsError() bool {
	return r.Type == TypeError
}

// Outbound payloads follow each backend's contract. The video backend is
// shared across three logical operations, so its payload carries the type tag.

type coachPayload struct {
	UserID              int64  `json:"user_id"`
	Message             string `json:"message"`
	Diagnosis           string `json:"diagnosis,omitempty"`
	RecommendedExercise string `json:"recommended_exercise,omitempty"`
}

type videoPayload struct {
	UserID    int64  `json:"user_id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Diagnosis string `json:"diagnosis,omitempty"`
}

type commentPayload struct {
	UserID   int64  `json:"user_id"`
	Type     string `json:"type"`
	Comments string `json:"comments"`
}
