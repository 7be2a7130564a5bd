package chat

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one message in a conversation log. Entries are immutable once
// appended; assistant entries may carry a media reference.
type Entry struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	VideoURL  string    `json:"video_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
