package chat

import "fmt"

// Cache key layout:
//
//	active:{userId}            -> current session id (TTL 1h, set on creation only)
//	session:{userId}:{sessionId} -> serialized conversation log (TTL 24h, sliding)
func activeKey(userID int64) string {
	return fmt.Sprintf("active:%d", userID)
}

func sessionKey(userID int64, sessionID string) string {
	return fmt.Sprintf("session:%d:%s", userID, sessionID)
}

func sessionKeyPattern(userID int64) string {
	return fmt.Sprintf("session:%d:*", userID)
}
