package session

// Durable storage keys. They match the names used by the web client so a
// shared data directory is readable by both.
const (
	KeyIdentity     = "fitiplus_user"
	KeyToken        = "fitiplus_token"
	KeyRefreshToken = "fitiplus_refresh_token"
)

var allKeys = []string{KeyIdentity, KeyToken, KeyRefreshToken}
