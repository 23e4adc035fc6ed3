package store

import "net/url"

// SanitizeForLog returns dsn with any password component masked, so that
// connection strings can be logged at startup without leaking credentials.
func SanitizeForLog(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}

	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword(u.User.Username(), "redacted")
	}

	return u.String()
}
