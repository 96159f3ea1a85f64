package cache

import "fmt"

// RateLimitKey returns the counter key for a rate-limited client.
func RateLimitKey(client string) string {
	return fmt.Sprintf("ratelimit:%s", client)
}
