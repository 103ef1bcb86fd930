package availability

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Cache is the get/set-with-TTL store the engine memoizes computed
// payloads into. Entries are derived projections; losing one only costs a
// recompute, so Set failures are non-fatal and Get misses are silent.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Cached payload lifetimes. Monthly payloads tolerate more staleness than
// daily slot lists, which sit directly on the booking path.
const (
	calendarTTL = 5 * time.Minute
	dailyTTL    = time.Minute
)

// cacheKey builds the deterministic key for a computed payload. The staff
// set is order-insensitive (sorted before hashing); the timezone name is
// hashed to keep keys flat.
func cacheKey(kind, menuID string, staffIDs []string, periodKey, tz string) string {
	sorted := make([]string, len(staffIDs))
	copy(sorted, staffIDs)
	sort.Strings(sorted)

	staffSum := sha1.Sum([]byte(strings.Join(sorted, ",")))
	tzSum := sha1.Sum([]byte(tz))

	return fmt.Sprintf("avail:%s:%s:%s:%s:%s",
		kind, menuID,
		hex.EncodeToString(staffSum[:])[:12],
		periodKey,
		hex.EncodeToString(tzSum[:])[:12],
	)
}
