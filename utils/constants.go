// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// SlotCachePrefix is the prefix for cached available-slot listings.
const SlotCachePrefix = "slots:"

// SlotCacheTTL keeps slot listings fresh enough that the booking
// uniqueness constraint remains the only real arbiter.
const SlotCacheTTL = 30 * time.Second
