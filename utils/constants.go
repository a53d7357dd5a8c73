package utils

import "time"

// RegSessionPrefix is the prefix used for registration-session cache keys.
const RegSessionPrefix = "regsession:"

// RegSessionTTL is how long an idle wizard session survives before expiry.
const RegSessionTTL = 30 * time.Minute

// CatalogCachePrefix is the prefix used for catalog snapshot cache keys.
const CatalogCachePrefix = "catalog:"

// CatalogCacheTTL is the time-to-live for cached catalog snapshots.
const CatalogCacheTTL = 5 * time.Minute
