package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	contextCacheSize = 128
	contextCacheTTL  = 30 * time.Minute
)

// contextCache holds flattened contract contexts keyed by content hash, so a
// client editing several sections of the same contract only ships the full
// document once. Entries expire after 30 minutes of the TTL window.
type contextCache struct {
	lru *expirable.LRU[string, string]
}

func newContextCache() *contextCache {
	return &contextCache{
		lru: expirable.NewLRU[string, string](contextCacheSize, nil, contextCacheTTL),
	}
}

// resolve returns the drafting context and cache key for an edit request.
// A request carrying the full contract refreshes the cache; otherwise the
// key is looked up and re-added to extend its lifetime. An unknown key
// degrades to an empty context rather than an error.
func (c *contextCache) resolve(req EditSectionRequest) (context, key string) {
	if req.FullContract != nil {
		key = contractHash(req.FullContract)
		context = contractContext(req.FullContract)
		c.lru.Add(key, context)
		return context, key
	}
	if req.CacheKey != "" {
		if cached, ok := c.lru.Get(req.CacheKey); ok {
			c.lru.Add(req.CacheKey, cached)
			return cached, req.CacheKey
		}
	}
	return "", req.CacheKey
}

// contractHash derives the cache key from the contract content. Identical
// contracts map to the same key regardless of which client sent them.
func contractHash(c *ContractDraft) string {
	payload, _ := json.Marshal(c)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
