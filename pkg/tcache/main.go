package tcache

import (
	"sync"
	"time"
)

// temporary cache for rendered grid fragments: kv pairs that expire
// after a set amount of time. writers must invalidate explicitly on
// deletion; expiry only bounds staleness for out-of-band changes
// (e.g. the sync process rewriting a tree).

type tCacheVal struct {
	value string
	expireAt time.Time
}

type TCache struct {
	defaultTimeout time.Duration
	lock sync.Mutex
	val map[string]tCacheVal
}

func NewTCache(d time.Duration) *TCache {
	return &TCache{
		defaultTimeout: d,
		val: make(map[string]tCacheVal),
	}
}

func (tc *TCache) Register(key string, value string, d time.Duration) {
	if d <= 0 { d = tc.defaultTimeout }
	tc.lock.Lock()
	defer tc.lock.Unlock()
	tc.val[key] = tCacheVal{
		value: value,
		expireAt: time.Now().Add(d),
	}
}

func (tc *TCache) Get(key string) (string, bool) {
	tc.lock.Lock()
	defer tc.lock.Unlock()
	v, ok := tc.val[key]
	if !ok { return "", false }
	if time.Now().After(v.expireAt) {
		delete(tc.val, key)
		return "", false
	}
	return v.value, true
}

func (tc *TCache) Delete(key string) {
	tc.lock.Lock()
	defer tc.lock.Unlock()
	delete(tc.val, key)
}
