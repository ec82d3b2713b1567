package telegram

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	defaultMessagesPerMin = 20

	// Telegram delivers messages one sender at a time, so a handful of
	// tracked senders is plenty even counting strangers we silently drop.
	maxTrackedSenders = 64

	senderTTL = 5 * time.Minute
)

// senderGuard rate limits incoming messages per sender. Buckets expire
// after senderTTL of silence so the map never grows unbounded.
type senderGuard struct {
	limiters *expirable.LRU[int64, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newSenderGuard(messagesPerMin int) *senderGuard {
	if messagesPerMin <= 0 {
		messagesPerMin = defaultMessagesPerMin
	}
	burst := messagesPerMin / 4
	if burst < 1 {
		burst = 1
	}
	return &senderGuard{
		limiters: expirable.NewLRU[int64, *rate.Limiter](maxTrackedSenders, nil, senderTTL),
		rate:     rate.Limit(float64(messagesPerMin) / 60.0),
		burst:    burst,
	}
}

// allow reports whether a message from senderID may be processed now.
func (g *senderGuard) allow(senderID int64) bool {
	limiter, ok := g.limiters.Get(senderID)
	if !ok {
		limiter = rate.NewLimiter(g.rate, g.burst)
		g.limiters.Add(senderID, limiter)
	}
	return limiter.Allow()
}

// userLocks hands out one mutex per sender so pipeline passes for the
// same user never interleave: a second message must see the conversation
// state the first one left behind. Only authorized senders reach this
// point, so the map stays as small as the user list.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: map[int64]*sync.Mutex{}}
}

func (u *userLocks) forUser(senderID int64) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.locks[senderID]
	if !ok {
		l = &sync.Mutex{}
		u.locks[senderID] = l
	}
	return l
}
