package conversation

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// maxSessions bounds the store. The service is single-user so this is
// mostly a safety cap.
const maxSessions = 128

// Store keeps per-user dialog state with a TTL. An expired entry simply
// disappears, which is how inactive conversations reset to idle: the next
// message finds no state and starts from scratch.
type Store struct {
	sessions *expirable.LRU[int64, *Conversation]
}

// NewStore creates a conversation store whose entries expire after ttl of
// inactivity.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: expirable.NewLRU[int64, *Conversation](maxSessions, nil, ttl),
	}
}

// Get returns the active conversation for the user, if any.
func (s *Store) Get(userID int64) (*Conversation, bool) {
	return s.sessions.Get(userID)
}

// Put stores the conversation, restarting its TTL.
func (s *Store) Put(userID int64, conv *Conversation) {
	s.sessions.Add(userID, conv)
}

// Delete drops the user's conversation.
func (s *Store) Delete(userID int64) {
	s.sessions.Remove(userID)
}
