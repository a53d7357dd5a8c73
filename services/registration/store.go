package registration

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"buildlanka/models"
	"buildlanka/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionStore persists open wizard sessions between requests. A session
// that is absent from the store is a closed wizard.
type SessionStore interface {
	Save(ctx context.Context, sess *models.PartnerRegistrationSession) error
	Get(ctx context.Context, sessionID string) (*models.PartnerRegistrationSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON blobs with a rolling TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore returns a store over the given client with the
// default session TTL.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: utils.RegSessionTTL}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return utils.RegSessionPrefix + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *models.PartnerRegistrationSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		utils.GetLogger().Error("Failed to marshal registration session", zap.Error(err))
		return err
	}
	if err := s.Client.Set(ctx, s.key(sess.SessionID), data, s.TTL).Err(); err != nil {
		utils.GetLogger().Error("Failed to save registration session",
			zap.String("sessionID", sess.SessionID), zap.Error(err))
		return err
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.PartnerRegistrationSession, error) {
	data, err := s.Client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		utils.GetLogger().Error("Failed to get registration session",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}
	var sess models.PartnerRegistrationSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		utils.GetLogger().Error("Failed to unmarshal registration session",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		utils.GetLogger().Error("Failed to delete registration session",
			zap.String("sessionID", sessionID), zap.Error(err))
		return err
	}
	return nil
}

// MemorySessionStore is an in-process store used by tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.PartnerRegistrationSession
}

// NewMemorySessionStore returns an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[string]*models.PartnerRegistrationSession{}}
}

func (s *MemorySessionStore) Save(ctx context.Context, sess *models.PartnerRegistrationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sessions[sess.SessionID] = &copied
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.PartnerRegistrationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *sess
	return &copied, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
