package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"trendpilot/internal/model"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists users, genres, SNS accounts, schedules, and posts.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func userKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

func genresKey(userID string) string {
	return fmt.Sprintf("user:%s:genres", userID)
}

func snsKey(userID string) string {
	return fmt.Sprintf("user:%s:sns", userID)
}

func postKey(id string) string {
	return fmt.Sprintf("post:%s", id)
}

func userPostsKey(userID string) string {
	return fmt.Sprintf("user:%s:posts", userID)
}

const schedulesKey = "schedules"

// SaveUser stores a user record.
func (s *RedisStore) SaveUser(ctx context.Context, u model.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, userKey(u.ID), b, 0).Err()
}

// GetUser loads a user by ID. A missing user returns (nil, nil).
func (s *RedisStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	b, err := s.rdb.Get(ctx, userKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u model.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveGenre appends a genre to the user's genre list.
func (s *RedisStore) SaveGenre(ctx context.Context, userID string, g model.Genre) error {
	b, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, genresKey(userID), b).Err()
}

// ListGenres returns the user's genres in insertion order.
func (s *RedisStore) ListGenres(ctx context.Context, userID string) ([]model.Genre, error) {
	raw, err := s.rdb.LRange(ctx, genresKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]model.Genre, 0, len(raw))
	for _, r := range raw {
		var g model.Genre
		if err := json.Unmarshal([]byte(r), &g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// SaveSNSAccount stores a platform credential for the user.
func (s *RedisStore) SaveSNSAccount(ctx context.Context, a model.SNSAccount) error {
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, snsKey(a.UserID), a.Platform, b).Err()
}

// ListSNSAccounts returns the user's platform credentials keyed by platform.
func (s *RedisStore) ListSNSAccounts(ctx context.Context, userID string) (map[string]model.SNSAccount, error) {
	raw, err := s.rdb.HGetAll(ctx, snsKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.SNSAccount, len(raw))
	for platform, r := range raw {
		var a model.SNSAccount
		if err := json.Unmarshal([]byte(r), &a); err != nil {
			return nil, err
		}
		out[platform] = a
	}
	return out, nil
}

// SaveSchedule stores a schedule keyed by user and time slot.
func (s *RedisStore) SaveSchedule(ctx context.Context, sc model.Schedule) error {
	b, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	field := fmt.Sprintf("%s:%s", sc.UserID, sc.Time)
	return s.rdb.HSet(ctx, schedulesKey, field, b).Err()
}

// ListSchedules returns every stored schedule. Owner enablement is checked by
// the caller via GetUser.
func (s *RedisStore) ListSchedules(ctx context.Context) ([]model.Schedule, error) {
	raw, err := s.rdb.HGetAll(ctx, schedulesKey).Result()
	if err != nil {
		return nil, err
	}
	out := make([]model.Schedule, 0, len(raw))
	for _, r := range raw {
		var sc model.Schedule
		if err := json.Unmarshal([]byte(r), &sc); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

// SavePosts writes all post rows of one run in a single transaction.
func (s *RedisStore) SavePosts(ctx context.Context, posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, p := range posts {
			b, err := json.Marshal(p)
			if err != nil {
				return err
			}
			pipe.Set(ctx, postKey(p.ID), b, 0)
			pipe.RPush(ctx, userPostsKey(p.UserID), p.ID)
		}
		return nil
	})
	return err
}

// ListPosts returns the user's posts, most recent last.
func (s *RedisStore) ListPosts(ctx context.Context, userID string, limit int) ([]model.Post, error) {
	ids, err := s.rdb.LRange(ctx, userPostsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[len(ids)-limit:]
	}
	out := make([]model.Post, 0, len(ids))
	for _, id := range ids {
		b, err := s.rdb.Get(ctx, postKey(id)).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		var p model.Post
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
