package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/linskybing/oasis/internal/logging"
	"github.com/redis/go-redis/v9"
)

// RedisNotifier queues notices per user in a redis list and fans them out
// over pub/sub for connected websocket clients.
type RedisNotifier struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisNotifier(rdb *redis.Client, ttl time.Duration) *RedisNotifier {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisNotifier{rdb: rdb, ttl: ttl}
}

// NewRedisClient parses url and pings the server.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

func queueKey(userID uint) string {
	return fmt.Sprintf("notices:%d", userID)
}

func channelName(userID uint) string {
	return fmt.Sprintf("notices:%d:live", userID)
}

func (r *RedisNotifier) Notify(ctx context.Context, userID uint, n Notice) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	key := queueKey(userID)
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		pipe.Expire(ctx, key, r.ttl)
		pipe.Publish(ctx, channelName(userID), payload)
		return nil
	})
	return err
}

func (r *RedisNotifier) Drain(ctx context.Context, userID uint) ([]Notice, error) {
	key := queueKey(userID)
	var items *redis.StringSliceCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]Notice, 0, len(items.Val()))
	for _, raw := range items.Val() {
		var n Notice
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			logging.L().WithError(err).Warn("dropping malformed notice")
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *RedisNotifier) Subscribe(ctx context.Context, userID uint) (<-chan Notice, func(), error) {
	sub := r.rdb.Subscribe(ctx, channelName(userID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	out := make(chan Notice, 16)
	done := make(chan struct{})
	go func() {
		defer close(out)
		msgs := sub.Channel()
		for {
			select {
			case <-done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var n Notice
				if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
					continue
				}
				select {
				case out <- n:
				default:
				}
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			_ = sub.Close()
		})
	}
	return out, cancel, nil
}
