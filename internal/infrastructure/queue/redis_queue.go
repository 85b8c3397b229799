package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

const importQueueKey = "import:customers"

// RedisQueue is the at-least-once job queue between the upload endpoint and
// the import workers. Messages are JSON-encoded ImportMessages on a Redis
// list: LPush to produce, BRPop to consume.
type RedisQueue struct {
	rdb *redis.Client
	key string
}

func NewRedisQueue(rdb *redis.Client) *RedisQueue {
	return &RedisQueue{rdb: rdb, key: importQueueKey}
}

func (q *RedisQueue) Enqueue(ctx context.Context, msg domain.ImportMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode import message: %w", err)
	}
	return q.rdb.LPush(ctx, q.key, payload).Err()
}

// Dequeue blocks up to the given duration and returns nil when no message
// arrived in time.
func (q *RedisQueue) Dequeue(ctx context.Context, block time.Duration) (*domain.ImportMessage, error) {
	res, err := q.rdb.BRPop(ctx, block, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(res) != 2 {
		return nil, nil
	}

	var msg domain.ImportMessage
	if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
		return nil, fmt.Errorf("decode import message: %w", err)
	}
	return &msg, nil
}
