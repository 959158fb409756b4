// Package cache реализует кеш приложения поверх Redis: кеширование
// каталога стран и хранение недавних поисковых запросов пользователей.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andreyzhukovv/country-explorer/internal/config"
)

// SearchHistoryLimit — максимальное число хранимых поисковых запросов
// на пользователя.
const SearchHistoryLimit = 5

// Cache — обёртка над клиентом Redis.
type Cache struct {
	Db *redis.Client
}

// InitServer подключается к Redis и проверяет соединение ping-ом.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Cache, error) {
	const op = "cache.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Cache{Db: db}, nil
}

// Get пытается получить значение из кеша по ключу.
// Возвращает false без ошибки, если ключа нет.
func (c *Cache) Get(key string, result any) (bool, error) {
	const op = "cache.Get"
	val, err := c.Db.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	err = json.Unmarshal([]byte(val), result)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сохраняет значение в кеш с временем жизни.
func (c *Cache) Set(key string, value any, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Db.Set(context.Background(), key, jsonData, expiration).Err()
}

// Invalidate удаляет значение из кеша по ключу.
func (c *Cache) Invalidate(key string) error {
	return c.Db.Del(context.Background(), key).Err()
}

func searchHistoryKey(username string) string {
	return fmt.Sprintf("search_history:%s", username)
}

// PushSearch записывает поисковый запрос пользователя в начало его
// истории. Повтор уже сохранённого запроса поднимает его наверх,
// история обрезается до SearchHistoryLimit записей.
func (c *Cache) PushSearch(username, term string) error {
	const op = "cache.PushSearch"
	ctx := context.Background()
	key := searchHistoryKey(username)

	pipe := c.Db.TxPipeline()
	pipe.LRem(ctx, key, 0, term)
	pipe.LPush(ctx, key, term)
	pipe.LTrim(ctx, key, 0, SearchHistoryLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RecentSearches возвращает историю поисковых запросов пользователя,
// от самого свежего к самому старому.
func (c *Cache) RecentSearches(username string) ([]string, error) {
	const op = "cache.RecentSearches"
	terms, err := c.Db.LRange(context.Background(), searchHistoryKey(username), 0, SearchHistoryLimit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return terms, nil
}
