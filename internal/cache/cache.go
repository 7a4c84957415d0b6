package cache

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/lib/pq"
)

// CachedResult 缓存的抓取结果
type CachedResult struct {
	Key       string          `json:"key"`    // 主页缓存键
	Source    string          `json:"source"` // 数据源，如 "linkedin_public"
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Cache 缓存接口
type Cache interface {
	Get(ctx context.Context, key string) (*CachedResult, error)
	Set(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// FileCache 基于文件的缓存实现
type FileCache struct {
	dir    string
	source string
	mu     sync.RWMutex
}

// NewFileCache 创建文件缓存
func NewFileCache(dir, source string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FileCache{dir: dir, source: source}, nil
}

// cacheFile URL不能直接做文件名，取其哈希
func (c *FileCache) cacheFile(key string) string {
	sum := sha1.Sum([]byte(key))
	return filepath.Join(c.dir, c.source+"_"+hex.EncodeToString(sum[:])+".json")
}

// Get 获取缓存
func (c *FileCache) Get(ctx context.Context, key string) (*CachedResult, error) {
	c.mu.RLock()
	data, err := os.ReadFile(c.cacheFile(key))
	c.mu.RUnlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // 缓存不存在
		}
		return nil, err
	}

	var result CachedResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	if time.Now().After(result.ExpiresAt) {
		if err := c.Delete(ctx, key); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &result, nil
}

// Set 设置缓存
func (c *FileCache) Set(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	result := CachedResult{
		Key:       key,
		Source:    c.source,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.cacheFile(key), jsonData, 0644)
}

// Delete 删除缓存
func (c *FileCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.Remove(c.cacheFile(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryCache 内存缓存实现（用于测试或未配置持久缓存时）
type MemoryCache struct {
	data   map[string]*CachedResult
	source string
	mu     sync.RWMutex
}

// NewMemoryCache 创建内存缓存
func NewMemoryCache(source string) *MemoryCache {
	return &MemoryCache{
		data:   make(map[string]*CachedResult),
		source: source,
	}
}

// Get 获取缓存
func (c *MemoryCache) Get(ctx context.Context, key string) (*CachedResult, error) {
	c.mu.RLock()
	result, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if time.Now().After(result.ExpiresAt) {
		return nil, c.Delete(ctx, key)
	}

	return result, nil
}

// Set 设置缓存
func (c *MemoryCache) Set(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.data[key] = &CachedResult{
		Key:       key,
		Source:    c.source,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	return nil
}

// Delete 删除缓存
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
	return nil
}

// PostgresCache PostgreSQL缓存实现
type PostgresCache struct {
	db     *sql.DB
	source string
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS scrape_cache (
	source     TEXT        NOT NULL,
	cache_key  TEXT        NOT NULL,
	data       JSONB       NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (source, cache_key)
)`

// NewPostgresCache 创建PostgreSQL缓存，必要时建表
func NewPostgresCache(ctx context.Context, databaseURL, source string) (*PostgresCache, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create scrape_cache table: %w", err)
	}

	c := &PostgresCache{db: db, source: source}
	if _, err := c.CleanExpired(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to clean expired cache entries: %w", err)
	}
	return c, nil
}

// Get 获取缓存
func (c *PostgresCache) Get(ctx context.Context, key string) (*CachedResult, error) {
	query := `
	SELECT cache_key, source, data, created_at, expires_at
	FROM scrape_cache
	WHERE source = $1 AND cache_key = $2 AND expires_at > NOW()
	`

	var result CachedResult
	var dataJSON []byte

	err := c.db.QueryRowContext(ctx, query, c.source, key).Scan(
		&result.Key,
		&result.Source,
		&dataJSON,
		&result.CreatedAt,
		&result.ExpiresAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // 缓存不存在或已过期
	}
	if err != nil {
		return nil, err
	}

	result.Data = json.RawMessage(dataJSON)
	return &result, nil
}

// Set 设置缓存
func (c *PostgresCache) Set(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error {
	expiresAt := time.Now().Add(ttl)

	query := `
	INSERT INTO scrape_cache (source, cache_key, data, created_at, expires_at)
	VALUES ($1, $2, $3, NOW(), $4)
	ON CONFLICT (source, cache_key)
	DO UPDATE SET data = $3, created_at = NOW(), expires_at = $4
	`

	_, err := c.db.ExecContext(ctx, query, c.source, key, []byte(data), expiresAt)
	return err
}

// Delete 删除缓存
func (c *PostgresCache) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM scrape_cache WHERE source = $1 AND cache_key = $2`
	_, err := c.db.ExecContext(ctx, query, c.source, key)
	return err
}

// Close 关闭数据库连接
func (c *PostgresCache) Close() error {
	return c.db.Close()
}

// CleanExpired 清理过期缓存
func (c *PostgresCache) CleanExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM scrape_cache WHERE expires_at < NOW()`
	result, err := c.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
