package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sisters-restaurant/go-backend/internal/cfg"
	"github.com/sisters-restaurant/go-backend/internal/domain"
	"github.com/sisters-restaurant/go-backend/internal/repository/redis/converter"
	"github.com/sisters-restaurant/go-backend/pkg/clients"
	"github.com/sisters-restaurant/go-backend/pkg/e"
	"github.com/sisters-restaurant/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo кэширует списки позиций меню: ключ "menu:all" для полного
// списка и "menu:<category>" для каждого раздела.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.MenuItemConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.MenuItemConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetMenu возвращает закэшированный список позиций по ключу.
// Промах кэша — (nil, nil).
func (c *CacheRepo) GetMenu(ctx context.Context, key string) ([]domain.MenuItem, error) {
	data, err := c.client.Client.Get(ctx, c.menuKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}
		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.MenuItemRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), c.menuKey(key)).Err(); err != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // повреждённая запись равнозначна промаху
	}

	return c.conv.ToArrEntity(models), nil
}

// SetMenu кэширует список позиций с заданным TTL.
// Ошибки сериализации/записи логируются и не возвращаются.
func (c *CacheRepo) SetMenu(ctx context.Context, key string, items []domain.MenuItem) error {
	data, err := json.Marshal(c.conv.ToArrRedisModel(items))
	if err != nil {
		c.logger.Warnf("Failed to marshal menu for caching (key: %s): %v", key, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, c.menuKey(key), data, c.cfg.MenuTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// InvalidateMenu удаляет все ключи меню после записи.
func (c *CacheRepo) InvalidateMenu(ctx context.Context) error {
	keys := make([]string, 0, len(domain.Categories)+1)
	keys = append(keys, c.menuKey("all"))
	for _, category := range domain.Categories {
		keys = append(keys, c.menuKey(string(category)))
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// menuKey возвращает Redis-ключ для списка позиций.
func (c *CacheRepo) menuKey(key string) string {
	return "menu:" + key
}
