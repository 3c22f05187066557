package middleware

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ItzArrav/nothingroms-admin/internal/config"
	"github.com/ItzArrav/nothingroms-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter *rate.Limiter
	// 记录为 unix 秒，清理协程并发读取
	lastSeen atomic.Int64
}

func (c *client) touch() {
	c.lastSeen.Store(time.Now().Unix())
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	cl := &client{limiter: rate.NewLimiter(i.r, i.b)}
	cl.touch()
	i.ips.Store(ip, cl)

	return cl.limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			c := value.(*client)
			if time.Now().Unix()-c.lastSeen.Load() > int64(3*time.Minute/time.Second) {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// redisRateWindow 固定窗口长度，多实例部署时共享同一配额
const redisRateWindow = time.Minute

// redisAllow 在 Redis 上做固定窗口计数。第二个返回值为 false 表示
// Redis 操作失败，调用方应退回本地限流。
func redisAllow(rc *redis.Client, ip string, cfg config.LimitConfig) (bool, bool) {
	quota := int64(cfg.AuthRPS*redisRateWindow.Seconds()) + int64(cfg.AuthBurst)
	if quota < 1 {
		quota = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	key := service.RedisKey("rate", "auth", ip)
	count, err := rc.Incr(ctx, key).Result()
	if err != nil {
		return false, false
	}
	if count == 1 {
		_ = rc.Expire(ctx, key, redisRateWindow).Err()
	}
	return count <= quota, true
}

// AuthRateLimitMiddleware 登录/注册接口的按 IP 限流中间件。
// Redis 可用时用固定窗口计数跨实例共享配额，否则退回进程内令牌桶。
func AuthRateLimitMiddleware() gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().Limit
		if !cfg.Enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()

		if rc := service.GetRedisClient(); rc != nil {
			if allowed, ok := redisAllow(rc, ip, cfg); ok {
				if !allowed {
					c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
					c.Abort()
					return
				}
				c.Next()
				return
			}
			// Redis 出错时退回本地限流
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(cfg.AuthRPS), cfg.AuthBurst)
		})

		l := limiter.getLimiter(ip)

		// 配置热更新后同步 limit 和 burst
		if l.Limit() != rate.Limit(cfg.AuthRPS) {
			l.SetLimit(rate.Limit(cfg.AuthRPS))
		}
		if l.Burst() != cfg.AuthBurst {
			l.SetBurst(cfg.AuthBurst)
		}

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}
		c.Next()
	}
}
