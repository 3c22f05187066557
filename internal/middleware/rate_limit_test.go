package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ItzArrav/nothingroms-admin/internal/config"
	"github.com/ItzArrav/nothingroms-admin/internal/service"

	"github.com/gin-gonic/gin"
)

func rateLimitTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", AuthRateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

// 测试内容：Redis 未启用时回退到进程内限流，超出桶容量返回 429。
func TestAuthRateLimit_LocalFallback(t *testing.T) {
	t.Setenv("NOTHINGROMS_LIMIT_AUTH_RPS", "0.01")
	t.Setenv("NOTHINGROMS_LIMIT_AUTH_BURST", "2")
	config.InitConfig("")

	if rc := service.GetRedisClient(); rc != nil {
		t.Fatalf("Redis 默认应为关闭状态，实际拿到了客户端")
	}

	r := rateLimitTestEngine()

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("第 %d 次请求应在桶容量内放行，实际状态码 %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("超出桶容量的请求应返回 429，实际 %d", w.Code)
	}
}

// 测试内容：关闭限流开关后请求不受限。
func TestAuthRateLimit_Disabled(t *testing.T) {
	t.Setenv("NOTHINGROMS_LIMIT_ENABLED", "false")
	config.InitConfig("")

	r := rateLimitTestEngine()

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("限流关闭时请求不应被拦截，实际状态码 %d", w.Code)
		}
	}
}

// 测试内容：多协程并发获取同一 IP 的 limiter 不发生数据竞争，
// lastSeen 以原子方式刷新。
func TestIPRateLimiter_ConcurrentAccess(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)

	var wg sync.WaitGroup
	ips := []string{"10.0.0.1", "10.0.0.2", "10.0.0.1"}
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				limiter.getLimiter(ips[(g+n)%len(ips)])
			}
		}(g)
	}
	wg.Wait()

	v, ok := limiter.ips.Load("10.0.0.1")
	if !ok {
		t.Fatalf("并发访问后应存在 10.0.0.1 的 limiter 记录")
	}
	cl := v.(*client)

	// 人为把时间戳拨到过去，再次访问应刷新
	cl.lastSeen.Store(time.Now().Add(-10 * time.Minute).Unix())
	limiter.getLimiter("10.0.0.1")
	if time.Now().Unix()-cl.lastSeen.Load() > 5 {
		t.Fatalf("再次访问后 lastSeen 应被刷新，实际值 %d", cl.lastSeen.Load())
	}
}
