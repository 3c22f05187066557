package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ItzArrav/nothingroms-admin/internal/model"
	"github.com/ItzArrav/nothingroms-admin/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// 测试内容：验证登录接口成功与错误密码时的返回码与 token 解析。
func TestLoginHandler_SuccessAndUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, gdb := setupTestHandler(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("abc12345"), bcrypt.DefaultCost)
	dev := model.Developer{
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    string(hashed),
		DisplayName: "Alice",
		Role:        "developer",
	}
	if err := gdb.Create(&dev).Error; err != nil {
		t.Fatalf("创建账号失败: %v", err)
	}

	r := gin.New()
	r.POST("/login", h.Login)

	body, _ := json.Marshal(gin.H{"username": "alice", "password": "abc12345"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var okResp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &okResp)
	if okResp.Token == "" {
		t.Fatalf("期望得到 token")
	}
	if _, err := utils.ParseLoginToken(okResp.Token); err != nil {
		t.Fatalf("令牌解析失败: %v", err)
	}

	body2, _ := json.Marshal(gin.H{"username": "alice", "password": "wrongpass1"})
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body2)))
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d body=%s", w2.Code, w2.Body.String())
	}
}

// 测试内容：验证注册请求体缺少必填字段时返回 400。
func TestRegisterHandler_BindError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := setupTestHandler(t)

	r := gin.New()
	r.POST("/register", h.Register)

	body, _ := json.Marshal(gin.H{"username": "alice"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d body=%s", w.Code, w.Body.String())
	}
}

// 测试内容：验证注册成功后返回的账号视图不包含密码字段。
func TestRegisterHandler_NoPasswordInResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := setupTestHandler(t)

	r := gin.New()
	r.POST("/register", h.Register)

	body, _ := json.Marshal(gin.H{
		"username":    "alice",
		"email":       "alice@example.com",
		"password":    "abc12345",
		"displayName": "Alice",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var resp map[string]json.RawMessage
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	var developer map[string]interface{}
	_ = json.Unmarshal(resp["developer"], &developer)
	if _, has := developer["password"]; has {
		t.Fatalf("响应不应包含密码字段: %s", w.Body.String())
	}
	if developer["username"] != "alice" {
		t.Fatalf("非预期账号视图: %v", developer)
	}
}
