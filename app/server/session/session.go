package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vulcano-plugin-repository/app/server/constants"
)

// Manager 负责签发和校验会话 token 。
// token 本身是无状态的 JWT ，注销通过 redis 里的吊销标记实现。
type Manager struct {
	key []byte
	rdb *redis.Client
}

type Session struct {
	Username string
	Role     string
	ID       string // jti ，吊销时使用
	Expires  int64  // Unix second
}

func New(key string, rdb *redis.Client) (*Manager, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &Manager{key: []byte(key), rdb: rdb}, nil
}

// Sign 为一个用户签发新的会话 token
func (m *Manager) Sign(username, role string) (string, *Session, error) {
	s := &Session{
		Username: username,
		Role:     role,
		ID:       uuid.NewString(),
		Expires:  time.Now().Add(constants.SessionDuration).Unix(),
	}

	// 创建声明
	claims := jwt.MapClaims{
		"sub":  s.Username,
		"role": s.Role,
		"jti":  s.ID,
		"exp":  s.Expires,
	}

	// 创建令牌并签名
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return token, s, nil
}

// Parse 校验 token 并检查吊销标记
func (m *Manager) Parse(ctx context.Context, tokenString string) (*Session, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	// 映射字段
	s := &Session{}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		s.Username, _ = claims["sub"].(string)
		s.Role, _ = claims["role"].(string)
		s.ID, _ = claims["jti"].(string)
		if exp, ok := claims["exp"].(float64); ok {
			s.Expires = int64(exp)
		}
	} else {
		return nil, fmt.Errorf("invalid token")
	}
	if s.Username == "" || s.ID == "" {
		return nil, fmt.Errorf("incomplete session claims")
	}

	// 检查吊销标记
	if m.rdb != nil {
		if err := m.rdb.Get(ctx, fmt.Sprintf(constants.CacheKeySessionRevoked, s.ID)).Err(); err == nil {
			return nil, fmt.Errorf("session revoked")
		} else if !errors.Is(err, redis.Nil) {
			// redis 不可用时放行，会话本身仍然经过签名校验
			return s, nil
		}
	}

	return s, nil
}

// Revoke 在 token 剩余有效期内记录吊销标记
func (m *Manager) Revoke(ctx context.Context, s *Session) error {
	if m.rdb == nil {
		return nil
	}

	remaining := time.Until(time.Unix(s.Expires, 0))
	if remaining <= 0 {
		return nil // 已经过期，不需要标记
	}

	return m.rdb.Set(ctx, fmt.Sprintf(constants.CacheKeySessionRevoked, s.ID), 1, remaining).Err()
}
