package utils

import (
	"eventsite/common"
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"sync"
	"time"
)

type AccessToken struct {
	RequestTime int64  `json:"request_time"`
	ServiceName string `json:"service_name"`
}

var (
	secretMu sync.RWMutex
	secret   []byte
)

const TokenExpire = 60 * time.Second
const TokenNameInHeader = "Access-Token"

// SetTokenSecret 设置签名密钥，出站请求与管理接口共用
func SetTokenSecret(s string) {
	secretMu.Lock()
	secret = []byte(s)
	secretMu.Unlock()
}

func tokenSecret() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	return secret
}

func NewAccessToken(serviceName string) *AccessToken {
	return &AccessToken{ServiceName: serviceName, RequestTime: time.Now().Unix()}
}

// ValidateToken 检测token是否有效、过期、字段信息等
func (at *AccessToken) ValidateToken(ctx *gin.Context, tokenString string) bool {
	key := tokenSecret()
	if len(key) == 0 || len(tokenString) == 0 {
		return false
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (i interface{}, e error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		// 无法解析token
		common.Log.Errorf("Couldn't parse token: %s", err.Error())
		return false
	}
	claim, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		common.Log.Errorln("Invalidate Token")
		return false
	}
	requestTime, ok := claim["request_time"].(float64)
	if !ok {
		return false
	}
	// 验证时间戳
	age := time.Now().Unix() - int64(requestTime)
	if age < 0 || age >= int64(TokenExpire/time.Second) {
		return false
	}
	at.RequestTime = int64(requestTime)
	at.ServiceName, _ = claim["service_name"].(string)
	ctx.Set("service_name", at.ServiceName)
	return true
}

// GenerateToken 生成token返回tokenString用于设置http header
func (at *AccessToken) GenerateToken() (string, error) {
	key := tokenSecret()
	if len(key) == 0 {
		return "", errors.New("token secret is not configured")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"request_time": at.RequestTime,
		"service_name": at.ServiceName,
	})
	s, err := token.SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return s, nil
}
