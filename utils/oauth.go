package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Amitp2255/EchoMind/config"
)

// GoogleUserInfo Google ID token验证后得到的用户信息
type GoogleUserInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Aud     string `json:"aud"`
}

var googleClientID string

var oauthHTTPClient = &http.Client{Timeout: 10 * time.Second}

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

func init() {
	config, err := config.LoadConfig(".")
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	googleClientID = config.GoogleClientID
}

// VerifyGoogleIDToken 通过Google tokeninfo接口验证ID token并返回用户信息
func VerifyGoogleIDToken(idToken string) (*GoogleUserInfo, error) {
	resp, err := oauthHTTPClient.Get(googleTokenInfoURL + "?id_token=" + url.QueryEscape(idToken))
	if err != nil {
		return nil, fmt.Errorf("请求Google验证接口失败: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google ID token验证失败: %d", resp.StatusCode)
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("解析Google验证响应失败: %v", err)
	}

	// 校验token确实签发给本应用
	if googleClientID != "" && info.Aud != googleClientID {
		return nil, fmt.Errorf("Google ID token受众不匹配")
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("Google ID token缺少用户标识")
	}

	return &info, nil
}
