package cookie

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"time"

	"booking-portal/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	TokenCookieName    = "userToken"
	UserInfoCookieName = "userInfo"

	nonceSize = 24
)

var ErrMalformedCookie = errors.New("malformed cookie value")

// Codec seals cookie values with NaCl secretbox so the bearer token never
// travels to the browser in readable form.
type Codec struct {
	key [32]byte
}

func NewCodec(secret string) *Codec {
	return &Codec{key: sha256.Sum256([]byte(secret))}
}

func (c *Codec) Seal(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	sealed := secretbox.Seal(nonce[:], []byte(plain), &nonce, &c.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *Codec) Open(value string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrMalformedCookie
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return "", ErrMalformedCookie
	}
	return string(plain), nil
}

// SetSessionCookies writes both session values. They are always written and
// cleared together.
func SetSessionCookies(c *gin.Context, cfg config.CookieConfig, codec *Codec, token, userInfo string, maxAge time.Duration) error {
	sealedToken, err := codec.Seal(token)
	if err != nil {
		return err
	}
	sealedInfo, err := codec.Seal(userInfo)
	if err != nil {
		return err
	}

	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(TokenCookieName, sealedToken, int(maxAge.Seconds()), "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(UserInfoCookieName, sealedInfo, int(maxAge.Seconds()), "/", cfg.Domain, cfg.Secure, true)
	return nil
}

func ClearSessionCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(TokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(UserInfoCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

// GetSessionCookies returns the opened values; missing or tampered cookies
// come back empty.
func GetSessionCookies(c *gin.Context, codec *Codec) (token, userInfo string) {
	if raw, err := c.Cookie(TokenCookieName); err == nil && raw != "" {
		token, _ = codec.Open(raw)
	}
	if raw, err := c.Cookie(UserInfoCookieName); err == nil && raw != "" {
		userInfo, _ = codec.Open(raw)
	}
	return token, userInfo
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
