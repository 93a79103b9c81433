package headers

import (
	"context"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/sdkpipe/sdkpipe/httpsdk"
)

// JWTConfig configures the SignedJWT header source.
type JWTConfig struct {
	// Secret is the HMAC signing key (required).
	Secret string
	// Method is the signing algorithm: HS256 (default), HS384, or HS512.
	Method string
	// Issuer is the "iss" claim (optional).
	Issuer string
	// Subject is the "sub" claim (optional).
	Subject string
	// Audience is the "aud" claim (optional).
	Audience []string
	// TTL is the token lifetime (default: 5m).
	TTL time.Duration
}

// applyDefaults fills in zero-value fields.
func (c *JWTConfig) applyDefaults() {
	if c.Method == "" {
		c.Method = "HS256"
	}
	if c.TTL == 0 {
		c.TTL = 5 * time.Minute
	}
}

func (c *JWTConfig) signingMethod() gojwt.SigningMethod {
	switch c.Method {
	case "HS384":
		return gojwt.SigningMethodHS384
	case "HS512":
		return gojwt.SigningMethodHS512
	default:
		return gojwt.SigningMethodHS256
	}
}

// SignedJWT returns a source that mints a freshly signed JWT per call and
// sends it as a bearer Authorization header. Signing uses HMAC; asymmetric
// schemes belong in a caller-supplied BearerFunc.
func SignedJWT(cfg JWTConfig) httpsdk.HeaderSource {
	cfg.applyDefaults()
	return BearerFunc(func(context.Context) (string, error) {
		if cfg.Secret == "" {
			return "", httpsdk.NewConfigError("jwt header source: secret is required")
		}
		switch cfg.Method {
		case "HS256", "HS384", "HS512":
		default:
			return "", httpsdk.NewConfigError("jwt header source: unsupported signing method " + cfg.Method)
		}

		now := time.Now()
		claims := gojwt.MapClaims{
			"iat": now.Unix(),
			"exp": now.Add(cfg.TTL).Unix(),
		}
		if cfg.Issuer != "" {
			claims["iss"] = cfg.Issuer
		}
		if cfg.Subject != "" {
			claims["sub"] = cfg.Subject
		}
		if len(cfg.Audience) > 0 {
			claims["aud"] = cfg.Audience
		}

		token, err := gojwt.NewWithClaims(cfg.signingMethod(), claims).SignedString([]byte(cfg.Secret))
		if err != nil {
			return "", httpsdk.NewConfigError("jwt header source: sign: " + err.Error())
		}
		return token, nil
	})
}
