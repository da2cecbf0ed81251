package utils // package utils provides helpers for session token creation

import (
	"net/http" // cookie construction
	"time"     // expiry computation

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AuthCookieName is the HTTP-only cookie carrying the session token.
const AuthCookieName = "auth_token"

// AuthToken represents a signed HS256 session token along with its expiry.
// The token is delivered in an HTTP-only cookie at registration/login and
// verified statelessly by the auth middleware on every request.
type AuthToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAuthToken builds and signs an HS256 JWT for a user.  The JWT includes
// standard claims: subject (sub), role, expiration (exp) and issued at
// (iat).  ttlHours controls the lifetime; 24 gives the usual 1-day session.
func NewAuthToken(secret string, userID uint64, role string, ttlHours int) (AuthToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AuthToken{}, err
	}
	return AuthToken{Token: signed, Exp: exp}, nil
}

// AuthCookie wraps a signed token in the HTTP-only session cookie.  The
// Secure flag is set in production so the cookie only travels over TLS.
func AuthCookie(tok AuthToken, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Value:    tok.Token,
		Path:     "/",
		Expires:  tok.Exp,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearAuthCookie returns an expired cookie that removes the session from
// the browser on logout.
func ClearAuthCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
