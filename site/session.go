package site

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sessions are a signed cookie holding the user id, so logging a browser in
// writes nothing to the database and user rows stay immutable after
// registration.

const sessionCookieName = "inkwell_session"
const sessionDuration = 7 * 24 * time.Hour

type sessionManager struct {
	key []byte
}

func newSessionManager(secretKey string) sessionManager {
	return sessionManager{key: []byte(secretKey)}
}

func (s sessionManager) signToken(userID uint, expires time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": expires.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func (s sessionManager) parseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid session token")
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, errors.New("session token missing user id")
	}
	return uint(id), nil
}

// establish logs the browser in as the given user.
func (s sessionManager) establish(w http.ResponseWriter, userID uint) error {
	token, err := s.signToken(userID, time.Now().Add(sessionDuration))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(sessionDuration.Seconds()),
	})
	return nil
}

// clear drops the session cookie. Safe to call with no session active.
func (s sessionManager) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// userID extracts the signed-in user id from the request cookie, if any.
func (s sessionManager) userID(r *http.Request) (uint, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}
	id, err := s.parseToken(cookie.Value)
	if err != nil {
		return 0, false
	}
	return id, true
}
