package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RudraNarayan94/MOK/internal/models"
)

// ResetTokens makes and checks single-use password reset tokens. The
// signature covers the user's current password hash and last login, so
// an outstanding token dies the moment either changes.
type ResetTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewResetTokens(secret string, ttl time.Duration) *ResetTokens {
	return &ResetTokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Make returns the url-safe encoded user id and a time-limited token
// bound to the user's current state.
func (r *ResetTokens) Make(user models.User) (uid, tok string) {
	exp := r.now().Add(r.ttl).Unix()
	uid = EncodeUID(user.ID)
	tok = strconv.FormatInt(exp, 10) + "." + r.signature(user, exp)
	return uid, tok
}

// Check reports whether tok was issued for this user and has not
// expired or been invalidated by a state change.
func (r *ResetTokens) Check(user models.User, tok string) bool {
	expStr, sig, found := strings.Cut(tok, ".")
	if !found {
		return false
	}

	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil || r.now().Unix() > exp {
		return false
	}

	return hmac.Equal([]byte(sig), []byte(r.signature(user, exp)))
}

func (r *ResetTokens) signature(user models.User, exp int64) string {
	var lastLogin int64
	if user.LastLogin.Valid {
		lastLogin = user.LastLogin.Time.Unix()
	}

	mac := hmac.New(sha256.New, r.secret)
	fmt.Fprintf(mac, "%d:%d:%s:%d", user.ID, exp, user.PasswordHash, lastLogin)
	return hex.EncodeToString(mac.Sum(nil))
}

func EncodeUID(id int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

func DecodeUID(uid string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return 0, fmt.Errorf("malformed uid: %w", err)
	}
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed uid: %w", err)
	}
	return id, nil
}
