package devserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Tokens are "base64(claims).base64(signature)" where claims is
// "<sessionId>:<userId>". The session id lets logout invalidate a token
// without tracking anything else.

func (s *Server) mintToken(sessionId string, userId string) string {
	claims := []byte(sessionId + ":" + userId)
	h := hmac.New(sha256.New, s.signingKey)
	h.Write(claims)
	return base64.URLEncoding.EncodeToString(claims) + "." + base64.URLEncoding.EncodeToString(h.Sum(nil))
}

func (s *Server) parseToken(token string) (sessionId string, userId string, ok bool) {
	// Split token into claims and signature
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return "", "", false
	}
	claims, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", "", false
	}
	signature, err := base64.URLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}

	// Check signature
	h := hmac.New(sha256.New, s.signingKey)
	h.Write(claims)
	if !hmac.Equal(signature, h.Sum(nil)) {
		return "", "", false
	}

	fields := strings.SplitN(string(claims), ":", 2)
	if len(fields) != 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}
