package devserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/emojiboard/client/pkg/structs"
)

const bcryptCost = 10

type registerReq struct {
	Username string `json:"username" validate:"required,min=3,max=20,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResp struct {
	Token string       `json:"token"`
	User  structs.User `json:"user"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var body registerReq
	if !decodeBody(w, r, &body) {
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcryptCost)
	if err != nil {
		returnErr(w, http.StatusInternalServerError, ErrInternal, nil)
		return
	}

	s.mu.Lock()
	if _, taken := s.accounts[body.Email]; taken {
		s.mu.Unlock()
		returnErr(w, http.StatusConflict, ErrEmailTaken, map[string]string{
			"email": "An account with this email already exists.",
		})
		return
	}
	for _, a := range s.accounts {
		if strings.EqualFold(a.user.Username, body.Username) {
			s.mu.Unlock()
			returnErr(w, http.StatusConflict, ErrUsernameTaken, map[string]string{
				"username": "This username is taken.",
			})
			return
		}
	}

	user := structs.User{
		Id:       uuid.NewString(),
		Username: body.Username,
		Email:    body.Email,
	}
	s.accounts[body.Email] = &account{user: user, passwordHash: passwordHash}
	s.users[user.Id] = user

	sessionId := uuid.NewString()
	s.sessions[sessionId] = user.Id
	s.mu.Unlock()

	returnData(w, http.StatusCreated, authResp{
		Token: s.mintToken(sessionId, user.Id),
		User:  user,
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body loginReq
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[body.Email]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(body.Password)) != nil {
		returnErr(w, http.StatusUnauthorized, ErrUnauthorized, map[string]string{
			"email":    "Incorrect email/password.",
			"password": "Incorrect email/password.",
		})
		return
	}

	sessionId := uuid.NewString()
	s.mu.Lock()
	s.sessions[sessionId] = acc.user.Id
	s.mu.Unlock()

	returnData(w, http.StatusOK, authResp{
		Token: s.mintToken(sessionId, acc.user.Id),
		User:  acc.user,
	})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if sessionId, _, ok := s.parseToken(token); ok {
		s.mu.Lock()
		delete(s.sessions, sessionId)
		s.mu.Unlock()
	}
	returnData(w, http.StatusOK, struct {
		Error bool `json:"error"`
	}{false})
}

func (s *Server) requireAuth(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionId, userId, ok := s.parseToken(bearerToken(r))
		if ok {
			s.mu.Lock()
			_, ok = s.sessions[sessionId]
			s.mu.Unlock()
		}
		if !ok {
			returnErr(w, http.StatusUnauthorized, ErrUnauthorized, nil)
			return
		}
		h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyUserId, userId)))
	})
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func requestUserId(r *http.Request) string {
	id, _ := r.Context().Value(ctxKeyUserId).(string)
	return id
}
