package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/furnistore/backend/internal/domain/entity"
	repo "github.com/furnistore/backend/internal/domain/repository"
	"github.com/furnistore/backend/pkg/helpers"
	"github.com/furnistore/backend/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const (
	verifyTokenTTL = 24 * time.Hour
	resetTokenTTL  = time.Hour
	sessionTTL     = 24 * time.Hour
)

func sessionKey(userID string) string { return "user:session:" + userID }
func keyVerifyToken(t string) string  { return "email:verify:token:" + t }
func keyResetToken(t string) string   { return "pwd:reset:token:" + t }

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// UserService handles registration, login, sessions, and profile updates.
// Email delivery is queued on RabbitMQ and sent out of process.
type UserService struct {
	Repo      repo.UserRepository
	JWT       *helpers.JWTManager
	Redis     *redis.Client
	Logger    *logrus.Logger
	Pub       *helpers.RabbitPublisher
	VerifyURL string
	ResetURL  string
}

func NewUserService(repo repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, pub *helpers.RabbitPublisher, verifyURL, resetURL string) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Redis: rdb, Logger: logger, Pub: pub, VerifyURL: verifyURL, ResetURL: resetURL}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a user with the user role and queues a verification email.
// A duplicate email fails with ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:     in.Email,
		Password:  hash,
		Name:      in.Name,
		Role:      entity.RoleUser,
		Addresses: []entity.Address{},
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.sendVerifyEmail(ctx, u)
	return u, nil
}

func (s *UserService) sendVerifyEmail(ctx context.Context, u *entity.User) {
	if s.Redis == nil || s.Pub == nil {
		return
	}
	token, err := randomToken(32)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, keyVerifyToken(token), u.ID, verifyTokenTTL).Err(); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("store verify token failed")
		}
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "verify_email",
		Data: map[string]any{
			"Name":      u.Name,
			"VerifyURL": s.VerifyURL + "?token=" + token,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("queue verify email failed")
	}
}

// VerifyEmail consumes a verification token and flags the user verified.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	if s.Redis == nil || token == "" {
		return ErrInvalidToken
	}
	uid, err := s.Redis.Get(ctx, keyVerifyToken(token)).Result()
	if err != nil || uid == "" {
		return ErrInvalidToken
	}
	if err := s.Repo.MarkVerified(ctx, uid); err != nil {
		return ErrUserNotFound
	}
	_ = s.Redis.Del(ctx, keyVerifyToken(token)).Err()
	return nil
}

// Authenticate validates email/password and returns the user without issuing tokens.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates access/refresh tokens and records a session in Redis.
func (s *UserService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"role":       u.Role,
			"sid":        sid,
			"logged_in":  true,
			"created_at": nowRFC3339(),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, sessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh rotates the session id and both tokens.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	if s.Redis != nil {
		key := sessionKey(u.ID)
		data, rErr := s.Redis.HGetAll(ctx, key).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, "", ErrInvalidCredentials
		}
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return TokenPair{}, "", err
	}
	return pair, u.ID, nil
}

// Logout drops the Redis session; outstanding tokens stop passing the gate.
func (s *UserService) Logout(ctx context.Context, userID string) {
	if s.Redis != nil && userID != "" {
		_ = s.Redis.Del(ctx, sessionKey(userID)).Err()
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name      string
	Addresses []entity.Address
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Addresses != nil {
		u.Addresses = in.Addresses
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"name":       u.Name,
			"updated_at": nowRFC3339(),
		})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return u, nil
}

// ChangePassword verifies the current password before replacing it.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return ErrUserNotFound
	}
	if !helpers.CompareHashAndPassword(u.Password, current) {
		return ErrInvalidCredentials
	}
	hash, err := helpers.HashPassword(next)
	if err != nil {
		return err
	}
	u.Password = hash
	return s.Repo.Update(ctx, u)
}

// ForgotPassword queues a reset email. It succeeds whether or not the email is
// registered so callers cannot probe for accounts.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil
	}
	if s.Redis == nil || s.Pub == nil {
		return nil
	}
	token, err := randomToken(32)
	if err != nil {
		return err
	}
	if err := s.Redis.Set(ctx, keyResetToken(token), u.ID, resetTokenTTL).Err(); err != nil {
		return err
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "forgot_password",
		Data: map[string]any{
			"Name":     u.Name,
			"ResetURL": s.ResetURL + "?token=" + token,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("queue reset email failed")
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the password.
func (s *UserService) ResetPassword(ctx context.Context, token, password string) error {
	if s.Redis == nil || token == "" {
		return ErrInvalidToken
	}
	uid, err := s.Redis.Get(ctx, keyResetToken(token)).Result()
	if err != nil || uid == "" {
		return ErrInvalidToken
	}
	u, err := s.Repo.GetByID(ctx, uid)
	if err != nil || u == nil {
		return ErrUserNotFound
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hash
	if err := s.Repo.Update(ctx, u); err != nil {
		return err
	}
	_ = s.Redis.Del(ctx, keyResetToken(token)).Err()
	// drop any live session so old tokens stop working
	_ = s.Redis.Del(ctx, sessionKey(uid)).Err()
	return nil
}
