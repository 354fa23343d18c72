package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pezeshkyar/checkup_backend/config"
	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entsession "github.com/pezeshkyar/checkup_backend/internal/repo/usersession"
	entuser "github.com/pezeshkyar/checkup_backend/internal/repo/user"
	"github.com/pezeshkyar/checkup_backend/pkg/authorize"
	"github.com/pezeshkyar/checkup_backend/pkg/crypto"
	"github.com/pezeshkyar/checkup_backend/pkg/email"
	"github.com/pezeshkyar/checkup_backend/pkg/jibit"
	pasetotoken "github.com/pezeshkyar/checkup_backend/pkg/paseto"
	"github.com/pezeshkyar/checkup_backend/pkg/phone"
	"github.com/pezeshkyar/checkup_backend/pkg/sms"
	"github.com/pezeshkyar/checkup_backend/pkg/util/otp"
)

const (
	maxOTPAttempts = 5
)

// redisKeyOTP returns the Redis key for the OTP hash associated with a phone.
func redisKeyOTP(phone string) string { return "otp:" + phone }

// redisKeyOTPAttempts returns the Redis key for OTP attempt counter.
func redisKeyOTPAttempts(phone string) string { return "otp:attempts:" + phone }

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reNationalCode = regexp.MustCompile(`^\d{10}$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RequestOTPRequest struct {
	Phone string
}

type VerifyOTPRequest struct {
	Phone     string
	Code      string
	FirstName string // used only when the account is created on first verify
	LastName  string
}

type VerifyIdentityRequest struct {
	NationalCode string
	BirthDate    string // yyyyMMdd, Jalali
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
	NewUser      bool  // account was created during this verification
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// RequestOTP sends a one-time code to the phone. Works for both new and
	// existing accounts; the account is created on first successful verify.
	RequestOTP(ctx context.Context, req RequestOTPRequest) error

	// VerifyOTP checks the code and opens a session. Creates the user record
	// when the phone has never been seen before.
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthTokens, error)

	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// VerifyIdentity matches the national code against the phone holder via
	// the civil registry and marks the account identity-approved.
	VerifyIdentity(ctx context.Context, userID uuid.UUID, req VerifyIdentityRequest) (*repo.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	sms    *sms.Client
	mail   *email.Client
	jibit  *jibit.Client
	auth   authorize.IAuthorization
	paseto *pasetotoken.Manager
	cfg    *config.Config
	encKey []byte // AES-256 key for national_code encryption
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	smsCli *sms.Client,
	mailCli *email.Client,
	jibitCli *jibit.Client,
	authz authorize.IAuthorization,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("auth service: invalid encryption key: %w", err)
	}
	return &authService{
		db:     db,
		rdb:    rdb,
		sms:    smsCli,
		mail:   mailCli,
		jibit:  jibitCli,
		auth:   authz,
		paseto: paseto,
		cfg:    cfg,
		encKey: encKey,
	}, nil
}

// ---------------------------------------------------------------------------
// RequestOTP
// ---------------------------------------------------------------------------

func (s *authService) RequestOTP(ctx context.Context, req RequestOTPRequest) error {
	normalized, err := phone.Normalize(strings.TrimSpace(req.Phone))
	if err != nil {
		return ErrInvalidPhone
	}

	// Refuse new codes for suspended accounts
	u, err := s.db.User.Query().
		Where(entuser.Phone(normalized), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("find user: %w", err)
	}
	if u != nil && u.Status == "SUSPENDED" {
		return ErrAccountSuspended
	}

	return s.sendOTP(ctx, normalized)
}

// ---------------------------------------------------------------------------
// VerifyOTP
// ---------------------------------------------------------------------------

func (s *authService) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthTokens, error) {
	normalized, err := phone.Normalize(strings.TrimSpace(req.Phone))
	if err != nil {
		return nil, ErrInvalidPhone
	}
	req.Code = strings.TrimSpace(req.Code)

	// Get stored OTP hash
	otpHash, err := s.rdb.Get(ctx, redisKeyOTP(normalized)).Result()
	if err == redis.Nil {
		return nil, ErrOTPExpired
	}
	if err != nil {
		return nil, fmt.Errorf("redis get otp: %w", err)
	}

	// Check attempt count
	attempts, _ := s.rdb.Get(ctx, redisKeyOTPAttempts(normalized)).Int()
	if attempts >= maxOTPAttempts {
		return nil, ErrOTPMaxAttempts
	}

	// Verify code
	if err := otp.Verify(otpHash, req.Code); err != nil {
		s.rdb.Incr(ctx, redisKeyOTPAttempts(normalized))
		return nil, ErrOTPInvalid
	}

	// Clean up OTP keys
	s.rdb.Del(ctx, redisKeyOTP(normalized), redisKeyOTPAttempts(normalized))

	// Find or create the account
	newUser := false
	u, err := s.db.User.Query().
		Where(entuser.Phone(normalized), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("find user: %w", err)
		}

		c := s.db.User.Create().
			SetPhone(normalized).
			SetPhoneVerified(true).
			SetStatus("ACTIVE")
		if req.FirstName != "" {
			c = c.SetFirstName(req.FirstName)
		}
		if req.LastName != "" {
			c = c.SetLastName(req.LastName)
		}

		u, err = c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		newUser = true

		if err := authorize.AssignUserSelfRole(ctx, s.auth, u.ID.String()); err != nil {
			slog.Error("failed to assign user:self role", "user_id", u.ID, "error", err)
		}
	}

	if u.Status == "SUSPENDED" {
		return nil, ErrAccountSuspended
	}

	now := time.Now()
	u, err = s.db.User.UpdateOne(u).
		SetPhoneVerified(true).
		SetLastLoginAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	tokens, err := s.createSession(ctx, u)
	if err != nil {
		return nil, err
	}
	tokens.NewUser = newUser
	return tokens, nil
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	// Check session exists
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired, not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}

	// Mark revoked in DB (audit, best-effort)
	now := time.Now()
	if _, err := s.db.UserSession.Update().
		Where(entsession.SessionID(sessionID.String())).
		SetRevokedAt(now).
		Save(ctx); err != nil {
		slog.Warn("logout: session audit update failed", "session_id", sessionID, "error", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// VerifyIdentity
// ---------------------------------------------------------------------------

func (s *authService) VerifyIdentity(ctx context.Context, userID uuid.UUID, req VerifyIdentityRequest) (*repo.User, error) {
	req.NationalCode = strings.TrimSpace(req.NationalCode)
	if !reNationalCode.MatchString(req.NationalCode) {
		return nil, ErrInvalidNationalCode
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.IdentityApproved {
		return nil, ErrAlreadyApproved
	}

	// The same national code must not belong to another account
	h := crypto.Hash(req.NationalCode)
	taken, err := s.db.User.Query().
		Where(entuser.NationalCodeHash(h), entuser.IDNEQ(userID), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check national_code: %w", err)
	}
	if taken {
		return nil, ErrNationalCodeExists
	}

	// Shahkar: the SIM must be registered to the national code holder
	local, err := phone.Local(u.Phone)
	if err != nil {
		local = u.Phone
	}
	matched, err := s.jibit.MatchNationalCodeMobile(ctx, req.NationalCode, local)
	if err != nil {
		return nil, fmt.Errorf("identity matching: %w", err)
	}
	if !matched {
		return nil, ErrIdentityMismatch
	}

	// Fill in the registry name when the profile is empty
	var identity jibit.Identity
	if req.BirthDate != "" {
		identity, err = s.jibit.LookupIdentity(ctx, req.NationalCode, req.BirthDate)
		if err != nil {
			slog.Warn("identity lookup failed, approving on match only", "user_id", userID, "error", err)
		}
	}

	enc, err := crypto.Encrypt(s.encKey, req.NationalCode)
	if err != nil {
		return nil, fmt.Errorf("encrypt national_code: %w", err)
	}

	now := time.Now()
	upd := s.db.User.UpdateOne(u).
		SetNationalCode(enc).
		SetNationalCodeHash(h).
		SetIdentityApproved(true).
		SetIdentityApprovedAt(now)

	if u.FirstName == nil && identity.FirstName != "" {
		upd = upd.SetFirstName(identity.FirstName)
	}
	if u.LastName == nil && identity.LastName != "" {
		upd = upd.SetLastName(identity.LastName)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	// Confirmation email (best-effort)
	if updated.Email != nil {
		first := ""
		if updated.FirstName != nil {
			first = *updated.FirstName
		}
		msg := email.BuildIdentityApprovedEmail(*updated.Email, first, "fa")
		if err := s.mail.Send(ctx, msg); err != nil {
			slog.Warn("failed to send identity-approved email", "user_id", userID, "error", err)
		}
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sendOTP(ctx context.Context, normalizedPhone string) error {
	code, err := otp.GenerateDefault()
	if err != nil {
		return fmt.Errorf("generate OTP: %w", err)
	}

	otpTTL := time.Duration(s.cfg.Authentication.OTPTTLMinutes) * time.Minute
	if otpTTL <= 0 {
		otpTTL = 5 * time.Minute
	}

	// Store hash
	if err := s.rdb.Set(ctx, redisKeyOTP(normalizedPhone), otp.Hash(code), otpTTL).Err(); err != nil {
		return fmt.Errorf("store OTP: %w", err)
	}
	// Reset attempts
	s.rdb.Set(ctx, redisKeyOTPAttempts(normalizedPhone), "0", otpTTL+5*time.Minute)

	// Send via SMS.ir
	templateID := s.cfg.SMS.SMSIR.TemplateID
	if err := s.sms.SendOTP(ctx, normalizedPhone, templateID, code); err != nil {
		// Log but don't fail — SMS failure shouldn't block login
		slog.Warn("failed to send OTP SMS", "phone", normalizedPhone, "error", err)
	}

	return nil
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	// Store in Redis
	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// Issue tokens
	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// Persist session record to DB (audit, best-effort)
	expiresAt := time.Now().Add(refreshTTL)
	refreshHash := crypto.Hash(refresh) // SHA-256 of refresh token
	if _, err := s.db.UserSession.Create().
		SetUserID(u.ID).
		SetSessionID(sessionID.String()).
		SetRefreshTokenHash(refreshHash).
		SetExpiresAt(expiresAt).
		Save(ctx); err != nil {
		slog.Warn("session audit record failed", "user_id", u.ID, "error", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}
