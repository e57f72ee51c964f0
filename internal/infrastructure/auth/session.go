package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "lrs"

// SessionClaims identify the user behind the current-user routes. The
// subject is the user's external id.
type SessionClaims struct {
	TenantID uint `json:"tid"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) ExternalID() string {
	return c.Subject
}

type SessionService struct {
	secret []byte
	exp    time.Duration
	now    func() time.Time
}

func NewSessionService(secret string, expHours int) *SessionService {
	if expHours <= 0 {
		expHours = 8
	}
	return &SessionService{
		secret: []byte(secret),
		exp:    time.Duration(expHours) * time.Hour,
		now:    time.Now,
	}
}

// Issue signs a session for externalID in tenantID.
func (s *SessionService) Issue(tenantID uint, externalID string) (string, time.Time, error) {
	if tenantID == 0 || externalID == "" {
		return "", time.Time{}, fmt.Errorf("tenant and external id are required")
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.exp)
	claims := &SessionClaims{
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   externalID,
			ID:        strconv.FormatInt(now.UnixNano(), 36),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session: %w", err)
	}
	return token, expiresAt, nil
}

func (s *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" || claims.TenantID == 0 {
		return nil, fmt.Errorf("invalid session")
	}
	return claims, nil
}
