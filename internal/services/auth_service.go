package services

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"nl2query/internal/apis/dtos"
	"nl2query/internal/utils"
)

type AuthService interface {
	IssueToken(req *dtos.TokenRequest) (*dtos.TokenResponse, uint, error)
}

type authService struct {
	clientID         string
	clientSecretHash string // bcrypt hash of the shared secret
	jwtService       utils.JWTService
	expiry           time.Duration
}

func NewAuthService(clientID, clientSecretHash string, jwtService utils.JWTService, expiry time.Duration) AuthService {
	return &authService{
		clientID:         clientID,
		clientSecretHash: clientSecretHash,
		jwtService:       jwtService,
		expiry:           expiry,
	}
}

func (s *authService) IssueToken(req *dtos.TokenRequest) (*dtos.TokenResponse, uint, error) {
	if req.ClientID != s.clientID {
		return nil, http.StatusUnauthorized, fmt.Errorf("invalid client credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.clientSecretHash), []byte(req.ClientSecret)); err != nil {
		return nil, http.StatusUnauthorized, fmt.Errorf("invalid client credentials")
	}

	token, err := s.jwtService.GenerateToken(req.ClientID)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dtos.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.expiry.Seconds()),
	}, http.StatusOK, nil
}
