package jwt

import (
	"errors"
	"fmt"

	"Fynd-Backend/domain"
	"Fynd-Backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

// Tokens are issued by the external auth service; this backend only verifies
// them and extracts the authenticated identity.
type (
	JWTService interface {
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserByToken(token string) (UserClaims, error)
	}

	UserClaims struct {
		UserID string
		Email  string
		Role   string
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	return secretKey
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "FYND",
	}
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserByToken(token string) (UserClaims, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return UserClaims{}, domain.ErrTokenExpired
		}
		return UserClaims{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return UserClaims{}, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)

	role := claims.Role
	if role == "" {
		role = domain.RoleUser
	}

	return UserClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}
