package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/option"

	"github.com/profast/parcel-server/internal/config"
)

// Identity is the verified subject attached to authenticated requests.
type Identity struct {
	Email   string
	Subject string
}

// ErrInvalidToken covers every verification failure: expired, malformed or
// signed by someone else.
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier validates a bearer credential against the identity provider.
// Every request is verified independently; results are never cached.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

const verifyTimeout = 5 * time.Second

// FirebaseVerifier checks Firebase ID tokens through the Admin SDK.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting auth client: %v", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := decoded.Claims["email"].(string)
	return &Identity{Email: email, Subject: decoded.UID}, nil
}

// HSVerifier validates HS256 tokens signed with a shared secret. It backs
// local development where no Firebase service account is configured.
type HSVerifier struct {
	secret []byte
}

func NewHSVerifier(secret string) *HSVerifier {
	return &HSVerifier{secret: []byte(secret)}
}

func (v *HSVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	subject, _ := claims["sub"].(string)
	return &Identity{Email: email, Subject: subject}, nil
}

// NewVerifier picks the Firebase verifier when a service account is
// configured and falls back to the shared-secret verifier otherwise.
func NewVerifier(ctx context.Context, cfg *config.Config) (TokenVerifier, error) {
	if cfg.FirebaseCredentials != "" {
		return NewFirebaseVerifier(ctx, cfg.FirebaseCredentials)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("neither FIREBASE_SERVICE_ACCOUNT_PATH nor JWT_SECRET is set")
	}
	log.Println("Warning: FIREBASE_SERVICE_ACCOUNT_PATH not set. Using shared-secret token verification.")
	return NewHSVerifier(cfg.JWTSecret), nil
}
