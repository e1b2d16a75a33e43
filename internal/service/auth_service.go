package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
	"github.com/azerguest/azerguest-api/internal/util"
)

const defaultTravelInterest = 5

var ErrInvalidGoogleToken = fmt.Errorf("%w: invalid google token", ErrAuthRequired)

type RegisterInput struct {
	Name                string
	Email               string
	Password            string
	Phone               *string
	Gender              string
	Age                 int
	Region              string
	Family              int
	TripsPerYear        int
	AvgBudgetPerYear    int
	FavoriteDestination *string
	VacationType        *string
	TravelInterest      *int
}

type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

type googleValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type AuthService struct {
	users          ports.UserRepository
	sessions       ports.SessionRepository
	jwt            *util.JWTManager
	googleAudience string
	admins         map[string]struct{}
	validateGoogle googleValidator
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, jwtManager *util.JWTManager, googleAudience string, adminEmails []string) *AuthService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		if e := normalizeEmail(email); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &AuthService{
		users:          users,
		sessions:       sessions,
		jwt:            jwtManager,
		googleAudience: strings.TrimSpace(googleAudience),
		admins:         admins,
		validateGoogle: idtoken.Validate,
	}
}

func (s *AuthService) RegisterWithEmail(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	gender := strings.TrimSpace(input.Gender)
	region := strings.TrimSpace(input.Region)

	switch {
	case name == "":
		return nil, missingField("name")
	case email == "":
		return nil, missingField("email")
	case input.Password == "":
		return nil, missingField("password")
	case gender == "":
		return nil, missingField("gender")
	case input.Age == 0:
		return nil, missingField("age")
	case region == "":
		return nil, missingField("region")
	}
	if !strings.Contains(email, "@") {
		return nil, validationError("email", "must be a valid email address")
	}
	if input.Age < 0 || input.Age > 120 {
		return nil, validationError("age", "must be between 1 and 120")
	}
	if input.Family < 0 || input.TripsPerYear < 0 || input.AvgBudgetPerYear < 0 {
		return nil, fmt.Errorf("%w: travel profile numbers must not be negative", ErrValidation)
	}
	if err := util.ValidatePassword(input.Password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !isNotFound(err) {
		return nil, err
	}

	hash, salt, err := util.DerivePassword(input.Password)
	if err != nil {
		return nil, err
	}

	travelInterest := defaultTravelInterest
	if input.TravelInterest != nil {
		travelInterest = *input.TravelInterest
	}
	age := input.Age

	user, err := s.users.Create(ctx, domain.NewUser{
		Name:                name,
		Email:               email,
		PasswordHash:        hash,
		PasswordSalt:        salt,
		Phone:               normalizeString(input.Phone),
		Gender:              &gender,
		Age:                 &age,
		Family:              input.Family,
		Region:              &region,
		TripsPerYear:        input.TripsPerYear,
		AvgBudgetPerYear:    input.AvgBudgetPerYear,
		FavoriteDestination: normalizeString(input.FavoriteDestination),
		VacationType:        normalizeString(input.VacationType),
		TravelInterest:      travelInterest,
		Points:              domain.RegistrationPoints,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issueSession(ctx, user)
}

func (s *AuthService) LoginWithEmail(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, missingField("email")
	}
	if password == "" {
		return nil, missingField("password")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(ctx, user)
}

// LoginWithGoogle verifies a Google ID token and signs in the matching user,
// creating one on first use.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*AuthResult, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return nil, missingField("id_token")
	}
	if s.googleAudience == "" {
		return nil, validationError("id_token", "cannot be verified: google sign-in is not configured")
	}

	payload, err := s.validateGoogle(ctx, idToken, s.googleAudience)
	if err != nil {
		return nil, ErrInvalidGoogleToken
	}
	email, _ := payload.Claims["email"].(string)
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrInvalidGoogleToken
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, ErrInvalidGoogleToken
	}
	name, _ := payload.Claims["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	var avatar *string
	if picture, _ := payload.Claims["picture"].(string); strings.TrimSpace(picture) != "" {
		avatar = &picture
	}

	user, err := s.users.UpsertGoogleUser(ctx, email, name, avatar)
	if err != nil {
		return nil, err
	}
	return s.issueSession(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.sessions.DeactivateSession(ctx, token)
}

// Authenticate resolves a bearer token to its user. The token must verify and
// still have an active session row.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	session, err := s.sessions.FindActiveSession(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, ErrInvalidSession
	}
	return s.CurrentUser(ctx, claims.UserID)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) IsAdmin(user *domain.User) bool {
	if user == nil {
		return false
	}
	_, ok := s.admins[normalizeEmail(user.Email)]
	return ok
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.CreateSession(ctx, user.ID, token, expiresAt); err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
