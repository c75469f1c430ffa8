package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/RudraNarayan94/MOK/internal/models"
	"github.com/RudraNarayan94/MOK/internal/repository"
	"github.com/RudraNarayan94/MOK/internal/token"
	"github.com/RudraNarayan94/MOK/pkg/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UsersRI interface {
	CreateUser(ctx context.Context, email, username, passwordHash string) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	TouchLastLogin(ctx context.Context, userID int64) error
}

type TokenIssuerI interface {
	Pair(user models.User) (models.TokenPair, error)
	ParseAccess(raw string) (token.Claims, error)
	RefreshAccess(raw string) (string, error)
}

type ResetTokenI interface {
	Make(user models.User) (uid, tok string)
	Check(user models.User, tok string) bool
}

type NotifierI interface {
	SendWelcome(user models.User)
	SendPasswordChanged(user models.User)
	SendPasswordReset(user models.User, link string)
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthS struct {
	repo     UsersRI
	tokens   TokenIssuerI
	resets   ResetTokenI
	notifier NotifierI
	opts     AuthOptions
	lookupMX func(domain string) ([]*net.MX, error)
	log      *zap.Logger
}

func NewAuthService(repo UsersRI, tokens TokenIssuerI, resets ResetTokenI, notifier NotifierI, opts AuthOptions, log *zap.Logger) *AuthS {
	return &AuthS{
		repo:     repo,
		tokens:   tokens,
		resets:   resets,
		notifier: notifier,
		opts:     opts,
		lookupMX: net.LookupMX,
		log:      log,
	}
}

func (a *AuthS) Register(ctx context.Context, in RegisterInput) (models.User, models.TokenPair, error) {
	if err := validator.ValidateStruct(in); err != nil {
		return models.User{}, models.TokenPair{}, invalidInput("%v", err)
	}

	if err := validateUsername(in.Username); err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	taken, err := a.repo.UsernameExists(ctx, in.Username)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	if taken {
		return models.User{}, models.TokenPair{}, invalidInput("this username is already taken")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := a.validateEmail(email); err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	exists, err := a.repo.EmailExists(ctx, email)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	if exists {
		return models.User{}, models.TokenPair{}, invalidInput("this email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, models.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.repo.CreateUser(ctx, email, in.Username, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, models.TokenPair{}, invalidInput("email or username is already registered")
		}
		return models.User{}, models.TokenPair{}, err
	}

	a.notifier.SendWelcome(user)

	pair, err := a.tokens.Pair(user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	return user, pair, nil
}

// Login accepts an email or a case-insensitive username.
func (a *AuthS) Login(ctx context.Context, loginField, password string) (models.TokenPair, error) {
	if loginField == "" || password == "" {
		return models.TokenPair{}, invalidInput("both login field and password are required")
	}

	var (
		user models.User
		err  error
	)
	if strings.Contains(loginField, "@") {
		user, err = a.repo.UserByEmail(ctx, loginField)
	} else {
		user, err = a.repo.UserByUsername(ctx, loginField)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.TokenPair{}, ErrInvalidCredentials
		}
		return models.TokenPair{}, err
	}

	if !user.IsActive {
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.TokenPair{}, ErrInvalidCredentials
	}

	if err := a.repo.TouchLastLogin(ctx, user.ID); err != nil {
		a.log.Warn("failed to update last login", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	return a.tokens.Pair(user)
}

func (a *AuthS) Refresh(refresh string) (string, error) {
	access, err := a.tokens.RefreshAccess(refresh)
	if err != nil {
		return "", ErrInvalidToken
	}
	return access, nil
}

// UserByAccessToken resolves a bearer access token to its user, for
// the auth middleware.
func (a *AuthS) UserByAccessToken(ctx context.Context, raw string) (models.User, error) {
	claims, err := a.tokens.ParseAccess(raw)
	if err != nil {
		return models.User{}, ErrInvalidToken
	}

	user, err := a.repo.UserByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, ErrInvalidToken
		}
		return models.User{}, err
	}
	if !user.IsActive {
		return models.User{}, ErrInvalidToken
	}
	return user, nil
}

func (a *AuthS) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, notFound("user not found")
		}
		return models.User{}, err
	}
	return user, nil
}

func (a *AuthS) ChangePassword(ctx context.Context, user models.User, password, password2 string) error {
	if password == "" || password2 == "" {
		return invalidInput("password and confirm password are required")
	}
	if password != password2 {
		return invalidInput("password and confirm password don't match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	a.notifier.SendPasswordChanged(user)
	return nil
}

func (a *AuthS) SendResetEmail(ctx context.Context, email string) error {
	user, err := a.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalidInput("you are not a registered user")
		}
		return err
	}

	uid, tok := a.resets.Make(user)
	link := fmt.Sprintf("%s/reset/%s/%s/", strings.TrimRight(a.opts.ResetLinkBase, "/"), uid, tok)

	a.notifier.SendPasswordReset(user, link)
	return nil
}

func (a *AuthS) ResetPassword(ctx context.Context, uid, tok, password, password2 string) error {
	if password == "" || password2 == "" {
		return invalidInput("password and confirm password are required")
	}
	if password != password2 {
		return invalidInput("password and confirm password don't match")
	}

	id, err := token.DecodeUID(uid)
	if err != nil {
		return invalidInput("token is not valid or expired")
	}

	user, err := a.repo.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalidInput("token is not valid or expired")
		}
		return err
	}

	if !a.resets.Check(user, tok) {
		return invalidInput("token is not valid or expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.repo.UpdatePassword(ctx, user.ID, string(hash))
}

var usernameShape = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9_-]*[a-zA-Z0-9])?$`)

func validateUsername(username string) error {
	if len(username) < 3 {
		return invalidInput("username must be at least 3 characters long")
	}
	if len(username) > 30 {
		return invalidInput("username cannot exceed 30 characters")
	}
	if strings.Contains(username, " ") {
		return invalidInput("username cannot contain spaces")
	}
	if !usernameShape.MatchString(username) {
		return invalidInput("username can only contain letters, numbers, hyphens, and underscores, and cannot start or end with them")
	}
	if strings.Contains(username, "--") || strings.Contains(username, "__") {
		return invalidInput("username cannot contain consecutive hyphens or underscores")
	}
	return nil
}

var prohibitedLocalParts = map[string]struct{}{
	"support": {},
	"info":    {},
	"admin":   {},
	"contact": {},
}

var disposableDomains = map[string]struct{}{
	"mailinator.com":   {},
	"tempmail.com":     {},
	"10minutemail.com": {},
}

func (a *AuthS) validateEmail(email string) error {
	if err := validator.ValidateEmailSyntax(email); err != nil {
		return invalidInput("%v", err)
	}

	local, domain, _ := strings.Cut(email, "@")
	if _, banned := prohibitedLocalParts[strings.ToLower(local)]; banned {
		return invalidInput("registration using role-based email addresses is not allowed")
	}
	if _, disposable := disposableDomains[strings.ToLower(domain)]; disposable {
		return invalidInput("disposable email addresses are not allowed")
	}

	if a.opts.VerifyEmailMX {
		records, err := a.lookupMX(domain)
		if err != nil || len(records) == 0 {
			return invalidInput("email domain does not accept mail")
		}
	}
	return nil
}
