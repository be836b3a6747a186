package screen

import (
	"context"
	"sync"

	"github.com/kart-io/skillswap/internal/apiclient"
	"github.com/kart-io/skillswap/internal/form"
	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/session"
)

// AuthMode selects which form the auth screen shows.
type AuthMode string

const (
	ModeSignIn         AuthMode = "signin"
	ModeSignUp         AuthMode = "signup"
	ModeForgotPassword AuthMode = "forgot"
)

// ToastFixErrors is shown when a submit is blocked by validation errors.
const ToastFixErrors = "Please fix the errors in the form"

var signInRules = form.Rules{
	form.FieldEmail:    {Required: true, Email: true},
	form.FieldPassword: {Required: true},
}

var signUpRules = form.Rules{
	form.FieldFirstName:       {Required: true, MaxLength: 64},
	form.FieldLastName:        {Required: true, MaxLength: 64},
	form.FieldEmail:           {Required: true, Email: true},
	form.FieldPassword:        {Required: true, MinLength: 8},
	form.FieldConfirmPassword: {Required: true, Match: form.FieldPassword},
}

var forgotRules = form.Rules{
	form.FieldEmail: {Required: true, Email: true},
}

// AuthScreen drives the sign-in / sign-up / forgot-password flows. At most
// one submission is in flight at a time; further submits are ignored until
// the current one settles.
type AuthScreen struct {
	mu      sync.Mutex
	api     *apiclient.Client
	session *session.Session
	toast   Toaster

	mode AuthMode
	form *form.Form
	busy bool
}

// NewAuthScreen creates the screen in sign-in mode.
func NewAuthScreen(api *apiclient.Client, sess *session.Session, toast Toaster) *AuthScreen {
	s := &AuthScreen{api: api, session: sess, toast: toast}
	s.SetMode(ModeSignIn)
	return s
}

// SetMode switches the active form, discarding any state of the old one.
func (s *AuthScreen) SetMode(mode AuthMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = mode
	switch mode {
	case ModeSignUp:
		s.form = form.New(nil, signUpRules)
	case ModeForgotPassword:
		s.form = form.New(nil, forgotRules)
	default:
		s.mode = ModeSignIn
		s.form = form.New(nil, signInRules)
	}
}

// Mode returns the active mode.
func (s *AuthScreen) Mode() AuthMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Form exposes the active form for change/blur events and error display.
func (s *AuthScreen) Form() *form.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// PasswordStrength scores the password currently typed into the sign-up
// form, for the strength meter under the password field.
func (s *AuthScreen) PasswordStrength() form.StrengthScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return form.Strength(s.form.Value(form.FieldPassword))
}

// Busy reports whether a submission is in flight.
func (s *AuthScreen) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Submit validates the active form and performs the mode's API call. The
// returned error is the API failure, already surfaced as a toast; callers
// only need it for flow control.
func (s *AuthScreen) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil
	}
	if !s.form.ValidateForm() {
		s.mu.Unlock()
		s.toast.Show(ToastFixErrors, ToastError)
		return nil
	}
	s.busy = true
	mode := s.mode
	f := s.form
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	switch mode {
	case ModeSignUp:
		return s.signUp(ctx, f)
	case ModeForgotPassword:
		return s.forgotPassword(ctx, f)
	default:
		return s.signIn(ctx, f)
	}
}

func (s *AuthScreen) signIn(ctx context.Context, f *form.Form) error {
	resp, err := s.api.SignIn(ctx, &model.SignInRequest{
		Email:    f.Value(form.FieldEmail),
		Password: f.Value(form.FieldPassword),
	})
	if err != nil {
		return s.fail(err)
	}
	return s.finishLogin(resp, "Welcome back!")
}

func (s *AuthScreen) signUp(ctx context.Context, f *form.Form) error {
	resp, err := s.api.SignUp(ctx, &model.SignUpRequest{
		Email:     f.Value(form.FieldEmail),
		Password:  f.Value(form.FieldPassword),
		FirstName: f.Value(form.FieldFirstName),
		LastName:  f.Value(form.FieldLastName),
	})
	if err != nil {
		return s.fail(err)
	}
	return s.finishLogin(resp, "Account created successfully!")
}

func (s *AuthScreen) forgotPassword(ctx context.Context, f *form.Form) error {
	resp, err := s.api.ForgotPassword(ctx, &model.ForgotPasswordRequest{
		Email: f.Value(form.FieldEmail),
	})
	if err != nil {
		return s.fail(err)
	}
	s.toast.Show(resp.Message, ToastSuccess)
	s.SetMode(ModeSignIn)
	return nil
}

func (s *AuthScreen) finishLogin(resp *model.AuthResponse, message string) error {
	if err := s.session.Login(resp.AccessToken, resp.User); err != nil {
		return s.fail(err)
	}
	s.toast.Show(message, ToastSuccess)
	return nil
}

func (s *AuthScreen) fail(err error) error {
	s.toast.Show(err.Error(), ToastError)
	return err
}

// ResetPasswordScreen drives the token-based password reset page.
type ResetPasswordScreen struct {
	mu    sync.Mutex
	api   *apiclient.Client
	toast Toaster

	token string
	form  *form.Form
	busy  bool
}

var resetPasswordRules = form.Rules{
	form.FieldPassword:        {Required: true, MinLength: 6},
	form.FieldConfirmPassword: {Required: true, Match: form.FieldPassword},
}

// NewResetPasswordScreen creates the screen for the given reset token.
func NewResetPasswordScreen(api *apiclient.Client, toast Toaster, token string) *ResetPasswordScreen {
	return &ResetPasswordScreen{
		api:   api,
		toast: toast,
		token: token,
		form:  form.New(nil, resetPasswordRules),
	}
}

// Form exposes the reset form.
func (s *ResetPasswordScreen) Form() *form.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Busy reports whether a submission is in flight.
func (s *ResetPasswordScreen) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Submit redeems the token for the new password.
func (s *ResetPasswordScreen) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil
	}
	if s.token == "" {
		s.mu.Unlock()
		s.toast.Show("Invalid reset token. Please request a new password reset.", ToastError)
		return nil
	}
	if !s.form.ValidateForm() {
		s.mu.Unlock()
		s.toast.Show(ToastFixErrors, ToastError)
		return nil
	}
	s.busy = true
	f := s.form
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	_, err := s.api.ResetPassword(ctx, &model.ResetPasswordRequest{
		Token:       s.token,
		NewPassword: f.Value(form.FieldPassword),
	})
	if err != nil {
		s.toast.Show(err.Error(), ToastError)
		return err
	}
	s.toast.Show("Password reset successfully! Please sign in with your new password.", ToastSuccess)
	return nil
}
