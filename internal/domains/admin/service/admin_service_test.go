package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cuentista-backend/internal/domains/admin/model"
	"cuentista-backend/internal/infrastructure/email"
	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/pkg/jwt"
)

type fakeAdminRepo struct {
	users      map[string]*model.User
	otps       map[int64]*model.Otp
	nextOtpID  int64
	otpDeleted []int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		users:     map[string]*model.User{},
		otps:      map[int64]*model.Otp{},
		nextOtpID: 1,
	}
}

func (f *fakeAdminRepo) addUser(id int64, email, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	f.users[email] = &model.User{ID: id, Name: "Admin", Email: email, Password: string(hash)}
}

func (f *fakeAdminRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeAdminRepo) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeAdminRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.Password = hash
			return nil
		}
	}
	return model.ErrUserNotFound
}

func (f *fakeAdminRepo) UpdatePasswordByEmail(_ context.Context, email, hash string) error {
	u, ok := f.users[email]
	if !ok {
		return model.ErrUserNotFound
	}
	u.Password = hash
	return nil
}

func (f *fakeAdminRepo) CreateOtp(_ context.Context, otp *model.Otp) error {
	otp.ID = f.nextOtpID
	f.nextOtpID++
	f.otps[otp.ID] = otp
	return nil
}

func (f *fakeAdminRepo) GetOtpByEmailAndCode(_ context.Context, email string, code int) (*model.Otp, error) {
	for _, o := range f.otps {
		if o.Email == email && o.Otp == code {
			return o, nil
		}
	}
	return nil, model.ErrOtpNotFound
}

func (f *fakeAdminRepo) DeleteOtp(_ context.Context, id int64) error {
	delete(f.otps, id)
	f.otpDeleted = append(f.otpDeleted, id)
	return nil
}

func (f *fakeAdminRepo) DeleteExpiredOtps(_ context.Context, now time.Time) (int64, error) {
	var deleted int64
	for id, o := range f.otps {
		expires, err := time.Parse(time.RFC3339, o.ExpirationTime)
		if err == nil && expires.Before(now) {
			delete(f.otps, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeOtpDispatcher struct {
	sent []email.OtpEmailData
}

func (f *fakeOtpDispatcher) EnqueueOtpEmail(_ context.Context, data email.OtpEmailData) error {
	f.sent = append(f.sent, data)
	return nil
}

func newService(repo *fakeAdminRepo, dispatcher *fakeOtpDispatcher) (ServiceInterface, *jwt.Manager) {
	manager := jwt.NewManager("test-secret")
	return NewAdminService(repo, manager, dispatcher), manager
}

func TestLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	repo.addUser(7, "admin@cuentista.tech", "hunter22")
	svc, manager := newService(repo, &fakeOtpDispatcher{})

	t.Run("unknown email", func(t *testing.T) {
		env := svc.Login(context.Background(), model.LoginRequest{Email: "nobody@x.y", Password: "hunter22"})
		assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
		assert.Equal(t, messages.CredentialsNotMatch, env.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		env := svc.Login(context.Background(), model.LoginRequest{Email: "admin@cuentista.tech", Password: "nope"})
		assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
		assert.Equal(t, messages.CredentialsNotMatch, env.Message)
	})

	t.Run("valid credentials issue a token", func(t *testing.T) {
		env := svc.Login(context.Background(), model.LoginRequest{Email: "admin@cuentista.tech", Password: "hunter22"})
		require.Equal(t, http.StatusOK, env.StatusCode)
		assert.Equal(t, messages.LoginSuccess, env.Message)

		data, ok := env.Data.(map[string]interface{})
		require.True(t, ok)
		token, ok := data["token"].(string)
		require.True(t, ok)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, model.RoleAdmin, claims.Role)
		assert.Equal(t, "admin@cuentista.tech", claims.Email)
	})
}

func TestResetPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	repo.addUser(7, "admin@cuentista.tech", "old-password")
	svc, _ := newService(repo, &fakeOtpDispatcher{})

	t.Run("old password mismatch", func(t *testing.T) {
		env := svc.ResetPassword(context.Background(), 7, model.ResetPasswordRequest{
			OldPassword: "wrong", NewPassword: "new-password",
		})
		assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
	})

	t.Run("updates the stored hash", func(t *testing.T) {
		env := svc.ResetPassword(context.Background(), 7, model.ResetPasswordRequest{
			OldPassword: "old-password", NewPassword: "new-password",
		})
		require.Equal(t, http.StatusOK, env.StatusCode)

		u := repo.users["admin@cuentista.tech"]
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-password")))
	})
}

func TestVerifyEmail(t *testing.T) {
	t.Run("unregistered email", func(t *testing.T) {
		svc, _ := newService(newFakeAdminRepo(), &fakeOtpDispatcher{})
		env := svc.VerifyEmail(context.Background(), model.VerifyEmailRequest{Email: "nobody@x.y"})
		assert.Equal(t, http.StatusNotFound, env.StatusCode)
		assert.Equal(t, messages.EmailValidation, env.Message)
	})

	t.Run("persists, mails and returns the code", func(t *testing.T) {
		repo := newFakeAdminRepo()
		repo.addUser(7, "admin@cuentista.tech", "pw-not-relevant")
		dispatcher := &fakeOtpDispatcher{}
		svc, _ := newService(repo, dispatcher)

		env := svc.VerifyEmail(context.Background(), model.VerifyEmailRequest{Email: "admin@cuentista.tech"})
		require.Equal(t, http.StatusOK, env.StatusCode)
		assert.Equal(t, messages.OtpSent, env.Message)

		data, ok := env.Data.(map[string]interface{})
		require.True(t, ok)
		code, ok := data["otp"].(int)
		require.True(t, ok)
		assert.GreaterOrEqual(t, code, 100000)
		assert.LessOrEqual(t, code, 999999)

		require.Len(t, repo.otps, 1)
		require.Len(t, dispatcher.sent, 1)
		assert.Equal(t, code, dispatcher.sent[0].Otp)
	})
}

func TestForgotPassword(t *testing.T) {
	setup := func(expiration string) (*fakeAdminRepo, ServiceInterface) {
		repo := newFakeAdminRepo()
		repo.addUser(7, "admin@cuentista.tech", "old-password")
		repo.otps[1] = &model.Otp{ID: 1, Otp: 123456, Email: "admin@cuentista.tech", ExpirationTime: expiration}
		svc, _ := newService(repo, &fakeOtpDispatcher{})
		return repo, svc
	}
	future := time.Now().Add(time.Minute).Format(time.RFC3339)
	past := time.Now().Add(-time.Minute).Format(time.RFC3339)

	t.Run("wrong code", func(t *testing.T) {
		_, svc := setup(future)
		env := svc.ForgotPassword(context.Background(), model.ForgotPasswordRequest{
			Email: "admin@cuentista.tech", Otp: 654321, NewPassword: "new-password",
		})
		assert.Equal(t, http.StatusNotFound, env.StatusCode)
		assert.Equal(t, messages.OtpValidation, env.Message)
	})

	t.Run("wrong email with right code", func(t *testing.T) {
		_, svc := setup(future)
		env := svc.ForgotPassword(context.Background(), model.ForgotPasswordRequest{
			Email: "other@x.y", Otp: 123456, NewPassword: "new-password",
		})
		assert.Equal(t, http.StatusNotFound, env.StatusCode)
	})

	t.Run("expired code is rejected and retained", func(t *testing.T) {
		repo, svc := setup(past)
		env := svc.ForgotPassword(context.Background(), model.ForgotPasswordRequest{
			Email: "admin@cuentista.tech", Otp: 123456, NewPassword: "new-password",
		})
		assert.Equal(t, http.StatusBadRequest, env.StatusCode)
		assert.Equal(t, messages.OtpExpired, env.Message)
		assert.Len(t, repo.otps, 1)
	})

	t.Run("valid code is single use", func(t *testing.T) {
		repo, svc := setup(future)
		req := model.ForgotPasswordRequest{
			Email: "admin@cuentista.tech", Otp: 123456, NewPassword: "new-password",
		}

		env := svc.ForgotPassword(context.Background(), req)
		require.Equal(t, http.StatusAccepted, env.StatusCode)
		assert.Empty(t, repo.otps)

		u := repo.users["admin@cuentista.tech"]
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-password")))

		env = svc.ForgotPassword(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, env.StatusCode)
	})
}

func TestExpiredOtpSweep(t *testing.T) {
	repo := newFakeAdminRepo()
	repo.otps[1] = &model.Otp{ID: 1, Otp: 111111, Email: "a@b.c", ExpirationTime: time.Now().Add(-time.Hour).Format(time.RFC3339)}
	repo.otps[2] = &model.Otp{ID: 2, Otp: 222222, Email: "a@b.c", ExpirationTime: time.Now().Add(time.Hour).Format(time.RFC3339)}

	deleted, err := repo.DeleteExpiredOtps(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Len(t, repo.otps, 1)
}
