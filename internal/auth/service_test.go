package auth

import (
	"context"
	"net/http"
	"testing"

	"edumart/internal/api"
	"edumart/internal/apitest"
	"edumart/internal/session"
	"edumart/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeAPI(t *testing.T) (*apitest.Server, *session.Session, Service) {
	t.Helper()
	srv := apitest.NewServer(t)
	sess := session.New(storage.NewMemoryStorage())
	return srv, sess, NewService(srv.Client(sess))
}

func TestService_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv, _, svc := newFakeAPI(t)
		srv.Handle(http.MethodPost, "/Auth/login", func(r *http.Request) apitest.Reply {
			var req LoginRequest
			require.NoError(t, apitest.Decode(r, &req))
			assert.Equal(t, "ann@edumart.test", req.Email)
			return apitest.OK(LoginResponse{Token: "tok", User: User{ID: "u1", Email: req.Email}})
		})

		resp, err := svc.Login(context.Background(), LoginRequest{Email: "ann@edumart.test", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "tok", resp.Token)
		assert.Equal(t, "u1", resp.User.ID)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		srv, _, svc := newFakeAPI(t)
		srv.Handle(http.MethodPost, "/Auth/login", func(r *http.Request) apitest.Reply {
			return apitest.Fail(http.StatusBadRequest, "Invalid email or password")
		})

		resp, err := svc.Login(context.Background(), LoginRequest{Email: "x", Password: "y"})

		assert.Nil(t, resp)
		assert.Equal(t, "Invalid email or password", api.ErrorMessage(err))
	})

	t.Run("Empty token", func(t *testing.T) {
		srv, _, svc := newFakeAPI(t)
		srv.Handle(http.MethodPost, "/Auth/login", func(r *http.Request) apitest.Reply {
			return apitest.OK(LoginResponse{})
		})

		_, err := svc.Login(context.Background(), LoginRequest{})
		assert.ErrorIs(t, err, ErrMissingToken)
	})
}

func TestService_ProfileEndpoints(t *testing.T) {
	srv, sess, svc := newFakeAPI(t)
	srv.RequireToken("tok")
	srv.Handle(http.MethodGet, "/Auth/me", func(r *http.Request) apitest.Reply {
		return apitest.OK(User{ID: "u1", FirstName: "Ann", Role: RoleVendor})
	})
	srv.Handle(http.MethodPut, "/Auth/update-profile", func(r *http.Request) apitest.Reply {
		var req UpdateProfileRequest
		require.NoError(t, apitest.Decode(r, &req))
		return apitest.OK(User{ID: "u1", FirstName: req.FirstName, LastName: req.LastName})
	})
	srv.Handle(http.MethodPost, "/Auth/change-password", func(r *http.Request) apitest.Reply {
		return apitest.OK(true)
	})
	require.NoError(t, sess.Start(context.Background(), "tok", nil))
	ctx := context.Background()

	me, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, RoleVendor, me.Role)

	updated, err := svc.UpdateProfile(ctx, UpdateProfileRequest{FirstName: "Anna", LastName: "Lee"})
	require.NoError(t, err)
	assert.Equal(t, "Anna Lee", updated.FullName())

	ok, err := svc.ChangePassword(ctx, ChangePasswordRequest{CurrentPassword: "a", NewPassword: "b"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ann", User{FirstName: "Ann"}.FullName())
	assert.Equal(t, "Lee", User{LastName: "Lee"}.FullName())
	assert.Equal(t, "Ann Lee", User{FirstName: "Ann", LastName: "Lee"}.FullName())
	assert.Equal(t, "Admin", RoleAdmin.String())
}
