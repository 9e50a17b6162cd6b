package address

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

func TestService(t *testing.T) {
	srv := apitest.NewServer(t)
	sess := session.New(storage.NewMemoryStorage())
	svc := NewService(srv.Client(sess))

	var saved []Address
	srv.Handle(http.MethodGet, "/Addresses", func(r *http.Request) apitest.Reply {
		return apitest.OK(saved)
	})
	srv.Handle(http.MethodPost, "/Addresses", func(r *http.Request) apitest.Reply {
		var req CreateAddressRequest
		require.NoError(t, apitest.Decode(r, &req))
		if req.Address1 == "" {
			return apitest.Fail(http.StatusBadRequest, "", "Address1 is required")
		}
		a := Address{ID: "a1", FirstName: req.FirstName, Address1: req.Address1, IsDefault: req.IsDefault}
		saved = append(saved, a)
		return apitest.OK(a)
	})
	ctx := context.Background()

	list, err := svc.GetAddresses(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	a, err := svc.CreateAddress(ctx, CreateAddressRequest{FirstName: "Ann", Address1: "1 School Rd", IsDefault: true})
	require.NoError(t, err)
	assert.Equal(t, "a1", a.ID)

	_, err = svc.CreateAddress(ctx, CreateAddressRequest{})
	assert.Equal(t, "Address1 is required", api.ErrorMessage(err))

	list, err = svc.GetAddresses(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
