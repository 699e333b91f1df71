package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil passes through", in: nil, want: nil},
		{name: "401 means expired session", in: fmt.Errorf("%w: token expired", adapter.ErrUnauthorized), want: ErrSessionExpired},
		{name: "403", in: fmt.Errorf("%w: admins only", adapter.ErrForbidden), want: ErrPermissionDenied},
		{name: "404", in: fmt.Errorf("%w: no such activity", adapter.ErrNotFound), want: ErrRecordNotFound},
		{name: "400", in: fmt.Errorf("%w: title missing", adapter.ErrBadRequest), want: ErrInvalidData},
		{name: "success=false payload", in: fmt.Errorf("%w: quota exceeded", adapter.ErrBackendRejected), want: ErrBackendFailure},
		{name: "500", in: fmt.Errorf("%w: boom", adapter.ErrInternalServerError), want: ErrBackendFailure},
		{name: "502", in: fmt.Errorf("%w: upstream", adapter.ErrBadGateway), want: ErrBackendFailure},
		{name: "unknown errors pass through", in: assert.AnError, want: assert.AnError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := mapAdapterError(test.in)
			if test.want == nil {
				assert.NoError(t, got)
			} else {
				assert.ErrorIs(t, got, test.want)
			}
		})
	}
}

func TestMapAdapterError_KeepsBackendMessage(t *testing.T) {
	got := mapAdapterError(fmt.Errorf("%w: quota exceeded", adapter.ErrBackendRejected))
	assert.Contains(t, got.Error(), "quota exceeded")
}

func TestMapLoginError(t *testing.T) {
	assert.ErrorIs(t,
		mapLoginError(fmt.Errorf("%w: wrong password", adapter.ErrUnauthorized)),
		ErrInvalidCredentials)
	assert.ErrorIs(t,
		mapLoginError(fmt.Errorf("%w: disabled", adapter.ErrForbidden)),
		ErrAccountInactive)
	assert.ErrorIs(t,
		mapLoginError(fmt.Errorf("%w: boom", adapter.ErrInternalServerError)),
		ErrBackendFailure)
	assert.NoError(t, mapLoginError(nil))
}
