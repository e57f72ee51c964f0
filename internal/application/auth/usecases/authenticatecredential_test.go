package usecases

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrsproject/lrs/internal/application/testutil"
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/infrastructure/auth"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

func TestAuthenticateCredential(t *testing.T) {
	hasher := auth.NewBcryptSecretHasher(4)
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	tenantID := uint(7)
	repo := testutil.NewMockCredentialRepository(nil)
	c, err := credential.NewCredential("lrs_key", hash, "Canvas", "", &tenantID, credential.Permissions{Read: true, Write: true})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))

	uc := NewAuthenticateCredentialUseCase(repo, hasher, testutil.NewMockLogger())

	tests := []struct {
		name     string
		cmd      AuthenticateCredentialCommand
		wantCode int
	}{
		{"valid pair", AuthenticateCredentialCommand{Key: "lrs_key", Secret: "s3cret"}, 0},
		{"wrong secret", AuthenticateCredentialCommand{Key: "lrs_key", Secret: "nope"}, http.StatusUnauthorized},
		{"unknown key", AuthenticateCredentialCommand{Key: "other", Secret: "s3cret"}, http.StatusUnauthorized},
		{"empty secret", AuthenticateCredentialCommand{Key: "lrs_key"}, http.StatusUnauthorized},
		{"empty key", AuthenticateCredentialCommand{Secret: "s3cret"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authCtx, err := uc.Execute(context.Background(), tt.cmd)
			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, c.ID(), authCtx.CredentialID)
				assert.Equal(t, "Canvas", authCtx.Name)
				require.NotNil(t, authCtx.TenantID)
				assert.Equal(t, tenantID, *authCtx.TenantID)
				assert.True(t, authCtx.Permissions.Write)
				return
			}
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, MsgIncorrectCredentials, appErr.Message)
		})
	}
}

func TestAuthenticateCredentialStorageFailure(t *testing.T) {
	repo := testutil.NewMockCredentialRepository(nil)
	repo.Error = fmt.Errorf("connection refused")
	log := testutil.NewMockLogger()
	uc := NewAuthenticateCredentialUseCase(repo, auth.NewBcryptSecretHasher(4), log)

	_, err := uc.Execute(context.Background(), AuthenticateCredentialCommand{Key: "k", Secret: "s"})
	require.Error(t, err)
	assert.True(t, errors.IsStorageError(err))
	assert.Len(t, log.Entries("ERROR"), 1)
}
