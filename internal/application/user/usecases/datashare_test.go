package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

type dataUseFixture struct {
	*fixture
	reader    *credential.Credential
	sharer    *credential.Credential
	private   *credential.Credential
	global    *credential.Credential
	otherTen  *credential.Credential
	writeOnly *credential.Credential
}

func newDataUseFixture(t *testing.T) *dataUseFixture {
	f := &dataUseFixture{fixture: newFixture()}
	tenantX, tenantY := ptr(uint(1)), ptr(uint(2))
	f.reader = f.credential(t, "reader", tenantX, credential.Permissions{Read: true})
	f.sharer = f.credential(t, "sharer", tenantX, credential.Permissions{Read: true, Datashare: true})
	f.private = f.credential(t, "private", tenantX, credential.Permissions{Datashare: true})
	f.global = f.credential(t, "global", nil, credential.Permissions{Anonymous: true})
	f.otherTen = f.credential(t, "other", tenantY, credential.Permissions{Read: true, Datashare: true})
	f.writeOnly = f.credential(t, "writer", tenantX, credential.Permissions{Write: true})
	return f
}

func TestDataUsesListsEveryEligibleConsumer(t *testing.T) {
	f := newDataUseFixture(t)
	ctx := context.Background()
	uc := NewGetDataUsesUseCase(f.locator, f.credentials, f.logger)
	subject := Subject{TenantID: 1, ExternalID: "jdoe", CredentialID: f.reader.ID()}

	uses, err := uc.Execute(ctx, subject)
	require.NoError(t, err)
	assert.Equal(t, []dto.DataUseResponse{
		{ID: f.sharer.ID(), Name: "sharer", Description: "sharer description", Share: true},
		{ID: f.global.ID(), Name: "global", Description: "global description", Anonymous: true, Share: true},
	}, uses)

	// The lookup created the user so that opt-outs can be recorded.
	u, err := f.users.GetByExternalID(ctx, 1, "jdoe")
	require.NoError(t, err)
	require.NotNil(t, u)

	require.NoError(t, f.optOuts.Add(ctx, u.ID(), f.global.ID()))
	uses, err = uc.Execute(ctx, subject)
	require.NoError(t, err)
	require.Len(t, uses, 2)
	assert.True(t, uses[0].Share)
	assert.False(t, uses[1].Share)
}

func TestUpdateDataShare(t *testing.T) {
	f := newDataUseFixture(t)
	ctx := context.Background()
	uc := NewUpdateDataShareUseCase(f.locator, f.credentials, f.optOuts, f.logger)
	subject := Subject{TenantID: 1, ExternalID: "jdoe", CredentialID: f.writeOnly.ID()}

	toggle := func(id uint, share any) error {
		return uc.Execute(ctx, UpdateDataShareCommand{Subject: subject, Request: dto.DataShareRequest{ID: id, Share: share}})
	}

	// Opting in without an existing opt-out is a no-op.
	require.NoError(t, toggle(f.sharer.ID(), true))
	assert.Zero(t, f.optOuts.Count())

	require.NoError(t, toggle(f.sharer.ID(), false))
	require.NoError(t, toggle(f.sharer.ID(), false))
	assert.Equal(t, 1, f.optOuts.Count())

	require.NoError(t, toggle(f.sharer.ID(), "no"))
	assert.Equal(t, 1, f.optOuts.Count())
	assert.Len(t, f.logger.Entries("WARN"), 1)

	require.NoError(t, toggle(f.sharer.ID(), true))
	assert.Zero(t, f.optOuts.Count())

	require.NoError(t, toggle(f.global.ID(), false))
	assert.Equal(t, 1, f.optOuts.Count())

	for _, ineligible := range []uint{f.reader.ID(), f.private.ID(), f.otherTen.ID(), f.writeOnly.ID(), 999} {
		err := toggle(ineligible, false)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	}

	err := toggle(0, false)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 1, f.optOuts.Count())
}
