package actor

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/lrsproject/lrs/internal/application/statement/format"
	"github.com/lrsproject/lrs/internal/application/testutil"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

func TestResolveCreatesThenOverwritesProfile(t *testing.T) {
	users := testutil.NewMockUserRepository()
	r := NewResolver(users, testutil.NewMockLogger())
	ctx := context.Background()

	first, err := r.Resolve(ctx, 1, format.ActorRef{ExternalID: "jdoe", Name: "Jane"})
	require.NoError(t, err)

	second, err := r.Resolve(ctx, 1, format.ActorRef{ExternalID: "jdoe", Name: "Jane Doe"})
	require.NoError(t, err)

	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, "Jane Doe", second.Name())
	assert.Equal(t, 1, users.Count())

	other, err := r.Resolve(ctx, 2, format.ActorRef{ExternalID: "jdoe", Name: "Jane"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), other.ID())
}

func TestResolveNamelessActorKeepsStoredName(t *testing.T) {
	users := testutil.NewMockUserRepository()
	r := NewResolver(users, testutil.NewMockLogger())
	ctx := context.Background()

	first, err := r.Resolve(ctx, 1, format.ActorRef{ExternalID: "1001", Name: "Alice Smith"})
	require.NoError(t, err)

	second, err := r.Resolve(ctx, 1, format.ActorRef{ExternalID: "1001"})
	require.NoError(t, err)

	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, "Alice Smith", second.Name())

	stored, err := users.GetByExternalID(ctx, 1, "1001")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", stored.Name())
}

func TestResolveConcurrentFirstWrites(t *testing.T) {
	users := testutil.NewMockUserRepository()
	r := NewResolver(users, testutil.NewMockLogger())

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			_, err := r.Resolve(context.Background(), 1, format.ActorRef{ExternalID: "jdoe", Name: fmt.Sprintf("Jane %d", i)})
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1, users.Count())
}

func TestResolveFailures(t *testing.T) {
	users := testutil.NewMockUserRepository()
	r := NewResolver(users, testutil.NewMockLogger())

	_, err := r.Resolve(context.Background(), 0, format.ActorRef{ExternalID: "jdoe"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeActorUnresolvable, errors.GetAppError(err).Type)

	users.UpsertError = fmt.Errorf("connection reset")
	for _, name := range []string{"", "Jane"} {
		_, err = r.Resolve(context.Background(), 1, format.ActorRef{ExternalID: "jdoe", Name: name})
		require.Error(t, err)
		assert.Equal(t, errors.ErrorTypeStorage, errors.GetAppError(err).Type)
	}
}
