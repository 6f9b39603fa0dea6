//go:build container

package mongo

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/glamslot/booking/internal/core/domain"
)

// startMongo runs a mongod container. With replicaSet it is initiated as a single
// member set so multi-document transactions are available.
func startMongo(t *testing.T, replicaSet bool) *mongo.Database {
	t.Helper()
	tc.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
	}
	if replicaSet {
		req.Cmd = []string{"--replSet", "rs0", "--bind_ip_all"}
	}
	ctr, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	tc.CleanupContainer(t, ctr)
	require.NoError(t, err)

	if replicaSet {
		code, out, err := ctr.Exec(ctx, []string{"mongosh", "--quiet", "--eval",
			`rs.initiate({_id: "rs0", members: [{_id: 0, host: "localhost:27017"}]})`})
		require.NoError(t, err)
		body, _ := io.ReadAll(out)
		require.Equalf(t, 0, code, "rs.initiate failed: %s", body)
	}

	endpoint, err := ctr.PortEndpoint(ctx, "27017/tcp", "mongodb")
	require.NoError(t, err)
	client, db, err := Connect(ctx, Config{URI: endpoint + "/?directConnection=true", Database: "salon_booking_test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	if replicaSet {
		require.Eventually(t, func() bool {
			var hello bson.M
			err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
			return err == nil && hello["isWritablePrimary"] == true
		}, 30*time.Second, 500*time.Millisecond, "replica set never elected a primary")
	}
	return db
}

func seedMethods(t *testing.T, repo *PaymentMethodRepository, owner string, ids ...string) {
	t.Helper()
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range ids {
		require.NoError(t, repo.Insert(context.Background(), &domain.PaymentMethod{
			ID:         id,
			OwnerID:    owner,
			Kind:       domain.PaymentCard,
			Last4:      "4242",
			HolderName: "Jane",
			IsDefault:  i == 0,
			IsActive:   true,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}
}

func defaultIDs(t *testing.T, repo *PaymentMethodRepository, owner string) []string {
	t.Helper()
	methods, err := repo.List(context.Background(), owner)
	require.NoError(t, err)
	var ids []string
	for _, pm := range methods {
		if pm.IsDefault {
			ids = append(ids, pm.ID)
		}
	}
	return ids
}

func TestPaymentMethodRepository_SetDefaultKeepsOneDefault(t *testing.T) {
	cases := map[string]bool{
		"standalone":  false,
		"replica set": true,
	}
	for name, replicaSet := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := NewPaymentMethodRepository(startMongo(t, replicaSet))
			require.NoError(t, repo.EnsureIndexes(ctx))

			seedMethods(t, repo, "owner-1", "pm-a", "pm-b", "pm-c")
			seedMethods(t, repo, "owner-2", "pm-x")

			require.NoError(t, repo.SetDefault(ctx, "owner-1", "pm-c"))
			assert.Equal(t, []string{"pm-c"}, defaultIDs(t, repo, "owner-1"))
			assert.Equal(t, []string{"pm-x"}, defaultIDs(t, repo, "owner-2"), "other owners are untouched")

			err := repo.SetDefault(ctx, "owner-1", "pm-missing")
			assert.ErrorIs(t, err, domain.ErrPaymentMethodNotFound)
			assert.Equal(t, []string{"pm-c"}, defaultIDs(t, repo, "owner-1"), "a failed switch keeps the current default")

			err = repo.SetDefault(ctx, "owner-2", "pm-a")
			assert.ErrorIs(t, err, domain.ErrPaymentMethodNotFound, "methods of another owner cannot be selected")

			require.NoError(t, repo.SetDefault(ctx, "owner-1", ""))
			assert.Empty(t, defaultIDs(t, repo, "owner-1"))
		})
	}
}

func TestIsTransactionUnsupported_Standalone(t *testing.T) {
	ctx := context.Background()
	db := startMongo(t, false)

	sess, err := db.Client().StartSession()
	require.NoError(t, err)
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return db.Collection("tx_check").InsertOne(sc, bson.M{"n": 1})
	})
	require.Error(t, err)
	assert.True(t, isTransactionUnsupported(err))
}
