package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glamslot/booking/internal/core/domain"
)

const collectionPaymentMethods = "payment_methods"

// PaymentMethodRepository implements ports.PaymentMethodRepository using MongoDB.
type PaymentMethodRepository struct {
	client *mongo.Client
	col    *mongo.Collection
}

func NewPaymentMethodRepository(db *mongo.Database) *PaymentMethodRepository {
	return &PaymentMethodRepository{client: db.Client(), col: db.Collection(collectionPaymentMethods)}
}

// List returns the owner's methods, oldest first.
func (r *PaymentMethodRepository) List(ctx context.Context, ownerID string) ([]*domain.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*domain.PaymentMethod, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode payment methods: %w", err)
	}
	return out, nil
}

func (r *PaymentMethodRepository) Get(ctx context.Context, ownerID, id string) (*domain.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var pm domain.PaymentMethod
	err := r.col.FindOne(ctx, bson.M{"_id": id, "owner_id": ownerID}).Decode(&pm)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return &pm, nil
}

func (r *PaymentMethodRepository) Insert(ctx context.Context, pm *domain.PaymentMethod) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, pm)
	return err
}

func (r *PaymentMethodRepository) Update(ctx context.Context, pm *domain.PaymentMethod) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": pm.ID, "owner_id": pm.OwnerID}, pm)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPaymentMethodNotFound
	}
	return nil
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPaymentMethodNotFound
	}
	return nil
}

// SetDefault clears the previous default and sets the new one inside a transaction.
// Standalone servers cannot run transactions; there the two updates run in order.
func (r *PaymentMethodRepository) SetDefault(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sess, err := r.client.StartSession()
	if err != nil {
		return r.setDefault(ctx, ownerID, id)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, r.setDefault(sc, ownerID, id)
	})
	if isTransactionUnsupported(err) {
		return r.setDefault(ctx, ownerID, id)
	}
	return err
}

func (r *PaymentMethodRepository) setDefault(ctx context.Context, ownerID, id string) error {
	if id != "" {
		n, err := r.col.CountDocuments(ctx, bson.M{"_id": id, "owner_id": ownerID})
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrPaymentMethodNotFound
		}
	}

	stale := bson.M{"owner_id": ownerID, "is_default": true, "_id": bson.M{"$ne": id}}
	if _, err := r.col.UpdateMany(ctx, stale, bson.M{"$set": bson.M{"is_default": false}}); err != nil {
		return fmt.Errorf("clear default: %w", err)
	}
	if id == "" {
		return nil
	}
	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": id, "owner_id": ownerID}, bson.M{"$set": bson.M{"is_default": true}}); err != nil {
		return fmt.Errorf("set default: %w", err)
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the payment_methods collection.
func (r *PaymentMethodRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: 1}}},
	})
	return err
}

// isTransactionUnsupported matches the IllegalOperation error a standalone mongod
// returns for multi-document transactions.
func isTransactionUnsupported(err error) bool {
	var se mongo.ServerError
	if errors.As(err, &se) {
		return se.HasErrorCode(20)
	}
	return false
}
