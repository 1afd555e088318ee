package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func duplicateKeyError() mtest.WriteError {
	return mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error collection"}
}

func TestTranslate(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no documents", in: mongo.ErrNoDocuments, want: ErrNotFound},
		{name: "duplicate key", in: mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}, want: ErrDuplicate},
		{name: "other", in: boom, want: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestUserStoreInsertDuplicateEmail(t *testing.T) {
	mt := newMockT(t)

	mt.Run("duplicate email", func(mt *mtest.T) {
		store := &UserStore{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(duplicateKeyError()))

		user := &models.User{Name: "Ada", Email: "ada@example.com"}
		err := store.Insert(context.Background(), user)
		assert.ErrorIs(mt, err, ErrDuplicate)
		assert.False(mt, user.ID.IsZero())
	})
}
