package mongo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/avatarmeet/backend/internal/mongo"

	"github.com/stretchr/testify/assert"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "quota in message", err: errors.New("Quota exceeded for collection"), want: true},
		{name: "forbidden in message", err: errors.New("operation Forbidden"), want: true},
		{name: "lowercase quota", err: errors.New("db quota reached"), want: true},
		{name: "unrelated error", err: errors.New("connection reset by peer"), want: false},
		{name: "not found", err: mongodrv.ErrNoDocuments, want: false},
		{
			name: "cosmos throttle command error",
			err:  mongodrv.CommandError{Code: 16500, Message: "Request rate is large"},
			want: true,
		},
		{
			name: "forbidden command error",
			err:  mongodrv.CommandError{Code: 13, Message: "Unauthorized"},
			want: true,
		},
		{
			name: "other command error",
			err:  mongodrv.CommandError{Code: 11000, Message: "duplicate key"},
			want: false,
		},
		{
			name: "forbidden write exception",
			err: mongodrv.WriteException{WriteErrors: mongodrv.WriteErrors{
				{Code: 13, Message: "not authorized"},
			}},
			want: true,
		},
		{
			name: "wrapped throttle",
			err:  fmt.Errorf("insert room: %w", mongodrv.CommandError{Code: 16500}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mongo.IsQuotaError(tt.err))
		})
	}
}
