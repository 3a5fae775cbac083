package mongo

import (
	"errors"
	"strings"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// Error codes raised by Cosmos DB (Mongo API) when write capacity is exceeded.
const (
	codeForbidden      = 13
	codeCosmosThrottle = 16500
)

// IsQuotaError classifies an insert failure as the quota/forbidden class that
// routes room writes to the fallback cache. Driver error codes are checked
// first; the substring match covers providers that only surface the class in
// the message text.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}

	var we mongodrv.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == codeForbidden || e.Code == codeCosmosThrottle {
				return true
			}
		}
	}
	var ce mongodrv.CommandError
	if errors.As(err, &ce) {
		if ce.Code == codeForbidden || ce.Code == codeCosmosThrottle {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "forbidden")
}
