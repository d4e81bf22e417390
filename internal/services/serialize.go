package services

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SerializeDocument converts one stored document into its wire form: the raw
// _id is replaced by a string "id" field and temporal values become RFC 3339
// strings. Everything else is copied as-is.
func SerializeDocument(doc bson.M) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = wireValue(v)
	}
	switch id := doc["_id"].(type) {
	case nil:
	case primitive.ObjectID:
		out["id"] = id.Hex()
	case string:
		out["id"] = id
	default:
		out["id"] = fmt.Sprintf("%v", id)
	}
	return out
}

func wireValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	default:
		return v
	}
}
