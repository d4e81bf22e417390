package repositories

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildCompanyFilter translates the optional list-endpoint parameters into a
// store filter. Absent parameters add no constraint; the name search matches
// case-insensitively as a literal substring, with pattern metacharacters
// escaped so user input cannot reach the store's regex engine.
func BuildCompanyFilter(name, country, status string) bson.M {
	filter := bson.M{}
	if name != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(name), "$options": "i"}
	}
	if country != "" {
		filter["country"] = country
	}
	if status != "" {
		filter["status"] = status
	}
	return filter
}
