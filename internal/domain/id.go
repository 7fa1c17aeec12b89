package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDLength is the length of every entity identifier: 12 bytes rendered as hex.
const IDLength = 24

// NewID returns a fresh entity identifier. Identifiers are 24 lower-case hex
// characters; the leading bytes encode the creation time, so they sort
// roughly by age.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ParseID checks that s is a 24 character hex identifier and returns its
// canonical lower-case form.
func ParseID(s string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return oid.Hex(), nil
}

// IsValidID reports whether s is a well-formed identifier.
func IsValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}
