/*
Package randx provides functions for generating cryptographically secure random
identifiers.

It generates the fixed-length base36 room IDs shown to users in the room
sidebar and standard UUID message IDs.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	// Base36Chars defines the character set used for room IDs (0-9, a-z).
	Base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

	// Base36Len is the total number of characters in the base36 character set.
	Base36Len = int64(len(Base36Chars))

	// RoomIDLength is the fixed length of a generated room ID.
	RoomIDLength = 9
)

// RoomID generates a base36 room identifier of RoomIDLength characters using
// crypto/rand. The ID is opaque and stable for the room's lifetime; the room
// name, not the ID, is the store's primary key.
func RoomID() (string, error) {
	result := make([]byte, RoomIDLength)

	for i := range RoomIDLength {
		num, err := rand.Int(rand.Reader, big.NewInt(Base36Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number for room id: %v", err)
		}

		result[i] = Base36Chars[num.Int64()]
	}

	return string(result), nil
}

// MessageID generates a standard UUID v4 string to serve as a unique message identifier.
func MessageID() string {
	return uuid.New().String()
}

// IsValidRoomID checks that the given string has the room ID length and
// contains only base36 characters.
func IsValidRoomID(id string) bool {
	if len(id) != RoomIDLength {
		return false
	}

	for _, char := range id {
		if !strings.ContainsRune(Base36Chars, char) {
			return false
		}
	}

	return true
}
