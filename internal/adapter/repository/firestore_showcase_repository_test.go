package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsMissingDoc(t *testing.T) {
	assert.True(t, isMissingDoc(status.Error(codes.NotFound, "document not found")))

	assert.False(t, isMissingDoc(status.Error(codes.Unavailable, "backend unavailable")))
	assert.False(t, isMissingDoc(status.Error(codes.PermissionDenied, "missing permission")))
	assert.False(t, isMissingDoc(errors.New("connection reset")))
	assert.False(t, isMissingDoc(nil))
}

func TestRosterPlayerFromDoc(t *testing.T) {
	player := rosterPlayerFromDoc("uid_1", map[string]interface{}{
		"fullName":          "Ayaan Malik",
		"profilePictureUrl": "https://example.com/ayaan.jpg",
	})
	assert.Equal(t, "uid_1", player.UID)
	assert.Equal(t, "Ayaan Malik", player.FullName)
	assert.Equal(t, "https://example.com/ayaan.jpg", player.AvatarURL)

	fallback := rosterPlayerFromDoc("uid_2", map[string]interface{}{})
	assert.Equal(t, "Player", fallback.FullName)
	assert.Empty(t, fallback.AvatarURL)
}
