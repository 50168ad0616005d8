package social

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfile_RoundTrip(t *testing.T) {
	keys := generateKeys(t, 2)

	profile := NewUserProfile()
	profile.Follow(keys[0])
	profile.Follow(keys[1])

	assert.EqualValues(t, 2, profile.DataLen)

	marshalled := profile.Marshal()
	require.Len(t, marshalled, UserProfileHeaderSize+2*ed25519.PublicKeySize)

	var actual UserProfile
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, profile.DataLen, actual.DataLen)
	assert.Equal(t, profile.Follows, actual.Follows)
}

func TestUserProfile_Empty(t *testing.T) {
	profile := NewUserProfile()

	marshalled := profile.Marshal()
	require.Len(t, marshalled, UserProfileHeaderSize)

	var actual UserProfile
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.EqualValues(t, 0, actual.DataLen)
	assert.Empty(t, actual.Follows)
}

func TestUserProfile_Unfollow(t *testing.T) {
	keys := generateKeys(t, 3)

	profile := NewUserProfile()
	profile.Follow(keys[0])
	profile.Follow(keys[1])

	profile.Unfollow(keys[0])
	assert.EqualValues(t, 1, profile.DataLen)
	require.Len(t, profile.Follows, 1)
	assert.Equal(t, keys[1], profile.Follows[0])

	// Unfollowing a user not on the list is a no-op.
	profile.Unfollow(keys[2])
	assert.EqualValues(t, 1, profile.DataLen)
	require.Len(t, profile.Follows, 1)
	assert.Equal(t, keys[1], profile.Follows[0])

	profile.Unfollow(keys[1])
	assert.EqualValues(t, 0, profile.DataLen)
	assert.Empty(t, profile.Follows)
}

func TestUserProfile_UnfollowPreservesOrder(t *testing.T) {
	keys := generateKeys(t, 4)

	profile := NewUserProfile()
	for _, key := range keys {
		profile.Follow(key)
	}

	profile.Unfollow(keys[1])

	require.Len(t, profile.Follows, 3)
	assert.Equal(t, keys[0], profile.Follows[0])
	assert.Equal(t, keys[2], profile.Follows[1])
	assert.Equal(t, keys[3], profile.Follows[2])
}

func TestUserProfile_TrailingBytes(t *testing.T) {
	keys := generateKeys(t, 1)

	profile := NewUserProfile()
	profile.Follow(keys[0])

	// Account buffers are allocated larger than the state they hold.
	buffer := make([]byte, 1024)
	copy(buffer, profile.Marshal())

	var actual UserProfile
	require.NoError(t, actual.Unmarshal(buffer))
	assert.Equal(t, profile.DataLen, actual.DataLen)
	assert.Equal(t, profile.Follows, actual.Follows)
}

func TestUserProfile_InvalidData(t *testing.T) {
	keys := generateKeys(t, 2)

	profile := NewUserProfile()
	profile.Follow(keys[0])
	profile.Follow(keys[1])

	marshalled := profile.Marshal()

	var actual UserProfile
	assert.Equal(t, ErrTruncatedData, actual.Unmarshal(nil))
	assert.Equal(t, ErrTruncatedData, actual.Unmarshal(marshalled[:UserProfileHeaderSize-1]))
	assert.Equal(t, ErrTruncatedData, actual.Unmarshal(marshalled[:len(marshalled)-1]))

	// Length prefix claiming more entries than could fit.
	oversized := make([]byte, len(marshalled))
	copy(oversized, marshalled)
	oversized[2] = 0xff
	oversized[3] = 0xff
	oversized[4] = 0xff
	oversized[5] = 0xff
	assert.Equal(t, ErrTruncatedData, actual.Unmarshal(oversized))

	// A failed decode leaves the receiver untouched.
	assert.EqualValues(t, 0, actual.DataLen)
	assert.Empty(t, actual.Follows)
}

func TestUserPost_RoundTrip(t *testing.T) {
	userPost := NewUserPost()
	userPost.AddPost(NewPost("hello, world", 1700000000))
	userPost.AddPost(NewPost("gm ☀", 1700000060))

	assert.EqualValues(t, 2, userPost.PostCount)

	marshalled := userPost.Marshal()
	require.Len(t, marshalled, userPost.Size())

	var actual UserPost
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, userPost.PostCount, actual.PostCount)
	assert.Equal(t, userPost.Posts, actual.Posts)
}

func TestUserPost_Empty(t *testing.T) {
	userPost := NewUserPost()

	marshalled := userPost.Marshal()
	require.Len(t, marshalled, UserPostHeaderSize)

	var actual UserPost
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.EqualValues(t, 0, actual.PostCount)
	assert.Empty(t, actual.Posts)
}

func TestUserPost_TrailingBytes(t *testing.T) {
	userPost := NewUserPost()
	userPost.AddPost(NewPost("first", 1))

	buffer := make([]byte, 1024)
	copy(buffer, userPost.Marshal())

	var actual UserPost
	require.NoError(t, actual.Unmarshal(buffer))
	assert.Equal(t, userPost.PostCount, actual.PostCount)
	assert.Equal(t, userPost.Posts, actual.Posts)
}

func TestUserPost_InvalidData(t *testing.T) {
	userPost := NewUserPost()
	userPost.AddPost(NewPost("hi", 42))

	marshalled := userPost.Marshal()

	var actual UserPost
	assert.Equal(t, ErrTruncatedData, actual.Unmarshal(nil))
	assert.Equal(t, ErrTruncatedData, actual.Unmarshal(marshalled[:UserPostHeaderSize-1]))
	assert.Equal(t, ErrTruncatedData, actual.Unmarshal(marshalled[:len(marshalled)-1]))

	// Length prefix claiming more entries than could fit.
	oversized := make([]byte, len(marshalled))
	copy(oversized, marshalled)
	oversized[8] = 0xff
	oversized[9] = 0xff
	oversized[10] = 0xff
	oversized[11] = 0xff
	assert.Equal(t, ErrTruncatedData, actual.Unmarshal(oversized))

	// Content bytes that aren't valid UTF-8.
	corrupted := make([]byte, len(marshalled))
	copy(corrupted, marshalled)
	corrupted[UserPostHeaderSize+4] = 0xff
	corrupted[UserPostHeaderSize+5] = 0xfe
	assert.Equal(t, ErrInvalidEncoding, actual.Unmarshal(corrupted))

	// A failed decode leaves the receiver untouched.
	assert.EqualValues(t, 0, actual.PostCount)
	assert.Empty(t, actual.Posts)
}

func generateKeys(t *testing.T, amount int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, amount)

	for i := 0; i < amount; i++ {
		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = pub
	}

	return keys
}
