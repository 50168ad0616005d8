package social

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// UserProfileHeaderSize is the size of an empty serialized profile.
const UserProfileHeaderSize = (2 + // data_len
	4) // follows length prefix

// UserProfile is the account state held at the user's profile address.
//
// Follows is ordered by follow time. DataLen mirrors len(Follows) on every
// mutation; the codec itself does not enforce the relationship.
type UserProfile struct {
	DataLen uint16
	Follows []ed25519.PublicKey
}

func NewUserProfile() *UserProfile {
	return &UserProfile{
		Follows: make([]ed25519.PublicKey, 0),
	}
}

// Follow appends the user to the follow list. Duplicates are not
// prevented at this layer.
func (obj *UserProfile) Follow(user ed25519.PublicKey) {
	obj.Follows = append(obj.Follows, user)
	obj.DataLen = uint16(len(obj.Follows))
}

// Unfollow removes every entry matching the user, preserving the relative
// order of the rest. Unfollowing an absent user is a no-op.
func (obj *UserProfile) Unfollow(user ed25519.PublicKey) {
	filtered := obj.Follows[:0]
	for _, followed := range obj.Follows {
		if !bytes.Equal(followed, user) {
			filtered = append(filtered, followed)
		}
	}

	obj.Follows = filtered
	obj.DataLen = uint16(len(obj.Follows))
}

func (obj *UserProfile) Size() int {
	return UserProfileHeaderSize + ed25519.PublicKeySize*len(obj.Follows)
}

func (obj *UserProfile) Marshal() []byte {
	var offset int
	data := make([]byte, obj.Size())

	putUint16(data, obj.DataLen, &offset)
	putUint32(data, uint32(len(obj.Follows)), &offset)
	for _, followed := range obj.Follows {
		putKey(data, followed, &offset)
	}

	return data
}

// Unmarshal decodes a serialized profile. The receiver is only written on
// success. Trailing bytes are tolerated, since account buffers are
// allocated larger than the state they hold.
func (obj *UserProfile) Unmarshal(data []byte) error {
	var offset int

	var dataLen uint16
	if err := getUint16(data, &dataLen, &offset); err != nil {
		return err
	}

	var numFollows uint32
	if err := getUint32(data, &numFollows, &offset); err != nil {
		return err
	}
	if int(numFollows) > (len(data)-offset)/ed25519.PublicKeySize {
		return ErrTruncatedData
	}

	follows := make([]ed25519.PublicKey, 0, numFollows)
	for i := 0; i < int(numFollows); i++ {
		var followed ed25519.PublicKey
		if err := getKey(data, &followed, &offset); err != nil {
			return err
		}
		follows = append(follows, followed)
	}

	obj.DataLen = dataLen
	obj.Follows = follows

	return nil
}

func (obj *UserProfile) String() string {
	encoded := make([]string, len(obj.Follows))
	for i, followed := range obj.Follows {
		encoded[i] = base58.Encode(followed)
	}

	return fmt.Sprintf(
		"UserProfile{data_len=%d,follows=[%s]}",
		obj.DataLen,
		strings.Join(encoded, ","),
	)
}
