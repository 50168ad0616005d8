// Package social implements the client side of the on-chain social graph
// program: account address derivation, the instruction set, and the
// (de)serialization of the program's account state.
//
// The program keeps two accounts per user, both program derived addresses
// seeded off the user's identity key: a profile account holding the follow
// list, and a post account holding the post history.
package social

import (
	"crypto/ed25519"
)

var (
	// Seeds fixed by the on-chain program. The profile account holds a
	// UserProfile, the post account holds a UserPost.
	UserProfileSeed = []byte("profile")
	UserPostSeed    = []byte("post")
)

var (
	SYSTEM_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
)
