package social

import (
	"crypto/ed25519"

	"github.com/solsocial/client-go/pkg/solana"
)

type GetUserAccountAddressArgs struct {
	User ed25519.PublicKey
	Seed []byte
}

// GetUserAccountAddress derives an account address from the user's
// identity key and a seed. The program only recognizes UserProfileSeed
// and UserPostSeed.
func GetUserAccountAddress(program ed25519.PublicKey, args *GetUserAccountAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		program,
		args.User,
		args.Seed,
	)
}

type GetUserProfileAddressArgs struct {
	User ed25519.PublicKey
}

// GetUserProfileAddress derives the address of the account holding the
// user's UserProfile.
func GetUserProfileAddress(program ed25519.PublicKey, args *GetUserProfileAddressArgs) (ed25519.PublicKey, uint8, error) {
	return GetUserAccountAddress(program, &GetUserAccountAddressArgs{
		User: args.User,
		Seed: UserProfileSeed,
	})
}

type GetUserPostAddressArgs struct {
	User ed25519.PublicKey
}

// GetUserPostAddress derives the address of the account holding the
// user's UserPost.
func GetUserPostAddress(program ed25519.PublicKey, args *GetUserPostAddressArgs) (ed25519.PublicKey, uint8, error) {
	return GetUserAccountAddress(program, &GetUserAccountAddressArgs{
		User: args.User,
		Seed: UserPostSeed,
	})
}
