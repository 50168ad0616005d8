package social

import (
	"crypto/ed25519"

	"github.com/solsocial/client-go/pkg/solana"
)

const UnfollowUserInstructionSize = (1 + // discriminant
	ed25519.PublicKeySize) // user_to_unfollow

type UnfollowUserInstructionArgs struct {
	UserToUnfollow ed25519.PublicKey
}

type UnfollowUserInstructionAccounts struct {
	UserProfile ed25519.PublicKey
}

func NewUnfollowUserInstruction(
	program ed25519.PublicKey,
	accounts *UnfollowUserInstructionAccounts,
	args *UnfollowUserInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, UnfollowUserInstructionSize)

	putSocialInstruction(data, SocialInstructionUnfollowUser, &offset)
	putKey(data, args.UserToUnfollow, &offset)

	return solana.NewInstruction(
		program,
		data,
		solana.NewAccountMeta(accounts.UserProfile, false),
	)
}

func UnfollowUserInstructionFromBinary(data []byte) (*UnfollowUserInstructionArgs, error) {
	var offset int

	var instruction SocialInstruction
	if err := getSocialInstruction(data, &instruction, &offset); err != nil {
		return nil, err
	}
	if instruction != SocialInstructionUnfollowUser {
		return nil, solana.ErrIncorrectInstruction
	}

	var args UnfollowUserInstructionArgs
	if err := getKey(data, &args.UserToUnfollow, &offset); err != nil {
		return nil, err
	}
	if offset != len(data) {
		return nil, ErrInvalidEncoding
	}

	return &args, nil
}
