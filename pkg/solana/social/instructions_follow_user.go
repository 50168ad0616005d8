package social

import (
	"crypto/ed25519"

	"github.com/solsocial/client-go/pkg/solana"
)

const FollowUserInstructionSize = (1 + // discriminant
	ed25519.PublicKeySize) // user_to_follow

type FollowUserInstructionArgs struct {
	UserToFollow ed25519.PublicKey
}

type FollowUserInstructionAccounts struct {
	UserProfile ed25519.PublicKey
}

func NewFollowUserInstruction(
	program ed25519.PublicKey,
	accounts *FollowUserInstructionAccounts,
	args *FollowUserInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, FollowUserInstructionSize)

	putSocialInstruction(data, SocialInstructionFollowUser, &offset)
	putKey(data, args.UserToFollow, &offset)

	return solana.NewInstruction(
		program,
		data,
		solana.NewAccountMeta(accounts.UserProfile, false),
	)
}

func FollowUserInstructionFromBinary(data []byte) (*FollowUserInstructionArgs, error) {
	var offset int

	var instruction SocialInstruction
	if err := getSocialInstruction(data, &instruction, &offset); err != nil {
		return nil, err
	}
	if instruction != SocialInstructionFollowUser {
		return nil, solana.ErrIncorrectInstruction
	}

	var args FollowUserInstructionArgs
	if err := getKey(data, &args.UserToFollow, &offset); err != nil {
		return nil, err
	}
	if offset != len(data) {
		return nil, ErrInvalidEncoding
	}

	return &args, nil
}
