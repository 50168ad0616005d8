package social

import (
	"crypto/ed25519"

	"github.com/solsocial/client-go/pkg/solana"
)

type QueryFollowerInstructionAccounts struct {
	UserProfile ed25519.PublicKey
}

func NewQueryFollowerInstruction(
	program ed25519.PublicKey,
	accounts *QueryFollowerInstructionAccounts,
) solana.Instruction {
	var offset int

	// No arguments beyond the discriminant
	data := make([]byte, 1)

	putSocialInstruction(data, SocialInstructionQueryFollower, &offset)

	return solana.NewInstruction(
		program,
		data,
		solana.NewAccountMeta(accounts.UserProfile, false),
	)
}

func QueryFollowerInstructionFromBinary(data []byte) error {
	var offset int

	var instruction SocialInstruction
	if err := getSocialInstruction(data, &instruction, &offset); err != nil {
		return err
	}
	if instruction != SocialInstructionQueryFollower {
		return solana.ErrIncorrectInstruction
	}
	if offset != len(data) {
		return ErrInvalidEncoding
	}

	return nil
}
