package social

import (
	"crypto/ed25519"

	"github.com/solsocial/client-go/pkg/solana"
)

type QueryPostsInstructionAccounts struct {
	UserPost ed25519.PublicKey
}

func NewQueryPostsInstruction(
	program ed25519.PublicKey,
	accounts *QueryPostsInstructionAccounts,
) solana.Instruction {
	var offset int

	// No arguments beyond the discriminant
	data := make([]byte, 1)

	putSocialInstruction(data, SocialInstructionQueryPosts, &offset)

	return solana.NewInstruction(
		program,
		data,
		solana.NewAccountMeta(accounts.UserPost, false),
	)
}

func QueryPostsInstructionFromBinary(data []byte) error {
	var offset int

	var instruction SocialInstruction
	if err := getSocialInstruction(data, &instruction, &offset); err != nil {
		return err
	}
	if instruction != SocialInstructionQueryPosts {
		return solana.ErrIncorrectInstruction
	}
	if offset != len(data) {
		return ErrInvalidEncoding
	}

	return nil
}
