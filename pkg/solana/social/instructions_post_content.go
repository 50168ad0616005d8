package social

import (
	"crypto/ed25519"

	"github.com/solsocial/client-go/pkg/solana"
)

type PostContentInstructionArgs struct {
	Content string
}

type PostContentInstructionAccounts struct {
	UserPost ed25519.PublicKey
}

func NewPostContentInstruction(
	program ed25519.PublicKey,
	accounts *PostContentInstructionAccounts,
	args *PostContentInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+4+len(args.Content))

	putSocialInstruction(data, SocialInstructionPostContent, &offset)
	putString(data, args.Content, &offset)

	return solana.NewInstruction(
		program,
		data,
		solana.NewAccountMeta(accounts.UserPost, false),
	)
}

func PostContentInstructionFromBinary(data []byte) (*PostContentInstructionArgs, error) {
	var offset int

	var instruction SocialInstruction
	if err := getSocialInstruction(data, &instruction, &offset); err != nil {
		return nil, err
	}
	if instruction != SocialInstructionPostContent {
		return nil, solana.ErrIncorrectInstruction
	}

	var args PostContentInstructionArgs
	if err := getString(data, &args.Content, &offset); err != nil {
		return nil, err
	}
	if offset != len(data) {
		return nil, ErrInvalidEncoding
	}

	return &args, nil
}
