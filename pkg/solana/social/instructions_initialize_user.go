package social

import (
	"crypto/ed25519"

	"github.com/solsocial/client-go/pkg/solana"
)

type InitializeUserInstructionArgs struct {
	SeedType string
}

type InitializeUserInstructionAccounts struct {
	Payer          ed25519.PublicKey
	DerivedAccount ed25519.PublicKey
}

func NewInitializeUserInstruction(
	program ed25519.PublicKey,
	accounts *InitializeUserInstructionAccounts,
	args *InitializeUserInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+4+len(args.SeedType))

	putSocialInstruction(data, SocialInstructionInitializeUser, &offset)
	putString(data, args.SeedType, &offset)

	return solana.NewInstruction(
		program,
		data,
		solana.NewAccountMeta(accounts.Payer, true),
		solana.NewAccountMeta(accounts.DerivedAccount, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
	)
}

func InitializeUserInstructionFromBinary(data []byte) (*InitializeUserInstructionArgs, error) {
	var offset int

	var instruction SocialInstruction
	if err := getSocialInstruction(data, &instruction, &offset); err != nil {
		return nil, err
	}
	if instruction != SocialInstructionInitializeUser {
		return nil, solana.ErrIncorrectInstruction
	}

	var args InitializeUserInstructionArgs
	if err := getString(data, &args.SeedType, &offset); err != nil {
		return nil, err
	}
	if offset != len(data) {
		return nil, ErrInvalidEncoding
	}

	return &args, nil
}
