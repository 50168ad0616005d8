// Package social provides a thin client for the on-chain social graph
// program. It derives the accounts an operation touches, builds and signs
// the transaction, and hands it to the Solana RPC layer. It holds no
// state between calls.
package social

import (
	"crypto/ed25519"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/solsocial/client-go/pkg/solana"
	socialprogram "github.com/solsocial/client-go/pkg/solana/social"
)

// Client submits social program operations and reads back the program's
// account state. The RPC endpoint, program id and commitment level are
// injected; the zero value is not usable.
type Client struct {
	log        *logrus.Entry
	sol        solana.Client
	programID  ed25519.PublicKey
	commitment solana.Commitment
}

type Option func(*Client)

// WithCommitment overrides the commitment level used for submissions and
// account reads. The default is confirmed.
func WithCommitment(commitment solana.Commitment) Option {
	return func(c *Client) {
		c.commitment = commitment
	}
}

func NewClient(sol solana.Client, programID ed25519.PublicKey, opts ...Option) *Client {
	c := &Client{
		log:        logrus.StandardLogger().WithField("type", "social/client"),
		sol:        sol,
		programID:  programID,
		commitment: solana.CommitmentConfirmed,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// InitializeUser creates the payer's account for the provided seed type.
// The program recognizes "profile" and "post"; each must be initialized
// explicitly before it can be mutated.
func (c *Client) InitializeUser(payer ed25519.PrivateKey, seedType string) (solana.Signature, error) {
	user := payer.Public().(ed25519.PublicKey)

	derived, _, err := socialprogram.GetUserAccountAddress(c.programID, &socialprogram.GetUserAccountAddressArgs{
		User: user,
		Seed: []byte(seedType),
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive user account address")
	}

	return c.submit(payer, socialprogram.NewInitializeUserInstruction(
		c.programID,
		&socialprogram.InitializeUserInstructionAccounts{
			Payer:          user,
			DerivedAccount: derived,
		},
		&socialprogram.InitializeUserInstructionArgs{
			SeedType: seedType,
		},
	))
}

// FollowUser appends the target user to the payer's follow list.
func (c *Client) FollowUser(payer ed25519.PrivateKey, userToFollow ed25519.PublicKey) (solana.Signature, error) {
	profile, _, err := socialprogram.GetUserProfileAddress(c.programID, &socialprogram.GetUserProfileAddressArgs{
		User: payer.Public().(ed25519.PublicKey),
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive profile address")
	}

	return c.submit(payer, socialprogram.NewFollowUserInstruction(
		c.programID,
		&socialprogram.FollowUserInstructionAccounts{
			UserProfile: profile,
		},
		&socialprogram.FollowUserInstructionArgs{
			UserToFollow: userToFollow,
		},
	))
}

// UnfollowUser removes the target user from the payer's follow list.
func (c *Client) UnfollowUser(payer ed25519.PrivateKey, userToUnfollow ed25519.PublicKey) (solana.Signature, error) {
	profile, _, err := socialprogram.GetUserProfileAddress(c.programID, &socialprogram.GetUserProfileAddressArgs{
		User: payer.Public().(ed25519.PublicKey),
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive profile address")
	}

	return c.submit(payer, socialprogram.NewUnfollowUserInstruction(
		c.programID,
		&socialprogram.UnfollowUserInstructionAccounts{
			UserProfile: profile,
		},
		&socialprogram.UnfollowUserInstructionArgs{
			UserToUnfollow: userToUnfollow,
		},
	))
}

// QueryFollowers submits a query instruction, causing the program to log
// the payer's follow list on chain. Use GetProfile for a direct read.
func (c *Client) QueryFollowers(payer ed25519.PrivateKey) (solana.Signature, error) {
	profile, _, err := socialprogram.GetUserProfileAddress(c.programID, &socialprogram.GetUserProfileAddressArgs{
		User: payer.Public().(ed25519.PublicKey),
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive profile address")
	}

	return c.submit(payer, socialprogram.NewQueryFollowerInstruction(
		c.programID,
		&socialprogram.QueryFollowerInstructionAccounts{
			UserProfile: profile,
		},
	))
}

// PostContent appends a post to the payer's post history. The timestamp
// is assigned by the program.
func (c *Client) PostContent(payer ed25519.PrivateKey, content string) (solana.Signature, error) {
	posts, _, err := socialprogram.GetUserPostAddress(c.programID, &socialprogram.GetUserPostAddressArgs{
		User: payer.Public().(ed25519.PublicKey),
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive post address")
	}

	return c.submit(payer, socialprogram.NewPostContentInstruction(
		c.programID,
		&socialprogram.PostContentInstructionAccounts{
			UserPost: posts,
		},
		&socialprogram.PostContentInstructionArgs{
			Content: content,
		},
	))
}

// QueryPosts submits a query instruction, causing the program to log the
// payer's post history on chain. Use GetPosts for a direct read.
func (c *Client) QueryPosts(payer ed25519.PrivateKey) (solana.Signature, error) {
	posts, _, err := socialprogram.GetUserPostAddress(c.programID, &socialprogram.GetUserPostAddressArgs{
		User: payer.Public().(ed25519.PublicKey),
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive post address")
	}

	return c.submit(payer, socialprogram.NewQueryPostsInstruction(
		c.programID,
		&socialprogram.QueryPostsInstructionAccounts{
			UserPost: posts,
		},
	))
}

// GetProfile reads and decodes the user's profile account.
func (c *Client) GetProfile(user ed25519.PublicKey) (*socialprogram.UserProfile, error) {
	address, _, err := socialprogram.GetUserProfileAddress(c.programID, &socialprogram.GetUserProfileAddressArgs{
		User: user,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive profile address")
	}

	info, err := c.sol.GetAccountInfo(address, c.commitment)
	if err != nil {
		return nil, err
	}

	var profile socialprogram.UserProfile
	if err := profile.Unmarshal(info.Data); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetPosts reads and decodes the user's post account.
func (c *Client) GetPosts(user ed25519.PublicKey) (*socialprogram.UserPost, error) {
	address, _, err := socialprogram.GetUserPostAddress(c.programID, &socialprogram.GetUserPostAddressArgs{
		User: user,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive post address")
	}

	info, err := c.sol.GetAccountInfo(address, c.commitment)
	if err != nil {
		return nil, err
	}

	var posts socialprogram.UserPost
	if err := posts.Unmarshal(info.Data); err != nil {
		return nil, err
	}

	return &posts, nil
}

// submit compiles, signs and sends a single-instruction transaction. RPC
// failures are returned to the caller untouched.
func (c *Client) submit(payer ed25519.PrivateKey, instruction solana.Instruction) (solana.Signature, error) {
	log := c.log.WithField("trace_id", uuid.NewString())

	txn := solana.NewTransaction(payer.Public().(ed25519.PublicKey), instruction)

	blockhash, err := c.sol.GetLatestBlockhash()
	if err != nil {
		return solana.Signature{}, err
	}
	txn.SetBlockhash(blockhash)

	if err := txn.Sign(payer); err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to sign transaction")
	}

	sig, err := c.sol.SubmitTransaction(txn, c.commitment)
	if err != nil {
		return sig, err
	}

	log.WithField("signature", base58.Encode(sig[:])).Debug("submitted transaction")

	return sig, nil
}
