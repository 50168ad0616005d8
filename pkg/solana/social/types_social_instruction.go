package social

// SocialInstruction is the discriminant leading every encoded instruction.
//
// Values are a wire contract shared with the on-chain program. The order
// below is final; never reorder or renumber.
type SocialInstruction uint8

const (
	SocialInstructionInitializeUser SocialInstruction = iota
	SocialInstructionFollowUser
	SocialInstructionUnfollowUser
	SocialInstructionQueryFollower
	SocialInstructionPostContent
	SocialInstructionQueryPosts
)

func (s SocialInstruction) String() string {
	switch s {
	case SocialInstructionInitializeUser:
		return "initialize_user"
	case SocialInstructionFollowUser:
		return "follow_user"
	case SocialInstructionUnfollowUser:
		return "unfollow_user"
	case SocialInstructionQueryFollower:
		return "query_follower"
	case SocialInstructionPostContent:
		return "post_content"
	case SocialInstructionQueryPosts:
		return "query_posts"
	}

	return "unknown"
}

func putSocialInstruction(dst []byte, v SocialInstruction, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getSocialInstruction(src []byte, dst *SocialInstruction, offset *int) error {
	if len(src)-*offset < 1 {
		return ErrTruncatedData
	}

	v := SocialInstruction(src[*offset])
	if v > SocialInstructionQueryPosts {
		return ErrUnknownInstruction
	}

	*dst = v
	*offset += 1
	return nil
}
