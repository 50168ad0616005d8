package social

// GetSocialInstruction reads the discriminant from encoded instruction
// data without consuming the payload.
func GetSocialInstruction(data []byte) (SocialInstruction, error) {
	var offset int
	var instruction SocialInstruction
	if err := getSocialInstruction(data, &instruction, &offset); err != nil {
		return 0, err
	}

	return instruction, nil
}

// InstructionFromBinary decodes any social program instruction. The args
// value is one of *InitializeUserInstructionArgs, *FollowUserInstructionArgs,
// *UnfollowUserInstructionArgs or *PostContentInstructionArgs, and nil for
// the query instructions, which carry no payload.
func InstructionFromBinary(data []byte) (SocialInstruction, interface{}, error) {
	instruction, err := GetSocialInstruction(data)
	if err != nil {
		return 0, nil, err
	}

	switch instruction {
	case SocialInstructionInitializeUser:
		args, err := InitializeUserInstructionFromBinary(data)
		if err != nil {
			return 0, nil, err
		}
		return instruction, args, nil
	case SocialInstructionFollowUser:
		args, err := FollowUserInstructionFromBinary(data)
		if err != nil {
			return 0, nil, err
		}
		return instruction, args, nil
	case SocialInstructionUnfollowUser:
		args, err := UnfollowUserInstructionFromBinary(data)
		if err != nil {
			return 0, nil, err
		}
		return instruction, args, nil
	case SocialInstructionQueryFollower:
		if err := QueryFollowerInstructionFromBinary(data); err != nil {
			return 0, nil, err
		}
		return instruction, nil, nil
	case SocialInstructionPostContent:
		args, err := PostContentInstructionFromBinary(data)
		if err != nil {
			return 0, nil, err
		}
		return instruction, args, nil
	case SocialInstructionQueryPosts:
		if err := QueryPostsInstructionFromBinary(data); err != nil {
			return 0, nil, err
		}
		return instruction, nil, nil
	}

	return 0, nil, ErrUnknownInstruction
}
