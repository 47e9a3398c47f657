package profile

import (
	"context"

	"github.com/pranavsangichetty/portfolio/internal/domain/profile"
)

type ProfileUseCase struct {
	profile profile.Profile
}

func NewProfileUseCase(p profile.Profile) *ProfileUseCase {
	return &ProfileUseCase{profile: p}
}

type GetProfileOutput struct {
	Profile profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	return &GetProfileOutput{Profile: uc.profile}, nil
}
