package domain

import (
	"context"
	"time"
)

type CandidateProfile struct {
	ID          int64     `json:"id"`
	CandidateID string    `json:"candidateId"`
	Schooling   string    `json:"schooling"`
	Institution string    `json:"institution"`
	Summary     string    `json:"summary"`
	MainSkill   string    `json:"mainSkill"`
	OtherSkills string    `json:"otherSkills"`
	Experience  string    `json:"experience"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProfileInput struct {
	Schooling   string `json:"schooling" validate:"max=120,no_emoji"`
	Institution string `json:"institution" validate:"max=200,no_emoji"`
	Summary     string `json:"summary" validate:"max=2000"`
	MainSkill   string `json:"mainSkill" validate:"max=100,no_emoji"`
	OtherSkills string `json:"otherSkills" validate:"max=1000"`
	Experience  string `json:"experience" validate:"max=4000"`
}

type ProfileRepository interface {
	// Upsert creates or replaces the single profile of profile.CandidateID
	// and fills in the stored ID and timestamps.
	Upsert(ctx context.Context, profile *CandidateProfile) error
	GetByCandidateID(ctx context.Context, candidateID string) (*CandidateProfile, error)
}

type ProfileUsecase interface {
	Upsert(ctx context.Context, candidateID string, input ProfileInput) (*CandidateProfile, error)
	Get(ctx context.Context, candidateID string) (*CandidateProfile, error)
}
