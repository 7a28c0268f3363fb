package domain

import (
	"context"
	"strings"
	"time"
)

// Profile holds a job seeker's background. Skills are stored as a
// comma-separated string in the DB; SkillList splits them for matching.
// Invariant: at most one profile per user (enforced by a unique index on
// user_id and upsert semantics in the repository).
type Profile struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Education  string    `json:"education"`
	Skills     string    `json:"skills"`
	Experience string    `json:"experience"`
	Location   string    `json:"location"`
	ResumePath *string   `json:"resume_path,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SkillList splits the comma/semicolon separated skills field into
// trimmed, non-empty entries.
func (p *Profile) SkillList() []string {
	if p == nil || p.Skills == "" {
		return nil
	}
	fields := strings.FieldsFunc(p.Skills, func(r rune) bool {
		return r == ',' || r == ';'
	})
	var out []string
	for _, f := range fields {
		if s := strings.TrimSpace(f); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// MatchText combines profile fields into a single document for the
// similarity ranker.
func (p *Profile) MatchText() string {
	if p == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Skills, p.Education, p.Experience, p.Location} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)
	// Upsert inserts the profile or updates the existing row for the user.
	Upsert(ctx context.Context, profile *Profile) error
}

// ResumeImportResult reports what the extractor pulled out of an uploaded file.
type ResumeImportResult struct {
	Profile        *Profile `json:"profile"`
	ExtractionMode string   `json:"extraction_mode"` // "full" or "keyword"
	SkillCount     int      `json:"skill_count"`
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) error
	ImportResume(ctx context.Context, userID int64, filename string, data []byte) (*ResumeImportResult, error)
}
