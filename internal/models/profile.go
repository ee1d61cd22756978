package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrProfileIncomplete = errors.New("profile requires a budget and at least one focus area")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidExperience = errors.New("invalid experience level")
	ErrInvalidBudget     = errors.New("invalid budget")
	ErrInvalidFocus      = errors.New("invalid focus area")
	ErrInvalidIndustry   = errors.New("invalid industry")
	ErrMissingRole       = errors.New("profile requires a role")
)

type Role string

const (
	RoleContentCreator Role = "content-creator"
	RoleMarketer       Role = "marketer"
	RoleDeveloper      Role = "developer"
	RoleDesigner       Role = "designer"
	RoleEntrepreneur   Role = "entrepreneur"
	RoleConsultant     Role = "consultant"
)

// Roles lists the selectable roles in questionnaire order.
var Roles = []Role{
	RoleContentCreator,
	RoleMarketer,
	RoleDeveloper,
	RoleDesigner,
	RoleEntrepreneur,
	RoleConsultant,
}

func (r Role) Valid() bool {
	return slices.Contains(Roles, r)
}

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
	ExperienceExpert       Experience = "expert"
)

var ExperienceLevels = []Experience{
	ExperienceBeginner,
	ExperienceIntermediate,
	ExperienceAdvanced,
	ExperienceExpert,
}

func (e Experience) Valid() bool {
	return slices.Contains(ExperienceLevels, e)
}

type Focus string

const (
	FocusVideo      Focus = "video"
	FocusWriting    Focus = "writing"
	FocusDesign     Focus = "design"
	FocusAnalytics  Focus = "analytics"
	FocusAutomation Focus = "automation"
	FocusSocial     Focus = "social"
)

// AllFocusAreas is the full focus vocabulary in canonical order.
var AllFocusAreas = []Focus{
	FocusVideo,
	FocusWriting,
	FocusDesign,
	FocusAnalytics,
	FocusAutomation,
	FocusSocial,
}

func (f Focus) Valid() bool {
	return slices.Contains(AllFocusAreas, f)
}

type Industry string

const (
	IndustryEcommerce  Industry = "ecommerce"
	IndustrySaaS       Industry = "saas"
	IndustryAgency     Industry = "agency"
	IndustryEducation  Industry = "education"
	IndustryHealthcare Industry = "healthcare"
	IndustryFinance    Industry = "finance"
	IndustryMedia      Industry = "media"
	IndustryOther      Industry = "other"
)

var Industries = []Industry{
	IndustryEcommerce,
	IndustrySaaS,
	IndustryAgency,
	IndustryEducation,
	IndustryHealthcare,
	IndustryFinance,
	IndustryMedia,
	IndustryOther,
}

func (i Industry) Valid() bool {
	return slices.Contains(Industries, i)
}

// Budgets are the monthly spend ceilings a user can pick.
var Budgets = []int{50, 100, 200, 500}

func ValidBudget(b int) bool {
	return slices.Contains(Budgets, b)
}

// DraftProfile accumulates questionnaire answers. Zero values mean "not answered".
type DraftProfile struct {
	Role       Role       `json:"role,omitempty"`
	Experience Experience `json:"experience,omitempty"`
	Budget     int        `json:"budget,omitempty"`
	Focus      []Focus    `json:"focus,omitempty"`
	Industry   Industry   `json:"industry,omitempty"`
}

// HasFocus reports whether f is currently selected.
func (d DraftProfile) HasFocus(f Focus) bool {
	return slices.Contains(d.Focus, f)
}

// ToggleFocus adds f if absent and removes it if present.
func (d *DraftProfile) ToggleFocus(f Focus) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFocus, f)
	}
	if i := slices.Index(d.Focus, f); i >= 0 {
		d.Focus = slices.Delete(d.Focus, i, i+1)
		return nil
	}
	d.Focus = append(d.Focus, f)
	return nil
}

// Ready reports whether the draft satisfies the generate gate.
func (d DraftProfile) Ready() bool {
	return d.Budget > 0 && len(d.Focus) > 0
}

// Complete validates the draft and freezes it into a CompleteProfile.
func (d DraftProfile) Complete() (CompleteProfile, error) {
	if !d.Ready() {
		return CompleteProfile{}, ErrProfileIncomplete
	}
	if d.Role == "" {
		return CompleteProfile{}, ErrMissingRole
	}
	if !d.Role.Valid() {
		return CompleteProfile{}, fmt.Errorf("%w: %q", ErrInvalidRole, d.Role)
	}
	if d.Experience != "" && !d.Experience.Valid() {
		return CompleteProfile{}, fmt.Errorf("%w: %q", ErrInvalidExperience, d.Experience)
	}
	if !ValidBudget(d.Budget) {
		return CompleteProfile{}, fmt.Errorf("%w: %d", ErrInvalidBudget, d.Budget)
	}
	if d.Industry != "" && !d.Industry.Valid() {
		return CompleteProfile{}, fmt.Errorf("%w: %q", ErrInvalidIndustry, d.Industry)
	}

	focus := make([]Focus, 0, len(d.Focus))
	for _, f := range AllFocusAreas {
		if d.HasFocus(f) {
			focus = append(focus, f)
		}
	}
	for _, f := range d.Focus {
		if !f.Valid() {
			return CompleteProfile{}, fmt.Errorf("%w: %q", ErrInvalidFocus, f)
		}
	}

	return CompleteProfile{
		role:       d.Role,
		experience: d.Experience,
		budget:     d.Budget,
		focus:      focus,
		industry:   d.Industry,
	}, nil
}

// CompleteProfile is a validated, immutable profile. The only way to build one
// is DraftProfile.Complete, so holding one proves budget and focus are set.
type CompleteProfile struct {
	role       Role
	experience Experience
	budget     int
	focus      []Focus
	industry   Industry
}

func (p CompleteProfile) Role() Role             { return p.role }
func (p CompleteProfile) Experience() Experience { return p.experience }
func (p CompleteProfile) Budget() int            { return p.budget }
func (p CompleteProfile) Industry() Industry     { return p.industry }

// Focus returns a copy of the selected focus areas in canonical order.
func (p CompleteProfile) Focus() []Focus {
	return slices.Clone(p.focus)
}

func (p CompleteProfile) HasFocus(f Focus) bool {
	return slices.Contains(p.focus, f)
}

// Draft converts the profile back into an editable draft.
func (p CompleteProfile) Draft() DraftProfile {
	return DraftProfile{
		Role:       p.role,
		Experience: p.experience,
		Budget:     p.budget,
		Focus:      slices.Clone(p.focus),
		Industry:   p.industry,
	}
}

func (p CompleteProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Draft())
}

func (p *CompleteProfile) UnmarshalJSON(data []byte) error {
	var d DraftProfile
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	complete, err := d.Complete()
	if err != nil {
		return err
	}
	*p = complete
	return nil
}
