package models

// Fields of Participant and Work are optional: create requests are accepted
// as given and a missing field stays absent in the stored record.

type Participant struct {
	ID      int     `json:"id" yaml:"id"`
	Name    *string `json:"name,omitempty" yaml:"name,omitempty"`
	School  *string `json:"school,omitempty" yaml:"school,omitempty"`
	Contact *string `json:"contact,omitempty" yaml:"contact,omitempty"`
	Grade   *int    `json:"grade,omitempty" yaml:"grade,omitempty"`
	Field   *string `json:"field,omitempty" yaml:"field,omitempty"`
}

type Work struct {
	ID            int     `json:"id" yaml:"id"`
	Title         *string `json:"title,omitempty" yaml:"title,omitempty"`
	Field         *string `json:"field,omitempty" yaml:"field,omitempty"`
	Annotation    *string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	Advisor       *string `json:"advisor,omitempty" yaml:"advisor,omitempty"`
	School        *string `json:"school,omitempty" yaml:"school,omitempty"`
	Year          *int    `json:"year,omitempty" yaml:"year,omitempty"`
	ParticipantID *int    `json:"participant_id,omitempty" yaml:"participant_id,omitempty"`
}

// Result is seed-only; WorkID is not checked against existing works.
type Result struct {
	WorkID    int  `json:"work_id" yaml:"work_id"`
	Placement int  `json:"placement" yaml:"placement"`
	Advanced  bool `json:"advanced" yaml:"advanced"`
}

// Standing is a Result joined with its Work.
type Standing struct {
	Title     string `json:"title"`
	Placement int    `json:"placement"`
	Advanced  bool   `json:"advanced"`
	Year      int    `json:"year"`
}

func Str(s string) *string { return &s }

func Int(v int) *int { return &v }

func StrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func IntValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
