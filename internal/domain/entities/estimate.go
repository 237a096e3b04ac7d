package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - An estimate starts as a draft and is edited through the wizard.
//   - Finalizing is a one-way transition; finalized estimates are view-only.

type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusFinalized EstimateStatus = "finalized"
)

// EstimateMeta is the index entry of one estimate.
//
// Storage model (key/value):
//   - all metas live in a single index record, most recent first
//   - the draft payload lives under its own key, see DraftKey
//
// JSON names follow the format already stored by browser clients.
type EstimateMeta struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Status      EstimateStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	ResumeHref  string         `json:"resumeHref"`
	FinalizedAt *time.Time     `json:"finalizedAt,omitempty"`
	Total       string         `json:"total,omitempty"`
}

func (m EstimateMeta) IsFinalized() bool {
	return m.Status == EstimateStatusFinalized
}

// SelectedArea is one property area picked on the first wizard step.
type SelectedArea struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// DraftRoomOptional is a finish chosen for a room. A room holds at most one
// optional per category.
type DraftRoomOptional struct {
	Category string  `json:"category"`
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Price    float64 `json:"price"`
}

// DraftRoom is identified by its 1-based position inside DraftArea.Rooms.
type DraftRoom struct {
	Name      string              `json:"name"`
	Area      float64             `json:"area"` // m²
	Optionals []DraftRoomOptional `json:"optionals,omitempty"`
}

type DraftArea struct {
	Slug  string      `json:"slug"`
	Label string      `json:"label"`
	Rooms []DraftRoom `json:"rooms"`
}

// EstimateDraft is the mutable content of one estimate.
//
// Areas may keep entries that are no longer selected; their rooms are retained
// in case the area is selected again.
type EstimateDraft struct {
	SelectedAreas []SelectedArea       `json:"selectedAreas"`
	Areas         map[string]DraftArea `json:"areas"`
}

func NewEstimateDraft() EstimateDraft {
	return EstimateDraft{SelectedAreas: []SelectedArea{}, Areas: map[string]DraftArea{}}
}

// IsEmpty reports whether the draft carries no selection and no room data.
func (d EstimateDraft) IsEmpty() bool {
	if len(d.SelectedAreas) > 0 {
		return false
	}
	for _, a := range d.Areas {
		if len(a.Rooms) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that shares no slices or maps with d.
func (d EstimateDraft) Clone() EstimateDraft {
	out := EstimateDraft{
		SelectedAreas: make([]SelectedArea, len(d.SelectedAreas)),
		Areas:         make(map[string]DraftArea, len(d.Areas)),
	}
	copy(out.SelectedAreas, d.SelectedAreas)
	for slug, a := range d.Areas {
		out.Areas[slug] = a.Clone()
	}
	return out
}

func (a DraftArea) Clone() DraftArea {
	rooms := make([]DraftRoom, len(a.Rooms))
	for i, r := range a.Rooms {
		rooms[i] = r.Clone()
	}
	return DraftArea{Slug: a.Slug, Label: a.Label, Rooms: rooms}
}

func (r DraftRoom) Clone() DraftRoom {
	out := DraftRoom{Name: r.Name, Area: r.Area}
	if len(r.Optionals) > 0 {
		out.Optionals = make([]DraftRoomOptional, len(r.Optionals))
		copy(out.Optionals, r.Optionals)
	}
	return out
}

// WithOptional returns a copy of r where opt replaces any optional of the same
// category.
func (r DraftRoom) WithOptional(opt DraftRoomOptional) DraftRoom {
	out := r.Clone()
	for i, o := range out.Optionals {
		if o.Category == opt.Category {
			out.Optionals[i] = opt
			return out
		}
	}
	out.Optionals = append(out.Optionals, opt)
	return out
}

// WithoutOptional returns a copy of r with the optional of category removed.
func (r DraftRoom) WithoutOptional(category string) DraftRoom {
	out := DraftRoom{Name: r.Name, Area: r.Area}
	for _, o := range r.Optionals {
		if o.Category != category {
			out.Optionals = append(out.Optionals, o)
		}
	}
	return out
}
