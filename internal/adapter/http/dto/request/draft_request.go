package request

import (
	"errors"
	"math"
	"strings"

	"meraki_estimator/internal/domain/entities"
)

var (
	ErrInvalidRoom     = errors.New("invalid room")
	ErrInvalidOptional = errors.New("invalid optional")
	ErrInvalidTargets  = errors.New("invalid reuse targets")
)

type SelectedAreaRequest struct {
	Slug  string `json:"slug" binding:"required"`
	Label string `json:"label"`
}

// SelectedAreasRequest replaces the area selection, in wizard order.
type SelectedAreasRequest struct {
	Areas []SelectedAreaRequest `json:"areas" binding:"dive"`
}

func (r SelectedAreasRequest) ToEntities() []entities.SelectedArea {
	out := make([]entities.SelectedArea, 0, len(r.Areas))
	for _, a := range r.Areas {
		out = append(out, entities.SelectedArea{Slug: a.Slug, Label: a.Label})
	}
	return out
}

type OptionalRequest struct {
	Category string   `json:"category" binding:"required"`
	ID       string   `json:"id" binding:"required"`
	Label    string   `json:"label"`
	Price    *float64 `json:"price"`
}

func (r OptionalRequest) ToEntity() (entities.DraftRoomOptional, error) {
	o := entities.DraftRoomOptional{
		Category: strings.TrimSpace(r.Category),
		ID:       strings.TrimSpace(r.ID),
		Label:    strings.TrimSpace(r.Label),
	}
	if o.Category == "" || o.ID == "" {
		return entities.DraftRoomOptional{}, ErrInvalidOptional
	}
	if r.Price != nil {
		if *r.Price < 0 || math.IsNaN(*r.Price) || math.IsInf(*r.Price, 0) {
			return entities.DraftRoomOptional{}, ErrInvalidOptional
		}
		o.Price = *r.Price
	}
	return o, nil
}

type RoomRequest struct {
	Name      string            `json:"name"`
	Area      *float64          `json:"area" binding:"required"`
	Optionals []OptionalRequest `json:"optionals"`
}

// AreaRoomsRequest replaces every room of an area.
type AreaRoomsRequest struct {
	Label string        `json:"label"`
	Rooms []RoomRequest `json:"rooms" binding:"dive"`
}

// ToEntities converts the rooms. A zero area is accepted (the summary flags
// it), a negative one is not.
func (r AreaRoomsRequest) ToEntities() ([]entities.DraftRoom, error) {
	out := make([]entities.DraftRoom, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		if room.Area == nil || *room.Area < 0 {
			return nil, ErrInvalidRoom
		}
		d := entities.DraftRoom{Name: strings.TrimSpace(room.Name), Area: *room.Area}
		for _, o := range room.Optionals {
			opt, err := o.ToEntity()
			if err != nil {
				return nil, err
			}
			d = d.WithOptional(opt)
		}
		out = append(out, d)
	}
	return out, nil
}

// RoomCountRequest resizes an area to Count rooms, padding with default rooms.
type RoomCountRequest struct {
	Label string `json:"label"`
	Count int    `json:"count" binding:"required,min=1"`
}

type ReuseOptionalsRequest struct {
	Targets []int `json:"targets" binding:"required"`
}

func (r ReuseOptionalsRequest) ResolveTargets() ([]int, error) {
	out := make([]int, 0, len(r.Targets))
	for _, t := range r.Targets {
		if t < 1 {
			return nil, ErrInvalidTargets
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, ErrInvalidTargets
	}
	return out, nil
}
