// Package wizard lists the estimate wizard steps an estimate can resume at.
package wizard

import (
	"net/url"
	"strconv"
)

const (
	SelectAreasHref    = "/select-areas"
	ProjectSummaryHref = "/project-summary"
	DashboardHref      = "/dashboard"
)

// DefaultResumeHref is where a fresh or healed estimate resumes.
const DefaultResumeHref = SelectAreasHref

// QuantityHref is the room-count step of an area.
func QuantityHref(slug string) string {
	return "/quantity/" + url.PathEscape(slug)
}

// AreaHref is the room details step (names and floor areas) of an area.
func AreaHref(slug string) string {
	return "/area/" + url.PathEscape(slug)
}

// OptionalsHref is the optionals picker of one room.
func OptionalsHref(slug string, roomIndex int) string {
	return "/optionals/" + url.PathEscape(slug) + "?roomIndex=" + strconv.Itoa(roomIndex)
}

// RoomSummaryHref is the per-room summary shown after picking optionals.
func RoomSummaryHref(slug string, roomIndex int) string {
	return "/room-summary/" + url.PathEscape(slug) + "/" + strconv.Itoa(roomIndex)
}
