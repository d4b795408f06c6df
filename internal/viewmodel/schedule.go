package viewmodel

import (
	"fmt"
	"sort"

	"conandweb/internal/domain"
	"conandweb/internal/i18n"
)

// Slot identifies one (day, track) cell of a schedule.
type Slot struct {
	Day   int
	Track int
}

// GroupSessions buckets sessions by (DayIndex, TrackIndex). Each bucket is sorted by
// StartTime; the fixed-width HH:MM format makes string order chronological. Sessions
// keep their relative order on equal start times.
func GroupSessions(sessions []domain.Session) map[Slot][]domain.Session {
	groups := make(map[Slot][]domain.Session)
	for _, s := range sessions {
		k := Slot{Day: s.DayIndex, Track: s.TrackIndex}
		groups[k] = append(groups[k], s)
	}
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool { return g[i].StartTime < g[j].StartTime })
	}
	return groups
}

// ScheduleView is a display-ready schedule. Tabbed is true only when there is more than
// one day; otherwise Days holds a single day rendered inline.
type ScheduleView struct {
	Tabbed bool              `json:"tabbed"`
	Days   []ScheduleDayView `json:"days"`
}

// ScheduleDayView is one day tab.
type ScheduleDayView struct {
	Index  int                 `json:"index"`
	Label  string              `json:"label,omitempty"`
	Tracks []ScheduleTrackView `json:"tracks"`
}

// ScheduleTrackView is the sessions of one track on one day. Name is empty unless the
// schedule has more than one track.
type ScheduleTrackView struct {
	Name     string        `json:"name,omitempty"`
	Sessions []SessionView `json:"sessions"`
}

// SessionView is one display-ready session.
type SessionView struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Speaker     string `json:"speaker,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TimeRange   string `json:"time_range"`
}

// BuildSchedule returns the display schedule, or nil when there are no sessions.
// Sessions whose day or track index is out of range are not displayed.
func BuildSchedule(s domain.Schedule, tr Translator) *ScheduleView {
	if s.IsEmpty() {
		return nil
	}
	groups := GroupSessions(s.Sessions)
	dayCount := max(len(s.Days), 1)
	trackCount := max(len(s.Tracks), 1)

	view := &ScheduleView{Tabbed: len(s.Days) > 1}
	for d := 0; d < dayCount; d++ {
		day := ScheduleDayView{Index: d, Tracks: []ScheduleTrackView{}}
		if view.Tabbed {
			day.Label = fmt.Sprintf("%s %d - %s", tr.T("event.day"), d+1, tr.FormatDate(s.Days[d].Date, i18n.DateShort))
		}
		for t := 0; t < trackCount; t++ {
			sessions := groups[Slot{Day: d, Track: t}]
			if len(sessions) == 0 {
				continue
			}
			track := ScheduleTrackView{Sessions: make([]SessionView, 0, len(sessions))}
			if len(s.Tracks) > 1 {
				track.Name = s.Tracks[t].Name
			}
			for _, sess := range sessions {
				track.Sessions = append(track.Sessions, newSessionView(sess))
			}
			day.Tracks = append(day.Tracks, track)
		}
		view.Days = append(view.Days, day)
	}
	return view
}

func newSessionView(s domain.Session) SessionView {
	v := SessionView{
		Title:       s.Title,
		Description: s.Description,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		TimeRange:   s.StartTime + " - " + s.EndTime,
	}
	if s.Speaker != nil {
		v.Speaker = s.Speaker.Name
	}
	return v
}
