package service

import (
	"errors"
	"testing"
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/util"
)

func createEntryOn(t *testing.T, s *WorkDoneService, date time.Time, items ...model.WorkDoneItem) *model.WorkDoneEntry {
	t.Helper()
	entry := &model.WorkDoneEntry{Date: date, SatisfactionLevel: 3, Items: items}
	if err := s.CreateEntry(testUserID, entry); err != nil {
		t.Fatalf("create entry on %s: %v", date.Format(util.DateFormat), err)
	}
	return entry
}

func TestCreateEntryRecomputesTotalPoints(t *testing.T) {
	s := newWorkDoneService(t)

	entry := &model.WorkDoneEntry{
		TotalPoints: 999,
		Items: []model.WorkDoneItem{
			{Description: "solved 20 mcqs", Points: 10},
			{Description: "revised polity notes", Points: 15},
		},
	}
	if err := s.CreateEntry(testUserID, entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	if entry.TotalPoints != 25 {
		t.Errorf("totalPoints = %d, want 25", entry.TotalPoints)
	}
	if entry.DayOfWeek != util.Today().Weekday().String() {
		t.Errorf("dayOfWeek = %q, want %q", entry.DayOfWeek, util.Today().Weekday().String())
	}
}

func TestUpdateEntryReplacesItemsAndRecomputes(t *testing.T) {
	s := newWorkDoneService(t)

	entry := createEntryOn(t, s, util.Today(),
		model.WorkDoneItem{Description: "old item", Points: 5})

	updated, err := s.UpdateEntry(entry.ID, &model.WorkDoneEntry{
		SatisfactionLevel: 4,
		Items: []model.WorkDoneItem{
			{Description: "new item one", Points: 20},
			{Description: "new item two", Points: 30},
		},
	})
	if err != nil {
		t.Fatalf("update entry: %v", err)
	}

	if updated.TotalPoints != 50 {
		t.Errorf("totalPoints = %d, want 50", updated.TotalPoints)
	}
	if len(updated.Items) != 2 {
		t.Errorf("items = %d, want 2", len(updated.Items))
	}

	loaded, err := s.GetEntry(entry.ID)
	if err != nil {
		t.Fatalf("reload entry: %v", err)
	}
	if len(loaded.Items) != 2 || loaded.TotalPoints != 50 {
		t.Errorf("reloaded entry has %d items and %d points, want 2 and 50", len(loaded.Items), loaded.TotalPoints)
	}
}

func TestUpdateEntryOmittedFieldsKeepValues(t *testing.T) {
	s := newWorkDoneService(t)

	entry := &model.WorkDoneEntry{
		SatisfactionLevel: 4,
		Notes:             "felt productive",
		Items:             []model.WorkDoneItem{{Description: "essay practice", Points: 10}},
	}
	if err := s.CreateEntry(testUserID, entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	// 只替换条目，满意度和备注不传时保持原值
	updated, err := s.UpdateEntry(entry.ID, &model.WorkDoneEntry{
		Items: []model.WorkDoneItem{{Description: "map work", Points: 5}},
	})
	if err != nil {
		t.Fatalf("update entry: %v", err)
	}
	if updated.SatisfactionLevel != 4 {
		t.Errorf("satisfactionLevel = %d, want 4", updated.SatisfactionLevel)
	}
	if updated.Notes != "felt productive" {
		t.Errorf("notes = %q, want original kept", updated.Notes)
	}
	if updated.TotalPoints != 5 {
		t.Errorf("totalPoints = %d, want 5", updated.TotalPoints)
	}
}

func TestSatisfactionLevelRange(t *testing.T) {
	s := newWorkDoneService(t)

	err := s.CreateEntry(testUserID, &model.WorkDoneEntry{SatisfactionLevel: 7})
	if !errors.Is(err, util.ErrInvalidRating) {
		t.Errorf("create err = %v, want ErrInvalidRating", err)
	}

	entry := createEntryOn(t, s, util.Today())
	if _, err := s.UpdateEntry(entry.ID, &model.WorkDoneEntry{SatisfactionLevel: 9}); !errors.Is(err, util.ErrInvalidRating) {
		t.Errorf("update err = %v, want ErrInvalidRating", err)
	}
}

func TestGetEntryByDateMissingReturnsNil(t *testing.T) {
	s := newWorkDoneService(t)

	entry, err := s.GetEntryByDate(testUserID, util.Today())
	if err != nil {
		t.Fatalf("get by date: %v", err)
	}
	if entry != nil {
		t.Errorf("entry = %+v, want nil", entry)
	}
}

func TestGetPointsSummaryWeeklyWindow(t *testing.T) {
	s := newWorkDoneService(t)
	today := util.Today()

	// 昨天的记录落在近 7 天窗口内，8 天前的只计入总分
	createEntryOn(t, s, today.AddDate(0, 0, -1),
		model.WorkDoneItem{Description: "recent", Points: 10})
	createEntryOn(t, s, today.AddDate(0, 0, -8),
		model.WorkDoneItem{Description: "old", Points: 100})

	summary, err := s.GetPointsSummary(testUserID)
	if err != nil {
		t.Fatalf("points summary: %v", err)
	}

	if summary.TotalPoints != 110 {
		t.Errorf("totalPoints = %d, want 110", summary.TotalPoints)
	}
	if summary.WeeklyPoints != 10 {
		t.Errorf("weeklyPoints = %d, want 10", summary.WeeklyPoints)
	}
	if len(summary.Breakdown) != 2 {
		t.Errorf("breakdown = %d entries, want 2", len(summary.Breakdown))
	}
}

func TestGetPointsSummaryEmpty(t *testing.T) {
	s := newWorkDoneService(t)

	summary, err := s.GetPointsSummary(testUserID)
	if err != nil {
		t.Fatalf("points summary: %v", err)
	}
	if summary.TotalPoints != 0 || summary.WeeklyPoints != 0 {
		t.Errorf("summary = %d/%d, want 0/0", summary.TotalPoints, summary.WeeklyPoints)
	}
	if len(summary.Breakdown) != 0 {
		t.Errorf("breakdown = %d entries, want 0", len(summary.Breakdown))
	}
}

func TestGetWeeklySatisfactionSlots(t *testing.T) {
	s := newWorkDoneService(t)

	monday := mondayOf(util.Today())
	wednesday := monday.AddDate(0, 0, 2)
	entry := &model.WorkDoneEntry{
		Date:              wednesday,
		SatisfactionLevel: 5,
		Items:             []model.WorkDoneItem{{Description: "good day", Points: 40}},
	}
	if err := s.CreateEntry(testUserID, entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	week, err := s.GetWeeklySatisfaction(testUserID, &monday)
	if err != nil {
		t.Fatalf("weekly satisfaction: %v", err)
	}

	if len(week) != 7 {
		t.Fatalf("slots = %d, want 7", len(week))
	}
	if week[0].Day != "Mon" || week[6].Day != "Sun" {
		t.Errorf("week runs %s..%s, want Mon..Sun", week[0].Day, week[6].Day)
	}

	for i, slot := range week {
		if i == 2 {
			if !slot.HasEntry || slot.Satisfaction != 5 || slot.Points != 40 {
				t.Errorf("wednesday slot = %+v, want hasEntry with satisfaction 5 and points 40", slot)
			}
			continue
		}
		if slot.HasEntry || slot.Satisfaction != 0 {
			t.Errorf("slot %d = %+v, want empty", i, slot)
		}
	}
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		name string
		date string
		want string
	}{
		{"monday itself", "2026-08-31", "2026-08-31"},
		{"midweek", "2026-09-03", "2026-08-31"},
		{"sunday belongs to preceding monday", "2026-09-06", "2026-08-31"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			date, err := util.ParseDate(tc.date)
			if err != nil {
				t.Fatalf("parse %s: %v", tc.date, err)
			}
			if got := mondayOf(date).Format(util.DateFormat); got != tc.want {
				t.Errorf("mondayOf(%s) = %s, want %s", tc.date, got, tc.want)
			}
		})
	}
}
