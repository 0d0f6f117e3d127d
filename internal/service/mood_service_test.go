package service

import (
	"errors"
	"testing"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/util"
)

func TestCreateMoodEntryValidatesRatings(t *testing.T) {
	s := newMoodService(t)

	cases := []struct {
		name    string
		entry   model.MoodEntry
		wantErr bool
	}{
		{"all valid", model.MoodEntry{Mood: 3, Energy: 4, Motivation: 5}, false},
		{"mood too low", model.MoodEntry{Mood: 0, Energy: 3, Motivation: 3}, true},
		{"energy too high", model.MoodEntry{Mood: 3, Energy: 6, Motivation: 3}, true},
		{"motivation missing", model.MoodEntry{Mood: 3, Energy: 3}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.CreateEntry(testUserID, &tc.entry)
			if tc.wantErr && !errors.Is(err, util.ErrInvalidRating) {
				t.Errorf("err = %v, want ErrInvalidRating", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("err = %v, want nil", err)
			}
		})
	}
}

func TestCreateMoodEntryDefaultsDate(t *testing.T) {
	s := newMoodService(t)

	entry := &model.MoodEntry{Mood: 4, Energy: 3, Motivation: 4}
	if err := s.CreateEntry(testUserID, entry); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !entry.Date.Equal(util.Today()) {
		t.Errorf("date = %v, want today", entry.Date)
	}
}

func TestUpdateMoodEntryRejectsBadRating(t *testing.T) {
	s := newMoodService(t)

	entry := &model.MoodEntry{Mood: 3, Energy: 3, Motivation: 3}
	if err := s.CreateEntry(testUserID, entry); err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := 9
	if _, err := s.UpdateEntry(entry.ID, &UpdateMoodInput{Mood: &bad}); !errors.Is(err, util.ErrInvalidRating) {
		t.Errorf("err = %v, want ErrInvalidRating", err)
	}

	loaded, err := s.GetEntry(entry.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Mood != 3 {
		t.Errorf("mood = %d after rejected update, want 3", loaded.Mood)
	}
}

func TestGetRecentMoodEntries(t *testing.T) {
	s := newMoodService(t)

	recent := &model.MoodEntry{Mood: 4, Energy: 4, Motivation: 4, Date: util.Today().AddDate(0, 0, -2)}
	old := &model.MoodEntry{Mood: 2, Energy: 2, Motivation: 2, Date: util.Today().AddDate(0, 0, -30)}
	for _, e := range []*model.MoodEntry{recent, old} {
		if err := s.CreateEntry(testUserID, e); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := s.GetRecentEntries(testUserID, 7)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 || got[0].ID != recent.ID {
		t.Errorf("got %d entries, want only the one within 7 days", len(got))
	}
}

func TestDeleteMoodEntryNotFound(t *testing.T) {
	s := newMoodService(t)

	if err := s.DeleteEntry(9999); !errors.Is(err, util.ErrEntryNotFound) {
		t.Errorf("err = %v, want ErrEntryNotFound", err)
	}
}
