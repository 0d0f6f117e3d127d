package service

import (
	"errors"
	"testing"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"
)

func newCalendarService(t *testing.T) *CalendarService {
	t.Helper()
	return NewCalendarService(repository.NewCalendarRepository(setupTestDB(t)))
}

func TestMarkDayUpserts(t *testing.T) {
	s := newCalendarService(t)
	today := util.Today()

	entry, err := s.MarkDay(testUserID, today, true)
	if err != nil {
		t.Fatalf("mark day: %v", err)
	}
	if !entry.Studied {
		t.Error("studied = false after marking true")
	}

	// 同一天再次标记时覆盖而不是新建
	entry, err = s.MarkDay(testUserID, today, false)
	if err != nil {
		t.Fatalf("remark day: %v", err)
	}
	if entry.Studied {
		t.Error("studied = true after remarking false")
	}

	month, err := s.GetMonth(testUserID, today.Year(), today.Month())
	if err != nil {
		t.Fatalf("get month: %v", err)
	}
	if len(month) != 1 {
		t.Errorf("month has %d entries, want 1", len(month))
	}
}

func TestGetDayNotFound(t *testing.T) {
	s := newCalendarService(t)

	if _, err := s.GetDay(testUserID, util.Today()); !errors.Is(err, util.ErrEntryNotFound) {
		t.Errorf("err = %v, want ErrEntryNotFound", err)
	}
}

func TestGetMonthScopesToUser(t *testing.T) {
	s := newCalendarService(t)
	today := util.Today()

	if _, err := s.MarkDay(testUserID, today, true); err != nil {
		t.Fatalf("mark day: %v", err)
	}
	if _, err := s.MarkDay(testUserID+1, today, true); err != nil {
		t.Fatalf("mark day for other user: %v", err)
	}

	month, err := s.GetMonth(testUserID, today.Year(), today.Month())
	if err != nil {
		t.Fatalf("get month: %v", err)
	}
	if len(month) != 1 {
		t.Errorf("month has %d entries, want only this user's", len(month))
	}
}
