package service

import (
	"errors"
	"testing"
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/util"
)

const testUserID = uint(1)

func createTask(t *testing.T, s *TaskService, title string) *model.LearningTask {
	t.Helper()
	task := &model.LearningTask{Title: title}
	if err := s.CreateTask(testUserID, task); err != nil {
		t.Fatalf("create task %q: %v", title, err)
	}
	return task
}

func TestCreateTaskDefaults(t *testing.T) {
	s, _ := newTaskService(t)

	task := createTask(t, s, "read chapter 4")

	if task.Status != model.TaskPending {
		t.Errorf("status = %s, want PENDING", task.Status)
	}
	if task.Type != model.TaskDaily {
		t.Errorf("type = %s, want DAILY", task.Type)
	}
	if task.Points != 10 {
		t.Errorf("points = %d, want 10", task.Points)
	}
	if !task.AssignedDate.Equal(util.Today()) {
		t.Errorf("assignedDate = %v, want today", task.AssignedDate)
	}
	if task.CompletedDate != nil {
		t.Errorf("completedDate = %v, want nil", task.CompletedDate)
	}
}

func TestCreateTaskIDsAreUnique(t *testing.T) {
	s, _ := newTaskService(t)

	seen := make(map[uint]bool)
	for i := 0; i < 10; i++ {
		task := createTask(t, s, "task")
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestCreateTaskRoundTrip(t *testing.T) {
	s, _ := newTaskService(t)

	created := createTask(t, s, "round trip")

	loaded, err := s.GetTask(created.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if loaded.Title != created.Title || loaded.Status != created.Status || loaded.Points != created.Points {
		t.Errorf("loaded task differs: got %+v, want %+v", loaded, created)
	}
}

func TestUpdateTaskMergesOnlyGivenFields(t *testing.T) {
	s, _ := newTaskService(t)

	task := createTask(t, s, "original")
	origType := task.Type
	origPoints := task.Points
	origDate := task.AssignedDate

	newTitle := "renamed"
	updated, err := s.UpdateTask(task.ID, &UpdateTaskInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}

	if updated.Title != "renamed" {
		t.Errorf("title = %q, want renamed", updated.Title)
	}
	if updated.Type != origType {
		t.Errorf("type changed: %s -> %s", origType, updated.Type)
	}
	if updated.Points != origPoints {
		t.Errorf("points changed: %d -> %d", origPoints, updated.Points)
	}
	if !updated.AssignedDate.Equal(origDate) {
		t.Errorf("assignedDate changed: %v -> %v", origDate, updated.AssignedDate)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	s, _ := newTaskService(t)

	title := "ghost"
	if _, err := s.UpdateTask(9999, &UpdateTaskInput{Title: &title}); !errors.Is(err, util.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteTaskNotFound(t *testing.T) {
	s, _ := newTaskService(t)

	if err := s.DeleteTask(9999); !errors.Is(err, util.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateStatusCompletedDateCoupling(t *testing.T) {
	s, _ := newTaskService(t)
	task := createTask(t, s, "couple me")

	completed, err := s.UpdateStatus(task.ID, model.TaskCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.CompletedDate == nil {
		t.Fatal("completedDate = nil after COMPLETED")
	}
	if !completed.CompletedDate.Equal(util.Today()) {
		t.Errorf("completedDate = %v, want today", completed.CompletedDate)
	}

	reopened, err := s.UpdateStatus(task.ID, model.TaskPending)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.CompletedDate != nil {
		t.Errorf("completedDate = %v after PENDING, want nil", reopened.CompletedDate)
	}
}

func TestUpdateCompletedTaskRejected(t *testing.T) {
	s, _ := newTaskService(t)
	task := createTask(t, s, "done deal")

	if _, err := s.UpdateStatus(task.ID, model.TaskCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}

	title := "rewrite history"
	if _, err := s.UpdateTask(task.ID, &UpdateTaskInput{Title: &title}); !errors.Is(err, util.ErrTaskCompleted) {
		t.Errorf("err = %v, want ErrTaskCompleted", err)
	}
}

func TestAddStopwatchTimeAccumulates(t *testing.T) {
	s, _ := newTaskService(t)
	task := createTask(t, s, "timed")

	if _, err := s.AddStopwatchTime(task.ID, 90); err != nil {
		t.Fatalf("first flush: %v", err)
	}
	updated, err := s.AddStopwatchTime(task.ID, 30)
	if err != nil {
		t.Fatalf("second flush: %v", err)
	}
	if updated.DurationSeconds != 120 {
		t.Errorf("durationSeconds = %d, want 120", updated.DurationSeconds)
	}
}

func TestCreateTaskUnknownStreamRejected(t *testing.T) {
	s, _ := newTaskService(t)

	streamID := uint(42)
	task := &model.LearningTask{Title: "orphan", StreamID: &streamID}
	if err := s.CreateTask(testUserID, task); !errors.Is(err, util.ErrStreamNotFound) {
		t.Errorf("err = %v, want ErrStreamNotFound", err)
	}
}

func TestGetTasksByDate(t *testing.T) {
	s, _ := newTaskService(t)

	today := createTask(t, s, "today")

	yesterday := util.Today().AddDate(0, 0, -1)
	old := &model.LearningTask{Title: "yesterday", AssignedDate: yesterday}
	if err := s.CreateTask(testUserID, old); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetTasksByDate(testUserID, time.Now())
	if err != nil {
		t.Fatalf("get by date: %v", err)
	}
	if len(got) != 1 || got[0].ID != today.ID {
		t.Errorf("got %d tasks, want only today's", len(got))
	}
}
