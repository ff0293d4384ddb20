// Package store persists Daybook records as JSON files in the data
// directory. Loads return a consistent snapshot; saves write the whole
// file through a temp-and-rename so a crash never leaves partial JSON.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mwhitby/daybook/internal/domain"
)

const (
	tasksFile  = "tasks.json"
	notesFile  = "notes.json"
	eventsFile = "events.json"
)

// Store reads and writes Daybook records under a data directory
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a store rooted at the given data directory, creating it if
// needed
func New(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &domain.StoreError{Op: "init", Message: dir, Err: err}
	}
	return &Store{dir: dir, logger: logger}, nil
}

// LoadTasks returns the full task snapshot. A missing file is an empty
// snapshot, not an error.
func (s *Store) LoadTasks() ([]domain.Task, error) {
	var tasks []domain.Task
	if err := s.loadJSON(tasksFile, &tasks); err != nil {
		return nil, err
	}
	s.logger.Debug("loaded tasks", "count", len(tasks))
	return tasks, nil
}

// SaveTasks writes the full task snapshot
func (s *Store) SaveTasks(tasks []domain.Task) error {
	return s.saveJSON(tasksFile, tasks)
}

// CreateTask appends a new task with a fresh ID and returns it
func (s *Store) CreateTask(title, notes string, priority domain.Priority, dueAt *time.Time, now time.Time) (domain.Task, error) {
	tasks, err := s.LoadTasks()
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Notes:     notes,
		Status:    domain.StatusPlan,
		Priority:  priority,
		DueAt:     dueAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tasks = append(tasks, task)
	if err := s.SaveTasks(tasks); err != nil {
		return domain.Task{}, err
	}

	s.logger.Debug("created task", "id", task.ID, "title", title)
	return task, nil
}

// UpdateTaskStatus transitions a task to the given status, keeping the
// CompletedAt field consistent: set exactly when the task is done
func (s *Store) UpdateTaskStatus(id string, status domain.Status, now time.Time) (domain.Task, error) {
	tasks, err := s.LoadTasks()
	if err != nil {
		return domain.Task{}, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}

		tasks[i].Status = status
		tasks[i].UpdatedAt = now
		if status == domain.StatusDone {
			completed := now
			tasks[i].CompletedAt = &completed
		} else {
			tasks[i].CompletedAt = nil
		}

		if err := s.SaveTasks(tasks); err != nil {
			return domain.Task{}, err
		}
		s.logger.Debug("updated task status", "id", id, "status", status)
		return tasks[i], nil
	}

	return domain.Task{}, &domain.StoreError{Op: "update", RecordID: id, Err: domain.ErrNotFound}
}

// DeleteTask removes a task by ID
func (s *Store) DeleteTask(id string) error {
	tasks, err := s.LoadTasks()
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			if err := s.SaveTasks(tasks); err != nil {
				return err
			}
			s.logger.Debug("deleted task", "id", id)
			return nil
		}
	}

	return &domain.StoreError{Op: "delete", RecordID: id, Err: domain.ErrNotFound}
}

// LoadNotes returns all notes
func (s *Store) LoadNotes() ([]domain.Note, error) {
	var notes []domain.Note
	if err := s.loadJSON(notesFile, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// SaveNotes writes all notes
func (s *Store) SaveNotes(notes []domain.Note) error {
	return s.saveJSON(notesFile, notes)
}

// CreateNote appends a new note with a fresh ID and returns it
func (s *Store) CreateNote(title, body string, now time.Time) (domain.Note, error) {
	notes, err := s.LoadNotes()
	if err != nil {
		return domain.Note{}, err
	}

	note := domain.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	notes = append(notes, note)
	if err := s.SaveNotes(notes); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

// LoadEvents returns all calendar events
func (s *Store) LoadEvents() ([]domain.Event, error) {
	var events []domain.Event
	if err := s.loadJSON(eventsFile, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SaveEvents writes all calendar events
func (s *Store) SaveEvents(events []domain.Event) error {
	return s.saveJSON(eventsFile, events)
}

func (s *Store) loadJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &domain.StoreError{Op: "load", Message: name, Err: err}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &domain.StoreError{Op: "load", Message: "failed to parse " + name, Err: err}
	}
	return nil
}

func (s *Store) saveJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &domain.StoreError{Op: "save", Message: name, Err: err}
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &domain.StoreError{Op: "save", Message: name, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &domain.StoreError{Op: "save", Message: name, Err: err}
	}
	return nil
}
