package workspace

import (
	"go.uber.org/zap"

	"github.com/demogorgan123/Club/internal/access"
	"github.com/demogorgan123/Club/internal/apperr"
	"github.com/demogorgan123/Club/internal/models"
	"github.com/demogorgan123/Club/internal/realtime"
	"github.com/demogorgan123/Club/internal/store"
	"github.com/demogorgan123/Club/pkg/validation"
)

// NewTask describes a task to create.
type NewTask struct {
	Title       string       `json:"title" yaml:"title" validate:"notblank"`
	Description string       `json:"description" yaml:"description,omitempty"`
	AssignedTo  string       `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
	DueDate     *models.Date `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// CreateTask appends a To Do task to teamID's list.
func (s *Service) CreateTask(actorID, teamID string, in NewTask) (models.Task, error) {
	const op = "CreateTask"
	task := models.Task{
		TeamID:      teamID,
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		Status:      models.TaskTodo,
		DueDate:     in.DueDate,
	}
	err := s.update(op, func(tx *store.Tx) ([]realtime.Event, error) {
		actor, err := tx.User(actorID)
		if err != nil {
			return nil, err
		}
		team, err := tx.Team(teamID)
		if err != nil {
			return nil, err
		}
		if !access.CanAssignTask(actor, &team) {
			return nil, apperr.PermissionDenied(op, "%s %q may not assign tasks in %q", actor.Role, actor.ID, team.ID)
		}
		if err := validation.Struct(in); err != nil {
			return nil, apperr.Validation(op, "%v", err)
		}
		if in.AssignedTo != "" {
			if _, err := tx.User(in.AssignedTo); err != nil {
				return nil, err
			}
		}
		task.ID = s.freshID("task", func(id string) bool {
			_, err := tx.Task(id)
			return err == nil
		})
		if err := tx.AppendTask(task); err != nil {
			return nil, err
		}
		return []realtime.Event{created(realtime.KindTask, task.ID, team.ID)}, nil
	})
	if err != nil {
		return models.Task{}, err
	}
	s.logger.Info("task created",
		zap.String("task_id", task.ID),
		zap.String("team_id", teamID),
		zap.String("actor_id", actorID),
		zap.String("assigned_to", task.AssignedTo),
	)
	return task, nil
}

// UpdateTaskStatus moves a task to status. Any status may follow any other.
func (s *Service) UpdateTaskStatus(taskID string, status models.TaskStatus) (models.Task, error) {
	const op = "UpdateTaskStatus"
	var task models.Task
	err := s.update(op, func(tx *store.Tx) ([]realtime.Event, error) {
		if !status.Valid() {
			return nil, apperr.Validation(op, "unknown status %q", status)
		}
		var err error
		task, err = tx.Task(taskID)
		if err != nil {
			return nil, err
		}
		task.Status = status
		if err := tx.UpdateTask(task); err != nil {
			return nil, err
		}
		return []realtime.Event{updated(realtime.KindTask, task.ID, task.TeamID)}, nil
	})
	if err != nil {
		return models.Task{}, err
	}
	s.logger.Info("task status updated", zap.String("task_id", task.ID), zap.String("status", string(status)))
	return task, nil
}

// AssignTask reassigns a task. An empty assigneeID leaves it unassigned.
// The actor needs task-assignment rights on the owning team.
func (s *Service) AssignTask(actorID, taskID, assigneeID string) (models.Task, error) {
	const op = "AssignTask"
	var task models.Task
	err := s.update(op, func(tx *store.Tx) ([]realtime.Event, error) {
		actor, err := tx.User(actorID)
		if err != nil {
			return nil, err
		}
		task, err = tx.Task(taskID)
		if err != nil {
			return nil, err
		}
		team, err := tx.Team(task.TeamID)
		if err != nil {
			return nil, err
		}
		if !access.CanAssignTask(actor, &team) {
			return nil, apperr.PermissionDenied(op, "%s %q may not assign tasks in %q", actor.Role, actor.ID, team.ID)
		}
		if assigneeID != "" {
			if _, err := tx.User(assigneeID); err != nil {
				return nil, err
			}
		}
		task.AssignedTo = assigneeID
		if err := tx.UpdateTask(task); err != nil {
			return nil, err
		}
		return []realtime.Event{updated(realtime.KindTask, task.ID, task.TeamID)}, nil
	})
	if err != nil {
		return models.Task{}, err
	}
	s.logger.Info("task assigned", zap.String("task_id", task.ID), zap.String("assigned_to", assigneeID))
	return task, nil
}
