package taskapp

import (
	"context"
	"errors"
	"strings"
	"time"

	"socialfeed/internal/core/apperr"
	taskEntity "socialfeed/internal/core/task"
	"socialfeed/internal/ports"
	taskPort "socialfeed/internal/ports/task"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type TaskService struct {
	TaskRepository taskPort.TaskRepository
	validate       *validator.Validate
	logger         *zap.Logger
	now            func() time.Time
}

func NewTaskService(repo taskPort.TaskRepository, logger *zap.Logger) *TaskService {
	return &TaskService{
		TaskRepository: repo,
		validate:       validator.New(),
		logger:         logger,
		now:            time.Now,
	}
}

// CreateTask همه فیلدها الزامی هستند و state باید یکی از مقادیر مجاز باشد
func (s *TaskService) CreateTask(ctx context.Context, in taskPort.CreateTaskInput) (*taskPort.TaskDTO, error) {
	in.PostID = strings.TrimSpace(in.PostID)
	in.Content = strings.TrimSpace(in.Content)
	in.Task = strings.TrimSpace(in.Task)
	if err := s.validate.Struct(in); err != nil {
		return nil, apperr.Validation("All fields are required")
	}
	state, ok := taskEntity.ParseState(in.State)
	if !ok {
		return nil, invalidState(in.State)
	}

	now := s.now()
	t, err := s.TaskRepository.Create(ctx, &taskEntity.Task{
		ID:        uuid.Must(uuid.NewV4()),
		PostID:    in.PostID,
		Content:   in.Content,
		Task:      in.Task,
		State:     state,
		UserTime:  *in.UserTime,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	s.logger.Info("Created task", zap.String("taskID", t.ID.String()), zap.String("postID", t.PostID))
	return taskPort.ToDTO(t), nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*taskPort.TaskDTO, error) {
	tasks, err := s.TaskRepository.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	dtos := make([]*taskPort.TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = taskPort.ToDTO(t)
	}
	return dtos, nil
}

// UpdateTask ادغام جزئی؛ فیلدهای متنی نمی‌توانند خالی شوند
func (s *TaskService) UpdateTask(ctx context.Context, id string, in taskPort.UpdateTaskInput) (*taskPort.TaskDTO, error) {
	t, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct {
		dst *string
		src *string
	}{
		{&t.PostID, in.PostID},
		{&t.Content, in.Content},
		{&t.Task, in.Task},
	} {
		if f.src == nil {
			continue
		}
		v := strings.TrimSpace(*f.src)
		if v == "" {
			return nil, apperr.Validation("All fields are required")
		}
		*f.dst = v
	}
	if in.State != nil {
		state, ok := taskEntity.ParseState(*in.State)
		if !ok {
			return nil, invalidState(*in.State)
		}
		t.State = state
	}
	if in.UserTime != nil {
		t.UserTime = *in.UserTime
	}

	t.UpdatedAt = s.now()
	if err := s.TaskRepository.Update(ctx, t); err != nil {
		return nil, notFoundOr(err)
	}
	return taskPort.ToDTO(t), nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) (*taskPort.TaskDTO, error) {
	t, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.TaskRepository.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err)
	}
	s.logger.Info("Deleted task", zap.String("taskID", id))
	return taskPort.ToDTO(t), nil
}

func (s *TaskService) find(ctx context.Context, id string) (*taskEntity.Task, error) {
	if _, err := uuid.FromString(id); err != nil {
		return nil, apperr.Validation("Invalid ID format")
	}
	t, err := s.TaskRepository.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return t, nil
}

func invalidState(state string) error {
	return apperr.Validation("invalid state %q: must be one of pending, in-progress, completed", state)
}

func notFoundOr(err error) error {
	if errors.Is(err, ports.ErrNotFound) {
		return apperr.NotFound("Task not found")
	}
	return apperr.Wrap(err)
}
