package leaveapp

import (
	"context"
	"errors"
	"strings"
	"time"

	"socialfeed/internal/core/apperr"
	leaveEntity "socialfeed/internal/core/leave"
	"socialfeed/internal/ports"
	leavePort "socialfeed/internal/ports/leave"
	"socialfeed/internal/ports/media"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// purgeBatch حداکثر رکوردهای منقضی در هر دور پاک‌سازی
const purgeBatch = 100

type LeaveService struct {
	LeaveRepository leavePort.LeaveRepository
	Schedule        leavePort.ExpirySchedule
	ImageStore      media.ImageStore
	validate        *validator.Validate
	logger          *zap.Logger
	now             func() time.Time
}

func NewLeaveService(
	repo leavePort.LeaveRepository,
	schedule leavePort.ExpirySchedule,
	images media.ImageStore,
	logger *zap.Logger,
) *LeaveService {
	return &LeaveService{
		LeaveRepository: repo,
		Schedule:        schedule,
		ImageStore:      images,
		validate:        validator.New(),
		logger:          logger,
		now:             time.Now,
	}
}

// CreateLeave ثبت درخواست مرخصی با تصویر الزامی و زمان‌بندی انقضای ۲۴ ساعته
func (s *LeaveService) CreateLeave(ctx context.Context, in leavePort.CreateLeaveInput, img *media.Image) (*leavePort.LeaveDTO, error) {
	in.RequesterID = strings.TrimSpace(in.RequesterID)
	in.Name = strings.TrimSpace(in.Name)
	in.Position = strings.TrimSpace(in.Position)
	in.Remark = strings.TrimSpace(in.Remark)
	if err := s.validate.Struct(in); err != nil {
		return nil, apperr.Validation("Required fields are missing")
	}

	now := s.now()
	l := &leaveEntity.Leave{
		ID:          uuid.Must(uuid.NewV4()),
		RequesterID: in.RequesterID,
		Name:        in.Name,
		Position:    in.Position,
		Remark:      in.Remark,
		Condition:   in.Condition,
		HalfDay:     strings.TrimSpace(in.HalfDay),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.applyDates(l, in.StartDate, in.EndDate, now); err != nil {
		return nil, err
	}
	if err := checkLeave(l); err != nil {
		return nil, err
	}
	if img == nil || len(img.Data) == 0 {
		return nil, apperr.Validation("Image is required")
	}

	asset, err := s.ImageStore.Upload(ctx, leaveEntity.ImageFolder, img)
	if err != nil {
		s.logger.Error("Leave image upload failed", zap.String("requesterID", l.RequesterID), zap.Error(err))
		return nil, apperr.Upload(err, "Image upload failed")
	}
	l.ImageURL = asset.URL
	l.ImagePublicID = asset.PublicID

	created, err := s.LeaveRepository.Create(ctx, l)
	if err != nil {
		s.destroyImage(ctx, asset.PublicID)
		return nil, apperr.Wrap(err)
	}

	if err := s.Schedule.Schedule(ctx, created.ID.String(), created.ExpiresAt()); err != nil {
		// جاروی پایگاه داده همچنان رکورد را پیدا می‌کند
		s.logger.Warn("Could not schedule leave expiry", zap.String("leaveID", created.ID.String()), zap.Error(err))
	}

	s.logger.Info("Created leave", zap.String("leaveID", created.ID.String()), zap.Time("expiresAt", created.ExpiresAt()))
	return leavePort.ToDTO(created), nil
}

// ListLeaves رکوردهای منقضی‌نشده، جدیدترین اول
func (s *LeaveService) ListLeaves(ctx context.Context) ([]*leavePort.LeaveDTO, error) {
	leaves, err := s.LeaveRepository.ListCreatedAfter(ctx, s.now().Add(-leaveEntity.TTL))
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	dtos := make([]*leavePort.LeaveDTO, len(leaves))
	for i, l := range leaves {
		dtos[i] = leavePort.ToDTO(l)
	}
	return dtos, nil
}

func (s *LeaveService) GetLeave(ctx context.Context, id string) (*leavePort.LeaveDTO, error) {
	l, err := s.findLive(ctx, id)
	if err != nil {
		return nil, err
	}
	return leavePort.ToDTO(l), nil
}

// UpdateLeave ادغام جزئی فیلدهای ارسال‌شده
func (s *LeaveService) UpdateLeave(ctx context.Context, id string, in leavePort.UpdateLeaveInput) (*leavePort.LeaveDTO, error) {
	l, err := s.findLive(ctx, id)
	if err != nil {
		return nil, err
	}

	wasHalfDay := l.Condition
	mergeString(&l.RequesterID, in.RequesterID)
	mergeString(&l.Name, in.Name)
	mergeString(&l.Position, in.Position)
	mergeString(&l.Remark, in.Remark)
	mergeString(&l.HalfDay, in.HalfDay)
	if in.Condition != nil {
		l.Condition = *in.Condition
	}

	start, end := l.StartDate.Format(leavePort.DateLayout), l.EndDate.Format(leavePort.DateLayout)
	if in.StartDate != nil {
		start = *in.StartDate
	}
	if in.EndDate != nil {
		end = *in.EndDate
	}
	now := s.now()
	// تاریخ‌های ذخیره‌شده مرخصی نیم‌روز فقط با تغییر condition دوباره تعیین می‌شوند
	if !l.Condition || !wasHalfDay {
		if err := s.applyDates(l, start, end, now); err != nil {
			return nil, err
		}
	}
	if l.RequesterID == "" || l.Name == "" || l.Position == "" || l.Remark == "" {
		return nil, apperr.Validation("Required fields are missing")
	}
	if err := checkLeave(l); err != nil {
		return nil, err
	}

	l.UpdatedAt = now
	if err := s.LeaveRepository.Update(ctx, l); err != nil {
		return nil, notFoundOr(err)
	}
	return leavePort.ToDTO(l), nil
}

// DeleteLeave حذف رکورد؛ حذف تصویر best-effort است و مانع حذف رکورد نمی‌شود
func (s *LeaveService) DeleteLeave(ctx context.Context, id string) (*leavePort.LeaveDTO, error) {
	if _, err := uuid.FromString(id); err != nil {
		return nil, apperr.Validation("Invalid Id Format")
	}
	l, err := s.LeaveRepository.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	s.destroyImage(ctx, l.ImagePublicID)
	if err := s.LeaveRepository.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err)
	}
	if err := s.Schedule.Remove(ctx, id); err != nil {
		s.logger.Warn("Could not unschedule leave expiry", zap.String("leaveID", id), zap.Error(err))
	}

	s.logger.Info("Deleted leave", zap.String("leaveID", id))
	return leavePort.ToDTO(l), nil
}

// PurgeExpired رکوردهای منقضی (از زمان‌بندی Redis و جاروی پایگاه داده) را همراه تصویرشان حذف می‌کند
func (s *LeaveService) PurgeExpired(ctx context.Context) (int, error) {
	now := s.now()

	due, err := s.Schedule.Due(ctx, now, purgeBatch)
	if err != nil {
		s.logger.Warn("Could not read expiry schedule", zap.Error(err))
		due = nil
	}
	stale, err := s.LeaveRepository.ListCreatedBefore(ctx, now.Add(-leaveEntity.TTL), purgeBatch)
	if err != nil {
		return 0, apperr.Wrap(err)
	}

	ids := make([]string, 0, len(due)+len(stale))
	seen := make(map[string]struct{}, cap(ids))
	for _, id := range due {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, l := range stale {
		id := l.ID.String()
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	purged := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return purged, err
		}
		ok, err := s.purgeOne(ctx, id, now)
		if err != nil {
			s.logger.Error("Could not purge leave", zap.String("leaveID", id), zap.Error(err))
			continue
		}
		if ok {
			purged++
		}
	}
	return purged, nil
}

func (s *LeaveService) purgeOne(ctx context.Context, id string, now time.Time) (bool, error) {
	l, err := s.LeaveRepository.FindByID(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		// ورودی یتیم در زمان‌بندی
		return false, s.Schedule.Remove(ctx, id)
	}
	if err != nil {
		return false, err
	}
	if !l.Expired(now) {
		return false, nil
	}

	s.destroyImage(ctx, l.ImagePublicID)
	if err := s.LeaveRepository.Delete(ctx, id); err != nil && !errors.Is(err, ports.ErrNotFound) {
		return false, err
	}
	if err := s.Schedule.Remove(ctx, id); err != nil {
		s.logger.Warn("Could not unschedule leave expiry", zap.String("leaveID", id), zap.Error(err))
	}
	s.logger.Info("Leave expired and deleted", zap.String("leaveID", id))
	return true, nil
}

func (s *LeaveService) findLive(ctx context.Context, id string) (*leaveEntity.Leave, error) {
	if _, err := uuid.FromString(id); err != nil {
		return nil, apperr.Validation("Invalid Id Format")
	}
	l, err := s.LeaveRepository.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if l.Expired(s.now()) {
		return nil, apperr.NotFound("Leave record not found")
	}
	return l, nil
}

// applyDates تاریخ‌ها را تنظیم می‌کند؛ مرخصی نیم‌روز همیشه روز جاری است
func (s *LeaveService) applyDates(l *leaveEntity.Leave, start, end string, now time.Time) error {
	today := leaveEntity.Day(now)
	if l.Condition {
		l.StartDate, l.EndDate = today, today
		return nil
	}

	var err error
	if l.StartDate, err = parseDate(start, today); err != nil {
		return apperr.Validation("Invalid start_date")
	}
	if l.EndDate, err = parseDate(end, today); err != nil {
		return apperr.Validation("Invalid end_date")
	}
	return nil
}

func checkLeave(l *leaveEntity.Leave) error {
	if l.Condition && l.HalfDay == "" {
		return apperr.Validation("Half day value is required for half-day leave")
	}
	if l.EndDate.Before(l.StartDate) {
		return apperr.Validation("end_date must not be before start_date")
	}
	return nil
}

func (s *LeaveService) destroyImage(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.ImageStore.Destroy(ctx, publicID); err != nil {
		s.logger.Warn("Could not destroy leave image", zap.String("publicID", publicID), zap.Error(err))
	}
}

func parseDate(value string, fallback time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	if t, err := time.Parse(leavePort.DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return leaveEntity.Day(t), nil
}

func mergeString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, ports.ErrNotFound) {
		return apperr.NotFound("Leave record not found")
	}
	return apperr.Wrap(err)
}
