package services

import (
	"KinderShelf/interfaces"
	"KinderShelf/models"
	"KinderShelf/pagination"
	"KinderShelf/repositories"
	"KinderShelf/screentime"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

type ScreenTimeService struct {
	Repo       repositories.ScreenTimeRepository
	ParentRepo repositories.ParentRepository
	Notifier   interfaces.NotificationService
	Hub        interfaces.WebSocketHubService
	Location   *time.Location
	Now        func() time.Time
}

func NewScreenTimeService(
	repo repositories.ScreenTimeRepository,
	parentRepo repositories.ParentRepository,
	notifier interfaces.NotificationService,
	hub interfaces.WebSocketHubService,
	location *time.Location,
) *ScreenTimeService {
	if location == nil {
		location = time.UTC
	}
	return &ScreenTimeService{
		Repo:       repo,
		ParentRepo: parentRepo,
		Notifier:   notifier,
		Hub:        hub,
		Location:   location,
		Now:        time.Now,
	}
}

// StatusReport is the evaluation for one child at one moment.
type StatusReport struct {
	screentime.Result
	ChildFirebaseUID string    `json:"child_firebase_uid"`
	Date             string    `json:"date"`
	EvaluatedAt      time.Time `json:"evaluated_at"`
	Blocked          bool      `json:"blocked"`
	// PolicyError is set when the stored settings could not be evaluated and
	// the child is reported unrestricted instead.
	PolicyError string `json:"policy_error,omitempty"`
}

// HistoryPage is one page of recorded days, newest first.
type HistoryPage struct {
	Items      []screentime.Usage `json:"items"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	Total      int                `json:"total"`
	TotalPages int                `json:"total_pages"`
	Pages      []int              `json:"pages"`
}

const historyWindow = 5

func (s *ScreenTimeService) now() time.Time {
	return s.Now().In(s.Location)
}

// GetSettings returns the child's settings with defaults filled in.
func (s *ScreenTimeService) GetSettings(ctx context.Context, childID string) (screentime.Settings, error) {
	stored, found, err := s.Repo.GetSettings(ctx, childID)
	if err != nil {
		return screentime.Settings{}, err
	}
	if !found {
		return screentime.Defaults(), nil
	}
	return screentime.Normalize(stored), nil
}

// UpdateSettings merges patch into the current settings, validates and stores
// the result, then tells the family about the new limits.
func (s *ScreenTimeService) UpdateSettings(ctx context.Context, child models.Child, patch screentime.PartialSettings) (screentime.Settings, error) {
	current, err := s.GetSettings(ctx, child.FirebaseUID)
	if err != nil {
		return screentime.Settings{}, err
	}

	updated := screentime.Merge(current, patch)
	if err := screentime.ValidateSettings(updated); err != nil {
		return screentime.Settings{}, err
	}
	if err := s.Repo.SaveSettings(ctx, child.FirebaseUID, updated); err != nil {
		return screentime.Settings{}, err
	}

	log.Printf("[ScreenTime] Settings updated for child %s", child.FirebaseUID)
	if s.Hub != nil {
		s.Hub.BroadcastScreenTimeLimit(child.FirebaseUID, child.ParentFirebaseUID, updated)
	}
	return updated, nil
}

// Status evaluates the child against today's usage.
func (s *ScreenTimeService) Status(ctx context.Context, childID string) (StatusReport, error) {
	now := s.now()
	settings, err := s.GetSettings(ctx, childID)
	if err != nil {
		return StatusReport{}, err
	}
	usage, err := s.usageOn(ctx, childID, screentime.DateKey(now))
	if err != nil {
		return StatusReport{}, err
	}
	return s.report(childID, settings, usage, now)
}

// usageOn substitutes a zero record for a day without usage.
func (s *ScreenTimeService) usageOn(ctx context.Context, childID, date string) (screentime.Usage, error) {
	usage, err := s.Repo.GetUsage(ctx, childID, date)
	if err != nil {
		return screentime.Usage{}, err
	}
	if usage == nil {
		return screentime.ZeroUsage(date), nil
	}
	return *usage, nil
}

func (s *ScreenTimeService) report(childID string, settings screentime.Settings, usage screentime.Usage, now time.Time) (StatusReport, error) {
	report := StatusReport{
		ChildFirebaseUID: childID,
		Date:             usage.Date,
		EvaluatedAt:      now,
	}

	result, err := screentime.Evaluate(settings, usage, now)
	if errors.Is(err, screentime.ErrInvalidInput) {
		log.Printf("[ScreenTime] Settings for child %s cannot be evaluated, reporting unrestricted: %v", childID, err)
		report.Result = screentime.Result{
			Status:      screentime.StatusWithinLimits,
			UsedMinutes: usage.TotalMinutes,
		}
		report.PolicyError = err.Error()
		return report, nil
	}
	if err != nil {
		return StatusReport{}, err
	}

	report.Result = result
	report.Blocked = result.Blocked()
	return report, nil
}

// RecordUsage adds a finished session to today's record and re-evaluates.
// Moving into a stricter status, or using the app during bedtime, alerts
// the guardian.
func (s *ScreenTimeService) RecordUsage(ctx context.Context, child models.Child, session models.Session) (StatusReport, error) {
	if session.Minutes <= 0 {
		return StatusReport{}, fmt.Errorf("%w: minutes must be positive", screentime.ErrInvalidInput)
	}

	now := s.now()
	date := screentime.DateKey(now)
	settings, err := s.GetSettings(ctx, child.FirebaseUID)
	if err != nil {
		return StatusReport{}, err
	}
	previous, err := s.usageOn(ctx, child.FirebaseUID, date)
	if err != nil {
		return StatusReport{}, err
	}
	before, err := s.report(child.FirebaseUID, settings, previous, now)
	if err != nil {
		return StatusReport{}, err
	}

	at := session.EndedAt
	if at.IsZero() || at.After(now) {
		at = now
	}
	delta := repositories.UsageDelta{
		TotalMinutes: session.Minutes,
		Category:     session.Category,
		At:           at,
	}
	switch session.ContentType {
	case models.ContentVideo:
		delta.VideoMinutes = session.Minutes
	case models.ContentBook:
		delta.BookMinutes = session.Minutes
	}

	usage, err := s.Repo.AddUsage(ctx, child.FirebaseUID, date, delta)
	if err != nil {
		return StatusReport{}, err
	}

	after, err := s.report(child.FirebaseUID, settings, usage, now)
	if err != nil {
		return StatusReport{}, err
	}

	// before and after share now, so bedtime is never a transition.
	if after.Status == screentime.StatusBedtime || escalated(before.Status, after.Status) {
		s.alert(child, before.Status, after)
	}
	return after, nil
}

func escalated(before, after screentime.Status) bool {
	if after == screentime.StatusWithinLimits || after == before {
		return false
	}
	return screentime.Severity(after) > screentime.Severity(before)
}

func (s *ScreenTimeService) alert(child models.Child, previous screentime.Status, report StatusReport) {
	alert := models.ScreenTimeAlert{
		ChildFirebaseUID: child.FirebaseUID,
		ChildName:        child.Name,
		Status:           string(report.Status),
		PreviousStatus:   string(previous),
		UsedMinutes:      report.UsedMinutes,
		RemainingMinutes: report.RemainingMinutes,
		At:               report.EvaluatedAt,
	}

	if s.Hub != nil {
		s.Hub.BroadcastScreenTimeAlert(child.ParentFirebaseUID, child.FirebaseUID, alert)
	}
	if s.Notifier == nil {
		return
	}

	parent, err := s.ParentRepo.FindByFirebaseUID(child.ParentFirebaseUID)
	if err != nil {
		log.Printf("[ScreenTime] Guardian %s of child %s not found: %v", child.ParentFirebaseUID, child.FirebaseUID, err)
		return
	}
	if parent.DeviceToken == "" {
		return
	}

	title, body := AlertText(parent.Lang, alert.Status, child.Name, alert.RemainingMinutes)
	data := map[string]string{
		"type":     "screen_time_alert",
		"child_id": child.FirebaseUID,
		"status":   alert.Status,
	}
	if err := s.Notifier.SendNotification(parent.DeviceToken, title, body, data, parent.Lang); err != nil {
		log.Printf("[ScreenTime] Error notifying guardian %s: %v", parent.FirebaseUID, err)
	}
}

// WeeklySummary returns the seven chart bars ending today.
func (s *ScreenTimeService) WeeklySummary(ctx context.Context, childID string) ([screentime.DaysPerWeek]screentime.DayUsage, error) {
	now := s.now()
	days := screentime.WeekDates(now)
	records, err := s.Repo.GetUsageRange(ctx, childID, screentime.DateKey(days[0]), screentime.DateKey(days[len(days)-1]))
	if err != nil {
		return [screentime.DaysPerWeek]screentime.DayUsage{}, err
	}
	return screentime.SummarizeWeek(screentime.AlignWeek(records, now), now), nil
}

// UsageHistory pages through every recorded day, newest first.
func (s *ScreenTimeService) UsageHistory(ctx context.Context, childID string, page pagination.Page) (HistoryPage, error) {
	records, err := s.Repo.ListUsage(ctx, childID)
	if err != nil {
		return HistoryPage{}, err
	}

	total := len(records)
	totalPages := pagination.TotalPages(total, page.PerPage)
	start, end := page.Bounds(total)

	return HistoryPage{
		Items:      append([]screentime.Usage{}, records[start:end]...),
		Page:       page.Number,
		PerPage:    page.PerPage,
		Total:      total,
		TotalPages: totalPages,
		Pages:      pagination.Window(page.Number, totalPages, historyWindow),
	}, nil
}
