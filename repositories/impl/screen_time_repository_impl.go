package impl

import (
	"KinderShelf/repositories"
	"KinderShelf/screentime"
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	settingsCollection = "screenTimeSettings"
	usageCollection    = "usageData"
	usageDays          = "days"
)

// ScreenTimeRepositoryImpl keeps settings at screenTimeSettings/{childId}
// and usage at usageData/{childId}/days/{YYYY-MM-DD}.
type ScreenTimeRepositoryImpl struct {
	Client *firestore.Client
}

func NewScreenTimeRepository(client *firestore.Client) repositories.ScreenTimeRepository {
	return &ScreenTimeRepositoryImpl{Client: client}
}

func (r *ScreenTimeRepositoryImpl) settingsDoc(childID string) *firestore.DocumentRef {
	return r.Client.Collection(settingsCollection).Doc(childID)
}

func (r *ScreenTimeRepositoryImpl) days(childID string) *firestore.CollectionRef {
	return r.Client.Collection(usageCollection).Doc(childID).Collection(usageDays)
}

func (r *ScreenTimeRepositoryImpl) GetSettings(ctx context.Context, childID string) (screentime.PartialSettings, bool, error) {
	snap, err := r.settingsDoc(childID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return screentime.PartialSettings{}, false, nil
	}
	if err != nil {
		return screentime.PartialSettings{}, false, fmt.Errorf("get settings for %s: %w", childID, err)
	}

	var stored screentime.PartialSettings
	if err := snap.DataTo(&stored); err != nil {
		return screentime.PartialSettings{}, false, fmt.Errorf("decode settings for %s: %w", childID, err)
	}
	return stored, true, nil
}

func (r *ScreenTimeRepositoryImpl) SaveSettings(ctx context.Context, childID string, settings screentime.Settings) error {
	if _, err := r.settingsDoc(childID).Set(ctx, settings); err != nil {
		return fmt.Errorf("save settings for %s: %w", childID, err)
	}
	return nil
}

func (r *ScreenTimeRepositoryImpl) DeleteSettings(ctx context.Context, childID string) error {
	if _, err := r.settingsDoc(childID).Delete(ctx); err != nil {
		return fmt.Errorf("delete settings for %s: %w", childID, err)
	}
	return nil
}

func (r *ScreenTimeRepositoryImpl) GetUsage(ctx context.Context, childID, date string) (*screentime.Usage, error) {
	snap, err := r.days(childID).Doc(date).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get usage for %s on %s: %w", childID, date, err)
	}

	var usage screentime.Usage
	if err := snap.DataTo(&usage); err != nil {
		return nil, fmt.Errorf("decode usage for %s on %s: %w", childID, date, err)
	}
	return &usage, nil
}

func (r *ScreenTimeRepositoryImpl) GetUsageRange(ctx context.Context, childID, from, to string) ([]screentime.Usage, error) {
	query := r.days(childID).
		Where("date", ">=", from).
		Where("date", "<=", to).
		OrderBy("date", firestore.Asc)
	return r.collect(ctx, childID, query)
}

func (r *ScreenTimeRepositoryImpl) ListUsage(ctx context.Context, childID string) ([]screentime.Usage, error) {
	return r.collect(ctx, childID, r.days(childID).OrderBy("date", firestore.Desc))
}

func (r *ScreenTimeRepositoryImpl) collect(ctx context.Context, childID string, query firestore.Query) ([]screentime.Usage, error) {
	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list usage for %s: %w", childID, err)
	}

	usages := make([]screentime.Usage, 0, len(snaps))
	for _, snap := range snaps {
		var usage screentime.Usage
		if err := snap.DataTo(&usage); err != nil {
			return nil, fmt.Errorf("decode usage %s for %s: %w", snap.Ref.ID, childID, err)
		}
		usages = append(usages, usage)
	}
	return usages, nil
}

// AddUsage applies delta inside a transaction so concurrent device reports
// for the same day never lose minutes.
func (r *ScreenTimeRepositoryImpl) AddUsage(ctx context.Context, childID, date string, delta repositories.UsageDelta) (screentime.Usage, error) {
	ref := r.days(childID).Doc(date)
	var updated screentime.Usage

	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		usage := screentime.ZeroUsage(date)

		snap, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
		case err != nil:
			return err
		default:
			if err := snap.DataTo(&usage); err != nil {
				return err
			}
		}

		updated = applyDelta(usage, delta)
		return tx.Set(ref, updated)
	})
	if err != nil {
		return screentime.Usage{}, fmt.Errorf("add usage for %s on %s: %w", childID, date, err)
	}
	return updated, nil
}

func (r *ScreenTimeRepositoryImpl) DeleteUsage(ctx context.Context, childID string) error {
	iter := r.days(childID).DocumentRefs(ctx)
	for {
		ref, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("list usage days for %s: %w", childID, err)
		}
		if _, err := ref.Delete(ctx); err != nil {
			return fmt.Errorf("delete usage %s for %s: %w", ref.ID, childID, err)
		}
	}
	return nil
}

// applyDelta only ever grows the counters of a day.
func applyDelta(usage screentime.Usage, delta repositories.UsageDelta) screentime.Usage {
	usage.VideoMinutes += max(0, delta.VideoMinutes)
	usage.BookMinutes += max(0, delta.BookMinutes)
	usage.TotalMinutes += max(0, delta.TotalMinutes)
	if delta.At.After(usage.LastActivity) {
		usage.LastActivity = delta.At
	}

	if delta.Category != "" {
		seen := false
		for _, c := range usage.CategoriesAccessed {
			if c == delta.Category {
				seen = true
				break
			}
		}
		if !seen {
			usage.CategoriesAccessed = append(usage.CategoriesAccessed, delta.Category)
		}
	}
	if usage.CategoriesAccessed == nil {
		usage.CategoriesAccessed = []string{}
	}
	return usage
}
