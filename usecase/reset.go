package usecase

import (
	"context"
	"log"
	"main/repository"
	"main/services"
	"main/utils"
	"sort"
	"time"
)

// ResetService rolls every user's board over to a fresh day: habit hit
// counters back to zero, completed dailies back to active. Each per-user
// step is idempotent, so a crashed run can be repeated without double
// effects.
type ResetService struct {
	habitsRepo  *repository.HabitsRepo
	dailiesRepo *repository.DailiesRepo
	usersRepo   *repository.UsersRepo
	cache       *services.ProgressCache
}

func NewResetService(
	habitsRepo *repository.HabitsRepo,
	dailiesRepo *repository.DailiesRepo,
	usersRepo *repository.UsersRepo,
	cache *services.ProgressCache,
) *ResetService {
	return &ResetService{
		habitsRepo:  habitsRepo,
		dailiesRepo: dailiesRepo,
		usersRepo:   usersRepo,
		cache:       cache,
	}
}

// RunDailyReset performs the reset for the given instant. The date-keyed
// lock makes sure only one replica runs it per UTC day; a failed user is
// logged and skipped so one bad document cannot stall everyone else.
func (svc *ResetService) RunDailyReset(ctx context.Context, now time.Time) error {
	date := now.UTC().Format("2006-01-02")

	if !svc.cache.AcquireResetLock(ctx, date) {
		log.Printf("Daily reset for %s already claimed by another instance, skipping", date)
		utils.ResetRunsTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	userIDs, err := svc.collectUserIDs(ctx)
	if err != nil {
		utils.ResetRunsTotal.WithLabelValues("failed").Inc()
		utils.TrackError("reset", "user_scan_failed")
		return err
	}

	var failures int
	for _, userID := range userIDs {
		if err := svc.ResetUser(ctx, userID, now); err != nil {
			log.Printf("Daily reset failed for user %s: %v", userID, err)
			utils.TrackError("reset", "user_reset_failed")
			failures++
			continue
		}
		utils.ResetUsersTotal.Inc()
	}

	if failures > 0 {
		log.Printf("Daily reset for %s finished with %d/%d users failed", date, failures, len(userIDs))
		utils.ResetRunsTotal.WithLabelValues("failed").Inc()
	} else {
		log.Printf("Daily reset for %s finished, %d users processed", date, len(userIDs))
		utils.ResetRunsTotal.WithLabelValues("completed").Inc()
	}
	return nil
}

// ResetUser rolls a single user over. The operations are plain state
// transitions (completed to active, nonzero hits to zero), so repeating
// them on an already-reset user changes nothing.
func (svc *ResetService) ResetUser(ctx context.Context, userID string, now time.Time) error {
	if err := svc.habitsRepo.ResetCurrentHits(ctx, userID); err != nil {
		return err
	}
	if err := svc.dailiesRepo.ResetStatuses(ctx, userID); err != nil {
		return err
	}
	if err := svc.usersRepo.StampLastReset(ctx, userID, now.UTC()); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, userID)
	return nil
}

// LastReset reports when the user was last rolled over, or the zero time
// when no reset has reached them yet.
func (svc *ResetService) LastReset(ctx context.Context, userID string) (time.Time, error) {
	user, err := svc.usersRepo.FindUser(ctx, userID)
	if err != nil {
		return time.Time{}, err
	}
	if user == nil {
		return time.Time{}, nil
	}
	return user.LastResetDate, nil
}

// collectUserIDs unions the owners of habits and dailies. Users with only
// todos hold nothing a reset touches.
func (svc *ResetService) collectUserIDs(ctx context.Context) ([]string, error) {
	habitOwners, err := svc.habitsRepo.DistinctUserIDs(ctx)
	if err != nil {
		return nil, err
	}
	dailyOwners, err := svc.dailiesRepo.DistinctUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(habitOwners)+len(dailyOwners))
	for _, id := range habitOwners {
		seen[id] = struct{}{}
	}
	for _, id := range dailyOwners {
		seen[id] = struct{}{}
	}

	userIDs := make([]string, 0, len(seen))
	for id := range seen {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)
	return userIDs, nil
}

// ResetScheduler fires the daily reset at every UTC midnight.
type ResetScheduler struct {
	reset *ResetService
}

func NewResetScheduler(reset *ResetService) *ResetScheduler {
	return &ResetScheduler{reset: reset}
}

// NextMidnightUTC returns the first UTC midnight strictly after now.
func NextMidnightUTC(now time.Time) time.Time {
	utcNow := now.UTC()
	next := time.Date(utcNow.Year(), utcNow.Month(), utcNow.Day(), 0, 0, 0, 0, time.UTC)
	return next.AddDate(0, 0, 1)
}

// Start blocks until ctx is cancelled, running the reset at each UTC
// midnight. Run it in its own goroutine.
func (s *ResetScheduler) Start(ctx context.Context) {
	for {
		next := NextMidnightUTC(time.Now())
		timer := time.NewTimer(time.Until(next))
		log.Printf("Next daily reset scheduled for %s", next.Format(time.RFC3339))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case fired := <-timer.C:
			runCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
			if err := s.reset.RunDailyReset(runCtx, fired); err != nil {
				log.Printf("Daily reset run failed: %v", err)
			}
			cancel()
		}
	}
}
