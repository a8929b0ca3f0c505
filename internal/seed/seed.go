package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/service"
	"gorm.io/gorm"
)

const seededDays = 40

var disturbPool = []string{"caffeine", "noise", "stress", "late_meal", "screen_time"}

// Run seeds the database with sample users, sleep records, and cognitive
// sessions. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.UserBlacklist{},
		&domain.SleepRecord{},
		&domain.CognitiveSession{},
		&domain.CognitiveResultSRT{},
		&domain.CognitiveResultSymbol{},
		&domain.CognitiveResultPattern{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{
			ID:         uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			SocialType: domain.SocialTypeKakao,
			SocialID:   "seed-kakao-1",
			Email:      "jiwoo@example.com",
			Nickname:   "jiwoo",
			Gender:     strPtr("female"),
			BirthYear:  intPtr(1997),
			MBTI:       strPtr("INFP"),
			Status:     domain.UserStatusActive,
			JoinedAt:   time.Now().AddDate(0, -3, 0),
		},
		{
			ID:         uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			SocialType: domain.SocialTypeGoogle,
			SocialID:   "seed-google-1",
			Email:      "minseo@example.com",
			Nickname:   "minseo",
			Gender:     strPtr("male"),
			BirthYear:  intPtr(1991),
			MBTI:       strPtr("ENTJ"),
			Status:     domain.UserStatusActive,
			JoinedAt:   time.Now().AddDate(0, -1, 0),
		},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedSleepRecordsForUser(db, user, rng); err != nil {
			return err
		}
		if err := seedCognitiveSessionsForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedSleepRecordsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 1; i <= seededDays; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")

		duration := 360 + rng.Intn(240)
		quality := rng.Intn(5)
		latency := rng.Intn(45)
		wakeCount := rng.Intn(4)

		var factors []string
		for _, f := range disturbPool {
			if rng.Intn(4) == 0 {
				factors = append(factors, f)
			}
		}

		record := domain.SleepRecord{
			UserID:            user.ID,
			Date:              date,
			SleepDuration:     duration,
			SubjectiveQuality: quality,
			SleepLatency:      latency,
			WakeCount:         wakeCount,
			DisturbFactors:    factors,
			Score:             service.ComputeSleepScore(duration, quality, latency, wakeCount, factors),
		}

		err := db.Where("user_id = ? AND date = ?", user.ID, date).FirstOrCreate(&record).Error
		if err != nil {
			return fmt.Errorf("failed to create sleep record for %s on %s: %w", user.ID, date, err)
		}
	}
	return nil
}

func seedCognitiveSessionsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 1; i <= seededDays; i++ {
		// Roughly two test days out of three.
		if rng.Intn(3) == 0 {
			continue
		}

		day := now.AddDate(0, 0, -i)
		startedAt := time.Date(day.Year(), day.Month(), day.Day(), 8+rng.Intn(3), rng.Intn(60), 0, 0, time.UTC)
		endedAt := startedAt.Add(time.Duration(5+rng.Intn(10)) * time.Minute)

		session := domain.CognitiveSession{
			UserID:    user.ID,
			StartedAt: startedAt,
			EndedAt:   &endedAt,
			CreatedAt: startedAt,
		}
		if err := db.Where("user_id = ? AND started_at = ?", user.ID, startedAt).
			FirstOrCreate(&session).Error; err != nil {
			return fmt.Errorf("failed to create session for %s: %w", user.ID, err)
		}

		srt := domain.CognitiveResultSRT{
			SessionID:     session.ID,
			Score:         40 + rng.Float64()*60,
			ReactionAvgMs: 180 + rng.Float64()*150,
			CreatedAt:     startedAt.Add(time.Minute),
		}
		if err := db.Where("session_id = ?", session.ID).FirstOrCreate(&srt).Error; err != nil {
			return fmt.Errorf("failed to create srt result: %w", err)
		}

		correct := 10 + rng.Intn(12)
		symbol := domain.CognitiveResultSymbol{
			SessionID:      session.ID,
			Score:          40 + rng.Float64()*60,
			SymbolCorrect:  correct,
			SymbolAccuracy: 0.6 + rng.Float64()*0.4,
			CreatedAt:      startedAt.Add(2 * time.Minute),
		}
		if err := db.Where("session_id = ?", session.ID).FirstOrCreate(&symbol).Error; err != nil {
			return fmt.Errorf("failed to create symbol result: %w", err)
		}

		pattern := domain.CognitiveResultPattern{
			SessionID:      session.ID,
			Score:          40 + rng.Float64()*60,
			PatternCorrect: 3 + rng.Intn(5),
			PatternTimeSec: 20 + rng.Float64()*40,
			CreatedAt:      startedAt.Add(3 * time.Minute),
		}
		if err := db.Where("session_id = ?", session.ID).FirstOrCreate(&pattern).Error; err != nil {
			return fmt.Errorf("failed to create pattern result: %w", err)
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
