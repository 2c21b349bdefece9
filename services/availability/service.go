package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	blockRepo "clinicbook/database/repository/block"
	bookingRepo "clinicbook/database/repository/booking"
	ruleRepo "clinicbook/database/repository/rule"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultAvailabilityService fetches rule/block/booking snapshots from the
// repositories, runs the pure resolver over them, and caches results for
// dates other than today (today's output depends on the clock).
type DefaultAvailabilityService struct {
	Rules       ruleRepo.AvailabilityRuleRepository
	Blocks      blockRepo.BlockRuleRepository
	Bookings    bookingRepo.BookingRepository
	Cache       *redis.Client
	CacheTTL    time.Duration
	HorizonDays int
}

func cacheKey(locationName, date string) string {
	return fmt.Sprintf("avail:%s:%s", locationName, date)
}

func (s *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, locationName, date string, now time.Time) (models.AvailabilityResult, error) {
	logger := utils.GetLogger()

	if _, err := models.ParseDate(date); err != nil {
		return models.AvailabilityResult{}, err
	}

	cacheable := s.Cache != nil && date != models.DateOf(now)
	if cacheable {
		if cached, err := s.Cache.Get(ctx, cacheKey(locationName, date)).Result(); err == nil {
			var result models.AvailabilityResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	rules, err := s.Rules.ListByLocation(ctx, locationName)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	blocks, err := s.Blocks.ListByLocation(ctx, locationName)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to fetch block rules: %w", err)
	}
	bookings, err := s.Bookings.ListActive(ctx, locationName, date)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	result := Resolve(rules, blocks, bookings, locationName, date, now)

	if cacheable {
		if data, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(ctx, cacheKey(locationName, date), data, s.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability result",
					zap.String("location", locationName), zap.String("date", date), zap.Error(err))
			}
		}
	}
	return result, nil
}

func (s *DefaultAvailabilityService) CheckRuleConflicts(ctx context.Context, candidate models.AvailabilityRule) ([]models.Conflict, error) {
	if err := candidate.Validate(); err != nil {
		return nil, NewInvalidRuleError(err.Error())
	}
	existing, err := s.Rules.ListByLocation(ctx, candidate.LocationName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	return DetectConflicts(candidate, existing, s.HorizonDays), nil
}

// InvalidateLocation drops every cached date for the location. A rule or
// block write can affect arbitrarily many dates, so the whole prefix goes.
func (s *DefaultAvailabilityService) InvalidateLocation(ctx context.Context, locationName string) {
	if s.Cache == nil {
		return
	}
	logger := utils.GetLogger()

	var cursor uint64
	pattern := cacheKey(locationName, "*")
	for {
		keys, next, err := s.Cache.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			logger.Warn("failed to scan availability cache", zap.String("location", locationName), zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
				logger.Warn("failed to purge availability cache", zap.String("location", locationName), zap.Error(err))
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
