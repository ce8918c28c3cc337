package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser accepts standard five-field schedules and descriptors such as
// "@hourly" or "@every 1m".
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateCronSchedule checks a schedule with the parser used by the scheduler.
//
// Example:
//
//	ValidateCronSchedule("*/5 * * * *")  // nil
//	ValidateCronSchedule("@every 1m")    // nil
//	ValidateCronSchedule("every minute") // error
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("invalid cron schedule: cannot be empty")
	}
	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}

// ValidateDuration checks that duration lies in [min, max].
func ValidateDuration(duration, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}
	if duration < min {
		return fmt.Errorf("duration %v is below minimum %v", duration, min)
	}
	if duration > max {
		return fmt.Errorf("duration %v exceeds maximum %v", duration, max)
	}
	return nil
}

// ValidateIntRange checks that value lies in [min, max].
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}
	if value < min {
		return fmt.Errorf("value %d is below minimum %d", value, min)
	}
	if value > max {
		return fmt.Errorf("value %d exceeds maximum %d", value, max)
	}
	return nil
}

func ValidatePositiveDuration(duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", duration)
	}
	return nil
}

func ValidatePositiveInt(value int) error {
	if value <= 0 {
		return fmt.Errorf("value must be positive, got %d", value)
	}
	return nil
}

func ValidateNonNegativeInt(value int) error {
	if value < 0 {
		return fmt.Errorf("value cannot be negative, got %d", value)
	}
	return nil
}

// ValidateRatio accepts values in [0, 1].
func ValidateRatio(value float64) error {
	if value < 0 || value > 1 {
		return fmt.Errorf("ratio must be between 0 and 1, got %v", value)
	}
	return nil
}
