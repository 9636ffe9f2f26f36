package store

import (
	"time"

	"github.com/hrygo/meetingmate/internal/profile"
	"github.com/hrygo/meetingmate/store/cache"
)

const meetingListCacheKey = "meeting_list"

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// Cache settings
	cacheConfig cache.Config

	// meetingListCache caches the full meeting list between mutations.
	// It is strictly advisory; every mutation invalidates it.
	meetingListCache *cache.Cache
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	// Default cache settings
	cacheConfig := cache.Config{
		DefaultTTL:      10 * time.Minute,
		CleanupInterval: 5 * time.Minute,
		MaxItems:        16,
		OnEviction:      nil,
	}

	store := &Store{
		driver:           driver,
		profile:          profile,
		cacheConfig:      cacheConfig,
		meetingListCache: cache.New(cacheConfig),
	}

	return store
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	// Stop all cache cleanup goroutines
	s.meetingListCache.Close()

	return s.driver.Close()
}
