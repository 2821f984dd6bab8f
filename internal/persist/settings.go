package persist

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/quasilyte/gdata"
)

// AppName is the data directory name used for user-scoped settings.
const AppName = "skydodo"

const settingsItem = "settings"

// DefaultVolume is used when no settings were saved.
const DefaultVolume = 0.5

// Settings are the user's persisted preferences.
type Settings struct {
	Volume float64 `json:"volume"`
}

// DefaultSettings returns the settings used when nothing valid is stored.
func DefaultSettings() Settings {
	return Settings{Volume: DefaultVolume}
}

// Normalize clamps the volume to [0, 1]; NaN becomes the default.
func (s Settings) Normalize() Settings {
	if math.IsNaN(s.Volume) {
		s.Volume = DefaultVolume
	}
	s.Volume = math.Max(0, math.Min(1, s.Volume))
	return s
}

// ItemStore is the key/value persistence the settings live in.
// *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenItemStore opens the user-scoped data directory for the app.
func OpenItemStore() (ItemStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("persist: cannot open data directory: %w", err)
	}
	return m, nil
}

// SettingsStore loads and saves Settings in an ItemStore.
type SettingsStore struct {
	items ItemStore
}

// NewSettingsStore wraps an item store. A nil store keeps settings in memory only.
func NewSettingsStore(items ItemStore) *SettingsStore {
	return &SettingsStore{items: items}
}

// Load returns the stored settings. Absent data gives the defaults with a nil
// error; unreadable or malformed data gives the defaults and a non-nil error
// the caller should log and otherwise ignore.
func (s *SettingsStore) Load() (Settings, error) {
	if s == nil || s.items == nil {
		return DefaultSettings(), nil
	}
	data, err := s.items.LoadItem(settingsItem)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("persist: cannot load settings: %w", err)
	}
	if len(data) == 0 {
		return DefaultSettings(), nil
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("persist: malformed settings: %w", err)
	}
	return settings.Normalize(), nil
}

// Save normalizes and stores the settings.
func (s *SettingsStore) Save(settings Settings) error {
	if s == nil || s.items == nil {
		return nil
	}
	data, err := json.Marshal(settings.Normalize())
	if err != nil {
		return fmt.Errorf("persist: cannot encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsItem, data); err != nil {
		return fmt.Errorf("persist: cannot save settings: %w", err)
	}
	return nil
}
