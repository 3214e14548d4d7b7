package repository

// SettingsRepository is a simple key-value store for application settings,
// e.g. the current USD/TRY exchange rate under "usd_try_rate".
type SettingsRepository interface {
	Get(key, def string) (string, error)
	Set(key, value string) error
}
