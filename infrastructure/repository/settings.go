package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/safarind/umrah-marketplace-api/infrastructure/database/postgres"
)

// SettingsRepository reads the key-value settings store owned by the admin
// panel. This service never writes settings.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

// Get returns the raw value for key, or the empty string when the key is
// absent. Callers apply their own defaults.
func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	sqlQuery, args, err := squirrel.
		Select("s.value").
		From("settings s").
		Where(squirrel.Eq{"s.key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("error building settings query: %w", err)
	}

	var value string
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("error reading setting %q: %w", key, err)
	}

	return value, nil
}
