package directory

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carebridge/symptomdesk/internal/config"
	"github.com/carebridge/symptomdesk/pkg/models"
)

// Connect opens a pgx pool for the physician database.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// RunMigrations applies the physicians schema migrations from dir.
func RunMigrations(databaseURL, dir string) error {
	m, err := migrate.New("file://"+dir, databaseURL)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// PostgresSource reads physician records from the physicians table.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a Postgres-backed source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

func (s *PostgresSource) Name() string { return "postgres" }

// Ping checks database connectivity.
func (s *PostgresSource) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresSource) Load(ctx context.Context) ([]models.PhysicianRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, specialization, experience, contact,
		        hospital, rating, availability, address, languages, education
		 FROM physicians
		 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query physicians: %w", err)
	}
	defer rows.Close()

	var records []models.PhysicianRecord
	for rows.Next() {
		var r models.PhysicianRecord
		if err := rows.Scan(&r.Name, &r.Specialization, &r.Experience, &r.Contact,
			&r.Hospital, &r.Rating, &r.Availability, &r.Address, &r.Languages, &r.Education); err != nil {
			return nil, fmt.Errorf("scan physician: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

var _ Source = (*PostgresSource)(nil)
