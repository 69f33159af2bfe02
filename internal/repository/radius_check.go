package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/captain_radius/internal/models"
	"github.com/shenikar/captain_radius/internal/service"
)

type RadiusCheckRepository struct {
	db *pgxpool.Pool
}

func NewRadiusCheckRepository(db *pgxpool.Pool) service.RadiusCheckRepository {
	return &RadiusCheckRepository{db: db}
}

// SaveRadiusCheck сохраняет запись о проверке радиуса в бд
func (r *RadiusCheckRepository) SaveRadiusCheck(ctx context.Context, check *models.RadiusCheck) error {
	query := `
		INSERT INTO radius_checks (
			id, captain_id, origin_text, destination_text, radius_km,
			within_radius, distance_km, message, reason, checked_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		check.ID,
		check.CaptainID,
		check.OriginText,
		check.DestinationText,
		check.RadiusKm,
		check.WithinRadius,
		check.DistanceKm,
		check.Message,
		string(check.Reason),
		check.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save radius check: %w", err)
	}
	return nil
}

// ListRadiusChecks возвращает журнал проверок, новые первыми
func (r *RadiusCheckRepository) ListRadiusChecks(ctx context.Context, page, pageSize int) ([]*models.RadiusCheck, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			captain_id,
			origin_text,
			destination_text,
			radius_km,
			within_radius,
			distance_km,
			message,
			reason,
			checked_at
		FROM radius_checks
		ORDER BY checked_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list radius checks: %w", err)
	}
	defer rows.Close()

	checks := make([]*models.RadiusCheck, 0)
	for rows.Next() {
		check := &models.RadiusCheck{}
		var reason string
		err := rows.Scan(
			&check.ID,
			&check.CaptainID,
			&check.OriginText,
			&check.DestinationText,
			&check.RadiusKm,
			&check.WithinRadius,
			&check.DistanceKm,
			&check.Message,
			&reason,
			&check.CheckedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan radius check row: %w", err)
		}
		check.Reason = models.CheckReason(reason)
		checks = append(checks, check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return checks, nil
}

// GetRadiusCheckStats считает проверки за последние minutes минут
func (r *RadiusCheckRepository) GetRadiusCheckStats(ctx context.Context, minutes int) (*models.RadiusCheckStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE NOT within_radius),
			COUNT(*) FILTER (WHERE reason = $2)
		FROM radius_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	stats := &models.RadiusCheckStats{}
	err := r.db.QueryRow(ctx, query, minutes, string(models.ReasonOriginUnresolved)).Scan(
		&stats.Total,
		&stats.Rejected,
		&stats.OriginUnresolved,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stats, nil
		}
		return nil, fmt.Errorf("failed to get radius check stats: %w", err)
	}
	return stats, nil
}
