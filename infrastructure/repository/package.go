// Package repository contains the SQL-backed data access implementations
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/safarind/umrah-marketplace-api/infrastructure/database/postgres"
	"github.com/safarind/umrah-marketplace-api/internal/domain"
)

const (
	packagesTable     = "packages p"
	travelsTable      = "travels t"
	priceOptionsTable = "price_options po"
)

var packageColumns = []string{
	"p.id",
	"p.name",
	"p.slug",
	"p.is_pinned",
	"p.is_active",
	"p.duration_days",
	"p.departure_city",
	"p.departure_date",
	"p.created_at",
	"p.views",
	"p.favorite_count",
	"p.booking_clicks",
	"t.id",
	"t.name",
	"t.username",
	"t.phone",
	"t.is_verified",
	"t.is_active",
}

type PackageRepository interface {
	ListPackages(ctx context.Context, includeInactive bool) ([]*domain.Package, error)
	GetPackage(ctx context.Context, id string) (*domain.Package, error)
	Deactivate(ctx context.Context, id string) error
	IncrementBookingClicks(ctx context.Context, id string) error
}

type packageRepository struct {
	conn *postgres.Connection
}

func NewPackageRepository(conn *postgres.Connection) PackageRepository {
	return &packageRepository{
		conn: conn,
	}
}

func (r *packageRepository) ListPackages(ctx context.Context, includeInactive bool) ([]*domain.Package, error) {
	queryBuilder := squirrel.
		Select(packageColumns...).
		From(packagesTable).
		Join(fmt.Sprintf("%s ON t.id = p.travel_id", travelsTable)).
		PlaceholderFormat(squirrel.Dollar)

	if !includeInactive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{
			"p.is_active": true,
			"t.is_active": true,
		})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	packages := make([]*domain.Package, 0)
	for rows.Next() {
		pkg, err := r.scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning package: %w", err)
		}
		packages = append(packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return packages, nil
}

func (r *packageRepository) GetPackage(ctx context.Context, id string) (*domain.Package, error) {
	sqlQuery, args, err := squirrel.
		Select(packageColumns...).
		From(packagesTable).
		Join(fmt.Sprintf("%s ON t.id = p.travel_id", travelsTable)).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, sqlQuery, args...)
	pkg, err := r.scanPackageRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning package: %w", err)
	}

	options, err := r.listPriceOptions(ctx, id)
	if err != nil {
		return nil, err
	}
	pkg.PriceOptions = options

	return pkg, nil
}

func (r *packageRepository) listPriceOptions(ctx context.Context, packageID string) ([]domain.PriceOption, error) {
	sqlQuery, args, err := squirrel.
		Select("po.id", "po.name", "po.price", "po.cashback").
		From(priceOptionsTable).
		Where(squirrel.Eq{"po.package_id": packageID}).
		OrderBy("po.price ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	options := make([]domain.PriceOption, 0)
	for rows.Next() {
		var option domain.PriceOption
		if err := rows.Scan(&option.ID, &option.Name, &option.Price, &option.Cashback); err != nil {
			return nil, fmt.Errorf("error scanning price option: %w", err)
		}
		options = append(options, option)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return options, nil
}

func (r *packageRepository) Deactivate(ctx context.Context, id string) error {
	sqlQuery, args, err := squirrel.
		Update("packages").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building deactivate query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("error executing deactivate query: %w", err)
	}

	return nil
}

func (r *packageRepository) IncrementBookingClicks(ctx context.Context, id string) error {
	sqlQuery, args, err := squirrel.
		Update("packages").
		Set("booking_clicks", squirrel.Expr("booking_clicks + 1")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building increment query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("error executing increment query: %w", err)
	}

	return nil
}

func (r *packageRepository) scanPackage(rows *sql.Rows) (*domain.Package, error) {
	pkg := &domain.Package{}

	err := rows.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Slug,
		&pkg.IsPinned,
		&pkg.IsActive,
		&pkg.DurationDays,
		&pkg.DepartureCity,
		&pkg.DepartureDate,
		&pkg.CreatedAt,
		&pkg.Views,
		&pkg.FavoriteCount,
		&pkg.BookingClicks,
		&pkg.Travel.ID,
		&pkg.Travel.Name,
		&pkg.Travel.Username,
		&pkg.Travel.Phone,
		&pkg.Travel.IsVerified,
		&pkg.Travel.IsActive,
	)
	if err != nil {
		return nil, err
	}

	return pkg, nil
}

func (r *packageRepository) scanPackageRow(row *sql.Row) (*domain.Package, error) {
	pkg := &domain.Package{}

	err := row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Slug,
		&pkg.IsPinned,
		&pkg.IsActive,
		&pkg.DurationDays,
		&pkg.DepartureCity,
		&pkg.DepartureDate,
		&pkg.CreatedAt,
		&pkg.Views,
		&pkg.FavoriteCount,
		&pkg.BookingClicks,
		&pkg.Travel.ID,
		&pkg.Travel.Name,
		&pkg.Travel.Username,
		&pkg.Travel.Phone,
		&pkg.Travel.IsVerified,
		&pkg.Travel.IsActive,
	)
	if err != nil {
		return nil, err
	}

	return pkg, nil
}
