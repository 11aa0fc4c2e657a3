package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/safarind/umrah-marketplace-api/infrastructure/database/postgres"
	"github.com/safarind/umrah-marketplace-api/internal/domain"
)

// BookingLogRepository persists the analytics-grade booking records. Both
// writes are issued best-effort from the background runner; callers treat
// failures as observability events only.
type BookingLogRepository interface {
	SaveGuestBooking(ctx context.Context, entry domain.GuestBookingLog) error
	SaveBookingLog(ctx context.Context, entry domain.BookingLogEntry) error
}

type bookingLogRepository struct {
	conn *postgres.Connection
}

func NewBookingLogRepository(conn *postgres.Connection) BookingLogRepository {
	return &bookingLogRepository{
		conn: conn,
	}
}

func (r *bookingLogRepository) SaveGuestBooking(ctx context.Context, entry domain.GuestBookingLog) error {
	sqlQuery, args, err := squirrel.
		Insert("guest_bookings").
		Columns("name", "phone", "default_pax").
		Values(entry.Name, entry.Phone, entry.DefaultPax).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building guest booking insert: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("error inserting guest booking: %w", err)
	}

	return nil
}

func (r *bookingLogRepository) SaveBookingLog(ctx context.Context, entry domain.BookingLogEntry) error {
	sqlQuery, args, err := squirrel.
		Insert("booking_logs").
		Columns(
			"name",
			"phone",
			"pax",
			"package_id",
			"package_name",
			"selected_package_name",
			"package_price",
			"travel_name",
			"travel_username",
			"is_guest",
			"user_id",
		).
		Values(
			entry.Name,
			entry.Phone,
			entry.Pax,
			entry.PackageID,
			entry.PackageName,
			entry.SelectedPackageName,
			entry.PackagePrice,
			entry.TravelName,
			entry.TravelUsername,
			entry.IsGuest,
			nullableString(entry.UserID),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building booking log insert: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("error inserting booking log: %w", err)
	}

	return nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
