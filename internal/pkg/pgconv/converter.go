package pgconv

import (
	"database/sql"
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidNumericValue = errors.New("invalid numeric value in pgtype.Numeric")

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func Float64FromNumeric(pn pgtype.Numeric) (float64, error) {
	if !pn.Valid {
		return 0, nil
	}

	value, err := pn.Float64Value()
	if err != nil {
		return 0, ErrInvalidNumericValue
	}

	return value.Float64, nil
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// Float64ToNumeric keeps full decimal precision through the int/exp encoding
// that pgtype.Numeric uses for scanning.
func Float64ToNumeric(f float64) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(big.NewFloat(f).Text('f', -1)); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
