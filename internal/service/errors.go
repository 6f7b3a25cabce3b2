package service

import (
	"database/sql"
	"errors"
	"time"

	appErrors "github.com/noah-isme/activity-catalog-api/pkg/errors"
)

// queryObserver receives the timing of each repository call.
type queryObserver interface {
	ObserveDBQuery(label string, duration time.Duration, failed bool)
}

func observe(obs queryObserver, label string, start time.Time, err error) {
	if obs == nil {
		return
	}
	failed := err != nil && !errors.Is(err, sql.ErrNoRows)
	obs.ObserveDBQuery(label, time.Since(start), failed)
}

func internalError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

// lookupError maps a single-row lookup failure to a not-found or internal error.
func lookupError(err error, notFound, internal string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	return internalError(err, internal)
}
