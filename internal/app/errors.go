package app

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	invalidPatternCode = "INVALID_PATTERN"
	profileStoreCode   = "PROFILE_STORE"
	watchFailedCode    = "WATCH_FAILED"
)

// wrapPatternError marks a compilation failure as a validation error. The
// original *textproc.InvalidPatternError stays reachable through errors.As.
func wrapPatternError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "pattern rejected").
		WithTextCode(invalidPatternCode)
}

func wrapStoreError(err error, message string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, message).
		WithTextCode(profileStoreCode)
}

func wrapWatchError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "watch failed").
		WithTextCode(watchFailedCode)
}

// IsInvalidPattern reports whether err came from a rejected pattern.
func IsInvalidPattern(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}
