//go:build !dialog

package main

import "errors"

// pickImage falls back to the -image path when built without the native
// dialog.
func pickImage(fallback string) (string, error) {
	if fallback == "" {
		return "", errors.New("native file dialog unavailable; build with -tags dialog or pass -image")
	}
	return fallback, nil
}
