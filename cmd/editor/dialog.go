//go:build dialog

package main

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"

	"github.com/milk9111/paintbox/raster"
)

func pickImage(string) (string, error) {
	path, err := dialog.File().Filter("Image files", raster.ImageExtensions...).Title("Open image").Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", errors.New("no file chosen")
	}
	if err != nil {
		return "", fmt.Errorf("open dialog: %w", err)
	}
	return path, nil
}
