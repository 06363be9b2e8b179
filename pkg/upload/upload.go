// Package upload runs the menu-upload workflow: optionally create the
// restaurant first, then ship the PDF with the resolved id.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goodstuffhq/goodstuff/pkg/menu"
)

// Service is the slice of the API client the workflow needs.
type Service interface {
	CreateRestaurant(ctx context.Context, r menu.NewRestaurant) (int, error)
	UploadMenu(ctx context.Context, restaurantID int, filename string, file io.Reader) error
}

// Request describes one upload. Exactly one of RestaurantID (existing) or
// NewRestaurant must be set.
type Request struct {
	RestaurantID  int
	NewRestaurant *menu.NewRestaurant
	Filename      string
	File          io.Reader
}

// Run executes the workflow and returns the restaurant id the menu was
// attached to. When a new restaurant is requested, creation happens first
// and any failure there aborts before the upload is attempted.
func Run(ctx context.Context, svc Service, req Request) (int, error) {
	if req.File == nil {
		return 0, errors.New("upload: no menu file")
	}

	id := req.RestaurantID
	if req.NewRestaurant != nil {
		if missing := req.NewRestaurant.Validate(); missing != "" {
			return 0, fmt.Errorf("upload: new restaurant missing required field %q", missing)
		}
		created, err := svc.CreateRestaurant(ctx, *req.NewRestaurant)
		if err != nil {
			return 0, fmt.Errorf("upload: create restaurant: %w", err)
		}
		id = created
	}
	if id <= 0 {
		return 0, errors.New("upload: no valid restaurant id")
	}

	if err := svc.UploadMenu(ctx, id, req.Filename, req.File); err != nil {
		return 0, fmt.Errorf("upload: %w", err)
	}
	return id, nil
}
