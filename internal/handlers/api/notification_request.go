package api

import (
	"fmt"

	"inspovault/internal/models"
)

type notificationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

func (r notificationRequest) variant() (models.Variant, error) {
	switch v := models.Variant(r.Variant); v {
	case "":
		return models.VariantDefault, nil
	case models.VariantDefault, models.VariantDestructive:
		return v, nil
	}
	return "", fmt.Errorf("unknown variant %q", r.Variant)
}
