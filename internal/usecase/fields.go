package usecase

import (
	"strings"

	"go-jobportal-backend/pkg/apperror"
)

// requireFields fails with BadRequest naming every blank field, in order.
func requireFields(values map[string]string, order ...string) error {
	var missing []string
	for _, name := range order {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return apperror.BadRequest("All the fields required: " + strings.Join(missing, ", "))
	}
	return nil
}
