package response_models

import "flock/internal/models/db_models"

// ProfileResponse is the caller's own account. Campuses is filled for
// Leaders linked to one or more campuses.
type ProfileResponse struct {
	User     db_models.User `json:"user"`
	Campuses []string       `json:"campuses,omitempty"`
}
