package v1

import (
	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/internal/snapshot"
	"github.com/rs/zerolog/log"
)

// Snapshots mirrors every profile into a JSON document after it changed.
// Mirroring is disabled when it is nil.
var Snapshots *snapshot.Store

// persist rewrites the snapshot of the profile. Failures are logged, the
// database stays the source of truth.
func persist(profileIDs ...uuid.UUID) {
	if Snapshots == nil {
		return
	}

	for _, id := range profileIDs {
		if id == uuid.Nil {
			continue
		}

		var profile models.Profile
		err := models.DB.Where("id = ?", id).First(&profile).Error
		if err != nil {
			log.Error().Str("profile", id.String()).Err(err).Msg("Could not load profile for snapshot")
			continue
		}

		doc, err := profile.Document(models.DB)
		if err != nil {
			log.Error().Str("profile", id.String()).Err(err).Msg("Could not assemble snapshot")
			continue
		}

		err = Snapshots.Save(id.String(), doc)
		if err != nil {
			log.Error().Str("profile", id.String()).Err(err).Msg("Could not save snapshot")
		}
	}
}

// forget removes the snapshot of a deleted profile.
func forget(id uuid.UUID) {
	if Snapshots == nil {
		return
	}

	err := Snapshots.Delete(id.String())
	if err != nil {
		log.Error().Str("profile", id.String()).Err(err).Msg("Could not delete snapshot")
	}
}
