package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/models"
)

// offlineDemoUserID matches the id of the seeded demo account.
const offlineDemoUserID = "1"

// offlineAuthenticator checks the single demo credential pair. The password
// is kept only as a bcrypt hash.
type offlineAuthenticator struct {
	enabled bool
	email   string
	hash    []byte
}

func newOfflineAuthenticator(cfg config.ClientApp) (*offlineAuthenticator, error) {
	a := &offlineAuthenticator{enabled: cfg.OfflineDemoEnabled}
	if !a.enabled {
		return a, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.OfflineDemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	a.email = strings.ToLower(strings.TrimSpace(cfg.OfflineDemoEmail))
	a.hash = hash
	return a, nil
}

// Authenticate returns the demo identity when email and password match.
func (a *offlineAuthenticator) Authenticate(email, password string) (*models.Identity, bool) {
	if a == nil || !a.enabled {
		return nil, false
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != a.email {
		// still pay the hash cost so timing doesn't reveal the email
		_ = bcrypt.CompareHashAndPassword(a.hash, []byte(password))
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
		return nil, false
	}

	return &models.Identity{
		ID:     offlineDemoUserID,
		Email:  a.email,
		Name:   "Usuario Administrador",
		Avatar: "https://via.placeholder.com/150",
	}, true
}

func (a *offlineAuthenticator) Enabled() bool {
	return a != nil && a.enabled
}
