package stubapi

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/fitiplus/internal/utils"
	"github.com/MKhiriev/fitiplus/models"
)

// Seeded account.
const (
	SeedUserID   = "1"
	SeedEmail    = "admin@fitiplus.com"
	SeedPassword = "admin123"
)

type account struct {
	identity            models.Identity
	passwordHash        []byte
	onboardingCompleted bool
}

// directory holds accounts, live refresh tokens and revoked access tokens.
type directory struct {
	mu       sync.RWMutex
	byID     map[string]*account
	byEmail  map[string]*account
	refresh  map[string]string // refresh token -> user id
	revoked  map[string]struct{}
	ids      *utils.UUIDGenerator
	hashCost int
}

func newDirectory(hashCost int) *directory {
	d := &directory{
		byID:     make(map[string]*account),
		byEmail:  make(map[string]*account),
		refresh:  make(map[string]string),
		revoked:  make(map[string]struct{}),
		ids:      utils.NewUUIDGenerator(),
		hashCost: hashCost,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), hashCost)
	if err != nil {
		panic(err)
	}
	d.add(&account{
		identity: models.Identity{
			ID:     SeedUserID,
			Email:  SeedEmail,
			Name:   "Usuario Administrador",
			Role:   "admin",
			Avatar: "https://via.placeholder.com/150",
		},
		passwordHash: hash,
	})
	return d
}

// add must be called with mu held or before the directory is shared.
func (d *directory) add(a *account) {
	d.byID[a.identity.ID] = a
	d.byEmail[normalizeEmail(a.identity.Email)] = a
}

func (d *directory) register(req models.RegisterRequest) (models.Identity, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return models.Identity{}, ErrIncompleteFields
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), d.hashCost)
	if err != nil {
		return models.Identity{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byEmail[normalizeEmail(req.Email)]; ok {
		return models.Identity{}, ErrEmailTaken
	}
	a := &account{
		identity: models.Identity{
			ID:        d.ids.Generate(),
			Email:     strings.TrimSpace(req.Email),
			Name:      strings.TrimSpace(req.Name),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Role:      "client",
		},
		passwordHash: hash,
	}
	d.add(a)
	return a.identity, nil
}

func (d *directory) authenticate(email, password string) (models.Identity, bool, error) {
	d.mu.RLock()
	a, ok := d.byEmail[normalizeEmail(email)]
	var (
		hash      []byte
		identity  models.Identity
		onboarded bool
	)
	if ok {
		hash, identity, onboarded = a.passwordHash, a.identity, a.onboardingCompleted
	}
	d.mu.RUnlock()
	if !ok {
		return models.Identity{}, false, ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return models.Identity{}, false, ErrWrongPassword
	}
	return identity, onboarded, nil
}

func (d *directory) get(id string) (models.Identity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.byID[id]
	if !ok {
		return models.Identity{}, ErrUserNotFound
	}
	return a.identity, nil
}

func (d *directory) changePassword(id, current, next string) error {
	d.mu.RLock()
	a, ok := d.byID[id]
	var hash []byte
	if ok {
		hash = a.passwordHash
	}
	d.mu.RUnlock()
	if !ok {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(current)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), d.hashCost)
	if err != nil {
		return err
	}

	d.mu.Lock()
	a.passwordHash = hash
	d.mu.Unlock()
	return nil
}

func (d *directory) issueRefresh(userID string) string {
	tok := d.ids.Token()
	d.mu.Lock()
	d.refresh[tok] = userID
	d.mu.Unlock()
	return tok
}

// rotateRefresh consumes tok and returns its user id.
func (d *directory) rotateRefresh(tok string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	userID, ok := d.refresh[tok]
	if !ok {
		return "", ErrUnknownRefresh
	}
	delete(d.refresh, tok)
	return userID, nil
}

func (d *directory) revoke(accessToken, refreshToken string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if accessToken != "" {
		d.revoked[accessToken] = struct{}{}
	}
	delete(d.refresh, refreshToken)
}

func (d *directory) isRevoked(accessToken string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.revoked[accessToken]
	return ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
