package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/internal/rules"
	"github.com/Kaiser28/comptable-dashboard/validation"
)

var (
	formesJuridiques = []string{"SAS", "SASU", "SA", "SARL", "EURL", "SCI"}
	sirenRegex       = regexp.MustCompile(`^\d{9}$`)
)

// ClientService manages clients and their associés.
type ClientService struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewClientService(db *gorm.DB, log zerolog.Logger) *ClientService {
	return &ClientService{DB: db, Log: log}
}

// Create validates and stores a client.
func (s *ClientService) Create(ctx context.Context, c *models.Client) error {
	c.ID = 0
	c.Associes = nil
	c.FormeJuridique = strings.ToUpper(strings.TrimSpace(c.FormeJuridique))
	if c.FormeJuridique == "" {
		c.FormeJuridique = "SAS"
	}
	if v := validateClient(c); !v.Empty() {
		return &ValidationError{Violations: v}
	}
	if err := s.DB.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	s.Log.Info().Uint("client_id", c.ID).Str("raison_sociale", c.RaisonSociale).Msg("client created")
	return nil
}

func validateClient(c *models.Client) validation.Violations {
	v := validation.Violations{}
	validation.Required("raison_sociale", c.RaisonSociale, v)
	validation.OneOf("forme_juridique", c.FormeJuridique, formesJuridiques, v)
	validation.MinDecimal("capital_social", decimal.NewNullDecimal(c.CapitalSocial), calc.CapitalMinimum, v)
	validation.MinInt("nb_actions", &c.NbActions, 1, v)
	if s := strings.TrimSpace(c.SIREN); s != "" && !sirenRegex.MatchString(s) {
		v.Add("siren", "Le SIREN doit comporter 9 chiffres")
	}
	return v
}

// Get loads a client with its associés.
func (s *ClientService) Get(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	err := s.DB.WithContext(ctx).
		Preload("Associes", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load client %d: %w", id, err)
	}
	return &c, nil
}

// AddAssocie registers a shareholder of clientID. Holdings may not exceed
// the client's share count and only one associé may be président.
func (s *ClientService) AddAssocie(ctx context.Context, clientID uint, a *models.Associe) error {
	c, err := s.Get(ctx, clientID)
	if err != nil {
		return err
	}
	a.ID = 0
	a.ClientID = clientID

	v := validation.Violations{}
	validation.Required("nom", a.Nom, v)
	if validation.MinInt("nombre_actions", &a.NombreActions, 0, v) {
		if total := calc.TotalActions(c.Associes) + a.NombreActions; total > c.NbActions {
			v.Addf("nombre_actions", "Le total des actions détenues (%d) dépasse le nombre d'actions de la société (%d)", total, c.NbActions)
		}
	}
	if a.EstPresident {
		for _, other := range c.Associes {
			if other.EstPresident {
				v.Addf("est_president", "%s est déjà président", other.NomComplet())
				break
			}
		}
	}
	if !v.Empty() {
		return &ValidationError{Violations: v}
	}
	if err := s.DB.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create associé: %w", err)
	}
	return nil
}

// Context is the snapshot validators and templates read for clientID.
func (s *ClientService) Context(ctx context.Context, clientID uint) (rules.Context, error) {
	c, err := s.Get(ctx, clientID)
	if err != nil {
		return rules.Context{}, err
	}
	return rules.Context{Client: c, Associes: c.Associes}, nil
}
