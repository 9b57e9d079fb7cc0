package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Client is the company an act concerns.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	RaisonSociale  string `gorm:"size:255;not null" json:"raison_sociale"`
	FormeJuridique string `gorm:"size:20;not null;default:'SAS'" json:"forme_juridique"`
	SIREN          string `gorm:"size:9;index" json:"siren,omitempty"`
	RCS            string `gorm:"size:100" json:"rcs,omitempty"` // ville du greffe

	// Share capital
	CapitalSocial decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"capital_social"`
	NbActions     int64           `gorm:"not null" json:"nb_actions"`

	// Registered office
	Adresse           string `gorm:"size:500" json:"adresse,omitempty"`
	ComplementAdresse string `gorm:"size:255" json:"complement_adresse,omitempty"`
	CodePostal        string `gorm:"size:10" json:"code_postal,omitempty"`
	Ville             string `gorm:"size:100" json:"ville,omitempty"`

	Objet string `gorm:"type:text" json:"objet,omitempty"`
	Duree int    `gorm:"default:99" json:"duree,omitempty"` // années

	Associes []Associe `gorm:"foreignKey:ClientID" json:"associes,omitempty"`
}

// FullAddress returns the registered office on one line.
func (c *Client) FullAddress() string {
	parts := []string{}
	for _, p := range []string{c.Adresse, c.ComplementAdresse} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	city := strings.TrimSpace(strings.TrimSpace(c.CodePostal) + " " + strings.TrimSpace(c.Ville))
	if city != "" {
		parts = append(parts, city)
	}
	return strings.Join(parts, ", ")
}

// Associe is a natural person holding shares in a client.
type Associe struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	ClientID uint `gorm:"index;not null" json:"client_id"`

	Civilite      string     `gorm:"size:10" json:"civilite"`
	Nom           string     `gorm:"size:255;not null" json:"nom"`
	Prenom        string     `gorm:"size:255" json:"prenom"`
	DateNaissance *time.Time `json:"date_naissance,omitempty"`
	LieuNaissance string     `gorm:"size:255" json:"lieu_naissance,omitempty"`
	Nationalite   string     `gorm:"size:100" json:"nationalite,omitempty"`
	Adresse       string     `gorm:"size:500" json:"adresse,omitempty"`
	NombreActions int64      `gorm:"not null;default:0" json:"nombre_actions"`
	EstPresident  bool       `gorm:"not null;default:false" json:"est_president"`
}

// NomComplet returns "Prénom NOM".
func (a *Associe) NomComplet() string {
	return strings.TrimSpace(strings.TrimSpace(a.Prenom) + " " + strings.ToUpper(strings.TrimSpace(a.Nom)))
}
