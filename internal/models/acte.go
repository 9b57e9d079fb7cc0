package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Acte is the persisted form of an Act. The typed payload is stored as JSON.
type Acte struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"-"`

	Type     ActType    `gorm:"size:32;not null;index" json:"type"`
	DateActe *time.Time `json:"date_acte,omitempty"`
	Statut   Statut     `gorm:"size:16;not null;default:'brouillon'" json:"statut"`
	Payload  string     `gorm:"type:text;not null" json:"-"`
}

// BeforeCreate assigns the public reference.
func (a *Acte) BeforeCreate(tx *gorm.DB) error {
	if a.Reference == "" {
		a.Reference = uuid.NewString()
	}
	if a.Statut == "" {
		a.Statut = StatutBrouillon
	}
	return nil
}

// NewActe builds the row for act.
func NewActe(act Act) (*Acte, error) {
	row := &Acte{ID: act.ID, Reference: act.Reference, Statut: act.Statut}
	if err := row.Assign(act); err != nil {
		return nil, err
	}
	return row, nil
}

// Assign copies the editable content of act into the row. Identity,
// reference and status are left untouched.
func (a *Acte) Assign(act Act) error {
	if act.Payload == nil {
		return fmt.Errorf("%w: missing payload", ErrUnknownActType)
	}
	b, err := json.Marshal(act.Payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", act.Type(), err)
	}
	a.ClientID = act.ClientID
	a.Type = act.Type()
	a.DateActe = DatePtr(act.DateActe)
	a.Payload = string(b)
	return nil
}

// Act decodes the row into its domain form.
func (a *Acte) Act() (Act, error) {
	p, err := NewPayload(a.Type)
	if err != nil {
		return Act{}, err
	}
	if err := json.Unmarshal([]byte(a.Payload), p); err != nil {
		return Act{}, fmt.Errorf("decode %s payload: %w", a.Type, err)
	}
	return Act{
		ID:        a.ID,
		Reference: a.Reference,
		ClientID:  a.ClientID,
		DateActe:  DateFrom(a.DateActe),
		Statut:    a.Statut,
		Payload:   p,
	}, nil
}
