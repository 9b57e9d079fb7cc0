package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Kaiser28/comptable-dashboard/validation"
)

// ActType discriminates the four kinds of corporate act.
type ActType string

const (
	TypeCession      ActType = "cession_actions"
	TypeAugmentation ActType = "augmentation_capital"
	TypeReduction    ActType = "reduction_capital"
	TypeAGOrdinaire  ActType = "ag_ordinaire"
)

// Statut is the lifecycle state of an act.
type Statut string

const (
	StatutBrouillon Statut = "brouillon"
	StatutValide    Statut = "validé"
	StatutSigne     Statut = "signé"
)

// Valid reports whether s is a known status.
func (s Statut) Valid() bool {
	switch s {
	case StatutBrouillon, StatutValide, StatutSigne:
		return true
	}
	return false
}

// CanTransition reports whether the lifecycle allows moving from s to next.
// Transitions are single forward steps; nothing leaves signé.
func (s Statut) CanTransition(next Statut) bool {
	switch s {
	case StatutBrouillon:
		return next == StatutValide
	case StatutValide:
		return next == StatutSigne
	}
	return false
}

var ErrUnknownActType = errors.New("unknown_act_type")

// Payload is the type-specific part of an act. Implemented by *Cession,
// *Augmentation, *Reduction and *AGOrdinaire.
type Payload interface {
	ActType() ActType
}

// NewPayload returns an empty payload for t.
func NewPayload(t ActType) (Payload, error) {
	switch t {
	case TypeCession:
		return &Cession{}, nil
	case TypeAugmentation:
		return &Augmentation{}, nil
	case TypeReduction:
		return &Reduction{}, nil
	case TypeAGOrdinaire:
		return &AGOrdinaire{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownActType, t)
}

// Act is one legal event: the common envelope plus its typed payload.
type Act struct {
	ID        uint    `json:"id,omitempty"`
	Reference string  `json:"reference,omitempty"`
	ClientID  uint    `json:"client_id"`
	DateActe  *Date   `json:"date_acte"`
	Statut    Statut  `json:"statut"`
	Payload   Payload `json:"-"`
}

// Type returns the discriminant, empty when no payload is set.
func (a Act) Type() ActType {
	if a.Payload == nil {
		return ""
	}
	return a.Payload.ActType()
}

// IsSigned returns true once the act is frozen.
func (a Act) IsSigned() bool { return a.Statut == StatutSigne }

// CanEdit returns true if the act can still be modified.
func (a Act) CanEdit() bool { return a.Statut != StatutSigne }

type actAlias Act

type actWire struct {
	actAlias
	Type    ActType         `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (a Act) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(a.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(actWire{actAlias: actAlias(a), Type: a.Type(), Payload: payload})
}

func (a *Act) UnmarshalJSON(b []byte) error {
	b, err := validation.BlankToNull(b)
	if err != nil {
		return err
	}
	var w actWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	p, err := NewPayload(w.Type)
	if err != nil {
		return err
	}
	if len(w.Payload) > 0 && string(w.Payload) != "null" {
		if err := json.Unmarshal(w.Payload, p); err != nil {
			return fmt.Errorf("decode %s payload: %w", w.Type, err)
		}
	}
	*a = Act(w.actAlias)
	a.Payload = p
	return nil
}

