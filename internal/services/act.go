package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/docs"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/internal/render"
	"github.com/Kaiser28/comptable-dashboard/internal/rules"
	"github.com/Kaiser28/comptable-dashboard/validation"
)

// Report is the outcome of evaluating an act. Errors block persistence,
// Warnings never do.
type Report struct {
	Errors   validation.Violations `json:"errors"`
	Warnings validation.Violations `json:"warnings"`
}

// Accepted reports whether the act has no blocking violation.
func (r Report) Accepted() bool { return r.Errors.Empty() }

// Generated is an assembled document ready to be served.
type Generated struct {
	Name        string
	ContentType string
	Data        []byte
}

// ActService runs the calculator, the validators and the document
// pipeline around persisted acts.
type ActService struct {
	DB        *gorm.DB
	Clients   *ClientService
	Assembler render.Assembler
	Firm      models.Cabinet
	Log       zerolog.Logger
}

func NewActService(db *gorm.DB, clients *ClientService, asm render.Assembler, firm models.Cabinet, log zerolog.Logger) *ActService {
	return &ActService{DB: db, Clients: clients, Assembler: asm, Firm: firm, Log: log}
}

// Evaluate fills the computed fields of act and validates it against its
// client. Nothing is stored.
func (s *ActService) Evaluate(ctx context.Context, act models.Act) (models.Act, Report, error) {
	rc, err := s.Clients.Context(ctx, act.ClientID)
	if err != nil {
		return act, Report{}, err
	}
	act = calc.Apply(act)
	return act, Report{
		Errors:   rules.Validate(act, rc),
		Warnings: rules.Warnings(act, rc),
	}, nil
}

// Create stores act as a draft when it is accepted.
func (s *ActService) Create(ctx context.Context, act models.Act) (models.Act, Report, error) {
	act.ID, act.Reference, act.Statut = 0, "", models.StatutBrouillon
	act, rep, err := s.Evaluate(ctx, act)
	if err != nil {
		return act, rep, err
	}
	if !rep.Accepted() {
		return act, rep, &ValidationError{Violations: rep.Errors}
	}
	row, err := models.NewActe(act)
	if err != nil {
		return act, rep, err
	}
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return act, rep, fmt.Errorf("create act: %w", err)
	}
	saved, err := row.Act()
	if err != nil {
		return act, rep, err
	}
	s.Log.Info().Uint("act_id", saved.ID).Str("type", string(saved.Type())).Uint("client_id", saved.ClientID).Msg("act created")
	return saved, rep, nil
}

// Get loads a stored act.
func (s *ActService) Get(ctx context.Context, id uint) (models.Act, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return models.Act{}, err
	}
	return row.Act()
}

// ListByClient returns the acts of a client, newest first.
func (s *ActService) ListByClient(ctx context.Context, clientID uint) ([]models.Act, error) {
	var rows []models.Acte
	if err := s.DB.WithContext(ctx).Where("client_id = ?", clientID).Order("id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list acts: %w", err)
	}
	out := make([]models.Act, 0, len(rows))
	for i := range rows {
		a, err := rows[i].Act()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Update replaces the content of a stored act. Signed acts are frozen.
func (s *ActService) Update(ctx context.Context, id uint, act models.Act) (models.Act, Report, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return act, Report{}, err
	}
	if row.Statut == models.StatutSigne {
		return act, Report{}, fmt.Errorf("act %d: %w", id, ErrActSigned)
	}
	if act.Payload != nil && act.Type() != row.Type {
		return act, Report{}, &ValidationError{Violations: validation.Violations{"type": "Le type d'un acte ne peut pas être modifié"}}
	}
	act.ID, act.Reference, act.Statut, act.ClientID = row.ID, row.Reference, row.Statut, row.ClientID
	act, rep, err := s.Evaluate(ctx, act)
	if err != nil {
		return act, rep, err
	}
	if !rep.Accepted() {
		return act, rep, &ValidationError{Violations: rep.Errors}
	}
	if err := row.Assign(act); err != nil {
		return act, rep, err
	}
	// status is never written here; a concurrent signature wins
	res := s.DB.WithContext(ctx).Model(&models.Acte{}).
		Where("id = ? AND statut <> ?", id, models.StatutSigne).
		Updates(map[string]any{"date_acte": row.DateActe, "payload": row.Payload})
	if res.Error != nil {
		return act, rep, fmt.Errorf("update act %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return act, rep, fmt.Errorf("act %d: %w", id, ErrActSigned)
	}
	saved, err := row.Act()
	return saved, rep, err
}

// Transition moves an act one step along brouillon → validé → signé.
// Entering validé re-runs the validators.
func (s *ActService) Transition(ctx context.Context, id uint, next models.Statut) (models.Act, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return models.Act{}, err
	}
	if !next.Valid() || !row.Statut.CanTransition(next) {
		return models.Act{}, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, row.Statut, next)
	}
	act, err := row.Act()
	if err != nil {
		return models.Act{}, err
	}
	if next == models.StatutValide {
		_, rep, err := s.Evaluate(ctx, act)
		if err != nil {
			return act, err
		}
		if !rep.Accepted() {
			return act, &ValidationError{Violations: rep.Errors, Stored: true}
		}
	}
	res := s.DB.WithContext(ctx).Model(&models.Acte{}).
		Where("id = ? AND statut = ?", id, row.Statut).
		Update("statut", next)
	if res.Error != nil {
		return act, fmt.Errorf("update statut of act %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return act, fmt.Errorf("%w: act %d is no longer %s", ErrInvalidTransition, id, row.Statut)
	}
	s.Log.Info().Uint("act_id", id).Str("from", string(act.Statut)).Str("to", string(next)).Msg("act status changed")
	act.Statut = next
	return act, nil
}

// Document builds and assembles a document for a stored act. Acts that no
// longer pass validation are refused.
func (s *ActService) Document(ctx context.Context, id uint, kind docs.Kind) (Generated, error) {
	act, err := s.Get(ctx, id)
	if err != nil {
		return Generated{}, err
	}
	rc, err := s.Clients.Context(ctx, act.ClientID)
	if err != nil {
		return Generated{}, err
	}
	act = calc.Apply(act)
	if v := rules.Validate(act, rc); !v.Empty() {
		return Generated{}, &ValidationError{Violations: v, Stored: true}
	}
	doc, err := docs.Build(kind, docs.Input{Act: act, Client: rc.Client, Associes: rc.Associes, Firm: s.Firm})
	if err != nil {
		return Generated{}, err
	}
	data, err := s.Assembler.Assemble(doc)
	if err != nil {
		return Generated{}, fmt.Errorf("assemble %s: %w", kind, err)
	}
	s.Log.Info().Uint("act_id", id).Str("kind", string(kind)).Int("bytes", len(data)).Msg("document generated")
	return Generated{
		Name:        fmt.Sprintf("%s-%s.%s", kind, act.Reference, s.Assembler.Extension()),
		ContentType: s.Assembler.ContentType(),
		Data:        data,
	}, nil
}

func (s *ActService) load(ctx context.Context, id uint) (*models.Acte, error) {
	var row models.Acte
	err := s.DB.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("act %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load act %d: %w", id, err)
	}
	return &row, nil
}
