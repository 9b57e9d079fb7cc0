package models

import "github.com/shopspring/decimal"

// Modalités d'augmentation de capital.
const (
	ModaliteNumeraire             = "numeraire"
	ModaliteNature                = "nature"
	ModaliteIncorporationReserves = "incorporation_reserves"
)

// Modalités de réduction de capital.
const (
	ModaliteRachatAnnulation        = "rachat_annulation"
	ModaliteReductionValeurNominale = "reduction_valeur_nominale"
	ModaliteCoupAccordeon           = "coup_accordeon"
)

// Affectations du résultat.
const (
	AffectationReport     = "report_a_nouveau"
	AffectationReserves   = "reserves"
	AffectationDividendes = "dividendes"
	AffectationMixte      = "mixte"
)

// Cession is a transfer of shares from an associé to a buyer.
type Cession struct {
	CedantID *uint `json:"cedant_id"`

	CessionnaireCivilite      string `json:"cessionnaire_civilite"`
	CessionnaireNom           string `json:"cessionnaire_nom"`
	CessionnairePrenom        string `json:"cessionnaire_prenom"`
	CessionnaireAdresse       string `json:"cessionnaire_adresse"`
	CessionnaireNationalite   string `json:"cessionnaire_nationalite"`
	CessionnaireDateNaissance *Date  `json:"cessionnaire_date_naissance,omitempty"`
	CessionnaireLieuNaissance string `json:"cessionnaire_lieu_naissance,omitempty"`

	NombreActions *int64              `json:"nombre_actions"`
	PrixUnitaire  decimal.NullDecimal `json:"prix_unitaire"`
	PrixTotal     decimal.NullDecimal `json:"prix_total"` // computed

	DateAgrement      *Date  `json:"date_agrement"`
	ModalitesPaiement string `json:"modalites_paiement"`
	DatePaiement      *Date  `json:"date_paiement,omitempty"`
}

func (*Cession) ActType() ActType { return TypeCession }

// NouvelAssocie is a shareholder admitted by a capital increase. It only
// lives inside the act.
type NouvelAssocie struct {
	Civilite      string              `json:"civilite"`
	Nom           string              `json:"nom"`
	Prenom        string              `json:"prenom"`
	Adresse       string              `json:"adresse"`
	MontantApport decimal.NullDecimal `json:"montant_apport"`
	NombreActions *int64              `json:"nombre_actions"`
}

// Augmentation is a capital increase.
type Augmentation struct {
	AncienCapital       decimal.NullDecimal `json:"ancien_capital"`
	MontantAugmentation decimal.NullDecimal `json:"montant_augmentation"`
	NouveauCapital      decimal.NullDecimal `json:"nouveau_capital"` // computed
	Modalite            string              `json:"modalite"`

	ActionsExistantes      *int64              `json:"actions_existantes"`
	NombreNouvellesActions *int64              `json:"nombre_nouvelles_actions"`
	ValeurNominale         decimal.NullDecimal `json:"valeur_nominale"` // computed
	PrimeEmission          decimal.NullDecimal `json:"prime_emission,omitempty"`

	Quorum      decimal.NullDecimal `json:"quorum"`
	VotesPour   *int64              `json:"votes_pour"`
	VotesContre *int64              `json:"votes_contre"`

	// In-kind contribution
	DescriptionApport      string              `json:"description_apport"`
	ApportNature           bool                `json:"apport_nature"`
	MontantApportNature    decimal.NullDecimal `json:"montant_apport_nature"`
	PourcentageCapital     decimal.NullDecimal `json:"pourcentage_capital"`     // computed
	CommissaireObligatoire bool                `json:"commissaire_obligatoire"` // computed
	CommissaireDesigne     bool                `json:"commissaire_designe"`
	CommissaireNom         string              `json:"commissaire_nom"`

	BanqueDepositaire      string `json:"banque_depositaire,omitempty"`
	DateLimiteSouscription *Date  `json:"date_limite_souscription,omitempty"`

	NouveauxAssocies []NouvelAssocie `json:"nouveaux_associes,omitempty"`
}

func (*Augmentation) ActType() ActType { return TypeAugmentation }

// EnNature reports whether the increase carries an in-kind contribution,
// either by its modality or by the explicit toggle.
func (p *Augmentation) EnNature() bool {
	return p.ApportNature || p.Modalite == ModaliteNature
}

// Reduction is a capital reduction.
type Reduction struct {
	AncienCapital          decimal.NullDecimal `json:"ancien_capital"`
	NombreActions          *int64              `json:"nombre_actions"`
	MontantReduction       decimal.NullDecimal `json:"montant_reduction"`
	Modalite               string              `json:"modalite"`
	NouveauCapital         decimal.NullDecimal `json:"nouveau_capital"`          // computed
	ValeurNominaleActuelle decimal.NullDecimal `json:"valeur_nominale_actuelle"` // computed

	// rachat_annulation
	NombreActionsRachetees *int64              `json:"nombre_actions_rachetees,omitempty"`
	PrixRachatParAction    decimal.NullDecimal `json:"prix_rachat_par_action"`

	// reduction_valeur_nominale
	AncienneValeurNominale decimal.NullDecimal `json:"ancienne_valeur_nominale"`
	NouvelleValeurNominale decimal.NullDecimal `json:"nouvelle_valeur_nominale"`

	// coup_accordeon
	NouveauCapitalApresReduction decimal.NullDecimal `json:"nouveau_capital_apres_reduction"`
	MontantAugmentationSuivante  decimal.NullDecimal `json:"montant_augmentation_suivante"`
	CapitalFinal                 decimal.NullDecimal `json:"capital_final"` // computed

	VotesPour   *int64 `json:"votes_pour"`
	VotesContre *int64 `json:"votes_contre"`

	Motif            string `json:"motif"`
	MotiveeParPertes bool   `json:"motivee_par_pertes"`
}

func (*Reduction) ActType() ActType { return TypeReduction }

// AGOrdinaire is the annual ordinary general assembly approving the accounts.
type AGOrdinaire struct {
	HeureAssemblee  string `json:"heure_assemblee"` // "15:04"
	Lieu            string `json:"lieu,omitempty"`
	PresidentSeance string `json:"president_seance,omitempty"`

	ExerciceClos        string              `json:"exercice_clos"`
	DateClotureExercice *Date               `json:"date_cloture_exercice,omitempty"`
	ResultatExercice    decimal.NullDecimal `json:"resultat_exercice"`

	Affectation       string              `json:"affectation"`
	MontantDividendes decimal.NullDecimal `json:"montant_dividendes"`
	MontantReserves   decimal.NullDecimal `json:"montant_reserves"`
	MontantReport     decimal.NullDecimal `json:"montant_report"`

	VotesPour       *int64 `json:"votes_pour"`
	VotesContre     *int64 `json:"votes_contre"`
	VotesAbstention *int64 `json:"votes_abstention"`

	Quitus bool `json:"quitus"`
}

func (*AGOrdinaire) ActType() ActType { return TypeAGOrdinaire }

// Int64 returns a pointer to n, for building payloads in code.
func Int64(n int64) *int64 { return &n }

// Uint returns a pointer to n.
func Uint(n uint) *uint { return &n }

// Amount parses s into a set decimal and panics on malformed input. It is
// meant for literals in code and tests.
func Amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}
