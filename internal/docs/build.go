package docs

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Kaiser28/comptable-dashboard/internal/models"
)

// Kind names a document template.
type Kind string

const (
	KindStatuts                 Kind = "statuts"
	KindProcesVerbal            Kind = "proces_verbal"
	KindActeCession             Kind = "acte_cession"
	KindActeAugmentation        Kind = "acte_augmentation"
	KindActeReduction           Kind = "acte_reduction"
	KindDeclarationSouscription Kind = "declaration_souscription"
	KindAttestationCession      Kind = "attestation_cession"
)

var (
	ErrUnknownKind    = errors.New("docs: unknown document kind")
	ErrWrongActType   = errors.New("docs: document does not apply to this act")
	ErrMissingClient  = errors.New("docs: client is required")
	ErrNoShareholders = errors.New("docs: at least one associé is required")
)

// Input is everything a template may read. Act must already carry its
// computed fields.
type Input struct {
	Act      models.Act
	Client   *models.Client
	Associes []models.Associe
	Firm     models.Cabinet
}

type template struct {
	accepts       []models.ActType
	needsAssocies bool
	build         func(Input) (*Document, error)
}

var templates = map[Kind]template{
	KindStatuts: {
		accepts:       []models.ActType{models.TypeCession, models.TypeAugmentation, models.TypeReduction, models.TypeAGOrdinaire},
		needsAssocies: true,
		build:         statuts,
	},
	KindProcesVerbal: {
		accepts:       []models.ActType{models.TypeAugmentation, models.TypeReduction, models.TypeAGOrdinaire},
		needsAssocies: true,
		build:         procesVerbal,
	},
	KindActeCession: {
		accepts:       []models.ActType{models.TypeCession},
		needsAssocies: true,
		build:         acteCession,
	},
	KindActeAugmentation: {
		accepts: []models.ActType{models.TypeAugmentation},
		build:   acteAugmentation,
	},
	KindActeReduction: {
		accepts: []models.ActType{models.TypeReduction},
		build:   acteReduction,
	},
	KindDeclarationSouscription: {
		accepts: []models.ActType{models.TypeAugmentation},
		build:   declarationSouscription,
	},
	KindAttestationCession: {
		accepts:       []models.ActType{models.TypeCession},
		needsAssocies: true,
		build:         attestationCession,
	},
}

var order = []Kind{
	KindStatuts,
	KindProcesVerbal,
	KindActeCession,
	KindActeAugmentation,
	KindActeReduction,
	KindDeclarationSouscription,
	KindAttestationCession,
}

// ParseKind validates a kind coming from a URL or a form.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSpace(s))
	if _, ok := templates[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// KindsFor lists the documents available for an act type.
func KindsFor(t models.ActType) []Kind {
	var out []Kind
	for _, k := range order {
		if slices.Contains(templates[k].accepts, t) {
			out = append(out, k)
		}
	}
	return out
}

// Build runs the template for kind. Shareholders are deduplicated before
// the template sees them.
func Build(kind Kind, in Input) (*Document, error) {
	tpl, ok := templates[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if in.Act.Payload == nil || !slices.Contains(tpl.accepts, in.Act.Type()) {
		return nil, fmt.Errorf("%w: %s for %q", ErrWrongActType, kind, in.Act.Type())
	}
	if in.Client == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingClient, kind)
	}
	in.Associes = Dedup(in.Associes)
	if tpl.needsAssocies && len(in.Associes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoShareholders, kind)
	}
	doc, err := tpl.build(in)
	if err != nil {
		return nil, err
	}
	doc.Kind = kind
	footer(doc, in.Firm)
	return doc, nil
}

// Dedup drops associés whose (nom, prénom) already appeared, ignoring case
// and spacing. The first occurrence wins and order is preserved.
func Dedup(associes []models.Associe) []models.Associe {
	seen := make(map[string]bool, len(associes))
	out := make([]models.Associe, 0, len(associes))
	for _, a := range associes {
		key := normalize(a.Nom) + "|" + normalize(a.Prenom)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func footer(d *Document, firm models.Cabinet) {
	if strings.TrimSpace(firm.Nom) == "" {
		return
	}
	line := "Document préparé par "
	if firm.Signataire != "" {
		line += firm.Signataire + ", "
	}
	line += firm.Nom
	if addr := strings.TrimSpace(strings.Join(strings.Fields(firm.Adresse+" "+firm.CodePostal+" "+firm.Ville), " ")); addr != "" {
		line += ", " + addr
	}
	d.add(Paragraph{Runs: []Run{italic(line)}, Align: AlignCenter})

	var contact []string
	if firm.SIRET != "" {
		contact = append(contact, "SIRET "+firm.SIRET)
	}
	if firm.Telephone != "" {
		contact = append(contact, "Tél. "+firm.Telephone)
	}
	if firm.Email != "" {
		contact = append(contact, firm.Email)
	}
	if len(contact) > 0 {
		d.add(Paragraph{Runs: []Run{italic(strings.Join(contact, " – "))}, Align: AlignCenter})
	}
}
