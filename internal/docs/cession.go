package docs

import (
	"fmt"
	"strings"

	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/format"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
)

func cedant(in Input, p *models.Cession) (*models.Associe, error) {
	a := findAssocie(in.Associes, p.CedantID)
	if a == nil {
		return nil, fmt.Errorf("%w: le cédant ne figure pas parmi les associés", ErrNoShareholders)
	}
	return a, nil
}

func cessionnaireNom(p *models.Cession) string {
	return format.OrPlaceholder(strings.TrimSpace(strings.TrimSpace(p.CessionnairePrenom) + " " + strings.ToUpper(strings.TrimSpace(p.CessionnaireNom))))
}

func cessionnaireIdentite(p *models.Cession) string {
	return personne(p.CessionnaireCivilite, cessionnaireNom(p), models.DatePtr(p.CessionnaireDateNaissance),
		p.CessionnaireLieuNaissance, p.CessionnaireNationalite, p.CessionnaireAdresse)
}

func acteCession(in Input) (*Document, error) {
	p := in.Act.Payload.(*models.Cession)
	vendeur, err := cedant(in, p)
	if err != nil {
		return nil, err
	}
	c := in.Client
	d := &Document{
		Title:    "ACTE DE CESSION D'ACTIONS",
		Subtitle: format.OrPlaceholder(c.RaisonSociale),
	}

	d.para(bold(strings.ToUpper(format.Soussigne([]string{vendeur.Civilite, p.CessionnaireCivilite})) + " :"))
	d.textf("%s,", identite(vendeur))
	d.para(plain("ci-après dénommé" + format.Accord(vendeur.Civilite, "", "e") + " "), bold("« le Cédant »"), plain(","))
	d.para(bold("D'UNE PART,"))
	d.textf("%s,", cessionnaireIdentite(p))
	d.para(plain("ci-après dénommé"+format.Accord(p.CessionnaireCivilite, "", "e")+" "), bold("« le Cessionnaire »"), plain(","))
	d.para(bold("D'AUTRE PART,"))

	d.para(bold("IL A ÉTÉ CONVENU ET ARRÊTÉ CE QUI SUIT :"))

	d.heading("Article 1 – Cession")
	d.textf("Le Cédant cède au Cessionnaire, qui accepte, %s de la société %s, %s au capital de %s, dont le siège social est situé %s, immatriculée au RCS de %s sous le numéro %s, d'une valeur nominale de %s chacune.",
		actions(p.NombreActions), format.OrPlaceholder(c.RaisonSociale), formeLongue(c.FormeJuridique),
		format.Euros(c.CapitalSocial), format.OrPlaceholder(c.FullAddress()), format.OrPlaceholder(c.RCS),
		format.OrPlaceholder(c.SIREN), format.EurosOu(calc.ValeurNominaleClient(c)))

	d.heading("Article 2 – Prix")
	d.textf("La présente cession est consentie et acceptée moyennant le prix de %s par action, soit un prix total de %s.",
		format.EurosOu(p.PrixUnitaire), somme(p.PrixTotal))

	d.heading("Article 3 – Paiement du prix")
	d.textf("Le prix est payé selon les modalités suivantes : %s.", strings.TrimSuffix(format.OrPlaceholder(p.ModalitesPaiement), "."))
	if p.DatePaiement != nil {
		d.textf("Le paiement interviendra au plus tard le %s.", dateOu(p.DatePaiement))
	}

	d.heading("Article 4 – Agrément")
	d.textf("La présente cession a été agréée par décision collective des associés en date du %s, conformément aux statuts.", dateOu(p.DateAgrement))

	d.heading("Article 5 – Propriété et jouissance")
	d.textf("Le Cessionnaire sera propriétaire des actions cédées à compter de ce jour et aura droit aux dividendes mis en distribution à compter de cette date.")

	d.heading("Article 6 – Déclarations du Cédant")
	d.textf("Le Cédant déclare être pleinement propriétaire des actions cédées, que celles-ci sont libres de tout nantissement et qu'il n'existe aucune restriction à leur libre disposition autre que la clause d'agrément des statuts.")

	d.heading("Article 7 – Frais et enregistrement")
	d.textf("Les droits d'enregistrement et frais afférents aux présentes sont à la charge du Cessionnaire, qui s'y oblige.")

	faitA(d, c, in.Act)
	d.textf("En quatre exemplaires originaux, dont un pour la société et un pour l'enregistrement.")
	d.sign(
		Signature{Role: "Le Cédant", Name: format.Civilite(vendeur.Civilite) + " " + vendeur.NomComplet(), Mention: "« Bon pour cession »"},
		Signature{Role: "Le Cessionnaire", Name: format.Civilite(p.CessionnaireCivilite) + " " + cessionnaireNom(p), Mention: "« Bon pour acceptation »"},
	)
	return d, nil
}

func attestationCession(in Input) (*Document, error) {
	p := in.Act.Payload.(*models.Cession)
	vendeur, err := cedant(in, p)
	if err != nil {
		return nil, err
	}
	c := in.Client
	d := &Document{
		Title:    "ATTESTATION D'INSCRIPTION EN COMPTE",
		Subtitle: "Registre des mouvements de titres",
	}
	entete(d, c)

	civ := presidentCivilite(in.Associes)
	d.textf("%s, %s, agissant en qualité de Président de la société %s,",
		format.Accord(civ, "Je soussigné", "Je soussignée"), presidentNom(in.Associes), format.OrPlaceholder(c.RaisonSociale))
	d.textf("atteste que le transfert de %s, consenti par %s %s au profit de %s %s, a été inscrit au registre des mouvements de titres de la société et au compte d'associé du Cessionnaire en date du %s.",
		actions(p.NombreActions), format.Civilite(vendeur.Civilite), vendeur.NomComplet(),
		format.Civilite(p.CessionnaireCivilite), cessionnaireNom(p), dateActe(in.Act))

	restantes, acquises := format.Placeholder, format.Placeholder
	if p.NombreActions != nil {
		restantes = actions(models.Int64(vendeur.NombreActions - *p.NombreActions))
		acquises = actions(models.Int64(detenues(in.Associes, p) + *p.NombreActions))
	}
	d.table([]string{"Associé", "Mouvement", "Solde après inscription"}, [][]string{
		{format.Civilite(vendeur.Civilite) + " " + vendeur.NomComplet(), "- " + nombreOu(p.NombreActions), restantes},
		{format.Civilite(p.CessionnaireCivilite) + " " + cessionnaireNom(p), "+ " + nombreOu(p.NombreActions), acquises},
	}, 5, 3, 4)

	d.textf("La présente attestation est délivrée pour servir et valoir ce que de droit.")
	faitA(d, c, in.Act)
	d.sign(Signature{Role: "Le Président", Name: presidentNom(in.Associes)})
	return d, nil
}

// detenues is what the buyer already holds when they are an associé.
func detenues(associes []models.Associe, p *models.Cession) int64 {
	for _, a := range associes {
		if normalize(a.Nom) == normalize(p.CessionnaireNom) && normalize(a.Prenom) == normalize(p.CessionnairePrenom) {
			return a.NombreActions
		}
	}
	return 0
}
