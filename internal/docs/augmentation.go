package docs

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/format"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
)

func acteAugmentation(in Input) (*Document, error) {
	p := in.Act.Payload.(*models.Augmentation)
	c := in.Client
	d := &Document{
		Title:    "DÉCISION CONSTATANT LA RÉALISATION DE L'AUGMENTATION DE CAPITAL",
		Subtitle: "En date du " + dateActe(in.Act),
	}
	entete(d, c)

	civ := presidentCivilite(in.Associes)
	d.textf("%s, %s, Président de la société,", format.Soussigne([]string{civ}), presidentNom(in.Associes))
	d.textf("agissant en vertu de la délégation conférée par l'assemblée générale extraordinaire du %s, constate :", dateActe(in.Act))

	d.heading("1. Réalisation de l'augmentation")
	d.textf("que l'augmentation du capital social d'un montant de %s, par l'émission de %s nouvelles de %s de valeur nominale chacune, est définitivement réalisée ;",
		somme(p.MontantAugmentation), actions(p.NombreNouvellesActions), format.EurosOu(p.ValeurNominale))
	d.textf("%s", modaliteAugmentation(p))

	d.heading("2. Capital avant et après l'opération")
	apres := capitalApres(in)
	d.table([]string{"", "Avant", "Après"}, [][]string{
		{"Capital social", format.EurosOu(p.AncienCapital), format.EurosOu(p.NouveauCapital)},
		{"Nombre d'actions", nombreOu(p.ActionsExistantes), nombreOu(apres.actions)},
		{"Valeur nominale", format.EurosOu(calc.ValeurNominale(p.AncienCapital, p.ActionsExistantes)), format.EurosOu(p.ValeurNominale)},
	}, 4, 4, 4)

	if len(p.NouveauxAssocies) > 0 {
		d.heading("3. Nouveaux associés")
		souscripteurs(d, p)
	}

	if p.EnNature() && p.MontantApportNature.Valid {
		d.subheading("Apport en nature")
		d.textf("L'apport en nature, évalué à %s, représente %s du capital après l'opération.",
			somme(p.MontantApportNature), pourcentageOu(p.PourcentageCapital))
		if p.CommissaireObligatoire {
			d.textf("Son montant excédant les seuils légaux, sa valeur a été appréciée par %s, commissaire aux apports.", format.OrPlaceholder(p.CommissaireNom))
		} else if p.CommissaireDesigne {
			d.textf("Les associés ont désigné %s en qualité de commissaire aux apports.", format.OrPlaceholder(p.CommissaireNom))
		} else {
			d.textf("Les associés ont décidé à l'unanimité de ne pas recourir à un commissaire aux apports.")
		}
	}

	d.heading("Modification des statuts")
	d.textf("En conséquence, l'article 7 des statuts est modifié : le capital social est désormais fixé à %s, divisé en %s.",
		somme(p.NouveauCapital), actions(apres.actions))

	faitA(d, c, in.Act)
	d.sign(Signature{Role: "Le Président", Name: presidentNom(in.Associes)})
	return d, nil
}

func pourcentageOu(p decimal.NullDecimal) string {
	if !p.Valid {
		return format.Placeholder
	}
	return format.Pourcentage(p.Decimal)
}

func souscripteurs(d *Document, p *models.Augmentation) {
	rows := make([][]string, 0, len(p.NouveauxAssocies))
	for _, n := range p.NouveauxAssocies {
		nom := strings.TrimSpace(strings.TrimSpace(n.Prenom) + " " + strings.ToUpper(strings.TrimSpace(n.Nom)))
		rows = append(rows, []string{
			format.Civilite(n.Civilite) + " " + format.OrPlaceholder(nom),
			format.OrPlaceholder(n.Adresse),
			nombreOu(n.NombreActions),
			format.EurosOu(n.MontantApport),
		})
	}
	d.table([]string{"Souscripteur", "Adresse", "Actions", "Montant versé"}, rows, 3, 5, 2, 2)
}

// declarationSouscription only exists for cash contributions.
func declarationSouscription(in Input) (*Document, error) {
	p := in.Act.Payload.(*models.Augmentation)
	if p.Modalite != models.ModaliteNumeraire {
		return nil, fmt.Errorf("%w: déclaration de souscription réservée aux apports en numéraire", ErrWrongActType)
	}
	c := in.Client
	d := &Document{
		Title:    "DÉCLARATION DE SOUSCRIPTION ET DE VERSEMENT",
		Subtitle: "Augmentation de capital en numéraire",
	}
	entete(d, c)

	civ := presidentCivilite(in.Associes)
	d.textf("%s, %s, agissant en qualité de Président de la société %s,",
		format.Soussigne([]string{civ}), presidentNom(in.Associes), format.OrPlaceholder(c.RaisonSociale))
	d.para(bold("déclare :"))

	d.textf("– que l'augmentation du capital social de %s, décidée par l'assemblée générale extraordinaire du %s, par l'émission de %s nouvelles de %s de valeur nominale chacune, a été intégralement souscrite ;",
		somme(p.MontantAugmentation), dateActe(in.Act), actions(p.NombreNouvellesActions), format.EurosOu(p.ValeurNominale))
	if p.DateLimiteSouscription != nil {
		d.textf("– que les souscriptions ont été recueillies avant le %s ;", dateOu(p.DateLimiteSouscription))
	}
	d.textf("– que les souscripteurs ont versé la somme totale de %s, soit l'intégralité du montant des actions souscrites, ainsi qu'il résulte du certificat établi par %s, dépositaire des fonds ;",
		format.EurosOu(totalVerse(p)), format.OrPlaceholder(p.BanqueDepositaire))
	d.textf("– que la liste des souscripteurs, avec l'indication des versements effectués par chacun d'eux, est la suivante :")

	if len(p.NouveauxAssocies) > 0 {
		souscripteurs(d, p)
	} else {
		d.table([]string{"Souscripteur", "Adresse", "Actions", "Montant versé"},
			[][]string{{"Associés existants", format.Placeholder, nombreOu(p.NombreNouvellesActions), format.EurosOu(p.MontantAugmentation)}},
			3, 5, 2, 2)
	}

	d.textf("En foi de quoi, la présente déclaration a été établie pour servir et valoir ce que de droit.")
	faitA(d, c, in.Act)
	d.sign(Signature{Role: "Le Président", Name: presidentNom(in.Associes)})
	return d, nil
}

// totalVerse sums the new shareholders' payments, falling back to the
// increase amount when the act lists none.
func totalVerse(p *models.Augmentation) decimal.NullDecimal {
	if len(p.NouveauxAssocies) == 0 {
		return p.MontantAugmentation
	}
	total := decimal.Zero
	for _, n := range p.NouveauxAssocies {
		if !n.MontantApport.Valid {
			return decimal.NullDecimal{}
		}
		total = total.Add(n.MontantApport.Decimal)
	}
	return decimal.NewNullDecimal(total)
}
