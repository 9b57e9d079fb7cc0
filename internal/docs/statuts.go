package docs

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/format"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
)

// capital is the share capital as it stands once the act is carried out.
type capital struct {
	montant decimal.NullDecimal
	actions *int64
	nominal decimal.NullDecimal
}

func capitalApres(in Input) capital {
	c := in.Client
	avant := capital{
		montant: decimal.NewNullDecimal(c.CapitalSocial),
		actions: models.Int64(c.NbActions),
		nominal: calc.ValeurNominaleClient(c),
	}
	switch p := in.Act.Payload.(type) {
	case *models.Augmentation:
		out := capital{montant: p.NouveauCapital, nominal: p.ValeurNominale}
		if p.ActionsExistantes != nil && p.NombreNouvellesActions != nil {
			out.actions = models.Int64(*p.ActionsExistantes + *p.NombreNouvellesActions)
		}
		return out
	case *models.Reduction:
		switch p.Modalite {
		case models.ModaliteRachatAnnulation:
			out := capital{montant: p.NouveauCapital, nominal: calc.ValeurNominaleApresReduction(p)}
			if p.NombreActions != nil && p.NombreActionsRachetees != nil {
				out.actions = models.Int64(*p.NombreActions - *p.NombreActionsRachetees)
			}
			return out
		case models.ModaliteReductionValeurNominale:
			return capital{montant: p.NouveauCapital, actions: p.NombreActions, nominal: p.NouvelleValeurNominale}
		case models.ModaliteCoupAccordeon:
			// share count after the re-issue is not captured by the act
			return capital{montant: p.CapitalFinal}
		}
		return capital{montant: p.NouveauCapital}
	}
	return avant
}

// repartitionApres lists the holdings once the act is carried out. The
// total is the sum of the rows, unset when a row is.
func repartitionApres(in Input) ([]ligne, *int64) {
	lignes := lignesAssocies(in.Associes)
	switch p := in.Act.Payload.(type) {
	case *models.Cession:
		lignes = apresCession(lignes, in.Associes, p)
	case *models.Augmentation:
		lignes = apresAugmentation(lignes, p)
	case *models.Reduction:
		switch p.Modalite {
		case models.ModaliteRachatAnnulation:
			var annulees *int64
			if p.NombreActionsRachetees != nil {
				annulees = models.Int64(-*p.NombreActionsRachetees)
			}
			lignes = append(lignes, ligne{nom: "Actions rachetées par la société et annulées", actions: annulees})
		case models.ModaliteCoupAccordeon:
			// holdings depend on the subscription of the following increase
			for i := range lignes {
				lignes[i].actions = nil
			}
		}
	}
	return lignes, sommeLignes(lignes)
}

func apresCession(lignes []ligne, associes []models.Associe, p *models.Cession) []ligne {
	n := p.NombreActions
	if cedant := findAssocie(associes, p.CedantID); cedant != nil {
		for i := range lignes {
			if lignes[i].cle != cle(cedant.Nom, cedant.Prenom) {
				continue
			}
			if n == nil {
				lignes[i].actions = nil
			} else if reste := *lignes[i].actions - *n; reste > 0 {
				lignes[i].actions = models.Int64(reste)
			} else {
				// a seller left without shares is no longer an associé
				lignes = append(lignes[:i], lignes[i+1:]...)
			}
			break
		}
	}
	acheteur := models.Associe{Civilite: p.CessionnaireCivilite, Nom: p.CessionnaireNom, Prenom: p.CessionnairePrenom}
	return crediter(lignes, acheteur, n)
}

func apresAugmentation(lignes []ligne, p *models.Augmentation) []ligne {
	var attribuees int64
	connues := true
	for _, na := range p.NouveauxAssocies {
		lignes = crediter(lignes, models.Associe{Civilite: na.Civilite, Nom: na.Nom, Prenom: na.Prenom}, na.NombreActions)
		if na.NombreActions == nil {
			connues = false
		} else {
			attribuees += *na.NombreActions
		}
	}
	switch {
	case p.NombreNouvellesActions == nil:
		lignes = append(lignes, ligne{nom: "Actions nouvelles"})
	case !connues:
		lignes = append(lignes, ligne{nom: "Actions nouvelles non réparties"})
	case *p.NombreNouvellesActions > attribuees:
		lignes = append(lignes, ligne{nom: "Actions nouvelles non réparties", actions: models.Int64(*p.NombreNouvellesActions - attribuees)})
	}
	return lignes
}

// crediter adds n shares to a, appending a row when a holds none yet.
func crediter(lignes []ligne, a models.Associe, n *int64) []ligne {
	k := cle(a.Nom, a.Prenom)
	for i := range lignes {
		if lignes[i].cle != k {
			continue
		}
		if n == nil || lignes[i].actions == nil {
			lignes[i].actions = nil
		} else {
			lignes[i].actions = models.Int64(*lignes[i].actions + *n)
		}
		return lignes
	}
	return append(lignes, ligne{
		nom:     format.Civilite(a.Civilite) + " " + format.OrPlaceholder(a.NomComplet()),
		cle:     k,
		actions: n,
	})
}

func sommeLignes(lignes []ligne) *int64 {
	var total int64
	for _, l := range lignes {
		if l.actions == nil {
			return nil
		}
		total += *l.actions
	}
	return &total
}

// historique describes the operation for the capital history article.
func historique(in Input) string {
	date := dateActe(in.Act)
	switch p := in.Act.Payload.(type) {
	case *models.Augmentation:
		return fmt.Sprintf("Aux termes d'une décision collective des associés en date du %s, le capital social a été augmenté de %s pour être porté de %s à %s, par l'émission de %s nouvelles.",
			date, format.EurosOu(p.MontantAugmentation), format.EurosOu(p.AncienCapital),
			format.EurosOu(p.NouveauCapital), actions(p.NombreNouvellesActions))
	case *models.Reduction:
		s := fmt.Sprintf("Aux termes d'une décision collective des associés en date du %s, le capital social a été réduit de %s pour être ramené de %s à %s.",
			date, format.EurosOu(p.MontantReduction), format.EurosOu(p.AncienCapital), format.EurosOu(p.NouveauCapital))
		if p.Modalite == models.ModaliteCoupAccordeon {
			s += fmt.Sprintf(" Il a ensuite été augmenté de %s pour être porté à %s.",
				format.EurosOu(p.MontantAugmentationSuivante), format.EurosOu(p.CapitalFinal))
		}
		return s
	case *models.Cession:
		cedant := findAssocie(in.Associes, p.CedantID)
		nom := format.Placeholder
		if cedant != nil {
			nom = format.Civilite(cedant.Civilite) + " " + cedant.NomComplet()
		}
		return fmt.Sprintf("Aux termes d'un acte sous seing privé en date du %s, %s a cédé %s à %s %s.",
			date, nom, actions(p.NombreActions), format.Civilite(p.CessionnaireCivilite),
			format.OrPlaceholder(strings.TrimSpace(p.CessionnairePrenom+" "+strings.ToUpper(p.CessionnaireNom))))
	}
	return "Néant."
}

func statuts(in Input) (*Document, error) {
	c := in.Client
	d := &Document{
		Title:    "STATUTS",
		Subtitle: "Mis à jour le " + dateActe(in.Act),
	}
	apres := capitalApres(in)
	enteteCapital(d, c, apres.montant)

	d.heading("Article 1 – Forme")
	d.textf("La société est une %s régie par les dispositions légales et réglementaires en vigueur ainsi que par les présents statuts.", formeLongue(c.FormeJuridique))

	d.heading("Article 2 – Objet")
	d.textf("La société a pour objet : %s.", strings.TrimSuffix(format.OrPlaceholder(c.Objet), "."))

	d.heading("Article 3 – Dénomination")
	d.textf("La société a pour dénomination sociale : %s.", format.OrPlaceholder(c.RaisonSociale))

	d.heading("Article 4 – Siège social")
	d.textf("Le siège social est fixé : %s.", format.OrPlaceholder(c.FullAddress()))

	d.heading("Article 5 – Durée")
	duree := format.Placeholder
	if c.Duree > 0 {
		duree = fmt.Sprintf("%s (%d)", format.EnLettres(int64(c.Duree)), c.Duree)
	}
	d.textf("La durée de la société est fixée à %s années à compter de son immatriculation au registre du commerce et des sociétés.", duree)

	d.heading("Article 6 – Modifications du capital")
	d.textf("%s", historique(in))

	d.heading("Article 7 – Capital social")
	d.textf("Le capital social est fixé à la somme de %s. Il est divisé en %s de %s de valeur nominale chacune, entièrement libérées.",
		somme(apres.montant), actions(apres.actions), format.EurosOu(apres.nominal))

	d.heading("Article 8 – Répartition du capital")
	lignes, total := repartitionApres(in)
	tableRepartition(d, lignes, total)

	d.heading("Article 9 – Présidence")
	d.textf("La société est représentée à l'égard des tiers par son Président, %s.", presidentNom(in.Associes))

	d.para(italic("Statuts certifiés conformes par le Président."))
	faitA(d, c, in.Act)
	d.sign(Signature{Role: "Le Président", Name: presidentNom(in.Associes)})
	return d, nil
}
