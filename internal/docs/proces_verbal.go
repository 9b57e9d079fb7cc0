package docs

import (
	"fmt"
	"strings"
	"time"

	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/format"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
)

func procesVerbal(in Input) (*Document, error) {
	c := in.Client
	d := &Document{}
	ordinaire := in.Act.Type() == models.TypeAGOrdinaire
	nature := "EXTRAORDINAIRE"
	if ordinaire {
		nature = "ORDINAIRE"
	}
	d.Title = "PROCÈS-VERBAL DE L'ASSEMBLÉE GÉNÉRALE " + nature
	d.Subtitle = "Séance du " + dateActe(in.Act)
	entete(d, c)

	ouverture(d, in, strings.ToLower(nature))

	d.subheading("Feuille de présence")
	repartition(d, in.Associes)
	d.textf("Les associés présents ou représentés détiennent %s sur les %s composant le capital social.",
		actions(models.Int64(calc.TotalActions(in.Associes))), actions(models.Int64(c.NbActions)))

	switch p := in.Act.Payload.(type) {
	case *models.Augmentation:
		if p.Quorum.Valid {
			d.textf("Le quorum atteint est de %s.", format.Pourcentage(p.Quorum.Decimal))
		}
		ordreDuJour(d,
			"Augmentation du capital social",
			"Modification corrélative des statuts",
			"Pouvoirs pour l'accomplissement des formalités")
		resolutionsAugmentation(d, p)
	case *models.Reduction:
		ordreDuJour(d,
			"Réduction du capital social",
			"Modification corrélative des statuts",
			"Pouvoirs pour l'accomplissement des formalités")
		resolutionsReduction(d, p)
	case *models.AGOrdinaire:
		items := []string{
			"Approbation des comptes de l'exercice " + format.OrPlaceholder(p.ExerciceClos),
			"Affectation du résultat",
		}
		if p.Quitus {
			items = append(items, "Quitus au Président")
		}
		ordreDuJour(d, append(items, "Pouvoirs pour l'accomplissement des formalités")...)
		resolutionsAssemblee(d, p)
	}

	d.heading("Résolution – Pouvoirs")
	d.textf("L'assemblée générale confère tous pouvoirs au porteur d'un original, d'une copie ou d'un extrait du présent procès-verbal pour accomplir toutes formalités légales.")
	d.textf("%s", votesResolution(in.Act))

	d.textf("L'ordre du jour étant épuisé, la séance est levée. De tout ce qui précède, il a été dressé le présent procès-verbal, signé par le Président de séance.")
	faitA(d, c, in.Act)
	d.sign(Signature{Role: "Le Président de séance", Name: presidentSeance(in)})
	return d, nil
}

// ouverture is the opening paragraph: date, hour, place and chair.
func ouverture(d *Document, in Input, nature string) {
	heure, lieu := "", "au siège social"
	if p, ok := in.Act.Payload.(*models.AGOrdinaire); ok {
		if t, err := time.Parse("15:04", strings.TrimSpace(p.HeureAssemblee)); err == nil {
			heure = ", à " + format.Heure(t)
		}
		if strings.TrimSpace(p.Lieu) != "" {
			lieu = "à " + strings.TrimSpace(p.Lieu)
		}
	}
	annee := format.Placeholder
	if t := models.DatePtr(in.Act.DateActe); t != nil {
		annee = format.EnLettres(int64(t.Year()))
	}
	d.textf("L'an %s, le %s%s, les associés de la société %s se sont réunis en assemblée générale %s, %s, sur convocation du Président.",
		annee, dateActe(in.Act), heure, format.OrPlaceholder(in.Client.RaisonSociale), nature, lieu)
	d.textf("L'assemblée est présidée par %s.", presidentSeance(in))
}

func presidentSeance(in Input) string {
	if p, ok := in.Act.Payload.(*models.AGOrdinaire); ok && strings.TrimSpace(p.PresidentSeance) != "" {
		return strings.TrimSpace(p.PresidentSeance)
	}
	return presidentNom(in.Associes)
}

func ordreDuJour(d *Document, items ...string) {
	d.subheading("Ordre du jour")
	for _, it := range items {
		d.para(plain("– " + it))
	}
}

func votesResolution(a models.Act) string {
	switch p := a.Payload.(type) {
	case *models.Augmentation:
		return votes(p.VotesPour, p.VotesContre, nil)
	case *models.Reduction:
		return votes(p.VotesPour, p.VotesContre, nil)
	case *models.AGOrdinaire:
		return votes(p.VotesPour, p.VotesContre, p.VotesAbstention)
	}
	return votes(nil, nil, nil)
}

func resolutionsAugmentation(d *Document, p *models.Augmentation) {
	d.heading("Première résolution – Augmentation du capital")
	d.textf("L'assemblée générale décide d'augmenter le capital social d'une somme de %s pour le porter de %s à %s, par l'émission de %s nouvelles de %s de valeur nominale chacune.",
		somme(p.MontantAugmentation), format.EurosOu(p.AncienCapital), format.EurosOu(p.NouveauCapital),
		actions(p.NombreNouvellesActions), format.EurosOu(p.ValeurNominale))
	d.textf("%s", modaliteAugmentation(p))
	if p.PrimeEmission.Valid && p.PrimeEmission.Decimal.IsPositive() {
		d.textf("Les actions nouvelles sont émises avec une prime d'émission de %s par action.", format.Euros(p.PrimeEmission.Decimal))
	}
	d.textf("%s", votes(p.VotesPour, p.VotesContre, nil))

	d.heading("Deuxième résolution – Modification des statuts")
	d.textf("En conséquence de la résolution qui précède, l'assemblée générale décide de modifier l'article 7 des statuts, désormais rédigé ainsi : « Le capital social est fixé à la somme de %s. »",
		somme(p.NouveauCapital))
	d.textf("%s", votes(p.VotesPour, p.VotesContre, nil))
}

func modaliteAugmentation(p *models.Augmentation) string {
	switch p.Modalite {
	case models.ModaliteNumeraire:
		return "Les actions nouvelles sont à souscrire en numéraire et à libérer intégralement lors de la souscription."
	case models.ModaliteIncorporationReserves:
		return "L'augmentation est réalisée par incorporation de réserves, les actions nouvelles étant attribuées gratuitement aux associés au prorata de leurs droits."
	case models.ModaliteNature:
		s := fmt.Sprintf("Les actions nouvelles sont attribuées en rémunération de l'apport en nature suivant : %s", format.OrPlaceholder(p.DescriptionApport))
		if p.MontantApportNature.Valid {
			s += ", évalué à " + format.Euros(p.MontantApportNature.Decimal)
		}
		s += "."
		if p.CommissaireObligatoire || p.CommissaireDesigne {
			s += fmt.Sprintf(" L'assemblée a pris connaissance du rapport de %s, commissaire aux apports.", format.OrPlaceholder(p.CommissaireNom))
		}
		return s
	}
	return "Modalités de réalisation : " + format.Placeholder + "."
}

func resolutionsReduction(d *Document, p *models.Reduction) {
	d.heading("Première résolution – Réduction du capital")
	d.textf("L'assemblée générale décide de réduire le capital social d'une somme de %s pour le ramener de %s à %s.",
		somme(p.MontantReduction), format.EurosOu(p.AncienCapital), format.EurosOu(p.NouveauCapital))
	d.textf("%s", modaliteReduction(p))
	d.textf("Motif de la réduction : %s.", strings.TrimSuffix(format.OrPlaceholder(p.Motif), "."))
	d.textf("%s", opposition(p))
	d.textf("%s", votesReduction(p))

	d.heading("Deuxième résolution – Modification des statuts")
	final := p.NouveauCapital
	if p.Modalite == models.ModaliteCoupAccordeon {
		final = p.CapitalFinal
	}
	d.textf("En conséquence, l'article 7 des statuts est désormais rédigé ainsi : « Le capital social est fixé à la somme de %s. »", somme(final))
	d.textf("%s", votesReduction(p))
}

func modaliteReduction(p *models.Reduction) string {
	switch p.Modalite {
	case models.ModaliteRachatAnnulation:
		return fmt.Sprintf("Cette réduction est réalisée par voie de rachat par la société de %s au prix unitaire de %s, en vue de leur annulation.",
			actions(p.NombreActionsRachetees), format.EurosOu(p.PrixRachatParAction))
	case models.ModaliteReductionValeurNominale:
		return fmt.Sprintf("Cette réduction est réalisée par voie de diminution de la valeur nominale des %s existantes, ramenée de %s à %s.",
			actions(p.NombreActions), format.EurosOu(p.AncienneValeurNominale), format.EurosOu(p.NouvelleValeurNominale))
	case models.ModaliteCoupAccordeon:
		return fmt.Sprintf("Cette réduction est immédiatement suivie d'une augmentation de capital de %s, portant le capital de %s à %s.",
			format.EurosOu(p.MontantAugmentationSuivante), format.EurosOu(p.NouveauCapitalApresReduction), format.EurosOu(p.CapitalFinal))
	}
	return "Modalités de réalisation : " + format.Placeholder + "."
}

// opposition states the creditors' position, which depends on whether the
// reduction is driven by losses.
func opposition(p *models.Reduction) string {
	if p.MotiveeParPertes {
		return "La réduction de capital étant motivée par des pertes, elle n'ouvre pas droit d'opposition aux créanciers sociaux."
	}
	return "La réduction de capital n'étant pas motivée par des pertes, les créanciers sociaux disposent d'un délai de vingt jours à compter du dépôt au greffe du présent procès-verbal pour former opposition ; les opérations de réduction ne pourront commencer pendant ce délai."
}

func votesReduction(p *models.Reduction) string {
	s := votes(p.VotesPour, p.VotesContre, nil)
	if pct := calc.PourcentagePour(p.VotesPour, p.VotesContre); pct.Valid {
		s += fmt.Sprintf(" Elle recueille %s des voix exprimées.", format.Pourcentage(pct.Decimal))
	}
	return s
}

func resolutionsAssemblee(d *Document, p *models.AGOrdinaire) {
	d.heading("Première résolution – Approbation des comptes")
	resultat := "un résultat de " + format.Placeholder
	if p.ResultatExercice.Valid {
		r := p.ResultatExercice.Decimal
		switch {
		case r.IsPositive():
			resultat = "un bénéfice de " + somme(p.ResultatExercice)
		case r.IsNegative():
			resultat = "une perte de " + format.Euros(r.Abs()) + " (" + format.MontantEnLettres(r.Abs()) + ")"
		default:
			resultat = "un résultat nul"
		}
	}
	d.textf("L'assemblée générale, après avoir pris connaissance du rapport de gestion du Président, approuve les comptes de l'exercice %s clos le %s, tels qu'ils lui ont été présentés, se soldant par %s.",
		format.OrPlaceholder(p.ExerciceClos), dateOu(p.DateClotureExercice), resultat)
	d.textf("%s", votes(p.VotesPour, p.VotesContre, p.VotesAbstention))

	d.heading("Deuxième résolution – Affectation du résultat")
	d.textf("%s", affectation(p))
	d.textf("%s", votes(p.VotesPour, p.VotesContre, p.VotesAbstention))

	if p.Quitus {
		d.heading("Troisième résolution – Quitus")
		d.textf("L'assemblée générale donne quitus entier et sans réserve au Président pour l'exécution de son mandat au cours de l'exercice écoulé.")
		d.textf("%s", votes(p.VotesPour, p.VotesContre, p.VotesAbstention))
	}
}

func affectation(p *models.AGOrdinaire) string {
	const intro = "L'assemblée générale décide d'affecter le résultat de l'exercice "
	switch p.Affectation {
	case models.AffectationReport:
		return intro + "en totalité au compte « report à nouveau »."
	case models.AffectationReserves:
		return intro + "en totalité au compte « autres réserves »."
	case models.AffectationDividendes:
		return intro + fmt.Sprintf("à la distribution de dividendes, pour un montant de %s.", somme(p.MontantDividendes))
	case models.AffectationMixte:
		var parts []string
		if p.MontantDividendes.Valid {
			parts = append(parts, "dividendes : "+format.Euros(p.MontantDividendes.Decimal))
		}
		if p.MontantReserves.Valid {
			parts = append(parts, "autres réserves : "+format.Euros(p.MontantReserves.Decimal))
		}
		if p.MontantReport.Valid {
			parts = append(parts, "report à nouveau : "+format.Euros(p.MontantReport.Decimal))
		}
		if len(parts) == 0 {
			parts = append(parts, format.Placeholder)
		}
		return intro + "comme suit : " + strings.Join(parts, " ; ") + "."
	}
	return intro + "de la manière suivante : " + format.Placeholder + "."
}
