package docs

import (
	"github.com/Kaiser28/comptable-dashboard/internal/format"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
)

var libellesReduction = map[string]string{
	models.ModaliteRachatAnnulation:        "Rachat et annulation d'actions",
	models.ModaliteReductionValeurNominale: "Réduction de la valeur nominale",
	models.ModaliteCoupAccordeon:           "Coup d'accordéon",
}

func acteReduction(in Input) (*Document, error) {
	p := in.Act.Payload.(*models.Reduction)
	c := in.Client
	d := &Document{
		Title:    "DÉCISION CONSTATANT LA RÉDUCTION DE CAPITAL",
		Subtitle: "En date du " + dateActe(in.Act),
	}
	entete(d, c)

	civ := presidentCivilite(in.Associes)
	d.textf("%s, %s, Président de la société,", format.Soussigne([]string{civ}), presidentNom(in.Associes))
	d.textf("agissant en vertu de l'autorisation conférée par l'assemblée générale extraordinaire du %s, constate la réduction du capital social d'une somme de %s.",
		dateActe(in.Act), somme(p.MontantReduction))

	d.heading("1. Modalité")
	libelle, ok := libellesReduction[p.Modalite]
	if !ok {
		libelle = format.Placeholder
	}
	d.para(bold(libelle))
	d.textf("%s", modaliteReduction(p))
	d.textf("Motif : %s.", format.OrPlaceholder(p.Motif))

	d.heading("2. Capital avant et après l'opération")
	apres := capitalApres(in)
	rows := [][]string{
		{"Capital social", format.EurosOu(p.AncienCapital), format.EurosOu(p.NouveauCapital)},
		{"Nombre d'actions", nombreOu(p.NombreActions), nombreOu(apres.actions)},
		{"Valeur nominale", format.EurosOu(p.ValeurNominaleActuelle), format.EurosOu(apres.nominal)},
	}
	if p.Modalite == models.ModaliteCoupAccordeon {
		rows = append(rows, []string{"Capital après réaugmentation", "", format.EurosOu(p.CapitalFinal)})
	}
	d.table([]string{"", "Avant", "Après"}, rows, 4, 4, 4)

	d.heading("3. Droits des créanciers")
	d.textf("%s", opposition(p))

	d.heading("4. Décision des associés")
	d.textf("%s", votesReduction(p))

	faitA(d, c, in.Act)
	d.sign(Signature{Role: "Le Président", Name: presidentNom(in.Associes)})
	return d, nil
}
