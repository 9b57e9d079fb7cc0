package docs

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/format"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
)

var formes = map[string]string{
	"SAS":  "société par actions simplifiée",
	"SASU": "société par actions simplifiée unipersonnelle",
	"SA":   "société anonyme",
	"SARL": "société à responsabilité limitée",
	"EURL": "entreprise unipersonnelle à responsabilité limitée",
	"SCI":  "société civile immobilière",
}

func formeLongue(forme string) string {
	if long, ok := formes[strings.ToUpper(strings.TrimSpace(forme))]; ok {
		return long
	}
	return format.OrPlaceholder(forme)
}

// entete writes the company identification block found at the top of
// every document.
func entete(d *Document, c *models.Client) {
	enteteCapital(d, c, decimal.NewNullDecimal(c.CapitalSocial))
}

func enteteCapital(d *Document, c *models.Client, capital decimal.NullDecimal) {
	d.centered(bold(format.OrPlaceholder(c.RaisonSociale)))
	d.centered(plain(fmt.Sprintf("%s au capital de %s",
		formeLongue(c.FormeJuridique), format.EurosOu(capital))))
	d.centered(plain("Siège social : " + format.OrPlaceholder(c.FullAddress())))
	rcs := strings.TrimSpace(strings.TrimSpace(c.SIREN) + " RCS " + format.OrPlaceholder(c.RCS))
	if strings.TrimSpace(c.SIREN) == "" {
		rcs = format.Placeholder + " RCS " + format.OrPlaceholder(c.RCS)
	}
	d.centered(plain(rcs))
}

func dateActe(a models.Act) string {
	return format.DateLongueOu(models.DatePtr(a.DateActe))
}

func dateOu(d *models.Date) string {
	return format.DateLongueOu(models.DatePtr(d))
}

// somme renders an amount followed by its wording: "500,00 € (cinq cents euros)".
func somme(d decimal.NullDecimal) string {
	if !d.Valid {
		return format.Placeholder
	}
	return fmt.Sprintf("%s (%s)", format.Euros(d.Decimal), format.MontantEnLettres(d.Decimal))
}

func nombreOu(n *int64) string {
	if n == nil {
		return format.Placeholder
	}
	return format.Nombre(*n)
}

// actions renders a share count with its wording: "10 (dix) actions".
func actions(n *int64) string {
	if n == nil {
		return format.Placeholder + " actions"
	}
	return fmt.Sprintf("%s (%s) %s", format.Nombre(*n), format.EnLettres(*n), format.Pluriel(*n, "action", "actions"))
}

func president(associes []models.Associe) *models.Associe {
	for i := range associes {
		if associes[i].EstPresident {
			return &associes[i]
		}
	}
	return nil
}

func presidentNom(associes []models.Associe) string {
	if p := president(associes); p != nil {
		return fmt.Sprintf("%s %s", format.Civilite(p.Civilite), format.OrPlaceholder(p.NomComplet()))
	}
	return format.Placeholder
}

func presidentCivilite(associes []models.Associe) string {
	if p := president(associes); p != nil {
		return p.Civilite
	}
	return ""
}

func findAssocie(associes []models.Associe, id *uint) *models.Associe {
	if id == nil {
		return nil
	}
	for i := range associes {
		if associes[i].ID == *id {
			return &associes[i]
		}
	}
	return nil
}

// identite is the full civil-status line of an associé.
func identite(a *models.Associe) string {
	return personne(a.Civilite, a.NomComplet(), a.DateNaissance, a.LieuNaissance, a.Nationalite, a.Adresse)
}

func personne(civ, nom string, naissance *time.Time, lieu, nationalite, adresse string) string {
	return fmt.Sprintf("%s %s, %s le %s à %s, de nationalité %s, demeurant %s",
		format.Civilite(civ), format.OrPlaceholder(nom), format.Ne(civ), format.DateLongueOu(naissance),
		format.OrPlaceholder(lieu), format.OrPlaceholder(nationalite), format.OrPlaceholder(adresse))
}

// votes renders a tally: "adoptée à l'unanimité" or the detailed counts.
func votes(pour, contre, abstention *int64) string {
	if pour == nil {
		return "Mise aux voix, cette résolution est adoptée par " + format.Placeholder + " voix."
	}
	if calc.TotalVotes(contre, abstention) == 0 {
		return fmt.Sprintf("Mise aux voix, cette résolution est adoptée à l'unanimité (%s).",
			voix(*pour))
	}
	s := fmt.Sprintf("Mise aux voix, cette résolution est adoptée par %s pour et %s contre",
		voix(*pour), voix(calc.TotalVotes(contre)))
	if abstention != nil && *abstention > 0 {
		s += fmt.Sprintf(", %s s'étant abstenues", voix(*abstention))
	}
	return s + "."
}

func voix(n int64) string {
	return format.Nombre(n) + " voix"
}

// repartition is the shareholding table with a total row.
func repartition(d *Document, associes []models.Associe) {
	tableRepartition(d, lignesAssocies(associes), models.Int64(calc.TotalActions(associes)))
}

// ligne is one row of a shareholding table. A nil count prints a placeholder.
type ligne struct {
	nom     string
	cle     string
	actions *int64
}

func cle(nom, prenom string) string {
	return normalize(nom) + "|" + normalize(prenom)
}

func lignesAssocies(associes []models.Associe) []ligne {
	out := make([]ligne, 0, len(associes))
	for _, a := range associes {
		out = append(out, ligne{
			nom:     format.Civilite(a.Civilite) + " " + format.OrPlaceholder(a.NomComplet()),
			cle:     cle(a.Nom, a.Prenom),
			actions: models.Int64(a.NombreActions),
		})
	}
	return out
}

func tableRepartition(d *Document, lignes []ligne, total *int64) {
	rows := make([][]string, 0, len(lignes)+1)
	for _, l := range lignes {
		rows = append(rows, []string{l.nom, nombreOu(l.actions)})
	}
	rows = append(rows, []string{"Total", nombreOu(total)})
	d.table([]string{"Associé", "Nombre d'actions"}, rows, 8, 4)
}

// faitA closes a document with place and date.
func faitA(d *Document, c *models.Client, a models.Act) {
	d.textf("Fait à %s, le %s.", format.OrPlaceholder(c.Ville), dateActe(a))
}
