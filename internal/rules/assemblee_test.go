package rules

import (
	"testing"

	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/validation"
	"github.com/stretchr/testify/assert"
)

func TestAGOrdinaireValid(t *testing.T) {
	v := Validate(act(validAG()), testContext())
	assert.True(t, v.Empty(), "unexpected violations: %v", v)
}

func TestAGOrdinaireRequired(t *testing.T) {
	v := Validate(act(&models.AGOrdinaire{}), testContext())
	for _, f := range []string{"heure_assemblee", "exercice_clos", "resultat_exercice", "affectation", "votes_pour", "votes_contre", "votes_abstention"} {
		assert.Equal(t, validation.MsgRequired, v[f], f)
	}
}

func TestAGOrdinaireHeureFormat(t *testing.T) {
	p := validAG()
	p.HeureAssemblee = "10h"
	v := Validate(act(p), testContext())
	assert.Contains(t, v["heure_assemblee"], "HH:MM")
}

func TestAGOrdinaireDividendes(t *testing.T) {
	p := validAG()
	p.Affectation = models.AffectationDividendes
	v := Validate(act(p), testContext())
	assert.Equal(t, validation.MsgRequired, v["montant_dividendes"])

	p.MontantDividendes = models.Amount("14999.99")
	v = Validate(act(p), testContext())
	assert.Contains(t, v["montant_dividendes"], "doit être égal au résultat")

	p.MontantDividendes = models.Amount("15000.00")
	assert.True(t, Validate(act(p), testContext()).Empty())
}

func TestAGOrdinaireDividendesNegativeResult(t *testing.T) {
	p := validAG()
	p.ResultatExercice = models.Amount("-3000")
	p.Affectation = models.AffectationDividendes
	p.MontantDividendes = models.Amount("1000")
	assert.False(t, Validate(act(p), testContext()).Has("montant_dividendes"))
}

func TestAGOrdinaireMixte(t *testing.T) {
	tests := []struct {
		name                         string
		dividendes, reserves, report string
		fails                        bool
	}{
		{"exact", "5000", "7500", "2500", false},
		{"within epsilon", "5000", "7500", "2500.01", false},
		{"off by two cents", "5000", "7500", "2500.02", true},
		{"missing part", "5000", "7500", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validAG()
			p.Affectation = models.AffectationMixte
			p.MontantDividendes = models.Amount(tt.dividendes)
			p.MontantReserves = models.Amount(tt.reserves)
			if tt.report != "" {
				p.MontantReport = models.Amount(tt.report)
			}
			v := Validate(act(p), testContext())
			assert.Equal(t, tt.fails, v.Has("affectation"), "violations: %v", v)
		})
	}
}

func TestAGOrdinaireMixteRejectsNegativeParts(t *testing.T) {
	p := validAG()
	p.Affectation = models.AffectationMixte
	p.MontantDividendes = models.Amount("-5000")
	p.MontantReserves = models.Amount("20000")
	v := Validate(act(p), testContext())
	assert.Equal(t, "La valeur doit être supérieure ou égale à 0", v["montant_dividendes"])
	assert.False(t, v.Has("montant_reserves"))
}

func TestAGOrdinaireVotesMustMatchShares(t *testing.T) {
	p := validAG()
	p.VotesAbstention = models.Int64(1)
	v := Validate(act(p), testContext())
	assert.Contains(t, v["votes_total"], "(101)")
	assert.Contains(t, v["votes_total"], "(100)")

	p.VotesPour = models.Int64(89)
	assert.True(t, Validate(act(p), testContext()).Empty())
}

func TestAGOrdinaireVotesWithoutShareholders(t *testing.T) {
	p := validAG()
	p.VotesPour = models.Int64(3)
	v := Validate(act(p), Context{})
	assert.False(t, v.Has("votes_total"))
}

func TestAGOrdinaireNegativeVotes(t *testing.T) {
	p := validAG()
	p.VotesContre = models.Int64(-10)
	p.VotesPour = models.Int64(110)
	v := Validate(act(p), testContext())
	assert.True(t, v.Has("votes_contre"))
	assert.False(t, v.Has("votes_total"))
}

func TestUnknownPayload(t *testing.T) {
	v := Validate(models.Act{DateActe: dateActe()}, testContext())
	assert.True(t, v.Has(validation.Global))
}
