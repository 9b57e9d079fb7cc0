package format

import "strings"

// Placeholder stands in for any optional value missing from a legal document.
const Placeholder = "[à compléter]"

// OrPlaceholder returns s trimmed, or the placeholder when blank.
func OrPlaceholder(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return Placeholder
	}
	return s
}

// Adresse joins the non-blank parts with ", ".
func Adresse(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return Placeholder
	}
	return strings.Join(kept, ", ")
}

// Feminin reports whether a civility denotes a woman.
func Feminin(civilite string) bool {
	switch strings.ToLower(strings.TrimSpace(strings.TrimSuffix(civilite, "."))) {
	case "mme", "madame", "mlle", "mademoiselle":
		return true
	}
	return false
}

// Accord picks the masculine or feminine form for civilite.
func Accord(civilite, masculin, feminin string) string {
	if Feminin(civilite) {
		return feminin
	}
	return masculin
}

// Ne returns "né" or "née".
func Ne(civilite string) string {
	return Accord(civilite, "né", "née")
}

// Civilite renders the short civility, "Monsieur" by default.
func Civilite(civilite string) string {
	return Accord(civilite, "Monsieur", "Madame")
}

// Soussigne returns the opening formula matching the signatories:
// "Le soussigné", "La soussignée", "Les soussignés" or "Les soussignées".
func Soussigne(civilites []string) string {
	if len(civilites) <= 1 {
		civ := ""
		if len(civilites) == 1 {
			civ = civilites[0]
		}
		return Accord(civ, "Le soussigné", "La soussignée")
	}
	for _, c := range civilites {
		if !Feminin(c) {
			return "Les soussignés"
		}
	}
	return "Les soussignées"
}
