package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Kaiser28/comptable-dashboard/internal/models"
)

// firmFile is the layout of the firm TOML file:
//
//	[cabinet]
//	nom = "Cabinet Martin"
//	ville = "Lyon"
type firmFile struct {
	Cabinet models.Cabinet `toml:"cabinet"`
}

// LoadFirm reads the firm identity printed on generated documents. An empty
// path yields an empty firm. Unknown keys are rejected.
func LoadFirm(path string) (models.Cabinet, error) {
	if strings.TrimSpace(path) == "" {
		return models.Cabinet{}, nil
	}
	var raw firmFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return models.Cabinet{}, fmt.Errorf("load firm config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return models.Cabinet{}, fmt.Errorf("load firm config: unknown keys %s", strings.Join(keys, ", "))
	}
	if !meta.IsDefined("cabinet", "nom") {
		return models.Cabinet{}, fmt.Errorf("load firm config: cabinet.nom is required")
	}

	c := raw.Cabinet
	for _, f := range []*string{&c.Nom, &c.Adresse, &c.CodePostal, &c.Ville, &c.SIRET, &c.Telephone, &c.Email, &c.Signataire} {
		*f = strings.TrimSpace(*f)
	}
	return c, nil
}
