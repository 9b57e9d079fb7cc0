package models

// Cabinet identifies the accounting firm preparing the documents. It is
// configuration, not a persisted record.
type Cabinet struct {
	Nom        string `toml:"nom" json:"nom"`
	Adresse    string `toml:"adresse" json:"adresse"`
	CodePostal string `toml:"code_postal" json:"code_postal"`
	Ville      string `toml:"ville" json:"ville"`
	SIRET      string `toml:"siret" json:"siret"`
	Telephone  string `toml:"telephone" json:"telephone"`
	Email      string `toml:"email" json:"email"`
	Signataire string `toml:"signataire" json:"signataire"`
}
