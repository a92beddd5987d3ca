package vault

// Secret is a named collection of string credential fields. The value
// container is replaced whole on update; there is no partial patch.
type Secret struct {
	// Name uniquely identifies the secret.
	Name string `json:"name"`

	// Value holds the credential fields.
	Value map[string]string `json:"value"`
}

// Get returns the named field, or "" when it is absent.
func (s *Secret) Get(key string) string {
	return s.Value[key]
}

// Update merges fields into the secret's value container.
func (s *Secret) Update(fields map[string]string) {
	if s.Value == nil {
		s.Value = make(map[string]string, len(fields))
	}
	for k, v := range fields {
		s.Value[k] = v
	}
}
