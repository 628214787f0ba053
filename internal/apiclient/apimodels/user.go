package apimodels

// User is an account entry an image expects to exist on provisioned
// machines, e.g. for generated passwords.
type User struct {
	Name string `json:"name" yaml:"name"`
}
