package stale

//autobuilder:generate
type Item struct {
	Name string
}
