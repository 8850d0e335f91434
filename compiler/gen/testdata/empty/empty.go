package empty

//autobuilder:generate
type Number int
