package invalid

//autobuilder:generate
type Number int

//autobuilder:generate
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

//autobuilder:generate
type UnknownOption struct {
	X int `builder:"required"`
}

//autobuilder:generate
type BadBool struct {
	X int `builder:"default=maybe"`
}

//autobuilder:generate
type HasFactory struct {
	X int
}

func (HasFactory) Builder() int { return 0 }

//autobuilder:generate
type Taken struct {
	X int
}

type TakenBuilder struct{}

//autobuilder:generate
type Duplicate struct {
	X int
	x int
}

//autobuilder:generate
type Valid struct {
	N int
}
