package prx

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

// Kind distinguishes exported functions from exported variables.
type Kind int

const (
	KindFunction Kind = iota // Function
	KindVariable             // Variable
)

// kinds lists each symbol kind with the container and entry tags that hold
// it, in the order the builder and lookups visit them.
var kinds = [...]struct {
	Kind

	container string
	entry     string
}{
	{KindFunction, tagFunctions, tagFunction},
	{KindVariable, tagVariables, tagVariable},
}
