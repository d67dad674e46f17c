package domain

// ResultValue is the wire form of an answer.
type ResultValue string

const (
	ResultYes ResultValue = "yes"
	ResultNo  ResultValue = "no"
)

// ResultFromBool maps an answer to its wire form.
func ResultFromBool(v bool) ResultValue {
	if v {
		return ResultYes
	}
	return ResultNo
}

// Valid reports whether r is one of the known result values.
func (r ResultValue) Valid() bool {
	return r == ResultYes || r == ResultNo
}

// SourceKind selects the checklist source implementation.
type SourceKind string

const (
	SourceMock  SourceKind = "mock"
	SourceHTTP  SourceKind = "http"
	SourceLocal SourceKind = "local"
)

// ValidSourceKinds is the canonical set of accepted source kind strings.
var ValidSourceKinds = map[string]bool{
	"mock": true, "http": true, "local": true,
}
