package application

// FailureKind classifies why an operation failed so the transport layer can
// map it to a status code without parsing messages.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureValidation
	FailureConflict
	FailureNotFound
	FailureAuthentication
	FailurePersistence
)

func (k FailureKind) String() string {
	switch k {
	case FailureValidation:
		return "validation"
	case FailureConflict:
		return "conflict"
	case FailureNotFound:
		return "not_found"
	case FailureAuthentication:
		return "authentication"
	case FailurePersistence:
		return "persistence"
	default:
		return "none"
	}
}

// Result is the uniform success/failure envelope returned by every use case.
type Result[T any] struct {
	IsSuccess bool     `json:"isSuccess"`
	Value     T        `json:"value"`
	Message   string   `json:"message"`
	Errors    []string `json:"errors"`

	kind FailureKind
}

func Ok[T any](value T, message string) Result[T] {
	return Result[T]{IsSuccess: true, Value: value, Message: message, Errors: []string{}}
}

func Fail[T any](kind FailureKind, message string, errs ...string) Result[T] {
	if errs == nil {
		errs = []string{}
	}
	return Result[T]{Message: message, Errors: errs, kind: kind}
}

// Kind returns the failure classification; FailureNone on success.
func (r Result[T]) Kind() FailureKind { return r.kind }

// PagedResult carries one page of items plus the approximate total.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}
