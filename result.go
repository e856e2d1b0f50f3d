package authcode

// Outcome is the terminal signal of an authentication attempt.
type Outcome uint8

const (
	OutcomeSuccess Outcome = iota + 1
	OutcomeFail
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFail:
		return "fail"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Result carries the outcome of one call to Authenticate.
// User and Info are set on success, Info alone on fail, Err on error.
type Result[U any] struct {
	Outcome Outcome
	User    U
	Info    any
	Err     error
}

func success[U any](user U, info any) Result[U] {
	return Result[U]{Outcome: OutcomeSuccess, User: user, Info: info}
}

func fail[U any](info any) Result[U] {
	return Result[U]{Outcome: OutcomeFail, Info: info}
}

func fault[U any](err error) Result[U] {
	return Result[U]{Outcome: OutcomeError, Err: err}
}
