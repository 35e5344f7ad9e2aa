package errCode

type Code int

const (
	INVALID_VALUE Code = iota + 1
	EMPTY_VALUE
	NOT_ENOUGH_SAMPLES
	FAILED_TO_INVERT_MATRIX
	CONVERSION_FAILED
)

func (c Code) String() string {
	switch c {
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case EMPTY_VALUE:
		return "EMPTY_VALUE"
	case NOT_ENOUGH_SAMPLES:
		return "NOT_ENOUGH_SAMPLES"
	case FAILED_TO_INVERT_MATRIX:
		return "FAILED_TO_INVERT_MATRIX"
	case CONVERSION_FAILED:
		return "CONVERSION_FAILED"
	default:
		return "UNKNOWN"
	}
}
