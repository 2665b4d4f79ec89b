package legal

import "errors"

var (
	ErrNoLegalParameters  = errors.New("no legal parameters configured for company")
	ErrNoISRBrackets      = errors.New("no ISR brackets configured for company")
	ErrParameterNotFound  = errors.New("legal parameter not found")
	ErrBracketNotFound    = errors.New("ISR bracket not found")
	ErrInvalidRateType    = errors.New("invalid rate type")
	ErrInvalidPercentage  = errors.New("percentage must be non-negative")
	ErrOverlappingBracket = errors.New("ISR bracket overlaps an existing bracket")
)
