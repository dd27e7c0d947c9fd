package codes

import (
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain is the errdetails.ErrorInfo domain for MT4 return codes.
const ErrorDomain = "mt4.manager"

// Error wraps a non-success return code as a Go error.
type Error struct {
	Code    Code
	Message string
	Locale  Locale
}

// AsError returns nil when code is a success code, otherwise an *Error
// carrying the default-locale message.
func AsError(code int) error {
	return defaultResolver.AsError(code)
}

// AsError is like the package-level AsError but resolves with r.
func (r *Resolver) AsError(code int) error {
	if IsSuccess(code) {
		return nil
	}
	return &Error{Code: Code(code), Message: r.Resolve(code), Locale: r.locale}
}

func (e *Error) Error() string {
	return fmt.Sprintf("mt4 %s (%d): %s", e.Code, int(e.Code), e.Message)
}

// Is matches any *Error with the same code, so callers can write
// errors.Is(err, &codes.Error{Code: codes.RetTradeNoMoney}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// CodeOf extracts the return code from err. ok is false when err carries none.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// GRPCStatus lets status.FromError and status.Code understand *Error.
func (e *Error) GRPCStatus() *status.Status {
	st := status.New(GRPCCode(int(e.Code)), e.Message)
	locale := e.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	detailed, err := st.WithDetails(
		&errdetails.ErrorInfo{
			Reason:   e.Code.String(),
			Domain:   ErrorDomain,
			Metadata: map[string]string{"ret_code": strconv.Itoa(int(e.Code))},
		},
		&errdetails.LocalizedMessage{Locale: string(locale), Message: e.Message},
	)
	if err != nil {
		return st
	}
	return detailed
}

var grpcMapping = map[Code]grpccodes.Code{
	RetOK:          grpccodes.OK,
	RetOKNone:      grpccodes.OK,
	RetError:       grpccodes.Unknown,
	RetInvalidData: grpccodes.InvalidArgument,
	RetTechProblem: grpccodes.Unavailable,
	RetTooFrequent: grpccodes.ResourceExhausted,
	RetMalfunction: grpccodes.Internal,

	RetOldVersion:       grpccodes.FailedPrecondition,
	RetNoConnect:        grpccodes.Unavailable,
	RetNotEnoughRights:  grpccodes.PermissionDenied,
	RetGenerateKey:      grpccodes.Unauthenticated,
	RetSecuritySession:  grpccodes.Unauthenticated,
	RetPublicKeyMissing: grpccodes.Unauthenticated,

	RetAccountDisabled: grpccodes.PermissionDenied,
	RetBadAccountInfo:  grpccodes.Unauthenticated,

	RetTradeTimeout:          grpccodes.DeadlineExceeded,
	RetTradeBadPrices:        grpccodes.InvalidArgument,
	RetTradeBadStops:         grpccodes.InvalidArgument,
	RetTradeBadVolume:        grpccodes.InvalidArgument,
	RetTradeMarketClosed:     grpccodes.FailedPrecondition,
	RetTradeDisable:          grpccodes.FailedPrecondition,
	RetTradeNoMoney:          grpccodes.FailedPrecondition,
	RetTradePriceChanged:     grpccodes.Aborted,
	RetTradeOffQuotes:        grpccodes.Aborted,
	RetTradeBrokerBusy:       grpccodes.Unavailable,
	RetTradeRequote:          grpccodes.Aborted,
	RetTradeOrderLocked:      grpccodes.Aborted,
	RetTradeLongOnly:         grpccodes.FailedPrecondition,
	RetTradeTooManyReq:       grpccodes.ResourceExhausted,
	RetTradeAccepted:         grpccodes.Aborted,
	RetTradeProcess:          grpccodes.Aborted,
	RetTradeUserCancel:       grpccodes.Canceled,
	RetTradeModifyDenied:     grpccodes.FailedPrecondition,
	RetTradeContextBusy:      grpccodes.Unavailable,
	RetTradeExpirationDenied: grpccodes.InvalidArgument,
	RetTradeTooManyOrders:    grpccodes.ResourceExhausted,
	RetTradeHedgeProhibited:  grpccodes.FailedPrecondition,
	RetTradeProhibitedByFIFO: grpccodes.FailedPrecondition,
}

// GRPCCode maps a return code to a gRPC status code. Unknown codes map to codes.Unknown.
func GRPCCode(code int) grpccodes.Code {
	if c, ok := grpcMapping[Code(code)]; ok {
		return c
	}
	return grpccodes.Unknown
}
