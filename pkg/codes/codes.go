package codes

import "strconv"

// Code MT4 Manager API 返回码 (RET_*)，由外部接口产生，本包不做校验
type Code int

// 已映射的返回码
const (
	RetOK          Code = 0
	RetOKNone      Code = 1
	RetError       Code = 2
	RetInvalidData Code = 3
	RetTechProblem Code = 4
	RetTooFrequent Code = 8
	RetMalfunction Code = 9

	RetAccountDisabled Code = 64
	RetBadAccountInfo  Code = 65

	RetTradeTimeout          Code = 128
	RetTradeBadPrices        Code = 129
	RetTradeBadStops         Code = 130
	RetTradeBadVolume        Code = 131
	RetTradeMarketClosed     Code = 132
	RetTradeDisable          Code = 133
	RetTradeNoMoney          Code = 134
	RetTradePriceChanged     Code = 135
	RetTradeBrokerBusy       Code = 137
	RetTradeOrderLocked      Code = 139
	RetTradeLongOnly         Code = 140
	RetTradeTooManyReq       Code = 141
	RetTradeAccepted         Code = 142
	RetTradeProcess          Code = 143
	RetTradeUserCancel       Code = 144
	RetTradeModifyDenied     Code = 145
	RetTradeExpirationDenied Code = 147
	RetTradeTooManyOrders    Code = 148
	RetTradeHedgeProhibited  Code = 149
	RetTradeProhibitedByFIFO Code = 150
)

// 保留返回码：接口中存在，但目前没有映射文案，解析时走默认文案
const (
	RetOldVersion       Code = 5
	RetNoConnect        Code = 6
	RetNotEnoughRights  Code = 7
	RetGenerateKey      Code = 10
	RetSecuritySession  Code = 11
	RetPublicKeyMissing Code = 66
	RetTradeOffQuotes   Code = 136
	RetTradeRequote     Code = 138
	RetTradeContextBusy Code = 146
)

// ErrorCode represents one registry row in a given locale.
type ErrorCode struct {
	Numeric int32
	Symbol  string
	Message string
}

// Message resolves c with the default locale.
func (c Code) Message() string {
	return defaultResolver.Resolve(int(c))
}

// String returns the RET_* symbol, or RET_UNKNOWN(n) for codes the API does not define.
func (c Code) String() string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return "RET_UNKNOWN(" + strconv.Itoa(int(c)) + ")"
}

// Symbol returns the RET_* name of code. Reserved codes have a symbol too.
func Symbol(code int) (string, bool) {
	s, ok := symbols[Code(code)]
	return s, ok
}

// IsReserved reports whether code is defined by the API but deliberately unmapped.
func IsReserved(code int) bool {
	_, ok := reservedSet[Code(code)]
	return ok
}

// IsSuccess reports whether code means the operation completed.
func IsSuccess(code int) bool {
	c := Code(code)
	return c == RetOK || c == RetOKNone
}

// IsPending reports whether the trade request was taken but is not final yet.
func IsPending(code int) bool {
	c := Code(code)
	return c == RetTradeAccepted || c == RetTradeProcess
}
